package lineparser

import "strings"

// knownUnits maps normalized unit spellings to their canonical display form.
// Normalization lowercases the token and folds "u" to "µ" so that reports
// that cannot print the micro sign still match.
var knownUnits = map[string]string{
	"mg/dl":   "mg/dL",
	"g/dl":    "g/dL",
	"g/l":     "g/L",
	"mg/l":    "mg/L",
	"meq/l":   "mEq/L",
	"mmol/l":  "mmol/L",
	"µmol/l":  "µmol/L",
	"k/µl":    "K/µL",
	"m/µl":    "M/µL",
	"%":       "%",
	"u/l":     "U/L",
	"iu/l":    "IU/L",
	"ng/ml":   "ng/mL",
	"pg/ml":   "pg/mL",
	"µiu/ml":  "µIU/mL",
	"miu/l":   "mIU/L",
	"mm/hr":   "mm/hr",
	"mm/h":    "mm/hr",
	"mmhg":    "mmHg",
	"bpm":     "bpm",
	"fl":      "fL",
	"pg":      "pg",
	"µg/dl":   "µg/dL",
	"ng/dl":   "ng/dL",
}

// canonicalUnit returns the display form for a known unit token.
// The boolean reports whether the token is a recognized unit.
func canonicalUnit(token string) (string, bool) {
	token = strings.TrimSpace(token)
	token = strings.Trim(token, ",;")
	if token == "" {
		return "", false
	}
	key := strings.ToLower(token)
	if unit, ok := knownUnits[key]; ok {
		return unit, true
	}
	if strings.HasPrefix(key, "u") {
		if unit, ok := knownUnits["µ"+key[1:]]; ok {
			return unit, true
		}
	}
	if strings.Contains(key, "/u") {
		if unit, ok := knownUnits[strings.Replace(key, "/u", "/µ", 1)]; ok {
			return unit, true
		}
	}
	return "", false
}
