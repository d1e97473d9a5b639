package catalog

import "vitalab/labparse/internal/models"

// ptr is a helper to create pointers to float64 literals
func ptr(f float64) *float64 {
	return &f
}

// builtinDefinitions is the authoritative built-in reference table. Ranges
// follow standard adult reference intervals. Entries can be overridden or
// extended through a catalog override file at startup.
var builtinDefinitions = []models.AnalyteDefinition{
	{
		Name: "Glucose", Unit: "mg/dL",
		Range:       models.ReferenceRange{Low: ptr(70), High: ptr(100)},
		Explanation: "Fasting blood sugar, the primary screen for diabetes and hypoglycemia.",
		HighNote:    "Elevated fasting glucose may indicate prediabetes or diabetes.",
		LowNote:     "Low glucose can cause dizziness, confusion and fainting.",
	},
	{
		Name: "HbA1c", Unit: "%",
		Range:       models.ReferenceRange{High: ptr(5.7)},
		Explanation: "Glycated hemoglobin, reflecting average blood sugar over about three months.",
		HighNote:    "Values of 5.7% and above suggest prediabetes; 6.5% and above suggest diabetes.",
	},
	{
		Name: "Hemoglobin", Unit: "g/dL",
		Range:       models.ReferenceRange{Low: ptr(12.0), High: ptr(16.6)},
		Explanation: "The oxygen-carrying protein in red blood cells.",
		HighNote:    "High hemoglobin can result from dehydration or lung disease.",
		LowNote:     "Low hemoglobin is the defining feature of anemia.",
	},
	{
		Name: "Hematocrit", Unit: "%",
		Range:       models.ReferenceRange{Low: ptr(36), High: ptr(50)},
		Explanation: "The fraction of blood volume occupied by red blood cells.",
		HighNote:    "High hematocrit thickens the blood and can follow dehydration.",
		LowNote:     "Low hematocrit accompanies anemia and blood loss.",
	},
	{
		Name: "White Blood Cells", Unit: "K/µL",
		Range:       models.ReferenceRange{Low: ptr(4.5), High: ptr(11.0)},
		Explanation: "Immune cells that fight infection.",
		HighNote:    "Elevated counts usually signal infection or inflammation.",
		LowNote:     "Low counts reduce resistance to infection.",
	},
	{
		Name: "Red Blood Cells", Unit: "M/µL",
		Range:       models.ReferenceRange{Low: ptr(3.9), High: ptr(5.7)},
		Explanation: "Cells that carry oxygen from the lungs to the body.",
		HighNote:    "High counts can follow dehydration or low oxygen states.",
		LowNote:     "Low counts indicate anemia or blood loss.",
	},
	{
		Name: "Platelets", Unit: "K/µL",
		Range:       models.ReferenceRange{Low: ptr(150), High: ptr(400)},
		Explanation: "Cell fragments responsible for clotting.",
		HighNote:    "High platelet counts raise clotting risk.",
		LowNote:     "Low platelet counts raise bleeding risk.",
	},
	{
		Name: "Sodium", Unit: "mEq/L",
		Range:       models.ReferenceRange{Low: ptr(135), High: ptr(145)},
		Explanation: "The main electrolyte governing fluid balance.",
		HighNote:    "High sodium usually reflects dehydration.",
		LowNote:     "Low sodium can cause confusion and seizures.",
	},
	{
		Name: "Potassium", Unit: "mEq/L",
		Range:       models.ReferenceRange{Low: ptr(3.5), High: ptr(5.2)},
		Explanation: "Electrolyte critical for heart rhythm and muscle function.",
		HighNote:    "High potassium can trigger dangerous heart rhythms.",
		LowNote:     "Low potassium causes weakness and cramps.",
	},
	{
		Name: "Chloride", Unit: "mEq/L",
		Range:       models.ReferenceRange{Low: ptr(96), High: ptr(106)},
		Explanation: "Electrolyte that helps maintain acid-base balance.",
	},
	{
		Name: "Calcium", Unit: "mg/dL",
		Range:       models.ReferenceRange{Low: ptr(8.6), High: ptr(10.3)},
		Explanation: "Mineral essential for bones, nerves and muscle contraction.",
		HighNote:    "High calcium may point to parathyroid or bone disorders.",
		LowNote:     "Low calcium can cause muscle spasms and tingling.",
	},
	{
		Name: "Creatinine", Unit: "mg/dL",
		Range:       models.ReferenceRange{Low: ptr(0.7), High: ptr(1.3)},
		Explanation: "A muscle waste product cleared by the kidneys; the standard kidney function marker.",
		HighNote:    "Elevated creatinine suggests reduced kidney function.",
	},
	{
		Name: "Blood Urea Nitrogen", Unit: "mg/dL",
		Range:       models.ReferenceRange{Low: ptr(7), High: ptr(20)},
		Explanation: "A protein breakdown product cleared by the kidneys.",
		HighNote:    "High BUN follows kidney impairment or dehydration.",
	},
	{
		Name: "ALT", Unit: "U/L",
		Range:       models.ReferenceRange{Low: ptr(7), High: ptr(56)},
		Explanation: "A liver enzyme released when liver cells are damaged.",
		HighNote:    "Elevated ALT indicates liver cell injury.",
	},
	{
		Name: "AST", Unit: "U/L",
		Range:       models.ReferenceRange{Low: ptr(10), High: ptr(40)},
		Explanation: "An enzyme found in the liver, heart and muscles.",
		HighNote:    "Elevated AST indicates liver or muscle injury.",
	},
	{
		Name: "Total Cholesterol", Unit: "mg/dL",
		Range:       models.ReferenceRange{High: ptr(200)},
		Explanation: "All cholesterol carried in the blood.",
		HighNote:    "High total cholesterol raises cardiovascular risk.",
	},
	{
		Name: "LDL Cholesterol", Unit: "mg/dL",
		Range:       models.ReferenceRange{High: ptr(100)},
		Explanation: "Low-density lipoprotein, the artery-clogging cholesterol fraction.",
		HighNote:    "High LDL is a primary driver of atherosclerosis.",
	},
	{
		Name: "HDL Cholesterol", Unit: "mg/dL",
		Range:       models.ReferenceRange{Low: ptr(40)},
		Explanation: "High-density lipoprotein, the protective cholesterol fraction.",
		LowNote:     "Low HDL weakens protection against heart disease.",
	},
	{
		Name: "Triglycerides", Unit: "mg/dL",
		Range:       models.ReferenceRange{High: ptr(150)},
		Explanation: "Circulating fat used for energy storage.",
		HighNote:    "High triglycerides raise cardiovascular and pancreatitis risk.",
	},
	{
		Name: "TSH", Unit: "µIU/mL",
		Range:       models.ReferenceRange{Low: ptr(0.4), High: ptr(4.0)},
		Explanation: "Thyroid stimulating hormone, the primary thyroid screen.",
		HighNote:    "High TSH suggests an underactive thyroid.",
		LowNote:     "Low TSH suggests an overactive thyroid.",
	},
	{
		Name: "Vitamin D", Unit: "ng/mL",
		Range:       models.ReferenceRange{Low: ptr(30), High: ptr(100)},
		Explanation: "25-hydroxy vitamin D, reflecting vitamin D stores.",
		LowNote:     "Deficiency weakens bones and immunity.",
	},
	{
		Name: "Vitamin B12", Unit: "pg/mL",
		Range:       models.ReferenceRange{Low: ptr(200), High: ptr(900)},
		Explanation: "Vitamin needed for nerve function and red cell production.",
		LowNote:     "Deficiency causes anemia and nerve damage.",
	},
	{
		Name: "Ferritin", Unit: "ng/mL",
		Range:       models.ReferenceRange{Low: ptr(20), High: ptr(250)},
		Explanation: "The body's iron storage protein.",
		HighNote:    "High ferritin follows inflammation or iron overload.",
		LowNote:     "Low ferritin is the earliest sign of iron deficiency.",
	},
	{
		Name: "ESR", Unit: "mm/hr",
		Range:       models.ReferenceRange{High: ptr(20)},
		Explanation: "Erythrocyte sedimentation rate, a nonspecific inflammation marker.",
		HighNote:    "Elevated ESR signals inflammation somewhere in the body.",
	},
	{
		Name: "CRP", Unit: "mg/L",
		Range:       models.ReferenceRange{High: ptr(10)},
		Explanation: "C-reactive protein, an acute inflammation marker.",
		HighNote:    "High CRP signals acute inflammation or infection.",
	},
	{
		Name: "Systolic", Unit: "mmHg",
		Range:       models.ReferenceRange{Low: ptr(90), High: ptr(120)},
		Explanation: "Arterial pressure while the heart contracts.",
		HighNote:    "Elevated systolic pressure indicates hypertension.",
		LowNote:     "Low systolic pressure can cause lightheadedness.",
	},
	{
		Name: "Diastolic", Unit: "mmHg",
		Range:       models.ReferenceRange{Low: ptr(60), High: ptr(80)},
		Explanation: "Arterial pressure while the heart rests between beats.",
		HighNote:    "Elevated diastolic pressure indicates hypertension.",
		LowNote:     "Low diastolic pressure can impair organ perfusion.",
	},
	{
		Name: "Blood Pressure", Unit: "mmHg",
		Explanation: "Systolic over diastolic arterial pressure.",
		Composite: &models.CompositeSpec{
			Separator:  "/",
			Components: []string{"Systolic", "Diastolic"},
		},
	},
	{
		Name: "Heart Rate", Unit: "bpm",
		Range:       models.ReferenceRange{Low: ptr(60), High: ptr(100)},
		Explanation: "Resting beats per minute.",
		HighNote:    "A persistently high resting rate merits evaluation.",
		LowNote:     "Low rates are common in athletes but can signal conduction problems.",
	},
}

// builtinSynonyms is the fixed synonym table mapping common report spellings
// and abbreviations to canonical catalog names.
var builtinSynonyms = map[string]string{
	"blood sugar":             "Glucose",
	"fasting glucose":         "Glucose",
	"fasting blood sugar":     "Glucose",
	"fbs":                     "Glucose",
	"glycated hemoglobin":     "HbA1c",
	"glycosylated hemoglobin": "HbA1c",
	"a1c":                     "HbA1c",
	"hgb":                     "Hemoglobin",
	"hb":                      "Hemoglobin",
	"haemoglobin":             "Hemoglobin",
	"hct":                     "Hematocrit",
	"wbc":                     "White Blood Cells",
	"white blood cell count":  "White Blood Cells",
	"leukocytes":              "White Blood Cells",
	"rbc":                     "Red Blood Cells",
	"red blood cell count":    "Red Blood Cells",
	"erythrocytes":            "Red Blood Cells",
	"plt":                     "Platelets",
	"platelet count":          "Platelets",
	"na":                      "Sodium",
	"k":                       "Potassium",
	"cl":                      "Chloride",
	"ca":                      "Calcium",
	"creat":                   "Creatinine",
	"bun":                     "Blood Urea Nitrogen",
	"urea nitrogen":           "Blood Urea Nitrogen",
	"sgpt":                    "ALT",
	"alanine aminotransferase": "ALT",
	"sgot":                     "AST",
	"aspartate aminotransferase": "AST",
	"cholesterol":             "Total Cholesterol",
	"ldl":                     "LDL Cholesterol",
	"ldl-c":                   "LDL Cholesterol",
	"hdl":                     "HDL Cholesterol",
	"hdl-c":                   "HDL Cholesterol",
	"trig":                    "Triglycerides",
	"thyroid stimulating hormone": "TSH",
	"25-oh vitamin d":         "Vitamin D",
	"vitamin d 25-hydroxy":    "Vitamin D",
	"b12":                     "Vitamin B12",
	"cobalamin":               "Vitamin B12",
	"sed rate":                "ESR",
	"erythrocyte sedimentation rate": "ESR",
	"c-reactive protein":      "CRP",
	"bp":                      "Blood Pressure",
	"blood pressure (sys/dia)": "Blood Pressure",
	"pulse":                   "Heart Rate",
	"hr":                      "Heart Rate",
}
