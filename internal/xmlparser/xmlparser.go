// Package xmlparser parses XML lab exports, the structured format some lab
// portals produce alongside PDF reports. Extraction uses XPath so the parser
// tolerates extra elements and namespaced wrappers around the core shape:
//
//	<LabReport>
//	  <CollectionDate>2024-03-12</CollectionDate>
//	  <PanelName>Basic Metabolic Panel</PanelName>
//	  <Result>
//	    <Analyte>Glucose</Analyte>
//	    <Value>95</Value>
//	    <Unit>mg/dL</Unit>
//	  </Result>
//	</LabReport>
package xmlparser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/xmlpath.v2"

	"vitalab/labparse/internal/catalog"
	"vitalab/labparse/internal/dateutils"
	"vitalab/labparse/internal/extractor"
	"vitalab/labparse/internal/logging"
	"vitalab/labparse/internal/models"
	"vitalab/labparse/internal/parsererror"
	"vitalab/labparse/internal/xmlutils"
)

var log = logging.GetLogger()

// SetLogger sets a custom logger for the parser.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

var (
	reportPath  = xmlpath.MustCompile("//LabReport")
	datePath    = xmlpath.MustCompile("//LabReport/CollectionDate")
	panelPath   = xmlpath.MustCompile("//LabReport/PanelName")
	resultPath  = xmlpath.MustCompile("//LabReport/Result")
	analytePath = xmlpath.MustCompile("Analyte")
	valuePath   = xmlpath.MustCompile("Value")
	unitPath    = xmlpath.MustCompile("Unit")
)

// Parser extracts a BloodTest from an XML lab export.
type Parser struct {
	catalog *catalog.Catalog
}

// New creates an XML lab-export parser over the given catalog.
func New(cat *catalog.Catalog) *Parser {
	return &Parser{catalog: cat}
}

// ValidateFormat checks whether a file looks like an XML lab export.
func (p *Parser) ValidateFormat(filePath string) (bool, error) {
	root, err := xmlutils.LoadXMLFile(filePath)
	if err != nil {
		log.WithError(err).Info("File is not a valid XML",
			logging.Field{Key: logging.FieldFile, Value: filePath})
		return false, nil
	}
	if !reportPath.Exists(root) {
		log.Info("File is not a lab export (no LabReport element)",
			logging.Field{Key: logging.FieldFile, Value: filePath})
		return false, nil
	}
	return true, nil
}

// ParseFile parses an XML lab export into a BloodTest plus the entries that
// could not be resolved or classified.
func (p *Parser) ParseFile(xmlFilePath string) (models.BloodTest, []string, error) {
	log.Info("Parsing XML lab export",
		logging.Field{Key: logging.FieldFile, Value: xmlFilePath})

	root, err := xmlutils.LoadXMLFile(xmlFilePath)
	if err != nil {
		return models.BloodTest{}, nil, err
	}

	if !reportPath.Exists(root) {
		return models.BloodTest{}, nil, &parsererror.InvalidFormatError{
			FilePath:       xmlFilePath,
			ExpectedFormat: "XML lab export",
			Msg:            "no LabReport element found",
		}
	}

	test := models.BloodTest{
		Date:     time.Now(),
		TestType: "Lab Export",
	}
	if raw, ok := datePath.String(root); ok {
		if t, _, err := dateutils.ParseDate(raw); err == nil {
			test.Date = t
		}
	}
	if panel, ok := panelPath.String(root); ok && strings.TrimSpace(panel) != "" {
		test.TestType = xmlutils.CleanText(panel)
	}

	var unresolved []string
	iter := resultPath.Iter(root)
	for iter.Next() {
		node := iter.Node()
		name, _ := analytePath.String(node)
		rawValue, _ := valuePath.String(node)
		unit, _ := unitPath.String(node)

		name = xmlutils.CleanText(name)
		rawValue = strings.TrimSpace(rawValue)

		def, ok := p.catalog.Lookup(name)
		if !ok {
			unresolved = append(unresolved, fmt.Sprintf("%s %s", name, rawValue))
			log.Debug("Unknown analyte in XML export",
				logging.Field{Key: logging.FieldAnalyte, Value: name})
			continue
		}

		value, err := strconv.ParseFloat(strings.TrimLeft(rawValue, "<>"), 64)
		if err != nil {
			unresolved = append(unresolved, fmt.Sprintf("%s %s", name, rawValue))
			log.Debug("Malformed value in XML export",
				logging.Field{Key: logging.FieldAnalyte, Value: name},
				logging.Field{Key: logging.FieldValue, Value: rawValue})
			continue
		}

		test.Results = append(test.Results, extractor.BuildResult(def, value, xmlutils.CleanText(unit)))
	}

	log.Info("Extracted lab results from XML export",
		logging.Field{Key: logging.FieldCount, Value: len(test.Results)},
		logging.Field{Key: "unresolved", Value: len(unresolved)})

	return test, unresolved, nil
}
