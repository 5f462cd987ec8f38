// Package ocr models the scanned payload handed over by the bulk-scan
// supplier: a flat bag of key/value OCR fields plus the scanned document
// records and envelope metadata.
package ocr

import (
	"encoding/json"
	"strings"
)

// Field is a single OCR key/value pair. Values arrive as arbitrary JSON
// scalars and are normalised to strings.
type Field struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

// ScannedRecord is one document in the scanned envelope.
type ScannedRecord struct {
	Type        string `json:"type,omitempty"`
	Subtype     string `json:"subtype,omitempty"`
	URL         string `json:"url,omitempty"`
	FileName    string `json:"fileName,omitempty"`
	ScannedDate string `json:"scannedDate,omitempty"`
}

// ScanPayload is the inbound intake request body.
type ScanPayload struct {
	ID                 string          `json:"id,omitempty"`
	Fields             []Field         `json:"ocrDataFields"`
	Records            []ScannedRecord `json:"scannedDocuments,omitempty"`
	OpeningDate        string          `json:"openingDate,omitempty"`
	FormType           string          `json:"formType,omitempty"`
	IgnoreWarnings     bool            `json:"ignoreWarnings,omitempty"`
	IsAutomatedProcess bool            `json:"isAutomatedProcess,omitempty"`
}

// FieldMap flattens the OCR pairs into a name-to-string map. Non-string
// scalars are rendered with their JSON representation; null values and
// blank strings are dropped so presence checks stay meaningful.
func (p *ScanPayload) FieldMap() map[string]string {
	m := make(map[string]string, len(p.Fields))
	for _, f := range p.Fields {
		v := stringValue(f.Value)
		if strings.TrimSpace(v) == "" {
			continue
		}
		m[f.Name] = strings.TrimSpace(v)
	}
	return m
}

// RawMap exposes the OCR pairs with their original JSON values, for the
// schema gate. Nulls are kept so the schema can see them.
func (p *ScanPayload) RawMap() map[string]interface{} {
	m := make(map[string]interface{}, len(p.Fields))
	for _, f := range p.Fields {
		m[f.Name] = f.Value
	}
	return m
}

func stringValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	case json.Number:
		return t.String()
	case float64:
		n, _ := json.Marshal(t)
		return string(n)
	default:
		n, _ := json.Marshal(t)
		return strings.Trim(string(n), `"`)
	}
}
