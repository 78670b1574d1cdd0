package models

import "time"

// Color tag tokens for section headers
const (
	ColorBlue   = "blue"
	ColorGreen  = "green"
	ColorAmber  = "amber"
	ColorRed    = "red"
	ColorPurple = "purple"
	ColorGray   = "gray"
)

// Default section identifiers seeded for every claim
const (
	SectionClaimDetails = "section1"
	SectionInsured      = "section2"
	SectionSurvey       = "section3"
	SectionSettlement   = "section4"
)

// DefaultSectionIDs lists the seeded sections in render order
var DefaultSectionIDs = []string{
	SectionClaimDetails,
	SectionInsured,
	SectionSurvey,
	SectionSettlement,
}

// Section is a named, ordered, collapsible grouping of fields and tables
// within a claim's additional-information form. Fields belong to a section
// through FieldDescriptor.SectionID; the section itself carries only its
// embedded tables.
type Section struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	OrderIndex int            `json:"order_index"`
	ColorTag   string         `json:"color"`
	Tables     []SectionTable `json:"tables,omitempty"`
	IsCustom   bool           `json:"is_custom"`
	Collapsed  bool           `json:"collapsed,omitempty"`
}

// SectionTable is a spreadsheet-like grid embedded in a section.
// No formulas, no cell typing.
type SectionTable struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Rows      int           `json:"rows"`
	Cols      int           `json:"cols"`
	Data      [][]TableCell `json:"data"`
	CreatedAt time.Time     `json:"created_at"`
}

// TableCell holds one grid cell's raw string value
type TableCell struct {
	Value string `json:"value"`
}

// HasDataRow reports whether any cell in the table is non-empty
func (t SectionTable) HasDataRow() bool {
	for _, row := range t.Data {
		for _, cell := range row {
			if cell.Value != "" {
				return true
			}
		}
	}
	return false
}
