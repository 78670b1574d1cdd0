// Package report converts a claim's field values, section organization and
// uploaded documents into a declarative component document for the external
// rendering service, and carries the HTTP client that submits it.
package report

// Component kind constants understood by the rendering service
const (
	ComponentSubheader = "subheader"
	ComponentParagraph = "paragraph"
	ComponentTable     = "table"
	ComponentImages    = "images"
)

// Component is one renderable block in the report body
type Component struct {
	Type    string     `json:"type"`
	Text    string     `json:"text,omitempty"`
	Headers []string   `json:"headers,omitempty"`
	Rows    [][]string `json:"rows,omitempty"`
	Images  []string   `json:"images,omitempty"`
	Columns int        `json:"columns,omitempty"`
}

// Configs holds page-level rendering options
type Configs struct {
	PageSize    string `json:"pageSize"`
	Orientation string `json:"orientation"`
	MarginMM    int    `json:"marginMm"`
}

// Document is the fixed top-level payload the rendering service consumes
type Document struct {
	Company    string            `json:"company"`
	ReportName string            `json:"reportName"`
	Assets     map[string]string `json:"assets"`
	Configs    Configs           `json:"configs"`
	Components []Component       `json:"components"`
}

// Overrides carries session-local adjustments a user made before generating
// the report: drag-and-drop reordering and per-section visibility toggles.
// They are never persisted with the claim.
type Overrides struct {
	Order   []string        `json:"order,omitempty"`
	Visible map[string]bool `json:"visible,omitempty"`
}
