package report

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/djcoder02-glitch/claim-portal-backend/internal/models"
	"github.com/djcoder02-glitch/claim-portal-backend/internal/registry"
	"github.com/djcoder02-glitch/claim-portal-backend/internal/sections"
)

// Assembler builds report documents from claim state
type Assembler struct {
	company string
	logger  *zap.Logger
}

// NewAssembler creates a report assembler stamping the given company name
// onto every document.
func NewAssembler(company string, logger *zap.Logger) *Assembler {
	return &Assembler{company: company, logger: logger}
}

// Input gathers everything one assembly run reads
type Input struct {
	Claim      *models.Claim
	PolicyType *models.PolicyType
	FormData   *models.FormData
	Documents  []*models.Document
	Overrides  *Overrides
}

// sectionFields resolves the visible descriptors belonging to one section:
// the standard set for the policy type filtered by section, then the custom
// descriptors attached to it, hidden fields excluded throughout.
func sectionFields(in Input, sectionID string) []models.FieldDescriptor {
	var out []models.FieldDescriptor
	for _, d := range registry.GetDescriptors(in.PolicyType.Name) {
		if d.SectionID == sectionID && !in.FormData.IsHidden(d.Name) {
			out = append(out, d)
		}
	}
	for _, d := range in.FormData.CustomFields {
		if d.SectionID == sectionID && !in.FormData.IsHidden(d.Name) {
			out = append(out, d)
		}
	}
	return out
}

func sectionImages(in Input, sectionID string) []string {
	var out []string
	for _, url := range in.FormData.SectionImages[sectionID] {
		if url != "" {
			out = append(out, url)
		}
	}
	return out
}

// sectionVisible applies the inclusion rule: at least one non-empty field
// value, one filled image slot, or one table with a data row.
func sectionVisible(in Input, section models.Section) bool {
	if in.Overrides != nil && in.Overrides.Visible != nil {
		if v, ok := in.Overrides.Visible[section.ID]; ok {
			return v
		}
	}

	for _, d := range sectionFields(in, section.ID) {
		if v, ok := in.FormData.Values[d.Name]; ok && !v.IsEmpty() {
			return true
		}
	}
	if len(sectionImages(in, section.ID)) > 0 {
		return true
	}
	for _, t := range section.Tables {
		if t.HasDataRow() {
			return true
		}
	}
	return false
}

// orderedSections returns the claim's sections sorted by orderIndex, with a
// session-local reorder applied first when the caller supplied one.
func orderedSections(in Input) []models.Section {
	secs := in.FormData.Sections
	if len(secs) == 0 {
		secs = sections.DefaultSections()
	}

	out := make([]models.Section, len(secs))
	copy(out, secs)

	if in.Overrides != nil && len(in.Overrides.Order) == len(out) {
		pos := make(map[string]int, len(in.Overrides.Order))
		for i, id := range in.Overrides.Order {
			pos[id] = i + 1
		}
		known := true
		for _, s := range out {
			if _, ok := pos[s.ID]; !ok {
				known = false
				break
			}
		}
		if known {
			for i := range out {
				out[i].OrderIndex = pos[out[i].ID]
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OrderIndex < out[j].OrderIndex
	})
	return out
}

// Assemble walks the visible sections in order and emits the report
// document. The Overview section is always included.
func (a *Assembler) Assemble(in Input) *Document {
	doc := &Document{
		Company:    a.company,
		ReportName: fmt.Sprintf("Claim Report - %s", in.Claim.ClaimNumber),
		Assets:     map[string]string{},
		Configs: Configs{
			PageSize:    "A4",
			Orientation: "portrait",
			MarginMM:    15,
		},
	}

	doc.Components = append(doc.Components, Component{Type: ComponentSubheader, Text: "Overview"})
	doc.Components = append(doc.Components, Component{
		Type:    ComponentTable,
		Headers: []string{"Field", "Value"},
		Rows: [][]string{
			{"Claim Number", in.Claim.ClaimNumber},
			{"Policy Type", in.PolicyType.Name},
			{"Status", in.Claim.Status},
			{"Created", in.Claim.CreatedAt.Format("2006-01-02")},
		},
	})

	for _, section := range orderedSections(in) {
		if !sectionVisible(in, section) {
			continue
		}
		a.emitSection(doc, in, section)
	}

	a.emitDocuments(doc, in.Documents)

	a.logger.Debug("Report assembled",
		zap.String("claim_id", in.Claim.ID),
		zap.Int("components", len(doc.Components)))
	return doc
}

func (a *Assembler) emitSection(doc *Document, in Input, section models.Section) {
	doc.Components = append(doc.Components, Component{Type: ComponentSubheader, Text: section.Name})

	var rows [][]string
	for _, d := range sectionFields(in, section.ID) {
		v, ok := in.FormData.Values[d.Name]
		if !ok || v.IsEmpty() {
			continue
		}
		rows = append(rows, []string{in.FormData.Label(d.Name, d.Label), v.Display()})
	}
	if len(rows) > 0 {
		doc.Components = append(doc.Components, Component{
			Type:    ComponentTable,
			Headers: []string{"Field", "Value"},
			Rows:    rows,
		})
	}

	if images := sectionImages(in, section.ID); len(images) > 0 {
		doc.Components = append(doc.Components, Component{
			Type:    ComponentImages,
			Images:  images,
			Columns: 2,
		})
	}

	for _, table := range section.Tables {
		if !table.HasDataRow() {
			continue
		}
		cells := make([][]string, len(table.Data))
		for i, row := range table.Data {
			cells[i] = make([]string, len(row))
			for j, cell := range row {
				cells[i][j] = cell.Value
			}
		}
		doc.Components = append(doc.Components, Component{
			Type: ComponentTable,
			Text: table.Name,
			Rows: cells,
		})
	}
}

// emitDocuments appends the uploaded-document listing, grouped by field
// label, when any documents exist.
func (a *Assembler) emitDocuments(doc *Document, docs []*models.Document) {
	if len(docs) == 0 {
		return
	}

	grouped := make(map[string][]*models.Document)
	var labels []string
	for _, d := range docs {
		label := d.FieldLabel
		if label == "" {
			label = "Attachments"
		}
		if _, ok := grouped[label]; !ok {
			labels = append(labels, label)
		}
		grouped[label] = append(grouped[label], d)
	}

	doc.Components = append(doc.Components, Component{Type: ComponentSubheader, Text: "Documents"})

	var rows [][]string
	for _, label := range labels {
		for _, d := range grouped[label] {
			rows = append(rows, []string{
				label,
				d.FileName,
				d.ContentType,
				d.HumanSize(),
				d.UploadedAt.Format("2006-01-02"),
			})
		}
	}
	doc.Components = append(doc.Components, Component{
		Type:    ComponentTable,
		Headers: []string{"Group", "Filename", "Type", "Size", "Uploaded"},
		Rows:    rows,
	})
}
