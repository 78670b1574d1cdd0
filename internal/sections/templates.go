package sections

import "github.com/djcoder02-glitch/claim-portal-backend/internal/models"

// PresetField is one field blueprint inside a section template. Creating a
// section from a template copies these in as fresh custom descriptors with
// generated names.
type PresetField struct {
	Label   string
	Kind    models.FieldKind
	Options []string
}

// Template is a reusable section blueprint
type Template struct {
	ID       string
	Name     string
	ColorTag string
	Fields   []PresetField
}

var templates = []Template{
	{
		ID:       "police_report",
		Name:     "Police Report",
		ColorTag: models.ColorRed,
		Fields: []PresetField{
			{Label: "Police Station", Kind: models.FieldKindText},
			{Label: "FIR Number", Kind: models.FieldKindText},
			{Label: "FIR Date", Kind: models.FieldKindDate},
			{Label: "Investigating Officer", Kind: models.FieldKindText},
		},
	},
	{
		ID:       "witness_details",
		Name:     "Witness Details",
		ColorTag: models.ColorGreen,
		Fields: []PresetField{
			{Label: "Witness Name", Kind: models.FieldKindText},
			{Label: "Contact Number", Kind: models.FieldKindText},
			{Label: "Statement", Kind: models.FieldKindMultiline},
		},
	},
	{
		ID:       "third_party",
		Name:     "Third Party",
		ColorTag: models.ColorAmber,
		Fields: []PresetField{
			{Label: "Third Party Name", Kind: models.FieldKindText},
			{Label: "Third Party Insurer", Kind: models.FieldKindText},
			{Label: "Liability Admitted", Kind: models.FieldKindBoolean},
			{Label: "Notes", Kind: models.FieldKindMultiline},
		},
	},
	{
		ID:       "repair_estimate",
		Name:     "Repair Estimate",
		ColorTag: models.ColorBlue,
		Fields: []PresetField{
			{Label: "Workshop Name", Kind: models.FieldKindText},
			{Label: "Estimate Date", Kind: models.FieldKindDate},
			{Label: "Estimate Amount", Kind: models.FieldKindNumber},
			{Label: "Approval Status", Kind: models.FieldKindSelect, Options: []string{"Pending", "Approved", "Revised"}},
		},
	},
}

// Templates returns all available section templates
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

func templateByID(id string) (Template, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}
