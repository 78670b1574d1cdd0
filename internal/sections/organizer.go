// Package sections owns the ordered list of form sections for a claim:
// default seeding, custom-section creation, reordering, collapse state and
// table management. The whole list persists as one JSON array inside
// form_data; every mutation rewrites the array through the field-value
// store's locked read-merge-write.
package sections

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/djcoder02-glitch/claim-portal-backend/internal/formdata"
	"github.com/djcoder02-glitch/claim-portal-backend/internal/models"
)

// Errors callers branch on
var (
	ErrSectionNotFound = errors.New("section not found")
	ErrStandardSection = errors.New("standard sections cannot be removed")
	ErrTemplateUnknown = errors.New("unknown section template")
)

// Organizer manages the section list for claims
type Organizer struct {
	store  *formdata.Store
	logger *zap.Logger
}

// NewOrganizer creates a section organizer over the field-value store
func NewOrganizer(store *formdata.Store, logger *zap.Logger) *Organizer {
	return &Organizer{store: store, logger: logger}
}

// DefaultSections returns the four seeded sections in render order
func DefaultSections() []models.Section {
	return []models.Section{
		{ID: models.SectionClaimDetails, Name: "Claim Details", OrderIndex: 1, ColorTag: models.ColorBlue},
		{ID: models.SectionInsured, Name: "Insured Details", OrderIndex: 2, ColorTag: models.ColorGreen},
		{ID: models.SectionSurvey, Name: "Survey & Loss", OrderIndex: 3, ColorTag: models.ColorAmber},
		{ID: models.SectionSettlement, Name: "Settlement", OrderIndex: 4, ColorTag: models.ColorPurple},
	}
}

// List returns the claim's sections in stored order, seeding the defaults
// when none have been persisted yet.
func (o *Organizer) List(claimID string) ([]models.Section, error) {
	fd, _, err := o.store.Get(claimID)
	if err != nil {
		return nil, err
	}
	if len(fd.Sections) == 0 {
		return DefaultSections(), nil
	}
	return fd.Sections, nil
}

// seed makes sure the document carries the default sections before any
// custom mutation lands on top of them.
func seed(fd *models.FormData) {
	if len(fd.Sections) == 0 {
		fd.Sections = DefaultSections()
	}
}

func maxOrderIndex(sections []models.Section) int {
	max := 0
	for _, s := range sections {
		if s.OrderIndex > max {
			max = s.OrderIndex
		}
	}
	return max
}

// CreateSection appends a new custom section after the current last one
func (o *Organizer) CreateSection(claimID, name, colorTag string) (*models.Section, error) {
	if name == "" {
		return nil, fmt.Errorf("section name is required")
	}
	if colorTag == "" {
		colorTag = models.ColorGray
	}

	section := models.Section{
		ID:       uuid.NewString(),
		Name:     name,
		ColorTag: colorTag,
		IsCustom: true,
	}

	err := o.store.Update(claimID, func(fd *models.FormData) error {
		seed(fd)
		section.OrderIndex = maxOrderIndex(fd.Sections) + 1
		fd.Sections = append(fd.Sections, section)
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.logger.Info("Section created",
		zap.String("claim_id", claimID),
		zap.String("section_id", section.ID))
	return &section, nil
}

// CreateSectionFromTemplate appends a new custom section seeded with the
// template's preset fields, copied in as fresh custom descriptors.
func (o *Organizer) CreateSectionFromTemplate(claimID, templateID, overrideName string) (*models.Section, error) {
	tpl, ok := templateByID(templateID)
	if !ok {
		return nil, ErrTemplateUnknown
	}

	name := tpl.Name
	if overrideName != "" {
		name = overrideName
	}

	section := models.Section{
		ID:       uuid.NewString(),
		Name:     name,
		ColorTag: tpl.ColorTag,
		IsCustom: true,
	}

	err := o.store.Update(claimID, func(fd *models.FormData) error {
		seed(fd)
		section.OrderIndex = maxOrderIndex(fd.Sections) + 1
		fd.Sections = append(fd.Sections, section)

		base := time.Now().UnixMilli()
		for i, preset := range tpl.Fields {
			desc := models.FieldDescriptor{
				Name:      fmt.Sprintf("%s%d", models.CustomFieldPrefix, base+int64(i)),
				Label:     preset.Label,
				Kind:      preset.Kind,
				Options:   preset.Options,
				IsCustom:  true,
				SectionID: section.ID,
			}
			fd.CustomFields = append(fd.CustomFields, desc)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &section, nil
}

// RemoveSection deletes a custom section. Field values of descriptors that
// pointed at it stay orphaned in form_data rather than cascading away.
func (o *Organizer) RemoveSection(claimID, sectionID string) error {
	return o.store.Update(claimID, func(fd *models.FormData) error {
		seed(fd)
		for i, s := range fd.Sections {
			if s.ID != sectionID {
				continue
			}
			if !s.IsCustom {
				return ErrStandardSection
			}
			fd.Sections = append(fd.Sections[:i], fd.Sections[i+1:]...)
			return nil
		}
		return ErrSectionNotFound
	})
}

// AddField attaches a fresh custom text field to a section
func (o *Organizer) AddField(claimID, sectionID string) (*models.FieldDescriptor, error) {
	return o.store.AddCustomField(claimID, sectionID)
}

// AddTable appends an empty grid of the given dimensions to a section
func (o *Organizer) AddTable(claimID, sectionID, name string, rows, cols int) (*models.SectionTable, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("table dimensions must be positive")
	}

	data := make([][]models.TableCell, rows)
	for i := range data {
		data[i] = make([]models.TableCell, cols)
	}

	table := models.SectionTable{
		ID:        uuid.NewString(),
		Name:      name,
		Rows:      rows,
		Cols:      cols,
		Data:      data,
		CreatedAt: time.Now().UTC(),
	}

	err := o.store.Update(claimID, func(fd *models.FormData) error {
		seed(fd)
		section := fd.SectionByID(sectionID)
		if section == nil {
			return ErrSectionNotFound
		}
		section.Tables = append(section.Tables, table)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &table, nil
}

// UpdateTable replaces a table's cell data, keeping its dimensions
func (o *Organizer) UpdateTable(claimID, sectionID, tableID string, data [][]models.TableCell) error {
	return o.store.Update(claimID, func(fd *models.FormData) error {
		section := fd.SectionByID(sectionID)
		if section == nil {
			return ErrSectionNotFound
		}
		for i := range section.Tables {
			if section.Tables[i].ID != tableID {
				continue
			}
			if len(data) != section.Tables[i].Rows {
				return fmt.Errorf("table data must have %d rows", section.Tables[i].Rows)
			}
			for _, row := range data {
				if len(row) != section.Tables[i].Cols {
					return fmt.Errorf("table data must have %d columns per row", section.Tables[i].Cols)
				}
			}
			section.Tables[i].Data = data
			return nil
		}
		return fmt.Errorf("table %q not found", tableID)
	})
}

// Reorder reassigns orderIndex 1..n following the given section id order.
// Reordering is a pure reassignment of the integer, not a structural move.
func (o *Organizer) Reorder(claimID string, orderedIDs []string) error {
	return o.store.Update(claimID, func(fd *models.FormData) error {
		seed(fd)
		if len(orderedIDs) != len(fd.Sections) {
			return fmt.Errorf("order must name all %d sections", len(fd.Sections))
		}
		for pos, id := range orderedIDs {
			section := fd.SectionByID(id)
			if section == nil {
				return ErrSectionNotFound
			}
			section.OrderIndex = pos + 1
		}
		return nil
	})
}

// ToggleCollapsed flips a section's open/closed state. Collapse is form-edit
// state, not report visibility.
func (o *Organizer) ToggleCollapsed(claimID, sectionID string) error {
	return o.store.Update(claimID, func(fd *models.FormData) error {
		seed(fd)
		section := fd.SectionByID(sectionID)
		if section == nil {
			return ErrSectionNotFound
		}
		section.Collapsed = !section.Collapsed
		return nil
	})
}

// SetSectionImage stores an image URL into one of the section's fixed slots
func (o *Organizer) SetSectionImage(claimID, sectionID string, slot int, url string) error {
	if slot < 0 || slot >= models.SectionImageSlots {
		return fmt.Errorf("image slot out of range: %d", slot)
	}
	return o.store.Update(claimID, func(fd *models.FormData) error {
		slots := fd.SectionImages[sectionID]
		if len(slots) < models.SectionImageSlots {
			grown := make([]string, models.SectionImageSlots)
			copy(grown, slots)
			slots = grown
		}
		slots[slot] = url
		fd.SectionImages[sectionID] = slots
		return nil
	})
}
