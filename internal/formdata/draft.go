package formdata

import (
	"github.com/djcoder02-glitch/claim-portal-backend/internal/models"
)

// Draft is one editing session's view of a claim's form data: the persisted
// values plus the set of field names edited since the last save. Pending
// tracking lives here; persistence goes through the Store.
type Draft struct {
	ClaimID        string
	Version        int64
	Values         map[string]models.FieldValue
	CustomFields   []models.FieldDescriptor
	HiddenFields   []string
	LabelOverrides map[string]string

	base    map[string]models.FieldValue
	pending map[string]bool
}

// LoadDraft deserializes the four logical parts of a claim's form_data blob
// and returns an editable draft. Legacy custom descriptors get their section
// assignment backfilled here.
func (s *Store) LoadDraft(claimID string) (*Draft, error) {
	claim, err := s.claims.GetByID(claimID)
	if err != nil {
		return nil, err
	}

	fd, err := models.ParseFormData(claim.FormData)
	if err != nil {
		return nil, err
	}
	MigrateLegacySectionIDs(fd)

	base := make(map[string]models.FieldValue, len(fd.Values))
	for k, v := range fd.Values {
		base[k] = v
	}

	return &Draft{
		ClaimID:        claimID,
		Version:        claim.Version,
		Values:         fd.Values,
		CustomFields:   fd.CustomFields,
		HiddenFields:   fd.HiddenFields,
		LabelOverrides: fd.FieldLabels,
		base:           base,
		pending:        make(map[string]bool),
	}, nil
}

// Patch sets a field's draft value, marking it pending when it differs from
// the last persisted value.
func (d *Draft) Patch(name string, value models.FieldValue) {
	d.Values[name] = value
	if d.base[name] == value {
		delete(d.pending, name)
		return
	}
	d.pending[name] = true
}

// IsPending reports whether the field holds an unsaved edit
func (d *Draft) IsPending(name string) bool {
	return d.pending[name]
}

// PendingFields returns the names of all unsaved edits
func (d *Draft) PendingFields() []string {
	out := make([]string, 0, len(d.pending))
	for name := range d.pending {
		out = append(out, name)
	}
	return out
}

// CommitField persists one pending field through the store. On success the
// pending mark clears and the persisted base advances; on failure the draft
// is left untouched so the user can retry.
func (s *Store) CommitDraftField(d *Draft, name string) error {
	value := d.Values[name]
	if err := s.CommitField(d.ClaimID, name, value); err != nil {
		return err
	}
	d.base[name] = value
	delete(d.pending, name)
	return nil
}
