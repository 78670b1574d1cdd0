// Package formdata is the field-value store: it owns all reads and writes of
// a claim's form_data document and its metadata side-tables. Writes for one
// claim are serialized through a per-claim mutex held across the whole
// read-merge-write, so two commits can never race on a stale base document.
// The version counter on the claims row is a second guard at the storage
// layer.
package formdata

import (
	"fmt"
	"sync"
	"time"

	"github.com/djcoder02-glitch/claim-portal-backend/internal/models"
	"go.uber.org/zap"
)

// ClaimStore is the repository surface the store needs
type ClaimStore interface {
	GetByID(id string) (*models.Claim, error)
	UpdateFormData(id, formData string, expectedVersion int64) error
}

// Store reads and writes claim form_data documents
type Store struct {
	claims ClaimStore
	logger *zap.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore creates a new field-value store
func NewStore(claims ClaimStore, logger *zap.Logger) *Store {
	return &Store{
		claims: claims,
		logger: logger,
		locks:  make(map[string]*sync.Mutex),
	}
}

// claimLock returns the mutex serializing writes for one claim
func (s *Store) claimLock(claimID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[claimID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[claimID] = l
	}
	return l
}

// Update runs a read-merge-write cycle for one claim under its lock: the
// stored document is re-read, fn mutates it, and the result is written back
// guarded by the version read. All higher-level mutations go through here.
func (s *Store) Update(claimID string, fn func(*models.FormData) error) error {
	lock := s.claimLock(claimID)
	lock.Lock()
	defer lock.Unlock()

	claim, err := s.claims.GetByID(claimID)
	if err != nil {
		return err
	}

	fd, err := models.ParseFormData(claim.FormData)
	if err != nil {
		return err
	}
	MigrateLegacySectionIDs(fd)

	if err := fn(fd); err != nil {
		return err
	}

	encoded, err := fd.Encode()
	if err != nil {
		return err
	}

	if err := s.claims.UpdateFormData(claimID, encoded, claim.Version); err != nil {
		s.logger.Error("Failed to persist form data",
			zap.String("claim_id", claimID),
			zap.Error(err))
		return err
	}
	return nil
}

// Get returns the current stored document and its version, read-only
func (s *Store) Get(claimID string) (*models.FormData, int64, error) {
	claim, err := s.claims.GetByID(claimID)
	if err != nil {
		return nil, 0, err
	}
	fd, err := models.ParseFormData(claim.FormData)
	if err != nil {
		return nil, 0, err
	}
	MigrateLegacySectionIDs(fd)
	return fd, claim.Version, nil
}

// CommitField persists a single field's value merged with the current stored
// document, preserving every other field's persisted value.
func (s *Store) CommitField(claimID, name string, value models.FieldValue) error {
	return s.Update(claimID, func(fd *models.FormData) error {
		fd.Values[name] = value
		return nil
	})
}

// CommitAll persists the full set of non-custom-prefixed field values. Used
// on whole-form submission; custom fields save individually.
func (s *Store) CommitAll(claimID string, values map[string]models.FieldValue) error {
	return s.Update(claimID, func(fd *models.FormData) error {
		for name, v := range values {
			if models.IsCustomFieldName(name) {
				continue
			}
			fd.Values[name] = v
		}
		return nil
	})
}

// HideField adds a field to the hidden set. Idempotent; the stored value is
// untouched.
func (s *Store) HideField(claimID, name string) error {
	return s.Update(claimID, func(fd *models.FormData) error {
		fd.Hide(name)
		return nil
	})
}

// UnhideField removes a field from the hidden set
func (s *Store) UnhideField(claimID, name string) error {
	return s.Update(claimID, func(fd *models.FormData) error {
		fd.Unhide(name)
		return nil
	})
}

// AddCustomField creates a fresh runtime field descriptor attached to the
// given section and persists it.
func (s *Store) AddCustomField(claimID, sectionID string) (*models.FieldDescriptor, error) {
	desc := models.FieldDescriptor{
		Name:      newCustomFieldName(),
		Label:     "New Field",
		Kind:      models.FieldKindText,
		IsCustom:  true,
		SectionID: sectionID,
	}

	err := s.Update(claimID, func(fd *models.FormData) error {
		for fd.CustomFieldByName(desc.Name) != nil {
			desc.Name = nextCustomFieldName(desc.Name)
		}
		fd.CustomFields = append(fd.CustomFields, desc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &desc, nil
}

// RemoveCustomField deletes a custom descriptor along with its stored value,
// hidden-set entry and label override.
func (s *Store) RemoveCustomField(claimID, name string) error {
	return s.Update(claimID, func(fd *models.FormData) error {
		found := false
		for i, cf := range fd.CustomFields {
			if cf.Name == name {
				fd.CustomFields = append(fd.CustomFields[:i], fd.CustomFields[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("custom field %q not found", name)
		}
		delete(fd.Values, name)
		delete(fd.FieldLabels, name)
		fd.Unhide(name)
		return nil
	})
}

// RelabelField records a display-label override for a field without touching
// its descriptor.
func (s *Store) RelabelField(claimID, name, newLabel string) error {
	return s.Update(claimID, func(fd *models.FormData) error {
		fd.FieldLabels[name] = newLabel
		return nil
	})
}

func newCustomFieldName() string {
	return fmt.Sprintf("%s%d", models.CustomFieldPrefix, time.Now().UnixMilli())
}

func nextCustomFieldName(name string) string {
	var ts int64
	if _, err := fmt.Sscanf(name, models.CustomFieldPrefix+"%d", &ts); err != nil {
		ts = time.Now().UnixMilli()
	}
	return fmt.Sprintf("%s%d", models.CustomFieldPrefix, ts+1)
}
