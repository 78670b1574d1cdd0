package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/djcoder02-glitch/claim-portal-backend/internal/models"
	"go.uber.org/zap"
)

// Sentinel errors callers branch on
var (
	ErrNotFound        = errors.New("record not found")
	ErrVersionConflict = errors.New("version conflict")
)

// ClaimRepository handles claim database operations
type ClaimRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewClaimRepository creates a new claim repository
func NewClaimRepository(db *sql.DB, logger *zap.Logger) *ClaimRepository {
	return &ClaimRepository{db: db, logger: logger}
}

// Create inserts a new claim
func (r *ClaimRepository) Create(claim *models.Claim) error {
	query := `
		INSERT INTO claims (id, claim_number, policy_type_id, status, amount, form_data, version)
		VALUES (?, ?, ?, ?, ?, ?, 0)
	`
	_, err := r.db.Exec(query,
		claim.ID,
		claim.ClaimNumber,
		claim.PolicyTypeID,
		claim.Status,
		claim.Amount,
		claim.FormData,
	)
	if err != nil {
		r.logger.Error("Failed to create claim", zap.Error(err))
		return fmt.Errorf("failed to create claim: %w", err)
	}
	return nil
}

// GetByID retrieves a claim by ID
func (r *ClaimRepository) GetByID(id string) (*models.Claim, error) {
	query := `
		SELECT id, claim_number, policy_type_id, status, amount, form_data, version,
			created_at, updated_at
		FROM claims
		WHERE id = ?
	`
	var claim models.Claim
	err := r.db.QueryRow(query, id).Scan(
		&claim.ID,
		&claim.ClaimNumber,
		&claim.PolicyTypeID,
		&claim.Status,
		&claim.Amount,
		&claim.FormData,
		&claim.Version,
		&claim.CreatedAt,
		&claim.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get claim", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get claim: %w", err)
	}
	return &claim, nil
}

// ListFilter narrows List results
type ListFilter struct {
	Status       string
	PolicyTypeID string
	Limit        int
	Offset       int
}

// List retrieves claims matching the filter, newest first
func (r *ClaimRepository) List(filter ListFilter) ([]*models.Claim, error) {
	var conditions []string
	var args []interface{}

	if filter.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.PolicyTypeID != "" {
		conditions = append(conditions, "policy_type_id = ?")
		args = append(args, filter.PolicyTypeID)
	}

	query := `
		SELECT id, claim_number, policy_type_id, status, amount, form_data, version,
			created_at, updated_at
		FROM claims
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.Error("Failed to list claims", zap.Error(err))
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}
	defer rows.Close()

	var claims []*models.Claim
	for rows.Next() {
		var claim models.Claim
		if err := rows.Scan(
			&claim.ID,
			&claim.ClaimNumber,
			&claim.PolicyTypeID,
			&claim.Status,
			&claim.Amount,
			&claim.FormData,
			&claim.Version,
			&claim.CreatedAt,
			&claim.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan claim: %w", err)
		}
		claims = append(claims, &claim)
	}
	return claims, rows.Err()
}

// UpdateFormData writes a new form_data document, guarded by the version
// counter. Returns ErrVersionConflict when another writer got there first.
func (r *ClaimRepository) UpdateFormData(id, formData string, expectedVersion int64) error {
	query := `
		UPDATE claims
		SET form_data = ?, version = version + 1, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND version = ?
	`
	result, err := r.db.Exec(query, formData, id, expectedVersion)
	if err != nil {
		r.logger.Error("Failed to update form data", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("failed to update form data: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		// Either the claim is gone or the version moved under us.
		if _, getErr := r.GetByID(id); getErr != nil {
			return getErr
		}
		return ErrVersionConflict
	}
	return nil
}

// UpdateStatus moves a claim to a new lifecycle state
func (r *ClaimRepository) UpdateStatus(id, status string) error {
	result, err := r.db.Exec(
		"UPDATE claims SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		status, id,
	)
	if err != nil {
		r.logger.Error("Failed to update status", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("failed to update status: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateAmount sets the claim's monetary amount
func (r *ClaimRepository) UpdateAmount(id string, amount float64) error {
	result, err := r.db.Exec(
		"UPDATE claims SET amount = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		amount, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update amount: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a claim. Peripheral admin action; documents cascade.
func (r *ClaimRepository) Delete(id string) error {
	result, err := r.db.Exec("DELETE FROM claims WHERE id = ?", id)
	if err != nil {
		r.logger.Error("Failed to delete claim", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("failed to delete claim: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}
