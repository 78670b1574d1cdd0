package repository

import (
	"database/sql"
	"fmt"

	"github.com/djcoder02-glitch/claim-portal-backend/internal/models"
	"go.uber.org/zap"
)

// PolicyTypeRepository handles policy type database operations
type PolicyTypeRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewPolicyTypeRepository creates a new policy type repository
func NewPolicyTypeRepository(db *sql.DB, logger *zap.Logger) *PolicyTypeRepository {
	return &PolicyTypeRepository{db: db, logger: logger}
}

// Create inserts a new policy type
func (r *PolicyTypeRepository) Create(pt *models.PolicyType) error {
	_, err := r.db.Exec(
		"INSERT INTO policy_types (id, name, description) VALUES (?, ?, ?)",
		pt.ID, pt.Name, pt.Description,
	)
	if err != nil {
		r.logger.Error("Failed to create policy type", zap.Error(err))
		return fmt.Errorf("failed to create policy type: %w", err)
	}
	return nil
}

// GetByID retrieves a policy type by ID
func (r *PolicyTypeRepository) GetByID(id string) (*models.PolicyType, error) {
	var pt models.PolicyType
	err := r.db.QueryRow(
		"SELECT id, name, description, created_at FROM policy_types WHERE id = ?", id,
	).Scan(&pt.ID, &pt.Name, &pt.Description, &pt.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get policy type: %w", err)
	}
	return &pt, nil
}

// List retrieves all policy types ordered by name
func (r *PolicyTypeRepository) List() ([]*models.PolicyType, error) {
	rows, err := r.db.Query("SELECT id, name, description, created_at FROM policy_types ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list policy types: %w", err)
	}
	defer rows.Close()

	var out []*models.PolicyType
	for rows.Next() {
		var pt models.PolicyType
		if err := rows.Scan(&pt.ID, &pt.Name, &pt.Description, &pt.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan policy type: %w", err)
		}
		out = append(out, &pt)
	}
	return out, rows.Err()
}

// Update modifies a policy type's name and description
func (r *PolicyTypeRepository) Update(pt *models.PolicyType) error {
	result, err := r.db.Exec(
		"UPDATE policy_types SET name = ?, description = ? WHERE id = ?",
		pt.Name, pt.Description, pt.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update policy type: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a policy type
func (r *PolicyTypeRepository) Delete(id string) error {
	result, err := r.db.Exec("DELETE FROM policy_types WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete policy type: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}
