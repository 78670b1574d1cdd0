package repository

import (
	"database/sql"
	"fmt"

	"github.com/djcoder02-glitch/claim-portal-backend/internal/models"
	"go.uber.org/zap"
)

// DocumentRepository handles uploaded-document database operations
type DocumentRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *sql.DB, logger *zap.Logger) *DocumentRepository {
	return &DocumentRepository{db: db, logger: logger}
}

// Create inserts a new document record
func (r *DocumentRepository) Create(doc *models.Document) error {
	query := `
		INSERT INTO documents (id, claim_id, field_label, file_name, content_type,
			size_bytes, storage_path, extracted_text)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		doc.ID,
		doc.ClaimID,
		doc.FieldLabel,
		doc.FileName,
		doc.ContentType,
		doc.SizeBytes,
		doc.StoragePath,
		doc.ExtractedText,
	)
	if err != nil {
		r.logger.Error("Failed to create document", zap.Error(err))
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

// GetByID retrieves a document by ID
func (r *DocumentRepository) GetByID(id string) (*models.Document, error) {
	query := `
		SELECT id, claim_id, field_label, file_name, content_type, size_bytes,
			storage_path, extracted_text, uploaded_at
		FROM documents WHERE id = ?
	`
	var doc models.Document
	err := r.db.QueryRow(query, id).Scan(
		&doc.ID, &doc.ClaimID, &doc.FieldLabel, &doc.FileName, &doc.ContentType,
		&doc.SizeBytes, &doc.StoragePath, &doc.ExtractedText, &doc.UploadedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return &doc, nil
}

// ListByClaim retrieves all documents for a claim in upload order
func (r *DocumentRepository) ListByClaim(claimID string) ([]*models.Document, error) {
	query := `
		SELECT id, claim_id, field_label, file_name, content_type, size_bytes,
			storage_path, extracted_text, uploaded_at
		FROM documents WHERE claim_id = ? ORDER BY uploaded_at
	`
	rows, err := r.db.Query(query, claimID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []*models.Document
	for rows.Next() {
		var doc models.Document
		if err := rows.Scan(
			&doc.ID, &doc.ClaimID, &doc.FieldLabel, &doc.FileName, &doc.ContentType,
			&doc.SizeBytes, &doc.StoragePath, &doc.ExtractedText, &doc.UploadedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, &doc)
	}
	return docs, rows.Err()
}

// Delete removes a document record
func (r *DocumentRepository) Delete(id string) error {
	result, err := r.db.Exec("DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}
