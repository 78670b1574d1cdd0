// Package storage keeps uploaded claim documents and section images on the
// local filesystem, laid out per claim. Paths are validated against the base
// directory so request-supplied names cannot traverse out of it.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// ObjectStorage is the surface handlers upload through
type ObjectStorage interface {
	SaveDocument(claimID, fileName string, content []byte) (string, error)
	SaveSectionImage(claimID, sectionID string, slot int, fileName string, content []byte) (string, error)
	Read(storedPath string) ([]byte, error)
	Delete(storedPath string) error
	AbsolutePath(storedPath string) (string, error)
}

// LocalStorage implements ObjectStorage on the local filesystem
type LocalStorage struct {
	baseDir string
	logger  *zap.Logger
}

// NewLocalStorage creates storage rooted at baseDir
func NewLocalStorage(baseDir string, logger *zap.Logger) (*LocalStorage, error) {
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &LocalStorage{baseDir: abs, logger: logger}, nil
}

// validatePath rejects traversal outside the base directory
func (s *LocalStorage) validatePath(fullPath string) error {
	abs, err := filepath.Abs(fullPath)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}
	if !strings.HasPrefix(abs, s.baseDir+string(os.PathSeparator)) {
		return fmt.Errorf("path escapes storage directory: %s", fullPath)
	}
	return nil
}

func sanitizeFileName(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "..", "")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}

func (s *LocalStorage) write(fullPath string, content []byte) error {
	if err := s.validatePath(fullPath); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(fullPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// SaveDocument stores an uploaded claim document and returns its stored path
// relative to the base directory.
func (s *LocalStorage) SaveDocument(claimID, fileName string, content []byte) (string, error) {
	rel := filepath.Join("claims", claimID, "documents", sanitizeFileName(fileName))
	full := filepath.Join(s.baseDir, rel)
	if err := s.write(full, content); err != nil {
		s.logger.Error("Failed to save document",
			zap.String("claim_id", claimID),
			zap.String("file", fileName),
			zap.Error(err))
		return "", err
	}
	s.logger.Info("Document saved",
		zap.String("claim_id", claimID),
		zap.String("path", rel),
		zap.Int("size", len(content)))
	return rel, nil
}

// SaveSectionImage stores one of a section's image slots and returns the
// stored path.
func (s *LocalStorage) SaveSectionImage(claimID, sectionID string, slot int, fileName string, content []byte) (string, error) {
	name := fmt.Sprintf("slot%d_%s", slot, sanitizeFileName(fileName))
	rel := filepath.Join("claims", claimID, "images", sectionID, name)
	full := filepath.Join(s.baseDir, rel)
	if err := s.write(full, content); err != nil {
		return "", err
	}
	return rel, nil
}

// Read loads a stored object by its relative path
func (s *LocalStorage) Read(storedPath string) ([]byte, error) {
	full := filepath.Join(s.baseDir, storedPath)
	if err := s.validatePath(full); err != nil {
		return nil, err
	}
	content, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("failed to read stored file: %w", err)
	}
	return content, nil
}

// Delete removes a stored object
func (s *LocalStorage) Delete(storedPath string) error {
	full := filepath.Join(s.baseDir, storedPath)
	if err := s.validatePath(full); err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete stored file: %w", err)
	}
	return nil
}

// AbsolutePath resolves a stored path for local consumers such as the PDF
// extractor.
func (s *LocalStorage) AbsolutePath(storedPath string) (string, error) {
	full := filepath.Join(s.baseDir, storedPath)
	if err := s.validatePath(full); err != nil {
		return "", err
	}
	return full, nil
}
