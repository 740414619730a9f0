package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	apperrors "medtracker/internal/errors"
	"medtracker/internal/repository"
	"medtracker/internal/storage"
)

// PrescriptionURLPrefix is prepended to stored names in prescription_url.
const PrescriptionURLPrefix = "prescriptions/"

// UploadInput is one uploaded prescription image.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// PrescriptionService stores and serves prescription images.
type PrescriptionService interface {
	Upload(ctx context.Context, medicineID uint, in UploadInput) (string, error)
	Open(ctx context.Context, filename string) (io.ReadCloser, *storage.ObjectInfo, error)
}

type prescriptionService struct {
	repo  repository.MedicineRepository
	store storage.Store
}

// NewPrescriptionService creates a new prescription service.
func NewPrescriptionService(repo repository.MedicineRepository, store storage.Store) PrescriptionService {
	return &prescriptionService{repo: repo, store: store}
}

// StoredName derives the object name for an upload: "<id>_<base name>".
func StoredName(medicineID uint, filename string) (string, error) {
	base := cleanName(filename)
	if base == "" {
		return "", apperrors.ErrInvalidFilename
	}
	return fmt.Sprintf("%d_%s", medicineID, base), nil
}

// Upload writes the image and points the medicine's prescription_url at it.
// It returns the new prescription_url.
func (s *prescriptionService) Upload(ctx context.Context, medicineID uint, in UploadInput) (string, error) {
	if _, err := s.repo.FindByID(ctx, medicineID); err != nil {
		return "", notFoundOr(err, "find medicine")
	}

	name, err := StoredName(medicineID, in.Filename)
	if err != nil {
		return "", err
	}

	if err := s.store.Save(ctx, name, in.Body, in.Size, in.ContentType); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUploadFailed, err)
	}

	url := PrescriptionURLPrefix + name
	if _, err := s.repo.Update(ctx, medicineID, map[string]interface{}{"prescription_url": url}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrMedicineNotFound
		}
		return "", fmt.Errorf("%w: %v", apperrors.ErrUploadFailed, err)
	}
	return url, nil
}

// Open returns a stored image by file name.
func (s *prescriptionService) Open(ctx context.Context, filename string) (io.ReadCloser, *storage.ObjectInfo, error) {
	name := cleanName(filename)
	if name == "" {
		return nil, nil, apperrors.ErrPrescriptionNotFound
	}
	rc, info, err := s.store.Open(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, nil, apperrors.ErrPrescriptionNotFound
		}
		return nil, nil, fmt.Errorf("open prescription: %w", err)
	}
	return rc, info, nil
}

// cleanName strips any directory part so names stay inside the store.
func cleanName(filename string) string {
	name := filepath.Base(strings.ReplaceAll(strings.TrimSpace(filename), "\\", "/"))
	if name == "." || name == "/" || name == ".." {
		return ""
	}
	return name
}
