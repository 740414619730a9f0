package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "medtracker/internal/errors"
	"medtracker/internal/model"
	"medtracker/internal/repository"
)

// CreateMedicineInput carries the fields of a new medicine. A nil Active
// means true.
type CreateMedicineInput struct {
	Name            string
	Dose            string
	TimeOfDay       string
	Notes           *string
	Active          *bool
	PrescriptionURL *string
}

// UpdateMedicineInput carries a partial update. Nil pointers and unset
// nullable fields are left untouched.
type UpdateMedicineInput struct {
	Name            *string
	Dose            *string
	TimeOfDay       *string
	Active          *bool
	Notes           model.NullableString
	PrescriptionURL model.NullableString
}

// fields converts the input to a column map for the repository.
func (in UpdateMedicineInput) fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Dose != nil {
		fields["dose"] = *in.Dose
	}
	if in.TimeOfDay != nil {
		fields["time_of_day"] = *in.TimeOfDay
	}
	if in.Active != nil {
		fields["active"] = *in.Active
	}
	if in.Notes.Set {
		fields["notes"] = in.Notes.Value
	}
	if in.PrescriptionURL.Set {
		fields["prescription_url"] = in.PrescriptionURL.Value
	}
	return fields
}

// MedicineService handles medicine operations.
type MedicineService interface {
	CreateMedicine(ctx context.Context, in CreateMedicineInput) (*model.Medicine, error)
	ListMedicines(ctx context.Context, timeOfDay string) ([]model.Medicine, error)
	GetMedicine(ctx context.Context, id uint) (*model.Medicine, error)
	UpdateMedicine(ctx context.Context, id uint, in UpdateMedicineInput) (*model.Medicine, error)
	DeleteMedicine(ctx context.Context, id uint) error
}

type medicineService struct {
	repo repository.MedicineRepository
}

// NewMedicineService creates a new medicine service.
func NewMedicineService(repo repository.MedicineRepository) MedicineService {
	return &medicineService{repo: repo}
}

// CreateMedicine stores a new medicine and returns it with its id.
func (s *medicineService) CreateMedicine(ctx context.Context, in CreateMedicineInput) (*model.Medicine, error) {
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	medicine := &model.Medicine{
		Name:            in.Name,
		Dose:            in.Dose,
		TimeOfDay:       in.TimeOfDay,
		Notes:           in.Notes,
		Active:          active,
		PrescriptionURL: in.PrescriptionURL,
	}
	if err := s.repo.Create(ctx, medicine); err != nil {
		return nil, fmt.Errorf("create medicine: %w", err)
	}
	return medicine, nil
}

// ListMedicines returns all medicines, or only those for timeOfDay when set.
func (s *medicineService) ListMedicines(ctx context.Context, timeOfDay string) ([]model.Medicine, error) {
	medicines, err := s.repo.List(ctx, timeOfDay)
	if err != nil {
		return nil, fmt.Errorf("list medicines: %w", err)
	}
	return medicines, nil
}

// GetMedicine retrieves a medicine by ID.
func (s *medicineService) GetMedicine(ctx context.Context, id uint) (*model.Medicine, error) {
	medicine, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "get medicine")
	}
	return medicine, nil
}

// UpdateMedicine applies the supplied fields only.
func (s *medicineService) UpdateMedicine(ctx context.Context, id uint, in UpdateMedicineInput) (*model.Medicine, error) {
	medicine, err := s.repo.Update(ctx, id, in.fields())
	if err != nil {
		return nil, notFoundOr(err, "update medicine")
	}
	return medicine, nil
}

// DeleteMedicine removes a medicine permanently.
func (s *medicineService) DeleteMedicine(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFoundOr(err, "delete medicine")
	}
	return nil
}

func notFoundOr(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrMedicineNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
