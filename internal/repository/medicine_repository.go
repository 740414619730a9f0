package repository

import (
	"context"

	"gorm.io/gorm"

	"medtracker/internal/model"
)

// MedicineRepository defines medicine persistence operations.
type MedicineRepository interface {
	Create(ctx context.Context, medicine *model.Medicine) error
	List(ctx context.Context, timeOfDay string) ([]model.Medicine, error)
	FindByID(ctx context.Context, id uint) (*model.Medicine, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*model.Medicine, error)
	Delete(ctx context.Context, id uint) error
}

type medicineRepository struct {
	db *gorm.DB
}

// NewMedicineRepository creates a new medicine repository.
func NewMedicineRepository(db *gorm.DB) MedicineRepository {
	return &medicineRepository{db: db}
}

// Create inserts a medicine; the assigned id is written back into medicine.
func (r *medicineRepository) Create(ctx context.Context, medicine *model.Medicine) error {
	return r.db.WithContext(ctx).Create(medicine).Error
}

// List returns medicines in insertion order, optionally filtered by time of day.
func (r *medicineRepository) List(ctx context.Context, timeOfDay string) ([]model.Medicine, error) {
	medicines := make([]model.Medicine, 0)
	q := r.db.WithContext(ctx).Order("id asc")
	if timeOfDay != "" {
		q = q.Where("time_of_day = ?", timeOfDay)
	}
	if err := q.Find(&medicines).Error; err != nil {
		return nil, err
	}
	return medicines, nil
}

// FindByID finds a medicine by ID.
func (r *medicineRepository) FindByID(ctx context.Context, id uint) (*model.Medicine, error) {
	var medicine model.Medicine
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&medicine).Error; err != nil {
		return nil, err
	}
	return &medicine, nil
}

// Update sets only the given columns and returns the stored row.
// Keys are column names; a nil value writes NULL.
func (r *medicineRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*model.Medicine, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return existing, nil
	}

	res := r.db.WithContext(ctx).Model(&model.Medicine{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Deleted between the read and the write.
		if _, err := r.FindByID(ctx, id); err != nil {
			return nil, err
		}
	}
	return r.FindByID(ctx, id)
}

// Delete removes a medicine permanently.
func (r *medicineRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Medicine{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
