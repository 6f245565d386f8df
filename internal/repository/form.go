package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kpa-platform/form-service/internal/models"
)

// ListFilter holds the optional predicates for listing KPA forms.
type ListFilter struct {
	// EmployeeID matches exactly when non-empty.
	EmployeeID string
	// Department matches as a case-insensitive substring when non-empty.
	Department string
}

// scope applies the filter predicates to a query. The count query and the
// page query both go through here, so the two can never diverge. All values
// are bound, never interpolated.
func (f ListFilter) scope(db *gorm.DB) *gorm.DB {
	if f.EmployeeID != "" {
		db = db.Where("employee_id = ?", f.EmployeeID)
	}
	if f.Department != "" {
		db = db.Where("LOWER(department) LIKE ?", "%"+strings.ToLower(f.Department)+"%")
	}
	return db
}

// FormRepository defines the interface for KPA form data operations.
type FormRepository interface {
	Create(ctx context.Context, form *models.KPAForm) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.KPAForm, error)
	List(ctx context.Context, filter ListFilter, page, limit int) ([]models.KPAForm, int64, error)
}

type formRepository struct {
	db *gorm.DB
}

// NewFormRepository creates a new FormRepository instance.
func NewFormRepository(db *gorm.DB) FormRepository {
	return &formRepository{db: db}
}

// Create persists a new immutable form row. The generated id and timestamps
// are written back into form.
func (r *formRepository) Create(ctx context.Context, form *models.KPAForm) error {
	if err := r.db.WithContext(ctx).Create(form).Error; err != nil {
		return fmt.Errorf("failed to create kpa form: %w", err)
	}
	return nil
}

// FindByID returns the form with the given id, or ErrNotFound.
func (r *formRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.KPAForm, error) {
	var form models.KPAForm
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&form).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find kpa form %s: %w", id, err)
	}
	return &form, nil
}

// List returns one page of forms matching the filter, most recent first,
// along with the total number of matching rows before pagination.
func (r *formRepository) List(ctx context.Context, filter ListFilter, page, limit int) ([]models.KPAForm, int64, error) {
	var total int64
	if err := filter.scope(r.db.WithContext(ctx).Model(&models.KPAForm{})).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count kpa forms: %w", err)
	}

	var forms []models.KPAForm
	offset := (page - 1) * limit
	err := filter.scope(r.db.WithContext(ctx).Model(&models.KPAForm{})).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&forms).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list kpa forms: %w", err)
	}

	return forms, total, nil
}
