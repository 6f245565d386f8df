package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/kpa-platform/form-service/internal/models"
	"github.com/kpa-platform/form-service/internal/repository"
)

// FormInput holds the submitted fields for a new KPA form.
type FormInput struct {
	EmployeeID        string
	EmployeeName      string
	Department        string
	Designation       string
	PerformancePeriod string
	KPATitle          string
	KPADescription    string
	TargetValue       float64
	AchievedValue     float64
	Weightage         float64
	Remarks           *string
}

// FormService defines KPA form operations.
type FormService interface {
	Create(ctx context.Context, input FormInput, creatorID uuid.UUID) (*models.KPAForm, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.KPAForm, error)
	List(ctx context.Context, filter repository.ListFilter, page, limit int) ([]models.KPAForm, int64, error)
}

type formService struct {
	formRepo repository.FormRepository
}

// NewFormService creates a new FormService instance.
func NewFormService(formRepo repository.FormRepository) FormService {
	return &formService{formRepo: formRepo}
}

// Create computes the score for the submitted metrics and persists the form
// as a new immutable row owned by creatorID.
func (s *formService) Create(ctx context.Context, input FormInput, creatorID uuid.UUID) (*models.KPAForm, error) {
	score, err := Score(input.TargetValue, input.AchievedValue, input.Weightage)
	if err != nil {
		return nil, err
	}

	form := models.KPAForm{
		EmployeeID:        input.EmployeeID,
		EmployeeName:      input.EmployeeName,
		Department:        input.Department,
		Designation:       input.Designation,
		PerformancePeriod: input.PerformancePeriod,
		KPATitle:          input.KPATitle,
		KPADescription:    input.KPADescription,
		TargetValue:       input.TargetValue,
		AchievedValue:     input.AchievedValue,
		Weightage:         input.Weightage,
		Score:             &score,
		Remarks:           input.Remarks,
		CreatedBy:         creatorID,
	}

	if err := s.formRepo.Create(ctx, &form); err != nil {
		return nil, err
	}
	return &form, nil
}

func (s *formService) GetByID(ctx context.Context, id uuid.UUID) (*models.KPAForm, error) {
	return s.formRepo.FindByID(ctx, id)
}

func (s *formService) List(ctx context.Context, filter repository.ListFilter, page, limit int) ([]models.KPAForm, int64, error) {
	return s.formRepo.List(ctx, filter, page, limit)
}
