// Package models contains data models for the KPA form service.
package models

import (
	"time"

	"github.com/google/uuid"
)

// KPAForm represents one Key Performance Area review record. Rows are
// immutable after creation; the score is computed once at insert time and
// never recomputed on read.
type KPAForm struct {
	ID                uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	EmployeeID        string    `json:"employee_id" gorm:"type:varchar(50);not null;index"`
	EmployeeName      string    `json:"employee_name" gorm:"type:varchar(100);not null"`
	Department        string    `json:"department" gorm:"type:varchar(100);not null"`
	Designation       string    `json:"designation" gorm:"type:varchar(100);not null"`
	PerformancePeriod string    `json:"performance_period" gorm:"type:varchar(50);not null"`
	KPATitle          string    `json:"kpa_title" gorm:"type:varchar(200);not null"`
	KPADescription    string    `json:"kpa_description" gorm:"type:text"`
	TargetValue       float64   `json:"target_value" gorm:"type:decimal(10,2);not null"`
	AchievedValue     float64   `json:"achieved_value" gorm:"type:decimal(10,2);not null"`
	Weightage         float64   `json:"weightage" gorm:"type:decimal(5,2);not null"`
	Score             *float64  `json:"score" gorm:"type:decimal(5,2)"`
	Remarks           *string   `json:"remarks" gorm:"type:text"`
	CreatedBy         uuid.UUID `json:"created_by" gorm:"type:uuid"`
	Creator           *User     `json:"-" gorm:"foreignKey:CreatedBy"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName returns the database table name for the KPAForm model.
func (KPAForm) TableName() string {
	return "kpa_forms"
}
