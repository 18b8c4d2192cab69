package repository

import (
	"context"
	"errors"
	"time"

	"github.com/mr1hm/go-route-safety/internal/models"
)

var ErrNotFound = errors.New("assessment not found")

type Filter struct {
	Limit          int
	Offset         int
	Since          *time.Time
	SessionID      string
	RiskLevel      *models.RiskLevel
	MinOverallRisk *float64 // overall_risk >= this value
}

type AssessmentRepository interface {
	Add(ctx context.Context, a *models.AssessmentRecord) error
	GetByID(ctx context.Context, id string) (*models.AssessmentRecord, error)
	Exists(ctx context.Context, id string) (bool, error)
	ListAssessments(ctx context.Context, opts Filter) ([]models.AssessmentRecord, error)
}
