package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mr1hm/go-route-safety/internal/models"
)

const assessmentColumns = `id, session_id, origin, destination,
	snow_factor, fire_factor, rain_factor,
	overall_risk, snow_risk, rain_risk, fire_risk, traffic_risk, risk_level,
	recommended_route, route_count, created_at`

func (s *SQLiteDB) Add(ctx context.Context, a *models.AssessmentRecord) error {
	query := `INSERT INTO assessments (` + assessmentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		a.ID, a.SessionID, a.Origin, a.Destination,
		a.Factors.Snow, a.Factors.Fire, a.Factors.Rain,
		a.Assessment.OverallRisk, a.Assessment.SnowRisk, a.Assessment.RainRisk,
		a.Assessment.FireRisk, a.Assessment.TrafficRisk, string(a.Assessment.RiskLevel),
		a.RecommendedRoute, a.RouteCount, a.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("error inserting assessment %s: %w", a.ID, err)
	}
	return nil
}

func (s *SQLiteDB) GetByID(ctx context.Context, id string) (*models.AssessmentRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+assessmentColumns+` FROM assessments WHERE id = ?`, id)

	a, err := scanAssessment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error reading assessment %s: %w", id, err)
	}
	return a, nil
}

func (s *SQLiteDB) Exists(ctx context.Context, id string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM assessments WHERE id = ?`, id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("error checking assessment %s: %w", id, err)
	}
	return n > 0, nil
}

// ListAssessments returns matching records, newest first.
func (s *SQLiteDB) ListAssessments(ctx context.Context, opts Filter) ([]models.AssessmentRecord, error) {
	var (
		where []string
		args  []any
	)

	if opts.SessionID != "" {
		where = append(where, "session_id = ?")
		args = append(args, opts.SessionID)
	}
	if opts.RiskLevel != nil {
		where = append(where, "risk_level = ?")
		args = append(args, string(*opts.RiskLevel))
	}
	if opts.MinOverallRisk != nil {
		where = append(where, "overall_risk >= ?")
		args = append(args, *opts.MinOverallRisk)
	}
	if opts.Since != nil {
		where = append(where, "created_at >= ?")
		args = append(args, opts.Since.UnixNano())
	}

	query := `SELECT ` + assessmentColumns + ` FROM assessments`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC"

	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
		if opts.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, opts.Offset)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing assessments: %w", err)
	}
	defer rows.Close()

	results := []models.AssessmentRecord{}
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning assessment: %w", err)
		}
		results = append(results, *a)
	}
	return results, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAssessment(row scanner) (*models.AssessmentRecord, error) {
	var (
		a         models.AssessmentRecord
		level     string
		createdAt int64
	)
	err := row.Scan(
		&a.ID, &a.SessionID, &a.Origin, &a.Destination,
		&a.Factors.Snow, &a.Factors.Fire, &a.Factors.Rain,
		&a.Assessment.OverallRisk, &a.Assessment.SnowRisk, &a.Assessment.RainRisk,
		&a.Assessment.FireRisk, &a.Assessment.TrafficRisk, &level,
		&a.RecommendedRoute, &a.RouteCount, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	a.Assessment.RiskLevel = models.RiskLevel(level)
	a.CreatedAt = time.Unix(0, createdAt).UTC()
	return &a, nil
}
