package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/mr1hm/go-route-safety/internal/models"
)

func setupTestDB(t *testing.T) *SQLiteDB {
	db, err := NewSQLiteDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	return db
}

func newRecord(id, session string, overall float64, level models.RiskLevel, at time.Time) *models.AssessmentRecord {
	return &models.AssessmentRecord{
		ID:          id,
		SessionID:   session,
		Origin:      "Los Angeles",
		Destination: "San Francisco",
		Factors:     models.DefaultFactors(),
		Assessment: models.RiskAssessment{
			OverallRisk: overall,
			RiskLevel:   level,
		},
		RouteCount: 3,
		CreatedAt:  at,
	}
}

func TestSQLiteDB_AddAndGetAssessment(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	record := newRecord("a1", "s1", 55.5, models.RiskLevelMedium, now)
	record.Factors.Fire = 0.8
	record.Assessment.TrafficRisk = 62.5
	record.RecommendedRoute = 2

	if err := db.Add(ctx, record); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	got, err := db.GetByID(ctx, "a1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.SessionID != "s1" || got.Origin != "Los Angeles" {
		t.Errorf("unexpected record %+v", got)
	}
	if got.Factors.Fire != 0.8 || got.Factors.Snow != models.DefaultFactor {
		t.Errorf("unexpected factors %+v", got.Factors)
	}
	if got.Assessment.OverallRisk != 55.5 || got.Assessment.TrafficRisk != 62.5 || got.Assessment.RiskLevel != models.RiskLevelMedium {
		t.Errorf("unexpected assessment %+v", got.Assessment)
	}
	if got.RecommendedRoute != 2 || got.RouteCount != 3 {
		t.Errorf("unexpected route fields %+v", got)
	}
	if !got.CreatedAt.Equal(now) {
		t.Errorf("expected created_at %v, got %v", now, got.CreatedAt)
	}
}

func TestSQLiteDB_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	_, err := db.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteDB_Exists(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()

	exists, err := db.Exists(ctx, "nonexistent")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("expected false for nonexistent ID")
	}

	db.Add(ctx, newRecord("exists_test", "s1", 10, models.RiskLevelLow, time.Now()))

	exists, err = db.Exists(ctx, "exists_test")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected true for existing ID")
	}
}

func TestSQLiteDB_AddDuplicate(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	if err := db.Add(ctx, newRecord("dup", "s1", 10, models.RiskLevelLow, time.Now())); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := db.Add(ctx, newRecord("dup", "s1", 20, models.RiskLevelLow, time.Now())); err == nil {
		t.Error("expected error for duplicate ID")
	}
}

func TestSQLiteDB_ListAssessments_WithFilters(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	records := []*models.AssessmentRecord{
		newRecord("low1", "s1", 15, models.RiskLevelLow, now.Add(-3*time.Hour)),
		newRecord("med1", "s1", 45, models.RiskLevelMedium, now.Add(-2*time.Hour)),
		newRecord("high1", "s2", 80, models.RiskLevelHigh, now.Add(-time.Hour)),
		newRecord("low2", "s2", 5, models.RiskLevelLow, now),
	}
	for _, r := range records {
		if err := db.Add(ctx, r); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	low := models.RiskLevelLow
	minRisk := 40.0
	since := now.Add(-90 * time.Minute)

	tests := []struct {
		name string
		opts Filter
		want []string
	}{
		{name: "no filter newest first", opts: Filter{}, want: []string{"low2", "high1", "med1", "low1"}},
		{name: "session", opts: Filter{SessionID: "s1"}, want: []string{"med1", "low1"}},
		{name: "risk level", opts: Filter{RiskLevel: &low}, want: []string{"low2", "low1"}},
		{name: "min overall risk", opts: Filter{MinOverallRisk: &minRisk}, want: []string{"high1", "med1"}},
		{name: "since", opts: Filter{Since: &since}, want: []string{"low2", "high1"}},
		{name: "limit", opts: Filter{Limit: 2}, want: []string{"low2", "high1"}},
		{name: "limit and offset", opts: Filter{Limit: 2, Offset: 1}, want: []string{"high1", "med1"}},
		{name: "combined", opts: Filter{SessionID: "s2", RiskLevel: &low}, want: []string{"low2"}},
		{name: "no match", opts: Filter{SessionID: "s3"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := db.ListAssessments(ctx, tt.opts)
			if err != nil {
				t.Fatalf("ListAssessments failed: %v", err)
			}
			if len(results) != len(tt.want) {
				t.Fatalf("expected %d results, got %d", len(tt.want), len(results))
			}
			for i, id := range tt.want {
				if results[i].ID != id {
					t.Errorf("result %d: expected %s, got %s", i, id, results[i].ID)
				}
			}
		})
	}
}

func TestNewSQLiteDB_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.db")

	db, err := NewSQLiteDB(path)
	if err != nil {
		t.Fatalf("NewSQLiteDB failed: %v", err)
	}
	defer db.Close()

	if err := db.Add(context.Background(), newRecord("f1", "s1", 1, models.RiskLevelLow, time.Now())); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
}
