// Package history persists assessment records off the request path and
// publishes them to stream subscribers.
package history

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mr1hm/go-route-safety/internal/broadcast"
	"github.com/mr1hm/go-route-safety/internal/config"
	"github.com/mr1hm/go-route-safety/internal/models"
	"github.com/mr1hm/go-route-safety/internal/repository"
	"github.com/mr1hm/go-route-safety/internal/worker"
)

type Recorder struct {
	cfg         config.WorkerConfig
	repo        repository.AssessmentRepository
	broadcaster *broadcast.Broadcaster
	pool        *worker.WorkerPool

	mu      sync.RWMutex
	started bool
	stopped bool
}

// NewRecorder accepts a nil broadcaster when nothing streams records.
func NewRecorder(cfg config.WorkerConfig, repo repository.AssessmentRepository, broadcaster *broadcast.Broadcaster) *Recorder {
	return &Recorder{
		cfg:         cfg,
		repo:        repo,
		broadcaster: broadcaster,
	}
}

func (r *Recorder) Start(ctx context.Context) {
	r.pool = worker.NewWorkerPool("history", r.cfg.Count, r.cfg.BufferSize, r.process)
	r.pool.Start(ctx)

	r.mu.Lock()
	r.started = true
	r.mu.Unlock()

	slog.Info("assessment recorder started", "workers", r.cfg.Count)
}

func (r *Recorder) process(ctx context.Context, job worker.Job) error {
	record := job.(*models.AssessmentRecord)

	exists, err := r.repo.Exists(ctx, record.ID)
	if err != nil {
		return fmt.Errorf("error checking existence of %s: %w", record.ID, err)
	}
	if exists {
		return nil
	}

	if err := r.repo.Add(ctx, record); err != nil {
		return fmt.Errorf("error adding assessment %s: %w", record.ID, err)
	}

	if r.broadcaster != nil {
		r.broadcaster.Broadcast(record)
	}

	slog.Debug("recorded assessment", "id", record.ID, "session_id", record.SessionID, "risk_level", record.Assessment.RiskLevel)
	return nil
}

// Record queues the record without blocking. An ID and timestamp are assigned
// when missing. It returns false when the recorder is not running or its
// buffer is full.
func (r *Recorder) Record(record *models.AssessmentRecord) bool {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.started || r.stopped {
		return false
	}
	if !r.pool.TrySubmit(record) {
		slog.Warn("assessment history buffer full, dropping record", "id", record.ID, "session_id", record.SessionID)
		return false
	}
	return true
}

func (r *Recorder) Stop() {
	r.mu.Lock()
	if !r.started || r.stopped {
		r.mu.Unlock()
		return
	}
	r.stopped = true
	r.mu.Unlock()

	r.pool.Stop()
	slog.Info("assessment recorder stopped")
}
