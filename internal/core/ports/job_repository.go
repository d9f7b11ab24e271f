package ports

import (
	"context"

	"github.com/tradeco/board/internal/core/domain"
)

// JobFilter selects jobs by exact-match fields. Empty fields are ignored.
type JobFilter struct {
	Status     domain.JobStatus
	PostedBy   string
	ReservedBy string
}

// JobRepository persists job postings.
type JobRepository interface {
	Insert(ctx context.Context, job *domain.Job) (*domain.Job, error)
	InsertMany(ctx context.Context, jobs []*domain.Job) error
	Find(ctx context.Context, filter JobFilter) ([]*domain.Job, error)
	// Reserve flips an available job to reserved for tradesmanID in one conditional update.
	// Returns domain.ErrJobUnavailable when the job is missing or already reserved.
	Reserve(ctx context.Context, jobID, tradesmanID string) error
	// ReleaseReservedBy makes every job reserved by tradesmanID available again.
	ReleaseReservedBy(ctx context.Context, tradesmanID string) (int64, error)
	// DeleteAvailablePostedBy withdraws the client's jobs nobody has reserved yet.
	DeleteAvailablePostedBy(ctx context.Context, clientID string) (int64, error)
}
