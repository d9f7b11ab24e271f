package ports

import (
	"context"

	"github.com/tradeco/board/internal/core/domain"
)

// PostJobInput carries a client's job posting form.
type PostJobInput struct {
	Title       string
	Location    string
	Description string
	Budget      float64
}

// TradesmanDashboard is what a tradesman sees after login.
type TradesmanDashboard struct {
	Account  *domain.Account
	Reserved []*domain.Job
	Open     []*domain.Job
}

// ClientDashboard is what a client sees after login.
type ClientDashboard struct {
	Account *domain.Account
	Posted  []*domain.Job
}

// JobService drives the job board.
type JobService interface {
	TradesmanDashboard(ctx context.Context, tradesmanID string) (*TradesmanDashboard, error)
	ClientDashboard(ctx context.Context, clientID string) (*ClientDashboard, error)
	Post(ctx context.Context, clientID string, input PostJobInput) (*domain.Job, error)
	Reserve(ctx context.Context, jobID, tradesmanID string) error
	SeedDemo(ctx context.Context, tradesmanID string) (int, error)
}
