package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tradeco/board/internal/core/domain"
	"github.com/tradeco/board/internal/core/ports"
	"github.com/tradeco/board/internal/metrics"
)

// JobService serves the client and tradesman dashboards.
type JobService struct {
	jobs     ports.JobRepository
	accounts ports.AccountRepository
	log      zerolog.Logger
	nowFn    func() time.Time
}

func NewJobService(jobs ports.JobRepository, accounts ports.AccountRepository, log zerolog.Logger) *JobService {
	return &JobService{jobs: jobs, accounts: accounts, log: log, nowFn: time.Now}
}

func (s *JobService) TradesmanDashboard(ctx context.Context, tradesmanID string) (*ports.TradesmanDashboard, error) {
	account, err := s.accounts.FindByID(ctx, domain.RoleTradesman, tradesmanID)
	if err != nil {
		return nil, err
	}
	reserved, err := s.jobs.Find(ctx, ports.JobFilter{Status: domain.JobReserved, ReservedBy: tradesmanID})
	if err != nil {
		return nil, fmt.Errorf("tradesman dashboard: reserved: %w", err)
	}
	open, err := s.jobs.Find(ctx, ports.JobFilter{Status: domain.JobAvailable})
	if err != nil {
		return nil, fmt.Errorf("tradesman dashboard: open: %w", err)
	}
	return &ports.TradesmanDashboard{Account: account, Reserved: reserved, Open: open}, nil
}

func (s *JobService) ClientDashboard(ctx context.Context, clientID string) (*ports.ClientDashboard, error) {
	account, err := s.accounts.FindByID(ctx, domain.RoleClient, clientID)
	if err != nil {
		return nil, err
	}
	posted, err := s.jobs.Find(ctx, ports.JobFilter{PostedBy: clientID})
	if err != nil {
		return nil, fmt.Errorf("client dashboard: %w", err)
	}
	return &ports.ClientDashboard{Account: account, Posted: posted}, nil
}

// Post publishes a new available job on behalf of a client.
func (s *JobService) Post(ctx context.Context, clientID string, in ports.PostJobInput) (*domain.Job, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if in.Budget < 0 {
		return nil, fmt.Errorf("%w: budget must not be negative", domain.ErrInvalidInput)
	}

	job := &domain.Job{
		Title:       title,
		Location:    strings.TrimSpace(in.Location),
		Description: strings.TrimSpace(in.Description),
		Budget:      in.Budget,
		Status:      domain.JobAvailable,
		PostedBy:    clientID,
		CreatedAt:   s.nowFn().UTC(),
	}
	created, err := s.jobs.Insert(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("post job: %w", err)
	}
	s.log.Info().Str("job_id", created.ID).Str("client_id", clientID).Msg("job posted")
	return created, nil
}

// Reserve claims an available job for the tradesman.
func (s *JobService) Reserve(ctx context.Context, jobID, tradesmanID string) error {
	if strings.TrimSpace(jobID) == "" {
		return domain.ErrJobNotFound
	}
	if err := s.jobs.Reserve(ctx, jobID, tradesmanID); err != nil {
		s.log.Warn().Err(err).Str("job_id", jobID).Str("tradesman_id", tradesmanID).Msg("job not reserved")
		return err
	}
	metrics.JobsReservedTotal.Inc()
	s.log.Info().Str("job_id", jobID).Str("tradesman_id", tradesmanID).Msg("job reserved")
	return nil
}

// SeedDemo fills the board with sample jobs, three of them already reserved by tradesmanID.
func (s *JobService) SeedDemo(ctx context.Context, tradesmanID string) (int, error) {
	now := s.nowFn().UTC()
	jobs := make([]*domain.Job, 0, len(demoJobs))
	for i, d := range demoJobs {
		j := &domain.Job{
			Title:       d.title,
			Location:    d.location,
			Description: d.description,
			Budget:      d.budget,
			Status:      domain.JobAvailable,
			CreatedAt:   now,
		}
		if i < demoReservedCount {
			j.Status = domain.JobReserved
			j.ReservedBy = tradesmanID
		}
		jobs = append(jobs, j)
	}
	if err := s.jobs.InsertMany(ctx, jobs); err != nil {
		return 0, fmt.Errorf("seed demo jobs: %w", err)
	}
	return len(jobs), nil
}

const demoReservedCount = 3

var demoJobs = []struct {
	title, location, description string
	budget                       float64
}{
	{"Fix Wiring Issue", "123 Main Street", "Repair faulty wiring in a residential property.", 200},
	{"Install Outdoor Lighting", "555 Maple Drive", "Add motion-sensor floodlights around the garage.", 320},
	{"Replace Circuit Breaker", "101 Pine Road", "Swap out a tripping 40 A breaker in the main panel.", 250},
	{"Install New Lighting", "456 Elm Avenue", "Fit LED panels in a commercial office ceiling.", 300},
	{"Electrical Safety Inspection", "789 Oak Lane", "Full EICR for a 3-bed rental property.", 150},
	{"Upgrade Consumer Unit", "18 Cedar Close", "Replace old fuse box with 18-way RCBO consumer unit.", 600},
	{"Add EV Charger", "272 Birch Crescent", "Install 7 kW wall box and run 6 mm cable from meter.", 900},
	{"Garden Socket Install", "43 Willow Way", "Weatherproof twin socket on exterior brick wall.", 120},
	{"Smart Thermostat Wiring", "67 Poplar Street", "Add C-wire and mount Nest Learning Thermostat.", 180},
	{"PAT Testing - 30 Items", "89 Chestnut Court", "Portable appliance test for small office kit.", 90},
	{"Run New Ring Main", "12 Hazel Grove", "Second-fix sockets for loft conversion.", 550},
	{"Emergency Call-out", "3 Rowan Terrace", "No power in kitchen after kettle tripped MCB.", 75},
	{"Replace Outdoor Lantern", "221B Baker Street", "Swap broken PIR lantern with new LED unit.", 110},
}
