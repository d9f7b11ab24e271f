package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tradeco/board/internal/core/domain"
	"github.com/tradeco/board/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubAccountRepo struct {
	mu        sync.Mutex
	accounts  map[string]*domain.Account // keyed by id
	seq       int
	insertErr error
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	clone.Shelf = append([]domain.ShelfEntry(nil), a.Shelf...)
	if a.Shelf != nil && clone.Shelf == nil {
		clone.Shelf = []domain.ShelfEntry{}
	}
	return &clone
}

func (r *stubAccountRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.accounts)
}

func (r *stubAccountRepo) FindByCredentials(_ context.Context, role domain.Role, identifier, hash string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Role == role && a.Identifier() == identifier && a.PasswordHash == hash {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindByID(_ context.Context, role domain.Role, id string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok || a.Role != role {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) ExistsByIdentifier(_ context.Context, role domain.Role, identifier string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Role == role && a.Identifier() == identifier {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubAccountRepo) Insert(_ context.Context, a *domain.Account) (*domain.Account, error) {
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	clone := cloneAccount(a)
	clone.ID = fmt.Sprintf("acc-%d", r.seq)
	r.accounts[clone.ID] = clone
	return cloneAccount(clone), nil
}

func (r *stubAccountRepo) Update(_ context.Context, role domain.Role, id string, u ports.AccountUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok || a.Role != role {
		return domain.ErrAccountNotFound
	}
	if u.Name != nil {
		a.Name = *u.Name
	}
	if u.Surname != nil {
		a.Surname = *u.Surname
	}
	if u.Email != nil {
		a.Email = *u.Email
	}
	if u.Bio != nil {
		a.Bio = *u.Bio
	}
	if u.DateOfBirth != nil {
		dob := *u.DateOfBirth
		a.DateOfBirth = &dob
	}
	if u.City != nil {
		a.Location.City = *u.City
	}
	if u.Country != nil {
		a.Location.Country = *u.Country
	}
	if u.PasswordHash != nil {
		a.PasswordHash = *u.PasswordHash
	}
	return nil
}

func (r *stubAccountRepo) Delete(_ context.Context, role domain.Role, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok || a.Role != role {
		return domain.ErrAccountNotFound
	}
	delete(r.accounts, id)
	return nil
}

func (r *stubAccountRepo) AddShelfEntry(_ context.Context, id string, e domain.ShelfEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok || a.Role != domain.RoleReader {
		return domain.ErrAccountNotFound
	}
	a.Shelf = append(a.Shelf, e)
	return nil
}

func (r *stubAccountRepo) RemoveShelfEntry(_ context.Context, id, entryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok || a.Role != domain.RoleReader {
		return domain.ErrAccountNotFound
	}
	for i, e := range a.Shelf {
		if e.ID == entryID {
			a.Shelf = append(a.Shelf[:i], a.Shelf[i+1:]...)
			return nil
		}
	}
	return domain.ErrShelfEntryNotFound
}

type stubSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
	ttls     map[string]time.Duration
	saveErr  error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.Session), ttls: make(map[string]time.Duration)}
}

func (s *stubSessionStore) Save(_ context.Context, sess *domain.Session, ttl time.Duration) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *sess
	s.sessions[sess.ID] = &clone
	s.ttls[sess.ID] = ttl
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	clone := *sess
	return &clone, nil
}

func (s *stubSessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	delete(s.ttls, id)
	return nil
}

func (s *stubSessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

type stubPublisher struct {
	mu     sync.Mutex
	events []domain.AccountEvent
}

func (p *stubPublisher) Publish(ev domain.AccountEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
}

func (p *stubPublisher) types() []domain.AccountEventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.AccountEventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type stubJobRepo struct {
	mu         sync.Mutex
	jobs       map[string]*domain.Job
	order      []string
	seq        int
	findErr    error
	releaseErr error
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{jobs: make(map[string]*domain.Job)}
}

func (r *stubJobRepo) Insert(_ context.Context, j *domain.Job) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	clone := *j
	clone.ID = fmt.Sprintf("job-%d", r.seq)
	r.jobs[clone.ID] = &clone
	r.order = append(r.order, clone.ID)
	out := clone
	return &out, nil
}

func (r *stubJobRepo) InsertMany(ctx context.Context, jobs []*domain.Job) error {
	for _, j := range jobs {
		if _, err := r.Insert(ctx, j); err != nil {
			return err
		}
	}
	return nil
}

func (r *stubJobRepo) Find(_ context.Context, f ports.JobFilter) ([]*domain.Job, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Job
	for _, id := range r.order {
		j, ok := r.jobs[id]
		if !ok {
			continue
		}
		if f.Status != "" && j.Status != f.Status {
			continue
		}
		if f.PostedBy != "" && j.PostedBy != f.PostedBy {
			continue
		}
		if f.ReservedBy != "" && j.ReservedBy != f.ReservedBy {
			continue
		}
		clone := *j
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubJobRepo) Reserve(_ context.Context, jobID, tradesmanID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[jobID]
	if !ok || j.Status != domain.JobAvailable {
		return domain.ErrJobUnavailable
	}
	j.Status = domain.JobReserved
	j.ReservedBy = tradesmanID
	return nil
}

func (r *stubJobRepo) ReleaseReservedBy(_ context.Context, tradesmanID string) (int64, error) {
	if r.releaseErr != nil {
		return 0, r.releaseErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, j := range r.jobs {
		if j.Status == domain.JobReserved && j.ReservedBy == tradesmanID {
			j.Status = domain.JobAvailable
			j.ReservedBy = ""
			n++
		}
	}
	return n, nil
}

func (r *stubJobRepo) DeleteAvailablePostedBy(_ context.Context, clientID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, j := range r.jobs {
		if j.Status == domain.JobAvailable && j.PostedBy == clientID {
			delete(r.jobs, id)
			n++
		}
	}
	return n, nil
}

type stubEventRepo struct {
	insertErr error
	inserted  []*domain.AccountEvent
}

func (r *stubEventRepo) InsertEvent(_ context.Context, e *domain.AccountEvent) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, e)
	return nil
}
