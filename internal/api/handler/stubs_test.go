package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/tradeco/board/internal/api/middleware"
	"github.com/tradeco/board/internal/api/view"
	"github.com/tradeco/board/internal/core/domain"
	"github.com/tradeco/board/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.Account, *ports.IssuedSession, error)
	loginFn    func(ctx context.Context, role domain.Role, identifier, password string, remember bool) (*domain.Account, *ports.IssuedSession, error)
	loggedOut  []string
}

func (s *stubAuthService) Verify(context.Context, domain.Role, string, string) (*domain.Account, error) {
	return nil, domain.ErrAccountNotFound
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Account, *ports.IssuedSession, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, role domain.Role, identifier, password string, remember bool) (*domain.Account, *ports.IssuedSession, error) {
	return s.loginFn(ctx, role, identifier, password, remember)
}

func (s *stubAuthService) Logout(_ context.Context, token string) error {
	s.loggedOut = append(s.loggedOut, token)
	return nil
}

type stubProfileService struct {
	updateFn         func(ctx context.Context, p *domain.Session, in ports.UpdateProfileInput) (*domain.Account, error)
	changePasswordFn func(ctx context.Context, p *domain.Session, old, new, confirm string) error
	deleteFn         func(ctx context.Context, p *domain.Session, password string) error
}

func (s *stubProfileService) Get(context.Context, *domain.Session) (*domain.Account, error) {
	return nil, domain.ErrAccountNotFound
}

func (s *stubProfileService) Update(ctx context.Context, p *domain.Session, in ports.UpdateProfileInput) (*domain.Account, error) {
	return s.updateFn(ctx, p, in)
}

func (s *stubProfileService) ChangePassword(ctx context.Context, p *domain.Session, old, new, confirm string) error {
	return s.changePasswordFn(ctx, p, old, new, confirm)
}

func (s *stubProfileService) Delete(ctx context.Context, p *domain.Session, password string) error {
	return s.deleteFn(ctx, p, password)
}

// stubJobService serves fixed dashboards and records calls.
type stubJobService struct {
	posted     []ports.PostJobInput
	reserveErr error
	reserved   []string
	postErr    error
}

func (s *stubJobService) TradesmanDashboard(_ context.Context, id string) (*ports.TradesmanDashboard, error) {
	return &ports.TradesmanDashboard{
		Account: &domain.Account{ID: id, Role: domain.RoleTradesman, Email: "tom@example.com", Name: "Tom"},
		Open:    []*domain.Job{{ID: "job-1", Title: "Fix Wiring Issue", Status: domain.JobAvailable, Budget: 200}},
	}, nil
}

func (s *stubJobService) ClientDashboard(_ context.Context, id string) (*ports.ClientDashboard, error) {
	return &ports.ClientDashboard{
		Account: &domain.Account{ID: id, Role: domain.RoleClient, Email: "cara@example.com", Name: "Cara"},
	}, nil
}

func (s *stubJobService) Post(_ context.Context, _ string, in ports.PostJobInput) (*domain.Job, error) {
	if s.postErr != nil {
		return nil, s.postErr
	}
	s.posted = append(s.posted, in)
	return &domain.Job{ID: "job-9", Title: in.Title, Status: domain.JobAvailable}, nil
}

func (s *stubJobService) Reserve(_ context.Context, jobID, _ string) error {
	if s.reserveErr != nil {
		return s.reserveErr
	}
	s.reserved = append(s.reserved, jobID)
	return nil
}

func (s *stubJobService) SeedDemo(context.Context, string) (int, error) { return 13, nil }

type stubShelfService struct {
	added     []string
	removeErr error
}

func (s *stubShelfService) Shelf(_ context.Context, id string) (*domain.Account, error) {
	return &domain.Account{ID: id, Role: domain.RoleReader, Username: "alice", Shelf: []domain.ShelfEntry{}}, nil
}

func (s *stubShelfService) Add(_ context.Context, _ string, title, author string) (*domain.ShelfEntry, error) {
	s.added = append(s.added, title)
	return &domain.ShelfEntry{ID: "e1", Title: title, Author: author}, nil
}

func (s *stubShelfService) Remove(context.Context, string, string) error {
	return s.removeErr
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	r, err := view.New()
	if err != nil {
		t.Fatalf("load templates: %v", err)
	}
	e := echo.New()
	e.Renderer = r
	e.Validator = NewValidator()
	return e
}

func formContext(e *echo.Echo, method, path string, values url.Values) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if values != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(values.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func signedIn(c echo.Context, role domain.Role) *domain.Session {
	p := &domain.Session{ID: "sess-1", AccountID: "acc-1", Role: role, Identifier: "someone"}
	middleware.SetPrincipal(c, p, "token-1")
	return p
}

func cookieFrom(rec *httptest.ResponseRecorder) *http.Cookie {
	res := http.Response{Header: rec.Header()}
	for _, ck := range res.Cookies() {
		if ck.Name == middleware.SessionCookieName {
			return ck
		}
	}
	return nil
}

// malformedFormContext posts a urlencoded body that cannot be parsed.
func malformedFormContext(e *echo.Echo, path string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader("job_id=%zz&password=%zz"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
