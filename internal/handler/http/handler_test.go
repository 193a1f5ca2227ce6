package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/MKhiriev/go-book-catalog/internal/service"
	"github.com/MKhiriev/go-book-catalog/models"
)

// ---- Shared test doubles ----

// stubAuthService implements service.AuthService with pluggable functions so
// each test controls exactly one behavior.
type stubAuthService struct {
	registerFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn    func(ctx context.Context, username, password string) (models.User, error)
	createFn   func(ctx context.Context, user models.User) (models.Token, error)
	resolveFn  func(ctx context.Context, tokenString string) (models.User, error)
}

func (s *stubAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return s.registerFn(ctx, req)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return s.createFn(ctx, user)
}

func (s *stubAuthService) ResolveToken(ctx context.Context, tokenString string) (models.User, error) {
	return s.resolveFn(ctx, tokenString)
}

// stubCatalogService implements service.CatalogService the same way.
type stubCatalogService struct {
	listFn   func(ctx context.Context) ([]models.Book, error)
	getFn    func(ctx context.Context, id int64) (models.Book, error)
	createFn func(ctx context.Context, req models.NewBookRequest) (models.Book, error)
}

func (s *stubCatalogService) ListBooks(ctx context.Context) ([]models.Book, error) {
	return s.listFn(ctx)
}

func (s *stubCatalogService) GetBook(ctx context.Context, id int64) (models.Book, error) {
	return s.getFn(ctx, id)
}

func (s *stubCatalogService) CreateBook(ctx context.Context, req models.NewBookRequest) (models.Book, error) {
	return s.createFn(ctx, req)
}

func newHandlerWithServices(auth service.AuthService, catalog service.CatalogService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService:    auth,
			CatalogService: catalog,
		},
	}
}

// injectNopLogger puts a nop logger into the request context, mirroring what
// the trace-ID middleware does in production.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}
