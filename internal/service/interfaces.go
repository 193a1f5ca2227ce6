package service

import (
	"context"

	"github.com/MKhiriev/go-book-catalog/models"
)

// AuthService covers the whole credential lifecycle: registration, password
// verification, token issuance, and token-to-user resolution.
type AuthService interface {
	// RegisterUser hashes the password and persists a new account.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies username/password and returns the matching user.
	Login(ctx context.Context, username, password string) (models.User, error)

	// CreateToken issues a signed JWT whose subject is the user's username.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ResolveToken validates a raw token string and resolves its subject to a
	// current user record via a fresh store lookup.
	ResolveToken(ctx context.Context, tokenString string) (models.User, error)
}

// CatalogService exposes the gated book catalog operations.
type CatalogService interface {
	ListBooks(ctx context.Context) ([]models.Book, error)
	GetBook(ctx context.Context, id int64) (models.Book, error)

	// CreateBook validates and trims the request fields, then stores the book.
	CreateBook(ctx context.Context, req models.NewBookRequest) (models.Book, error)
}
