package store

import (
	"context"

	"github.com/MKhiriev/go-book-catalog/models"
)

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	// CreateUser inserts a new user and returns the persisted record with
	// server-assigned fields populated. Duplicate username/email are reported
	// via ErrUsernameAlreadyExists / ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the user with the given username or
	// ErrNoUserWasFound.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// BookRepository is the storage contract for the catalog shelf.
type BookRepository interface {
	// ListBooks returns a snapshot of all books in insertion order.
	ListBooks(ctx context.Context) ([]models.Book, error)

	// GetBook returns the book with the given id or ErrBookNotFound.
	GetBook(ctx context.Context, id int64) (models.Book, error)

	// AddBook stores a new book and returns it with its assigned id.
	// Title and Author are stored as given; validation happens upstream.
	AddBook(ctx context.Context, book models.Book) (models.Book, error)
}
