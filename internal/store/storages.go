package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-book-catalog/internal/config"
	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/MKhiriev/go-book-catalog/models"
)

// Storages aggregates all repositories the service layer depends on.
type Storages struct {
	UserRepository UserRepository
	BookRepository BookRepository
}

// seedBooks is the initial shelf content, matching the catalog the API has
// always shipped with.
var seedBooks = []models.Book{
	{Title: "1984", Author: "George Orwell"},
	{Title: "The Great Gatsby", Author: "F. Scott Fitzgerald"},
}

// NewStorages connects to PostgreSQL, applies pending migrations, and wires
// up all repositories: the database-backed user repository and the in-memory
// book shelf.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		BookRepository: NewShelf(logger, seedBooks...),
	}, nil
}
