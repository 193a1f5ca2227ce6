package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/MKhiriev/go-book-catalog/internal/store"
	"github.com/MKhiriev/go-book-catalog/models"
)

// maxBookFieldLength is the upper bound on the title and author fields,
// measured in runes after trimming.
const maxBookFieldLength = 100

// catalogService is the concrete implementation of CatalogService. It owns
// input validation for new books and delegates storage to a BookRepository.
type catalogService struct {
	bookRepository store.BookRepository
	logger         *logger.Logger
}

// NewCatalogService constructs a CatalogService over the given repository.
func NewCatalogService(bookRepository store.BookRepository, logger *logger.Logger) CatalogService {
	return &catalogService{
		bookRepository: bookRepository,
		logger:         logger,
	}
}

// ListBooks returns all books currently on the shelf.
func (c *catalogService) ListBooks(ctx context.Context) ([]models.Book, error) {
	books, err := c.bookRepository.ListBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing books: %w", err)
	}

	return books, nil
}

// GetBook returns the book with the given id or store.ErrBookNotFound.
func (c *catalogService) GetBook(ctx context.Context, id int64) (models.Book, error) {
	book, err := c.bookRepository.GetBook(ctx, id)
	if err != nil {
		return models.Book{}, fmt.Errorf("error getting book %d: %w", id, err)
	}

	return book, nil
}

// CreateBook validates the request and stores a new book built from the
// trimmed field values.
//
// Validation happens before any mutation: if either field fails, nothing is
// written. Returns one of the ErrValidation* sentinels on rejection.
func (c *catalogService) CreateBook(ctx context.Context, req models.NewBookRequest) (models.Book, error) {
	log := logger.FromContext(ctx)

	title, err := validateBookField(req.Title, ErrValidationEmptyTitle, ErrValidationTitleTooLong)
	if err != nil {
		log.Error().Err(err).Msg("new book rejected")
		return models.Book{}, err
	}

	author, err := validateBookField(req.Author, ErrValidationEmptyAuthor, ErrValidationAuthorTooLong)
	if err != nil {
		log.Error().Err(err).Msg("new book rejected")
		return models.Book{}, err
	}

	book, err := c.bookRepository.AddBook(ctx, models.Book{
		Title:  title,
		Author: author,
	})
	if err != nil {
		return models.Book{}, fmt.Errorf("error adding book: %w", err)
	}

	return book, nil
}

// validateBookField trims value and checks the non-empty and maximum-length
// invariants, returning the supplied sentinel for whichever check fails.
// The trimmed value is what gets stored.
func validateBookField(value string, emptyErr, tooLongErr error) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", emptyErr
	}

	if utf8.RuneCountInString(trimmed) > maxBookFieldLength {
		return "", tooLongErr
	}

	return trimmed, nil
}
