package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/MKhiriev/go-book-catalog/models"
)

// shelf is the in-memory implementation of [BookRepository]. Books are not
// persisted and disappear on restart; only user accounts live in the database.
//
// A single mutex guards both the slice and the id counter, so the
// assign-id-and-append step is atomic under concurrent creates. IDs come from
// the monotonic nextID counter rather than from the slice length, so they
// never repeat within a process even if deletion is added later.
type shelf struct {
	mu     sync.Mutex
	books  []models.Book
	nextID int64

	logger *logger.Logger
}

// NewShelf constructs a [BookRepository] pre-populated with the given seed
// books. Seed ids are reassigned sequentially so that the counter always
// starts past the last seeded entry.
func NewShelf(logger *logger.Logger, seed ...models.Book) BookRepository {
	logger.Debug().Int("seed_books", len(seed)).Msg("creating book shelf")

	s := &shelf{
		books:  make([]models.Book, 0, len(seed)),
		logger: logger,
	}

	for _, book := range seed {
		s.nextID++
		book.BookID = s.nextID
		s.books = append(s.books, book)
	}

	return s
}

// ListBooks returns a copy of the shelf contents in insertion order.
// The copy keeps callers from observing later mutations through the
// returned slice.
func (s *shelf) ListBooks(_ context.Context) ([]models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	books := make([]models.Book, len(s.books))
	copy(books, s.books)

	return books, nil
}

// GetBook returns the book with the given id or [ErrBookNotFound].
func (s *shelf) GetBook(_ context.Context, id int64) (models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, book := range s.books {
		if book.BookID == id {
			return book, nil
		}
	}

	return models.Book{}, ErrBookNotFound
}

// AddBook assigns the next id to book and appends it to the shelf.
func (s *shelf) AddBook(_ context.Context, book models.Book) (models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	book.BookID = s.nextID
	s.books = append(s.books, book)

	return book, nil
}
