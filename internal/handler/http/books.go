package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/MKhiriev/go-book-catalog/internal/service"
	"github.com/MKhiriev/go-book-catalog/internal/store"
	"github.com/MKhiriev/go-book-catalog/internal/utils"
	"github.com/MKhiriev/go-book-catalog/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	books, err := h.services.CatalogService.ListBooks(r.Context())
	if err != nil {
		log.Err(err).Msg("error listing books")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, books, http.StatusOK)
}

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	bookID, err := strconv.ParseInt(chi.URLParam(r, "bookID"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid book id")
		http.Error(w, "invalid book id", http.StatusBadRequest)
		return
	}

	book, err := h.services.CatalogService.GetBook(r.Context(), bookID)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			http.Error(w, "book not found", http.StatusNotFound)
			return
		}

		log.Err(err).Int64("book_id", bookID).Msg("error getting book")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, book, http.StatusOK)
}

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.NewBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	book, err := h.services.CatalogService.CreateBook(r.Context(), req)
	if err != nil {
		// the validation sentinels already carry field-level detail
		switch {
		case errors.Is(err, service.ErrValidationEmptyTitle),
			errors.Is(err, service.ErrValidationTitleTooLong),
			errors.Is(err, service.ErrValidationEmptyAuthor),
			errors.Is(err, service.ErrValidationAuthorTooLong):
			log.Err(err).Msg("new book failed validation")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during book creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, book, http.StatusCreated)
}
