package http

import (
	"net/http"

	"github.com/MKhiriev/go-book-catalog/internal/utils"
)

// root is the public landing endpoint.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{
		"message": "Welcome to Book Catalog API",
	}, http.StatusOK)
}
