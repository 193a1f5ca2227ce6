package models

// Book is a single catalog entry. Books live in the in-memory shelf only and
// are lost on restart; persistence is intentionally limited to users.
type Book struct {
	// BookID is a process-wide monotonic identifier assigned by the shelf.
	BookID int64 `json:"id"`

	// Title of the book. Stored trimmed, never empty.
	Title string `json:"title"`

	// Author of the book. Stored trimmed, never empty.
	Author string `json:"author"`
}

// NewBookRequest is the JSON body accepted by the book creation endpoint.
// Title and Author are validated and trimmed by the catalog service before
// a Book is constructed from them.
type NewBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}
