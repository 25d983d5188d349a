package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/msomdec/gallery-db/internal/domain"
	"github.com/msomdec/gallery-db/internal/service"
	"github.com/msomdec/gallery-db/internal/view"
)

// BrowseHandler serves the HTML gallery page.
type BrowseHandler struct {
	galleries     *service.GalleryService
	publicBaseURL string
}

// NewBrowseHandler creates a new BrowseHandler.
func NewBrowseHandler(galleries *service.GalleryService, publicBaseURL string) *BrowseHandler {
	return &BrowseHandler{galleries: galleries, publicBaseURL: publicBaseURL}
}

// HandleBrowse renders the gallery page with the same query parameters as
// the list API.
// GET /gallery
func (h *BrowseHandler) HandleBrowse(w http.ResponseWriter, r *http.Request) {
	q, err := parseListQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	listing, status := h.listing(r, q)
	if status != http.StatusOK {
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.GalleryPage(listing).Render(r.Context(), w); err != nil {
		LoggerFromContext(r.Context()).Error("render gallery page", "error", err)
	}
}

// HandleDelete deletes a gallery and re-renders the grid via SSE.
// POST /gallery/{id}/delete?galleryTitle=&page=&size=
func (h *BrowseHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	log := LoggerFromContext(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	q, err := parseListQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := h.galleries.DeleteByID(r.Context(), id); err != nil {
		log.Error("delete gallery", "error", err, "id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	listing, status := h.listing(r, q)
	// Deleting the last card of a trailing page steps back one page.
	if status == http.StatusOK && len(listing.Items) == 0 && q.Page > 0 {
		q.Page = min(q.Page-1, max(listing.TotalPages-1, 0))
		listing, status = h.listing(r, q)
	}
	if status != http.StatusOK {
		http.Error(w, http.StatusText(status), status)
		return
	}

	sse := datastar.NewSSE(w, r)
	if err := sse.PatchElementTempl(view.GalleryGrid(listing)); err != nil {
		log.Error("patch gallery grid", "error", err)
	}
}

func (h *BrowseHandler) listing(r *http.Request, q service.ListQuery) (view.GalleryListing, int) {
	page, err := h.galleries.List(r.Context(), q)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return view.GalleryListing{}, http.StatusBadRequest
		}
		LoggerFromContext(r.Context()).Error("list galleries", "error", err)
		return view.GalleryListing{}, http.StatusInternalServerError
	}

	baseURL := requestBaseURL(r, h.publicBaseURL)
	items := make([]view.GalleryItem, len(page.Content))
	for i, g := range page.Content {
		items[i] = view.GalleryItem{
			ID:          g.ID,
			Title:       g.Title,
			FileName:    g.FileName,
			ContentType: g.ContentType,
			Size:        g.Size,
			URL:         downloadURL(baseURL, g.ID),
		}
	}
	return view.GalleryListing{
		Filter:     q.Title,
		Page:       page.Number,
		Size:       q.Size,
		TotalItems: page.TotalElements,
		TotalPages: page.TotalPages,
		Items:      items,
	}, http.StatusOK
}
