package handler

import (
	"net/http"

	"github.com/msomdec/gallery-db/internal/service"
)

// RouteConfig carries the settings handlers need beyond the service.
type RouteConfig struct {
	DB             Pinger // Optional; checked by /healthz
	PublicBaseURL  string
	MaxUploadBytes int64
	UploadLimiter  *service.TokenBucket
}

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, galleries *service.GalleryService, cfg RouteConfig) {
	api := NewGalleryHandler(galleries, cfg.PublicBaseURL, cfg.MaxUploadBytes)
	browse := NewBrowseHandler(galleries, cfg.PublicBaseURL)

	mux.HandleFunc("GET /healthz", HandleHealthz(cfg.DB))
	mux.HandleFunc("GET /{$}", HandleHome)

	mux.Handle("POST /api/galleryDb/upload", RateLimit(cfg.UploadLimiter, http.HandlerFunc(api.HandleUpload)))
	mux.HandleFunc("GET /api/galleryDb", api.HandleList)
	mux.HandleFunc("GET /api/galleryDb/{id}", api.HandleDownload)
	mux.HandleFunc("DELETE /api/galleryDb/deletion/{id}", api.HandleDelete)

	mux.HandleFunc("GET /gallery", browse.HandleBrowse)
	mux.HandleFunc("POST /gallery/{id}/delete", browse.HandleDelete)
}
