package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/msomdec/gallery-db/internal/domain"
)

// GalleryDTO is the JSON representation of a gallery record in list responses.
type GalleryDTO struct {
	ID          int64  `json:"gid"`
	Title       string `json:"galleryTitle"`
	FileName    string `json:"galleryFileName"`
	ContentType string `json:"galleryType"`
	Size        int64  `json:"gallerySize"`
	URL         string `json:"galleryUrl"`
}

// downloadURL builds the absolute retrieval link for a gallery id.
func downloadURL(baseURL string, id int64) string {
	return baseURL + "/api/galleryDb/" + strconv.FormatInt(id, 10)
}

func toGalleryDTO(g domain.Gallery, baseURL string) GalleryDTO {
	return GalleryDTO{
		ID:          g.ID,
		Title:       g.Title,
		FileName:    g.FileName,
		ContentType: g.ContentType,
		Size:        g.Size,
		URL:         downloadURL(baseURL, g.ID),
	}
}

func toGalleryDTOs(galleries []domain.Gallery, baseURL string) []GalleryDTO {
	dtos := make([]GalleryDTO, len(galleries))
	for i, g := range galleries {
		dtos[i] = toGalleryDTO(g, baseURL)
	}
	return dtos
}

// GalleryPageDTO is the JSON body of a list response.
type GalleryPageDTO struct {
	Galleries   []GalleryDTO `json:"galleryDb"`
	CurrentPage int          `json:"currentPage"`
	TotalItems  int64        `json:"totalItems"`
	TotalPages  int          `json:"totalPages"`
}

func toGalleryPageDTO(p *domain.Page[domain.Gallery], baseURL string) GalleryPageDTO {
	return GalleryPageDTO{
		Galleries:   toGalleryDTOs(p.Content, baseURL),
		CurrentPage: p.Number,
		TotalItems:  p.TotalElements,
		TotalPages:  p.TotalPages,
	}
}

// MessageDTO carries a human-readable outcome for upload responses.
type MessageDTO struct {
	Message string `json:"message"`
}

// requestBaseURL returns scheme://host for r, or override when set.
func requestBaseURL(r *http.Request, override string) string {
	if override != "" {
		return override
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0]))
	}
	return scheme + "://" + r.Host
}
