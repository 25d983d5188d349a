package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/msomdec/gallery-db/internal/domain"
)

const (
	DefaultPageSize = 3
	MaxPageSize     = 1000
)

// GalleryService orchestrates gallery uploads, listing, retrieval, and deletion.
type GalleryService struct {
	galleries domain.GalleryRepository
}

// NewGalleryService creates a new GalleryService.
func NewGalleryService(galleries domain.GalleryRepository) *GalleryService {
	return &GalleryService{galleries: galleries}
}

// ListQuery selects one page of galleries, optionally filtered by a
// case-sensitive title substring. An empty Title means no filter.
type ListQuery struct {
	Title string `json:"galleryTitle"`
	Page  int    `json:"page"`
	Size  int    `json:"size"`
}

// Validate checks the page window. Title is unconstrained.
func (q *ListQuery) Validate() error {
	err := validation.ValidateStruct(q,
		validation.Field(&q.Page, validation.Min(0)),
		validation.Field(&q.Size, validation.Required, validation.Min(1), validation.Max(MaxPageSize)),
	)
	if err == nil {
		return nil
	}
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		fields := make(map[string]error, len(fieldErrs))
		for name, fe := range fieldErrs {
			fields[name] = fe
		}
		return domain.NewValidationError(fields)
	}
	return err
}

// Upload stores a new gallery record. Directory components are stripped from
// fileName before persisting; title and payload are accepted as given.
func (s *GalleryService) Upload(ctx context.Context, title, fileName, contentType string, data []byte) (*domain.Gallery, error) {
	g := &domain.Gallery{
		Title:       title,
		FileName:    CleanFileName(fileName),
		ContentType: contentType,
		Data:        data,
	}

	if err := s.galleries.Save(ctx, g); err != nil {
		return nil, &domain.StorageError{Op: "save gallery", Err: err}
	}
	return g, nil
}

// List returns the requested page. A page past the end, or a filter that
// matches nothing, yields an empty page rather than an error.
func (s *GalleryService) List(ctx context.Context, q ListQuery) (*domain.Page[domain.Gallery], error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	req := domain.PageRequest{Page: q.Page, Size: q.Size}
	if q.Title == "" {
		return s.ListAll(ctx, req)
	}

	page, err := s.galleries.FindAllByTitleContaining(ctx, q.Title, req)
	if err != nil {
		return nil, &domain.StorageError{Op: "list galleries by title", Err: err}
	}
	return page, nil
}

// ListAll returns one unfiltered page.
func (s *GalleryService) ListAll(ctx context.Context, req domain.PageRequest) (*domain.Page[domain.Gallery], error) {
	page, err := s.galleries.FindAll(ctx, req)
	if err != nil {
		return nil, &domain.StorageError{Op: "list galleries", Err: err}
	}
	return page, nil
}

// GetByID returns the gallery with its payload, or domain.ErrNotFound.
func (s *GalleryService) GetByID(ctx context.Context, id int64) (*domain.Gallery, error) {
	g, err := s.galleries.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("gallery %d: %w", id, domain.ErrNotFound)
		}
		return nil, &domain.StorageError{Op: "get gallery", Err: err}
	}
	return g, nil
}

// DeleteByID removes the gallery and reports whether it existed.
func (s *GalleryService) DeleteByID(ctx context.Context, id int64) (bool, error) {
	exists, err := s.galleries.ExistsByID(ctx, id)
	if err != nil {
		return false, &domain.StorageError{Op: "check gallery exists", Err: err}
	}
	if !exists {
		return false, nil
	}

	if err := s.galleries.DeleteByID(ctx, id); err != nil {
		// Lost a race with another delete.
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, &domain.StorageError{Op: "delete gallery", Err: err}
	}
	return true, nil
}

// CleanFileName keeps only the last path segment of name, treating both
// slash and backslash as separators. Names that reduce to "." or ".." become
// empty.
func CleanFileName(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = strings.TrimRight(name, "/")
	if name == "" {
		return ""
	}
	base := path.Base(name)
	if base == "." || base == ".." || base == "/" {
		return ""
	}
	return base
}
