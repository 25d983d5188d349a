package domain

import "context"

// Gallery is one stored gallery entry: metadata plus the uploaded bytes.
type Gallery struct {
	ID          int64
	Title       string
	FileName    string // Upload filename with any directory prefix removed
	ContentType string // As declared by the uploading client
	Data        []byte // Nil on list results; use Size there

	// Size is the byte length of Data. It is computed by the store on read
	// and never persisted as a column.
	Size int64
}

//go:generate mockgen -destination=mocks/gallery_repository.go -package=mocks . GalleryRepository

// GalleryRepository defines persistence operations for gallery records.
// List methods do not load Data; FindByID does.
type GalleryRepository interface {
	Save(ctx context.Context, g *Gallery) error
	FindByID(ctx context.Context, id int64) (*Gallery, error)
	FindAll(ctx context.Context, req PageRequest) (*Page[Gallery], error)
	FindAllByTitleContaining(ctx context.Context, title string, req PageRequest) (*Page[Gallery], error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
}
