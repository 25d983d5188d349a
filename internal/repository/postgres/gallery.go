package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/msomdec/gallery-db/internal/domain"
)

const galleryTable = "galleries"

// GalleryRepository implements domain.GalleryRepository using Postgres.
type GalleryRepository struct {
	pool *pgxpool.Pool
	sq   sq.StatementBuilderType
}

// NewGalleryRepository creates a new Postgres-backed GalleryRepository.
func NewGalleryRepository(db *DB) *GalleryRepository {
	return &GalleryRepository{
		pool: db.Pool,
		sq:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *GalleryRepository) Save(ctx context.Context, g *domain.Gallery) error {
	if g.ID != 0 {
		return r.update(ctx, g)
	}

	query, args, err := r.sq.Insert(galleryTable).
		Columns("title", "file_name", "content_type", "data").
		Values(g.Title, g.FileName, g.ContentType, g.Data).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert gallery: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&g.ID); err != nil {
		return fmt.Errorf("insert gallery: %w", err)
	}
	g.Size = int64(len(g.Data))
	return nil
}

func (r *GalleryRepository) update(ctx context.Context, g *domain.Gallery) error {
	query, args, err := r.sq.Update(galleryTable).
		Set("title", g.Title).
		Set("file_name", g.FileName).
		Set("content_type", g.ContentType).
		Set("data", g.Data).
		Where(sq.Eq{"id": g.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update gallery: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update gallery: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	g.Size = int64(len(g.Data))
	return nil
}

func (r *GalleryRepository) FindByID(ctx context.Context, id int64) (*domain.Gallery, error) {
	query, args, err := r.sq.Select("id", "title", "file_name", "content_type", "data").
		From(galleryTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select gallery: %w", err)
	}

	g := &domain.Gallery{}
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&g.ID, &g.Title, &g.FileName, &g.ContentType, &g.Data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get gallery: %w", err)
	}
	g.Size = int64(len(g.Data))
	return g, nil
}

func (r *GalleryRepository) FindAll(ctx context.Context, req domain.PageRequest) (*domain.Page[domain.Gallery], error) {
	return r.findPage(ctx, nil, req)
}

// FindAllByTitleContaining uses strpos so the match is case-sensitive and
// LIKE wildcards in title are taken literally.
func (r *GalleryRepository) FindAllByTitleContaining(ctx context.Context, title string, req domain.PageRequest) (*domain.Page[domain.Gallery], error) {
	return r.findPage(ctx, sq.Expr("strpos(title, ?) > 0", title), req)
}

func (r *GalleryRepository) findPage(ctx context.Context, where sq.Sqlizer, req domain.PageRequest) (*domain.Page[domain.Gallery], error) {
	countQ := r.sq.Select("COUNT(*)").From(galleryTable)
	if where != nil {
		countQ = countQ.Where(where)
	}

	query, args, err := countQ.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count galleries: %w", err)
	}
	var total int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count galleries: %w", err)
	}

	// Offset is only bounded for pages that exist.
	if req.PastEnd(total) {
		return domain.NewPage[domain.Gallery](nil, req, total), nil
	}

	listQ := r.sq.Select("id", "title", "file_name", "content_type", "COALESCE(octet_length(data), 0)").
		From(galleryTable).
		OrderBy("id").
		Limit(uint64(req.Size)).
		Offset(uint64(req.Offset()))
	if where != nil {
		listQ = listQ.Where(where)
	}

	query, args, err = listQ.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list galleries: %w", err)
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list galleries: %w", err)
	}
	galleries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Gallery, error) {
		var g domain.Gallery
		err := row.Scan(&g.ID, &g.Title, &g.FileName, &g.ContentType, &g.Size)
		return g, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan galleries: %w", err)
	}

	return domain.NewPage(galleries, req, total), nil
}

func (r *GalleryRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query, args, err := r.sq.Select("1").
		Prefix("SELECT EXISTS (").
		From(galleryTable).
		Where(sq.Eq{"id": id}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build exists gallery: %w", err)
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check gallery exists: %w", err)
	}
	return exists, nil
}

func (r *GalleryRepository) DeleteByID(ctx context.Context, id int64) error {
	query, args, err := r.sq.Delete(galleryTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete gallery: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete gallery: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
