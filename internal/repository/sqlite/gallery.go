package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/msomdec/gallery-db/internal/domain"
)

const galleryTable = "galleries"

// GalleryRepository implements domain.GalleryRepository using SQLite.
type GalleryRepository struct {
	db *sql.DB
	sq sq.StatementBuilderType
}

// NewGalleryRepository creates a new SQLite-backed GalleryRepository.
func NewGalleryRepository(db *DB) *GalleryRepository {
	return &GalleryRepository{
		db: db.SqlDB,
		sq: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
}

func (r *GalleryRepository) Save(ctx context.Context, g *domain.Gallery) error {
	if g.ID != 0 {
		return r.update(ctx, g)
	}

	query, args, err := r.sq.Insert(galleryTable).
		Columns("title", "file_name", "content_type", "data").
		Values(g.Title, g.FileName, g.ContentType, g.Data).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert gallery: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("insert gallery: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	g.ID = id
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

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update gallery: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
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
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&g.ID, &g.Title, &g.FileName, &g.ContentType, &g.Data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
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

// FindAllByTitleContaining matches title case-sensitively; instr is used
// because SQLite's LIKE folds ASCII case.
func (r *GalleryRepository) FindAllByTitleContaining(ctx context.Context, title string, req domain.PageRequest) (*domain.Page[domain.Gallery], error) {
	return r.findPage(ctx, sq.Expr("instr(title, ?) > 0", title), req)
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
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count galleries: %w", err)
	}

	// Offset is only bounded for pages that exist.
	if req.PastEnd(total) {
		return domain.NewPage[domain.Gallery](nil, req, total), nil
	}

	listQ := r.sq.Select("id", "title", "file_name", "content_type", "IFNULL(length(data), 0)").
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
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list galleries: %w", err)
	}
	defer rows.Close()

	var galleries []domain.Gallery
	for rows.Next() {
		var g domain.Gallery
		if err := rows.Scan(&g.ID, &g.Title, &g.FileName, &g.ContentType, &g.Size); err != nil {
			return nil, fmt.Errorf("scan gallery: %w", err)
		}
		galleries = append(galleries, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate galleries: %w", err)
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
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check gallery exists: %w", err)
	}
	return exists, nil
}

func (r *GalleryRepository) DeleteByID(ctx context.Context, id int64) error {
	query, args, err := r.sq.Delete(galleryTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete gallery: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete gallery: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
