package service_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msomdec/gallery-db/internal/domain"
	"github.com/msomdec/gallery-db/internal/repository/sqlite"
	"github.com/msomdec/gallery-db/internal/service"
)

func newTestGalleryService(t *testing.T) (*service.GalleryService, *sqlite.DB) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return service.NewGalleryService(db.Galleries()), db
}

func TestGalleryService_Upload_RoundTrip(t *testing.T) {
	svc, _ := newTestGalleryService(t)
	ctx := context.Background()

	payload := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}
	g, err := svc.Upload(ctx, "Cats", "cat1.png", "image/png", payload)
	require.NoError(t, err)
	require.NotZero(t, g.ID)

	got, err := svc.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(payload, got.Data), "payload must round-trip byte for byte")
	assert.Equal(t, "Cats", got.Title)
	assert.Equal(t, "cat1.png", got.FileName)
	assert.Equal(t, "image/png", got.ContentType)
}

func TestGalleryService_Upload_StripsPath(t *testing.T) {
	svc, _ := newTestGalleryService(t)
	ctx := context.Background()

	for _, name := range []string{"../etc/evil.png", `C:\Users\me\evil.png`, "/abs/dir/evil.png", "dir/sub/evil.png"} {
		g, err := svc.Upload(ctx, "t", name, "image/png", []byte("x"))
		require.NoError(t, err)

		got, err := svc.GetByID(ctx, g.ID)
		require.NoError(t, err)
		assert.Equal(t, "evil.png", got.FileName, "upload name %q", name)
		assert.False(t, strings.ContainsAny(got.FileName, `/\`))
	}
}

func TestGalleryService_Upload_Permissive(t *testing.T) {
	svc, _ := newTestGalleryService(t)

	g, err := svc.Upload(context.Background(), "", "empty.bin", "", nil)
	require.NoError(t, err)
	assert.NotZero(t, g.ID)
	assert.Zero(t, g.Size)
}

func TestGalleryService_Upload_StorageError(t *testing.T) {
	svc, db := newTestGalleryService(t)
	db.Close()

	_, err := svc.Upload(context.Background(), "Cats", "cat.png", "image/png", []byte("x"))

	var se *domain.StorageError
	require.True(t, errors.As(err, &se), "expected StorageError, got %v", err)
	assert.Equal(t, "save gallery", se.Op)
}

func TestGalleryService_List_Unfiltered(t *testing.T) {
	svc, _ := newTestGalleryService(t)
	ctx := context.Background()

	payload := []byte{0x89, 0x50, 0x4e}
	uploaded, err := svc.Upload(ctx, "Cats", "cat1.png", "image/png", payload)
	require.NoError(t, err)

	page, err := svc.List(ctx, service.ListQuery{Page: 0, Size: 3})
	require.NoError(t, err)

	require.Len(t, page.Content, 1)
	assert.Equal(t, uploaded.ID, page.Content[0].ID)
	assert.Equal(t, "cat1.png", page.Content[0].FileName)
	assert.Equal(t, int64(len(payload)), page.Content[0].Size)
	assert.Equal(t, 0, page.Number)
	assert.Equal(t, int64(1), page.TotalElements)
	assert.Equal(t, 1, page.TotalPages)
}

func TestGalleryService_List_TitleFilter(t *testing.T) {
	svc, _ := newTestGalleryService(t)
	ctx := context.Background()

	for _, title := range []string{"Cats", "Dogs", "Wildcats", "cats", "Catsup"} {
		_, err := svc.Upload(ctx, title, "f.png", "image/png", []byte(title))
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, service.ListQuery{Title: "Cat", Page: 0, Size: 10})
	require.NoError(t, err)

	titles := make([]string, 0, len(page.Content))
	for _, g := range page.Content {
		titles = append(titles, g.Title)
	}
	assert.ElementsMatch(t, []string{"Cats", "Catsup"}, titles)
}

func TestGalleryService_List_TotalPagesInvariant(t *testing.T) {
	svc, _ := newTestGalleryService(t)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		_, err := svc.Upload(ctx, "item", "f.png", "image/png", []byte{byte(i)})
		require.NoError(t, err)
	}

	for size := 1; size <= 8; size++ {
		for p := 0; p < 3; p++ {
			page, err := svc.List(ctx, service.ListQuery{Page: p, Size: size})
			require.NoError(t, err)
			wantPages := int((page.TotalElements + int64(size) - 1) / int64(size))
			assert.Equal(t, wantPages, page.TotalPages, "size=%d", size)
			assert.Equal(t, p, page.Number)
		}
	}
}

func TestGalleryService_List_NoMatchIsEmpty(t *testing.T) {
	svc, _ := newTestGalleryService(t)
	ctx := context.Background()
	_, err := svc.Upload(ctx, "Cats", "cat1.png", "image/png", []byte("x"))
	require.NoError(t, err)

	page, err := svc.List(ctx, service.ListQuery{Title: "zzz", Page: 0, Size: 3})
	require.NoError(t, err)
	assert.True(t, page.IsEmpty())

	page, err = svc.List(ctx, service.ListQuery{Page: 9, Size: 3})
	require.NoError(t, err)
	assert.True(t, page.IsEmpty())
	assert.Equal(t, 9, page.Number)
}

func TestGalleryService_List_InvalidQuery(t *testing.T) {
	svc, _ := newTestGalleryService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		query service.ListQuery
		field string
	}{
		{"negative page", service.ListQuery{Page: -1, Size: 3}, "page"},
		{"zero size", service.ListQuery{Page: 0, Size: 0}, "size"},
		{"size too large", service.ListQuery{Page: 0, Size: service.MaxPageSize + 1}, "size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.List(ctx, tt.query)
			require.ErrorIs(t, err, domain.ErrInvalidInput)

			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve))
			require.Len(t, ve.Errors, 1)
			assert.Equal(t, tt.field, ve.Errors[0].Name)
		})
	}
}

func TestGalleryService_GetByID_NotFound(t *testing.T) {
	svc, _ := newTestGalleryService(t)

	_, err := svc.GetByID(context.Background(), 42)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	var se *domain.StorageError
	assert.False(t, errors.As(err, &se), "not-found must not be reported as a storage failure")
}

func TestGalleryService_DeleteByID_Twice(t *testing.T) {
	svc, _ := newTestGalleryService(t)
	ctx := context.Background()

	g, err := svc.Upload(ctx, "Cats", "cat1.png", "image/png", []byte("x"))
	require.NoError(t, err)

	deleted, err := svc.DeleteByID(ctx, g.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.DeleteByID(ctx, g.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = svc.GetByID(ctx, g.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGalleryService_DeleteByID_MissingLeavesStoreUnchanged(t *testing.T) {
	svc, _ := newTestGalleryService(t)
	ctx := context.Background()

	_, err := svc.Upload(ctx, "keep", "keep.png", "image/png", []byte("x"))
	require.NoError(t, err)

	deleted, err := svc.DeleteByID(ctx, 9999)
	require.NoError(t, err)
	assert.False(t, deleted)

	page, err := svc.List(ctx, service.ListQuery{Page: 0, Size: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalElements)
}

func TestCleanFileName(t *testing.T) {
	tests := map[string]string{
		"cat1.png":        "cat1.png",
		"../etc/evil.png": "evil.png",
		`..\..\evil.png`:  "evil.png",
		"a/b/c/":          "c",
		"":                "",
		"..":              "",
		"/":               "",
		"./photo.jpg":     "photo.jpg",
		"my cat (1).png":  "my cat (1).png",
		"nested/dir/..":   "",
	}
	for in, want := range tests {
		if got := service.CleanFileName(in); got != want {
			t.Errorf("CleanFileName(%q) = %q, want %q", in, got, want)
		}
	}
}
