package handler_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"testing"

	"github.com/msomdec/gallery-db/internal/handler"
	"github.com/msomdec/gallery-db/internal/repository/sqlite"
	"github.com/msomdec/gallery-db/internal/service"
)

func newTestService(t *testing.T) (*service.GalleryService, *sqlite.DB) {
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

func newTestServer(t *testing.T, cfg handler.RouteConfig) (*httptest.Server, *service.GalleryService) {
	t.Helper()
	return newTestServerWithProxy(t, cfg, false)
}

func newTestServerWithProxy(t *testing.T, cfg handler.RouteConfig, trustProxy bool) (*httptest.Server, *service.GalleryService) {
	t.Helper()
	svc, db := newTestService(t)
	if cfg.DB == nil {
		cfg.DB = db
	}

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, svc, cfg)

	srv := httptest.NewServer(handler.Wrap(mux, trustProxy))
	t.Cleanup(srv.Close)
	return srv, svc
}

// multipartUpload builds an upload body. An empty fileName omits the file
// part; a nil title omits the title field.
func multipartUpload(t *testing.T, title *string, fileName, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if title != nil {
		if err := mw.WriteField("galleryTitle", *title); err != nil {
			t.Fatalf("write title: %v", err)
		}
	}
	if fileName != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="galleryDb"; filename="`+fileName+`"`)
		h.Set("Content-Type", contentType)
		part, err := mw.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write(payload); err != nil {
			t.Fatalf("write payload: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	return &body, mw.FormDataContentType()
}

func ptr(s string) *string { return &s }
