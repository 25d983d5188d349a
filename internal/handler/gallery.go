package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/msomdec/gallery-db/internal/domain"
	"github.com/msomdec/gallery-db/internal/service"
)

// multipartMemory is how much of a multipart body is buffered in memory
// before spilling file parts to disk.
const multipartMemory = 32 << 20

// GalleryHandler serves the /api/galleryDb JSON and download endpoints.
type GalleryHandler struct {
	galleries      *service.GalleryService
	publicBaseURL  string
	maxUploadBytes int64
}

// NewGalleryHandler creates a new GalleryHandler. publicBaseURL may be empty,
// in which case download links are derived from each request.
func NewGalleryHandler(galleries *service.GalleryService, publicBaseURL string, maxUploadBytes int64) *GalleryHandler {
	return &GalleryHandler{galleries: galleries, publicBaseURL: publicBaseURL, maxUploadBytes: maxUploadBytes}
}

// HandleUpload stores one multipart upload.
// POST /api/galleryDb/upload
func (h *GalleryHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	log := LoggerFromContext(r.Context())

	if h.maxUploadBytes > 0 {
		if r.ContentLength > h.maxUploadBytes {
			writeError(w, http.StatusRequestEntityTooLarge, "upload exceeds "+strconv.FormatInt(h.maxUploadBytes, 10)+" bytes")
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "upload exceeds "+strconv.FormatInt(tooLarge.Limit, 10)+" bytes")
			return
		}
		writeError(w, http.StatusBadRequest, "expected a multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	titles, ok := r.MultipartForm.Value["galleryTitle"]
	if !ok || len(titles) == 0 {
		writeError(w, http.StatusBadRequest, "missing galleryTitle")
		return
	}
	title := titles[0]

	file, header, err := r.FormFile("galleryDb")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing galleryDb file")
		return
	}
	defer file.Close()

	log.Debug("gallery upload", "galleryTitle", title, "fileName", header.Filename, "size", header.Size)

	data, err := io.ReadAll(file)
	if err != nil {
		log.Error("read upload", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Could not upload the file : "+header.Filename)
		return
	}

	if _, err := h.galleries.Upload(r.Context(), title, header.Filename, header.Header.Get("Content-Type"), data); err != nil {
		log.Error("upload gallery", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Could not upload the file : "+header.Filename)
		return
	}

	writeMessage(w, http.StatusOK, "Upload the file successfully: "+header.Filename)
}

// HandleList returns one page of gallery metadata, or 204 when the page is empty.
// GET /api/galleryDb?galleryTitle=&page=0&size=3
func (h *GalleryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q, err := parseListQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.galleries.List(r.Context(), q)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		LoggerFromContext(r.Context()).Error("list galleries", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if page.IsEmpty() {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, toGalleryPageDTO(page, requestBaseURL(r, h.publicBaseURL)))
}

// HandleDownload sends the stored bytes as an attachment.
// GET /api/galleryDb/{id}
func (h *GalleryHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request")
		return
	}

	g, err := h.galleries.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Not Found")
			return
		}
		LoggerFromContext(r.Context()).Error("download gallery", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	contentType := g.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", attachmentDisposition(g.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(g.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(g.Data)
}

// HandleDelete removes a gallery; 200 if it existed, 204 if not.
// DELETE /api/galleryDb/deletion/{id}
func (h *GalleryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request")
		return
	}

	deleted, err := h.galleries.DeleteByID(r.Context(), id)
	if err != nil {
		LoggerFromContext(r.Context()).Error("delete gallery", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if !deleted {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// parseListQuery reads galleryTitle, page and size, applying the defaults
// page=0 and size=3 when absent.
func parseListQuery(r *http.Request) (service.ListQuery, error) {
	values := r.URL.Query()
	q := service.ListQuery{
		Title: values.Get("galleryTitle"),
		Page:  0,
		Size:  service.DefaultPageSize,
	}

	if v := values.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return q, errors.New("page must be an integer")
		}
		q.Page = n
	}
	if v := values.Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return q, errors.New("size must be an integer")
		}
		q.Size = n
	}
	return q, nil
}

var dispositionEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\r", "", "\n", "")

func attachmentDisposition(fileName string) string {
	return `attachment; filename="` + dispositionEscaper.Replace(fileName) + `"`
}
