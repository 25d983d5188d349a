// Package view renders the server-side gallery browse page.
package view

import (
	"net/url"
	"strconv"

	"github.com/a-h/templ"
)

//go:generate templ generate

// GridID is the element id the browse page patches after a delete.
const GridID = "gallery-grid"

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"

// GalleryItem is one card on the browse page.
type GalleryItem struct {
	ID          int64
	Title       string
	FileName    string
	ContentType string
	Size        int64
	URL         string
}

// GalleryListing is one page of the browse view plus the query that produced it.
type GalleryListing struct {
	Filter     string
	Page       int
	Size       int
	TotalItems int64
	TotalPages int
	Items      []GalleryItem
}

func (l GalleryListing) query(page int) string {
	q := url.Values{}
	if l.Filter != "" {
		q.Set("galleryTitle", l.Filter)
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(l.Size))
	return q.Encode()
}

func (l GalleryListing) pageURL(page int) templ.SafeURL {
	return templ.URL("/gallery?" + l.query(page))
}

// deleteAction is the Datastar expression posting a delete for id that
// re-renders the current page. The query is URL-encoded, so it cannot close
// the quoted string.
func (l GalleryListing) deleteAction(id int64) string {
	return "@post('/gallery/" + strconv.FormatInt(id, 10) + "/delete?" + l.query(l.Page) + "')"
}
