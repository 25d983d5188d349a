package handler

import (
	"net/http"
)

// HandleHome redirects the site root to the gallery page.
// GET /{$}
func HandleHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/gallery", http.StatusSeeOther)
}
