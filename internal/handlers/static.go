package handlers

import "net/http"

// NewStaticPageHandler serves a single page from the web directory. The
// presentation layer itself lives entirely in those files.
func NewStaticPageHandler(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, path)
	}
}
