package http

import (
	_ "embed"
	"net/http"
)

//go:embed index.html
var indexHTML []byte

// GET / serves the upload form.
func IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(indexHTML)
	}
}
