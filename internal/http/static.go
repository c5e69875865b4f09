package httphandler

import (
	"io/fs"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

// NewStaticHandler serves the front-end directory. Images are cached for a week;
// pages, scripts and styles are revalidated so a rebuilt front end shows up at once.
func NewStaticHandler(fsys fs.FS) http.Handler {
	fsHandler := http.FileServer(http.FS(fsys))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ext := strings.ToLower(filepath.Ext(r.URL.Path))

		switch ext {
		case ".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp", ".ico", ".woff2":
			w.Header().Set("Cache-Control", "public, max-age=604800")
		default:
			w.Header().Set("Cache-Control", "no-cache")
		}

		if c := mime.TypeByExtension(ext); c != "" {
			w.Header().Set("Content-Type", c)
		}
		fsHandler.ServeHTTP(w, r)
	})
}
