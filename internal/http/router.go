package httphandler

import (
	"io/fs"
	nethttp "net/http"
)

// NewRouter wires the engine routes and, when staticFS is set, the front-end assets
func NewRouter(s *Server, staticFS fs.FS) *nethttp.ServeMux {
	mux := nethttp.NewServeMux()

	// session
	mux.HandleFunc("/start", s.Start)
	mux.HandleFunc("/reset", s.Reset)
	mux.HandleFunc("/play", s.Play)

	// read side
	mux.HandleFunc("/state", s.ShowState)
	mux.HandleFunc("/clock", s.ShowClock)
	mux.HandleFunc("/rules", s.ShowRules)
	mux.HandleFunc("/ws", s.ServeWS)

	// static assets
	if staticFS != nil {
		mux.Handle("/static/", nethttp.StripPrefix("/static/", NewStaticHandler(staticFS)))
	}

	// home and 404
	mux.HandleFunc("/", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.URL.Path == "/" && staticFS != nil {
			nethttp.Redirect(w, r, "/static/", nethttp.StatusSeeOther)
			return
		}
		NotFound(w, r)
	})

	return mux
}
