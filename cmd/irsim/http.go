package main

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/sparques/irbot/nec"
)

// Router exposes the bench as a remote control over HTTP.
func (b *Bench) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/state", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, b.Snapshot())
	})

	r.Post("/press/{button}", func(w http.ResponseWriter, r *http.Request) {
		steps, err := b.Press(chi.URLParam(r, "button"))
		if err != nil {
			renderError(w, r, http.StatusNotFound, err)
			return
		}
		render.JSON(w, r, steps)
	})

	r.Post("/send/{addr}/{cmd}", func(w http.ResponseWriter, r *http.Request) {
		addr, err := parseByte(chi.URLParam(r, "addr"))
		if err != nil {
			renderError(w, r, http.StatusBadRequest, err)
			return
		}
		cmd, err := parseByte(chi.URLParam(r, "cmd"))
		if err != nil {
			renderError(w, r, http.StatusBadRequest, err)
			return
		}
		render.JSON(w, r, b.Send(nec.Frame{Addr: addr, Cmd: cmd}))
	})

	r.Post("/raw/{raw}", func(w http.ResponseWriter, r *http.Request) {
		raw, err := strconv.ParseUint(chi.URLParam(r, "raw"), 0, 32)
		if err != nil {
			renderError(w, r, http.StatusBadRequest, err)
			return
		}
		render.JSON(w, r, b.Raw(uint32(raw)))
	})

	r.Post("/idle/{n}", func(w http.ResponseWriter, r *http.Request) {
		n, err := parseCount(chi.URLParam(r, "n"))
		if err != nil {
			renderError(w, r, http.StatusBadRequest, err)
			return
		}
		render.JSON(w, r, map[string]int{"stops": b.Idle(n)})
	})

	return r
}

func renderError(w http.ResponseWriter, r *http.Request, status int, err error) {
	render.Status(r, status)
	render.JSON(w, r, map[string]string{"error": err.Error()})
}
