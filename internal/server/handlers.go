package server

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kyaoi/chronoline/internal/render"
	"github.com/kyaoi/chronoline/internal/timeline"
)

type markerJSON struct {
	timeline.Event
	Index    int     `json:"index"`
	Position float64 `json:"position"`
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	tl := s.current()
	st := StateFromQuery(tl, r.URL.Query(), s.cfg.Theme)

	var buf bytes.Buffer
	opts := render.Options{Title: s.cfg.Title, BaseURL: "/", LiveURL: "/live"}
	if err := render.HTML(&buf, tl, st, opts); err != nil {
		log.Printf("rendering page: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	tl := s.current()
	view := timeline.Render(tl, timeline.Initial(tl, s.cfg.Theme))
	out := make([]markerJSON, 0, len(view.Markers))
	for _, m := range view.Markers {
		ev, _ := tl.At(m.Index)
		out = append(out, markerJSON{Event: ev, Index: m.Index, Position: m.Position})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"events":     out,
		"categories": tl.Categories(),
	})
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid year"})
		return
	}
	tl := s.current()
	i := tl.IndexOf(year)
	if i < 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Event not found"})
		return
	}
	ev, _ := tl.At(i)
	writeJSON(w, http.StatusOK, markerJSON{
		Event:    ev,
		Index:    i,
		Position: timeline.Position(i, tl.Len()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}
