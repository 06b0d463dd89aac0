/*
Copyright © 2025 Daniel Rivas <danielrivasmd@gmail.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/
package site

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/DanielRivasMD/Razor/config"
	"github.com/DanielRivasMD/Razor/data"
	"github.com/DanielRivasMD/Razor/view"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

// Server renders the current bundle of a store on every request, so a
// watched store shows reloaded data without a restart.
type Server struct {
	site  config.SiteConfig
	store *data.Store
	log   *zap.Logger
	pages *renderer
}

func New(site config.SiteConfig, store *data.Store, log *zap.Logger) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}
	pages, err := newRenderer()
	if err != nil {
		return nil, err
	}
	return &Server{site: site, store: store, log: log, pages: pages}, nil
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /commands", s.handleCommands)
	mux.HandleFunc("GET /commands/{$}", s.handleCommands)
	mux.HandleFunc("GET /updates", s.handleUpdates)
	mux.HandleFunc("GET /updates/{$}", s.handleUpdates)
	mux.HandleFunc("GET /api/commands", s.handleAPI)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS())))
	return s.withLogging(withSecurityHeaders(mux))
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func (s *Server) page(name, heading string) page {
	return page{Site: s.site, Base: "/", Page: name, Heading: heading}
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.write(w, pageHome, homeModel(s.page(pageHome, "Home"), s.store.Current()))
}

func (s *Server) handleCommands(w http.ResponseWriter, r *http.Request) {
	pipe := view.NewPipeline(s.store.Current().Catalog())
	state, effects := requestState(pipe, r.URL.Query())
	s.write(w, pageCommands, commandsModel(s.page(pageCommands, "Commands"), pipe, state, effects, false))
}

func (s *Server) handleUpdates(w http.ResponseWriter, r *http.Request) {
	s.write(w, pageUpdates, updatesModel(s.page(pageUpdates, "Updates"), s.store.Current()))
}

func (s *Server) handleAPI(w http.ResponseWriter, r *http.Request) {
	pipe := view.NewPipeline(s.store.Current().Catalog())
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(apiModel(pipe, r.URL.Query().Get("q"))); err != nil {
		s.log.Warn("encode api response", zap.Error(err))
	}
}

func (s *Server) write(w http.ResponseWriter, name string, model any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.pages.render(w, name, model); err != nil {
		s.log.Error("render page", zap.String("page", name), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func withSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Content-Security-Policy", "default-src 'self'; base-uri 'none'; frame-ancestors 'none'")
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

////////////////////////////////////////////////////////////////////////////////////////////////////
