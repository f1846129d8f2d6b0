// apps/go-cli/internal/httpserver/server.go
//
// HTTP mirror for cached daily words.
// Responsibilities:
//   - Router + middleware (JSON, timeouts, panic recovery, request IDs).
//   - GET /health.
//   - GET /svc/wordle/v2/{date}.json in the same shape as the upstream endpoint,
//     so another player can point WORDLE_API_BASE at this server.
//   - GET /dictionary: the guess list as plain text.
//
// Notes:
//   - Only cached dates are served; the mirror never calls upstream itself.
//   - Unknown dates answer 404 with the upstream failure body.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/daily"
	"github.com/robalobadob/wordle/apps/go-cli/internal/store"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

// launch is the first puzzle day; id and days_since_launch count from it.
var launch = time.Date(2021, time.June, 19, 0, 0, 0, 0, time.UTC)

// Server bundles router, answer cache and dictionary.
type Server struct {
	r     *chi.Mux
	store store.Store
	dict  *words.Dictionary
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, dict *words.Dictionary) *Server {
	s := &Server{r: chi.NewRouter(), store: st, dict: dict}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(requestLogger)

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/svc/wordle/v2/{file}", s.handlePuzzle)
	s.r.Get("/dictionary", s.handleDictionary)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, failure("Not Found"))
	})
	return s
}

// shutdownGrace bounds how long in-flight requests get once ctx is done.
const shutdownGrace = 5 * time.Second

// Start listens on addr and serves until ctx is done.
func (s *Server) Start(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully. A clean shutdown returns nil.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down mirror")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// handlePuzzle serves one cached date in the upstream success shape.
func (s *Server) handlePuzzle(w http.ResponseWriter, r *http.Request) {
	key, ok := strings.CutSuffix(chi.URLParam(r, "file"), ".json")
	if !ok {
		writeJSON(w, http.StatusNotFound, failure("Not Found"))
		return
	}
	d, err := daily.ParseDate(key)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, failure("Invalid date"))
		return
	}

	word, err := s.store.Get(r.Context(), key)
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, failure("Not Found"))
		return
	}
	if err != nil {
		log.Error().Err(err).Str("date", key).Msg("read cache")
		writeJSON(w, http.StatusInternalServerError, failure("Internal Error"))
		return
	}

	n := int(d.Sub(launch).Hours() / 24)
	writeJSON(w, http.StatusOK, daily.Puzzle{
		ID:              n + 1,
		Solution:        word,
		PrintDate:       key,
		DaysSinceLaunch: n,
		Editor:          "mirror",
	})
}

// handleDictionary streams the guess list, one word per line.
func (s *Server) handleDictionary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(strings.Join(s.dict.Words(), "\n") + "\n"))
}

// ----------------------------- helpers -------------------------------------

func failure(msg string) daily.Failure {
	return daily.Failure{Status: "ERROR", Errors: []string{msg}, Results: []string{}}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
