package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	stemerr "github.com/deidaraiorek/ptstem/internal/errors"
	"github.com/deidaraiorek/ptstem/internal/stemmer"
)

const maxBatchWords = 10000

type Server struct {
	stemmer *stemmer.Stemmer
	router  chi.Router
	addr    string
}

type stemResult struct {
	Word  string `json:"word"`
	Stem  string `json:"stem"`
	Error string `json:"error,omitempty"`
}

type batchRequest struct {
	Words []string `json:"words"`
}

type batchResponse struct {
	Results []stemResult `json:"results"`
}

type optionsBody struct {
	Options []string `json:"options"`
}

func New(s *stemmer.Stemmer, addr string) *Server {
	srv := &Server{
		stemmer: s,
		addr:    addr,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", srv.handleHealth)
	r.Get("/stem/{word}", srv.handleStem)
	r.Post("/stem", srv.handleStemBatch)
	r.Get("/options", srv.handleGetOptions)
	r.Put("/options", srv.handleSetOptions)
	r.Get("/stats", srv.handleStats)

	srv.router = r
	return srv
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Stem server listening on %s", s.addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Println("Shutting down stem server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errCh
		return nil
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
}

func (s *Server) handleStem(w http.ResponseWriter, r *http.Request) {
	word := chi.URLParam(r, "word")

	stem, err := s.stemmer.Stem(word)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, stemResult{Word: word, Stem: stem})
}

func (s *Server) handleStemBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if len(req.Words) > maxBatchWords {
		writeError(w, http.StatusRequestEntityTooLarge, errors.New("too many words"))
		return
	}

	resp := batchResponse{Results: make([]stemResult, 0, len(req.Words))}
	for _, word := range req.Words {
		stem, err := s.stemmer.Stem(word)
		if err != nil && !stemerr.IsAlgorithmFailure(err) {
			writeError(w, statusFor(err), err)
			return
		}
		res := stemResult{Word: word, Stem: stem}
		if err != nil {
			res.Error = err.Error()
		}
		resp.Results = append(resp.Results, res)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, optionsBody{Options: s.stemmer.Options()})
}

func (s *Server) handleSetOptions(w http.ResponseWriter, r *http.Request) {
	var body optionsBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.stemmer.SetOptions(body.Options); err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	log.Printf("Stemmer options changed to %v", s.stemmer.Options())
	writeJSON(w, http.StatusOK, optionsBody{Options: s.stemmer.Options()})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.stemmer.Stats())
}

func statusFor(err error) int {
	switch {
	case stemerr.IsConfigError(err):
		return http.StatusBadRequest
	case stemerr.IsAlgorithmFailure(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
