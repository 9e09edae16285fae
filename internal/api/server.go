// Package api is the thin HTTP layer: it ingests JSON, delegates to the
// services, and serializes results. It performs no fee logic itself.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/feeform/feeform/internal/assistant"
	"github.com/feeform/feeform/internal/fees"
	"github.com/feeform/feeform/internal/model"
)

// RefData lists the reference tables.
type RefData interface {
	ListAgencies(ctx context.Context) ([]model.Agency, error)
	ListProcedureTypes(ctx context.Context) ([]model.ProcedureType, error)
}

// Calculator runs the fee rule engine.
type Calculator interface {
	Calculate(ctx context.Context, in fees.Input) (*model.FeeResult, error)
}

// Assistant proxies a chat message to the language model.
type Assistant interface {
	Ask(ctx context.Context, message string) (assistant.Reply, error)
}

type Server struct {
	refdata   RefData
	engine    Calculator
	assistant Assistant
	mux       *http.ServeMux
	log       zerolog.Logger
}

func NewServer(refdata RefData, engine Calculator, asst Assistant, log zerolog.Logger) *Server {
	s := &Server{
		refdata:   refdata,
		engine:    engine,
		assistant: asst,
		mux:       http.NewServeMux(),
		log:       log,
	}
	s.registerRoutes()
	return s
}

// Method patterns give non-matching methods a 405 with an Allow header.
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /agencies", s.handleAgencies)
	s.mux.HandleFunc("GET /procedures", s.handleProcedures)
	s.mux.HandleFunc("POST /calculate-fee", s.handleCalculateFee)
	s.mux.HandleFunc("POST /ask-assistant", s.handleAskAssistant)
	s.mux.HandleFunc("GET /health", s.handleHealth)
}

// ServeHTTP tags every request with an id and logs its outcome.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := uuid.NewString()
	reqLog := s.log.With().
		Str("request_id", requestID).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Logger()

	w.Header().Set("X-Request-Id", requestID)
	s.mux.ServeHTTP(w, r.WithContext(reqLog.WithContext(r.Context())))

	reqLog.Info().Dur("duration", time.Since(start)).Msg("request served")
}

func (s *Server) handleAgencies(w http.ResponseWriter, r *http.Request) {
	agencies, err := s.refdata.ListAgencies(r.Context())
	if err != nil {
		// Detail stays in the server log; the caller gets a generic body.
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("agency listing failed")
		writeError(w, http.StatusInternalServerError, "failed to load agencies")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"agencies": agencies})
}

func (s *Server) handleProcedures(w http.ResponseWriter, r *http.Request) {
	procedures, err := s.refdata.ListProcedureTypes(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("procedure listing failed")
		writeError(w, http.StatusInternalServerError, "failed to load procedures")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"procedures": procedures})
}

func (s *Server) handleCalculateFee(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := s.engine.Calculate(r.Context(), req.toInput())
	if err != nil {
		var verr *fees.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Msg)
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("fee calculation failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleAskAssistant(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message any `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	message, _ := req.Message.(string)

	reply, err := s.assistant.Ask(r.Context(), message)
	if err != nil {
		if errors.Is(err, assistant.ErrEmptyMessage) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("assistant request failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if reply.Structured != nil {
		writeRaw(w, http.StatusOK, reply.Structured)
		return
	}
	writeJSON(w, http.StatusOK, reply.Text)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
