// Package chathandler exposes the conversation and ledger over HTTP.
// The chat endpoint drives the dialogue one utterance at a time; the
// ledger endpoints give clients direct read access without a chat turn.
package chathandler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"leavebot/internal/conversation"
	"leavebot/internal/domain/ledger"
	"leavebot/internal/domain/report"
	"leavebot/internal/platform/metrics"
	"leavebot/internal/transport/http/api"
	"leavebot/internal/transport/http/middleware"
)

type Handler struct {
	Session *conversation.Session
	Metrics *metrics.Collector
	// Reseed builds a fresh ledger for the reset endpoint.
	Reseed func() *ledger.Ledger
}

func NewHandler(session *conversation.Session, collector *metrics.Collector, reseed func() *ledger.Ledger) *Handler {
	return &Handler{Session: session, Metrics: collector, Reseed: reseed}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
	r.Get("/chat/transcript", h.handleTranscript)
	r.Post("/chat/reset", h.handleReset)
	r.Route("/leave", func(r chi.Router) {
		r.Get("/balance", h.handleBalance)
		r.Get("/upcoming", h.handleUpcoming)
		r.Get("/history", h.handleHistory)
		r.Get("/history/export", h.handleHistoryExport)
	})
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
	State string `json:"state"`
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload chatRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if strings.TrimSpace(payload.Message) == "" {
		api.Fail(w, http.StatusBadRequest, "empty_message", "message must not be empty", middleware.GetRequestID(r.Context()))
		return
	}

	result := h.Session.HandleTurn(payload.Message)
	if h.Metrics != nil {
		h.Metrics.RecordUtterance(result.Unrecognized)
	}
	api.Success(w, chatResponse{Reply: result.Reply, State: result.State.String()}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleTranscript(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Session.Transcript(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	h.Session.Reset(h.Reseed())
	api.Success(w, map[string]string{"state": conversation.StateNone.String()}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleBalance(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Session.Balances(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpcoming(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Session.Upcoming(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	_, records := h.Session.Snapshot()
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleHistoryExport(w http.ResponseWriter, r *http.Request) {
	emp, records := h.Session.Snapshot()
	data, err := report.LeaveStatement(emp, records, time.Now())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to render leave statement", middleware.GetRequestID(r.Context()))
		return
	}
	api.WritePDF(w, "leave-statement.pdf", data)
}
