package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"tandoor-ordering/reconcile-svc/internal/domain"
	"tandoor-ordering/reconcile-svc/internal/service"
)

type Handler struct {
	Reconciler service.ReconcilerInterface
	Logger     *zap.Logger
}

func NewHandler(reconciler service.ReconcilerInterface, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Reconciler: reconciler, Logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/reconciliations", h.listReconciliations).Methods("GET")
	r.HandleFunc("/api/reconciliations/{id}/resolve", h.resolveReconciliation).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "reconcile-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) listReconciliations(w http.ResponseWriter, r *http.Request) {
	status := domain.Status(r.URL.Query().Get("status"))
	recs, err := h.Reconciler.List(r.Context(), status)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, recs)
}

func (h *Handler) resolveReconciliation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid reconciliation id"})
		return
	}

	var req struct {
		Note string `json:"note"`
	}
	if r.ContentLength != 0 {
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&req); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
	}

	rec, err := h.Reconciler.Resolve(r.Context(), id, req.Note)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidStatus):
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		respondJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrAlreadyResolved):
		respondJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		h.Logger.Error("reconciliation request failed", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
