package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"tandoor-ordering/mailer-svc/internal/domain"
	"tandoor-ordering/mailer-svc/internal/service"
)

type Handler struct {
	Mailer service.MailerInterface
	Logger *zap.Logger
}

func NewHandler(mailer service.MailerInterface, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Mailer: mailer, Logger: logger}
}

type response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	// All methods are routed here so the handler can answer with the JSON 405.
	r.HandleFunc("/api/send-email", h.sendEmail)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "mailer-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) sendEmail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		respondJSON(w, http.StatusMethodNotAllowed, response{Message: "Method not allowed"})
		return
	}

	var inquiry domain.Inquiry
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10)).Decode(&inquiry); err != nil {
		respondJSON(w, http.StatusBadRequest, response{Message: "Missing required fields"})
		return
	}

	if err := h.Mailer.SendInquiry(r.Context(), inquiry); err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			respondJSON(w, http.StatusBadRequest, response{Message: "Missing required fields"})
			return
		}
		h.Logger.Error("send-email failed", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, response{Message: "Failed to send message. Please try again later."})
		return
	}
	respondJSON(w, http.StatusOK, response{Success: true, Message: "Message sent successfully!"})
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
