package analysis

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sql-tutor/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetUserAnalytics(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	analytics, err := h.service.UserAnalytics(userID)
	if err != nil {
		log.Printf("[analysis] analytics for %s: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load analytics"})
		return
	}
	writeJSON(w, http.StatusOK, analytics)
}

func (h *Handler) GetDetailedAnalytics(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	detailed, err := h.service.DetailedAnalytics(userID)
	if err != nil {
		log.Printf("[analysis] detailed analytics for %s: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load detailed analytics"})
		return
	}
	writeJSON(w, http.StatusOK, detailed)
}

func (h *Handler) GetLearningPath(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	path, err := h.service.LearningPath(userID)
	if err != nil {
		log.Printf("[analysis] learning path for %s: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load learning path"})
		return
	}
	writeJSON(w, http.StatusOK, path)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
