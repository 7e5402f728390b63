package cheatsheet

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

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.List()
	if err != nil {
		log.Printf("[cheatsheet] list: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load cheat sheet"})
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) ByCategory(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]

	entries, err := h.service.ByCategory(category)
	if err != nil {
		log.Printf("[cheatsheet] category %q: %v", category, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load cheat sheet"})
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	term := mux.Vars(r)["term"]

	entries, err := h.service.Search(term)
	if err != nil {
		log.Printf("[cheatsheet] search %q: %v", term, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Search failed"})
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) DynamicExample(w http.ResponseWriter, r *http.Request) {
	var req models.DynamicExampleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.Command == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "command is required"})
		return
	}
	writeJSON(w, http.StatusOK, h.service.DynamicExample(r.Context(), req))
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
