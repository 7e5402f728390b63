package practice

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/sql-tutor/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ── Modules ──────────────────────────────────────────────

func (h *Handler) ListModules(w http.ResponseWriter, r *http.Request) {
	modules, err := h.service.store.GetModules()
	if err != nil {
		log.Printf("[practice] list modules: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list modules"})
		return
	}
	writeJSON(w, http.StatusOK, modules)
}

func (h *Handler) GetModule(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid module ID"})
		return
	}

	module, err := h.service.store.GetModule(id)
	if errors.Is(err, sql.ErrNoRows) {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Module not found"})
		return
	}
	if err != nil {
		log.Printf("[practice] get module %d: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to get module"})
		return
	}
	writeJSON(w, http.StatusOK, module)
}

// GetBusinessQuestion serves GET /api/modules/{id}/business-question.
// The difficulty query parameter defaults to easy.
func (h *Handler) GetBusinessQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid module ID"})
		return
	}

	difficulty := models.Difficulty(r.URL.Query().Get("difficulty"))
	question, err := h.service.GetBusinessQuestion(r.Context(), id, difficulty)
	if err != nil {
		log.Printf("[practice] business question for module %d: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to get question"})
		return
	}
	writeJSON(w, http.StatusOK, question)
}

// GenerateQuestion serves POST /api/practice/question for clients that
// prefer a request body over path parameters.
func (h *Handler) GenerateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.ModuleID <= 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "module_id is required"})
		return
	}

	question, err := h.service.GetBusinessQuestion(r.Context(), req.ModuleID, req.Difficulty)
	if err != nil {
		log.Printf("[practice] generate question: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to generate question"})
		return
	}
	writeJSON(w, http.StatusOK, question)
}

// ── Evaluation ───────────────────────────────────────────

func (h *Handler) EvaluateAnswer(w http.ResponseWriter, r *http.Request) {
	var req models.EvaluateAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.QuestionID == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "question_id is required"})
		return
	}
	// Empty submissions are allowed; the grader scores them.
	resp, err := h.service.EvaluateAnswer(r.Context(), req)
	if err != nil {
		log.Printf("[practice] evaluate answer: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Evaluation failed"})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetUserProgress serves GET /api/practice/progress/{user_id}. The
// bare /practice/progress route hits the same handler with an empty
// user ID, which yields the empty list anonymous users expect.
func (h *Handler) GetUserProgress(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	entries, err := h.service.store.ListProgress(userID)
	if err != nil {
		log.Printf("[practice] list progress for %q: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to get progress"})
		return
	}
	writeJSON(w, http.StatusOK, progressPayload(entries))
}

// progressPayload normalizes a nil result to an empty slice so the
// response body is a JSON array, never null.
func progressPayload(entries []models.UserProgressEntry) []models.UserProgressEntry {
	if entries == nil {
		return []models.UserProgressEntry{}
	}
	return entries
}

func (h *Handler) AdaptDifficulty(w http.ResponseWriter, r *http.Request) {
	var req models.AdaptDifficultyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	writeJSON(w, http.StatusOK, h.service.AdaptDifficulty(req))
}

func (h *Handler) ValidateSQL(w http.ResponseWriter, r *http.Request) {
	var req models.ValidateSQLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.SQL) == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "sql is required"})
		return
	}
	writeJSON(w, http.StatusOK, h.service.ValidateSQL(r.Context(), req.SQL))
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
