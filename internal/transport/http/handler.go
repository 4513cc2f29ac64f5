package http

import (
	"encoding/json"
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"

	"cyberaware-service/internal/analyzer"
	"cyberaware-service/internal/app"
	"cyberaware-service/internal/domain"
)

// Handler exposes the REST API.
type Handler struct {
	quiz    *app.QuizService
	reports *app.ReportService
	catalog *app.CatalogService
}

func NewHandler(quiz *app.QuizService, reports *app.ReportService, catalog *app.CatalogService) *Handler {
	return &Handler{quiz: quiz, reports: reports, catalog: catalog}
}

// Register mounts all routes on the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.handleHealth)
	mux.HandleFunc("GET /api/ping", h.handlePing)

	mux.HandleFunc("GET /api/quiz/questions", h.handleListQuestions)
	mux.HandleFunc("GET /api/quiz/questions/{id}", h.handleGetQuestion)
	mux.HandleFunc("POST /api/quiz/submit", h.handleSubmitQuiz)
	mux.HandleFunc("GET /api/quiz-categories", h.handleQuizCategories)

	mux.HandleFunc("POST /api/quiz/session", h.handleStartSession)
	mux.HandleFunc("GET /api/quiz/session/{id}", h.handleSessionState)
	mux.HandleFunc("POST /api/quiz/session/{id}/answer", h.handleSessionAnswer)
	mux.HandleFunc("POST /api/quiz/session/{id}/advance", h.handleSessionAdvance)
	mux.HandleFunc("POST /api/quiz/session/{id}/retry", h.handleSessionRetry)
	mux.HandleFunc("POST /api/quiz/session/{id}/reset", h.handleSessionReset)

	mux.HandleFunc("POST /api/tools/password-check", h.handlePasswordCheck)
	mux.HandleFunc("POST /api/tools/url-check", h.handleURLCheck)
	mux.HandleFunc("POST /api/tools/email-check", h.handleEmailCheck)

	mux.HandleFunc("POST /api/scam-report", h.handleSubmitReport)
	mux.HandleFunc("GET /api/scam-report/{reportId}", h.handleReportStatus)
	mux.HandleFunc("GET /api/scam-report-stats", h.handleReportStats)
	mux.HandleFunc("GET /api/scam-recommendations", h.handleRecommendations)
	mux.HandleFunc("GET /api/recent-reports", h.handleRecentReports)

	mux.HandleFunc("GET /api/cybercrime-types", h.handleCrimeTypes)
	mux.HandleFunc("GET /api/cybercrime-types/{id}", h.handleCrimeType)
	mux.HandleFunc("GET /api/live-alerts", h.handleLiveAlerts)
	mux.HandleFunc("GET /api/live-alerts/type/{type}", h.handleAlertsByType)
	mux.HandleFunc("GET /api/live-alerts/{id}", h.handleAlert)
	mux.HandleFunc("GET /api/safety-checklist", h.handleChecklist)
	mux.HandleFunc("GET /api/safety-checklist-categories", h.handleChecklistCategories)
	mux.HandleFunc("GET /api/safety-checklist/{id}", h.handleChecklistItem)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

var notFoundMessages = map[error]string{
	domain.ErrQuestionNotFound:      "Question not found",
	domain.ErrSessionNotFound:       "Session not found",
	domain.ErrReportNotFound:        "Report not found",
	domain.ErrAlertNotFound:         "Alert not found",
	domain.ErrCrimeTypeNotFound:     "Crime type not found",
	domain.ErrChecklistItemNotFound: "Checklist item not found",
}

func writeError(w http.ResponseWriter, err error, fallback string) {
	for sentinel, msg := range notFoundMessages {
		if errors.Is(err, sentinel) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: msg})
			return
		}
	}
	switch {
	case errors.Is(err, domain.ErrNoQuestions):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "No questions available for the selected filters"})
	case errors.Is(err, domain.ErrUnknownMode):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Unknown quiz mode"})
	case errors.Is(err, domain.ErrSessionNotActive):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "Session is not active"})
	default:
		log.Printf("request failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: fallback})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, into any) bool {
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return false
	}
	return true
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "ping"})
}

func (h *Handler) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	filter := domain.QuestionFilter{
		Category:   r.URL.Query().Get("category"),
		Difficulty: r.URL.Query().Get("difficulty"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid limit"})
			return
		}
		filter.Limit = limit
	}

	questions, err := h.quiz.Questions(r.Context(), filter)
	if err != nil {
		writeError(w, err, "Failed to fetch quiz questions")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": questions})
}

func (h *Handler) handleGetQuestion(w http.ResponseWriter, r *http.Request) {
	question, err := h.quiz.Question(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err, "Failed to fetch question")
		return
	}
	writeJSON(w, http.StatusOK, question)
}

func (h *Handler) handleSubmitQuiz(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Answers []domain.SubmittedAnswer `json:"answers"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Answers == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid answers format"})
		return
	}

	result, err := h.quiz.Grade(r.Context(), body.Answers)
	if err != nil {
		writeError(w, err, "Failed to submit quiz")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleQuizCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.quiz.Categories(r.Context())
	if err != nil {
		writeError(w, err, "Failed to fetch categories")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

func (h *Handler) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Mode       string `json:"mode"`
		Category   string `json:"category"`
		Difficulty string `json:"difficulty"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	view, err := h.quiz.StartSession(r.Context(), app.Mode(body.Mode), body.Category, body.Difficulty)
	if err != nil {
		writeError(w, err, "Failed to start session")
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (h *Handler) handleSessionState(w http.ResponseWriter, r *http.Request) {
	view, err := h.quiz.State(r.PathValue("id"))
	if err != nil {
		writeError(w, err, "Failed to fetch session")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) handleSessionAnswer(w http.ResponseWriter, r *http.Request) {
	var body struct {
		OptionIndex int `json:"optionIndex"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	answer, err := h.quiz.SelectAnswer(r.PathValue("id"), body.OptionIndex)
	if err != nil {
		writeError(w, err, "Failed to record answer")
		return
	}
	writeJSON(w, http.StatusOK, answer)
}

func (h *Handler) handleSessionAdvance(w http.ResponseWriter, r *http.Request) {
	view, err := h.quiz.Advance(r.PathValue("id"))
	if err != nil {
		writeError(w, err, "Failed to advance session")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) handleSessionRetry(w http.ResponseWriter, r *http.Request) {
	view, err := h.quiz.Retry(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err, "Failed to retry session")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) handleSessionReset(w http.ResponseWriter, r *http.Request) {
	view, err := h.quiz.Reset(r.PathValue("id"))
	if err != nil {
		writeError(w, err, "Failed to reset session")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) handlePasswordCheck(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	writeJSON(w, http.StatusOK, analyzer.CheckPassword(body.Password))
}

func (h *Handler) handleURLCheck(w http.ResponseWriter, r *http.Request) {
	var body struct {
		URL string `json:"url"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	writeJSON(w, http.StatusOK, analyzer.CheckURL(body.URL))
}

func (h *Handler) handleEmailCheck(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Message string `json:"message"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	writeJSON(w, http.StatusOK, analyzer.CheckEmail(body.Message))
}

func (h *Handler) handleSubmitReport(w http.ResponseWriter, r *http.Request) {
	var input domain.ScamReportInput
	if !decodeBody(w, r, &input) {
		return
	}

	receipt, err := h.reports.Submit(r.Context(), input)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"success": false,
				"message": verr.Message,
			})
			return
		}
		writeError(w, err, "Failed to submit report")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"success":  true,
		"reportId": receipt.ReportID,
		"message":  receipt.Message,
	})
}

func (h *Handler) handleReportStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.reports.Status(r.Context(), r.PathValue("reportId"))
	if err != nil {
		writeError(w, err, "Failed to fetch report status")
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (h *Handler) handleReportStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reports.Stats(r.Context())
	if err != nil {
		writeError(w, err, "Failed to fetch report statistics")
		return
	}

	averagePerMonth := 0
	if len(stats.ByMonth) > 0 {
		averagePerMonth = int(math.Round(float64(stats.Total) / float64(len(stats.ByMonth))))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total":           stats.Total,
		"byType":          stats.ByType,
		"byMonth":         stats.ByMonth,
		"averagePerMonth": averagePerMonth,
	})
}

func (h *Handler) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, app.Recommendations(r.URL.Query().Get("type")))
}

func (h *Handler) handleRecentReports(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reports.Summary(r.Context())
	if err != nil {
		writeError(w, err, "Failed to fetch recent reports")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) handleCrimeTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.catalog.CrimeTypes(r.Context())
	if err != nil {
		writeError(w, err, "Failed to fetch crime types")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": types})
}

func (h *Handler) handleCrimeType(w http.ResponseWriter, r *http.Request) {
	crimeType, err := h.catalog.CrimeType(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err, "Failed to fetch crime type")
		return
	}
	writeJSON(w, http.StatusOK, crimeType)
}

func (h *Handler) handleLiveAlerts(w http.ResponseWriter, r *http.Request) {
	limit := intQuery(r, "limit", 10)
	offset := intQuery(r, "offset", 0)

	alerts, total, err := h.catalog.Alerts(r.Context(), limit, offset)
	if err != nil {
		writeError(w, err, "Failed to fetch live alerts")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": alerts, "total": total})
}

func (h *Handler) handleAlert(w http.ResponseWriter, r *http.Request) {
	alert, err := h.catalog.Alert(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err, "Failed to fetch alert")
		return
	}
	writeJSON(w, http.StatusOK, alert)
}

func (h *Handler) handleAlertsByType(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.catalog.AlertsByType(r.Context(), r.PathValue("type"))
	if err != nil {
		writeError(w, err, "Failed to fetch alerts by type")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": alerts, "total": len(alerts)})
}

func (h *Handler) handleChecklist(w http.ResponseWriter, r *http.Request) {
	filter := domain.ChecklistFilter{
		Category: r.URL.Query().Get("category"),
		Priority: r.URL.Query().Get("priority"),
	}
	items, err := h.catalog.ChecklistItems(r.Context(), filter)
	if err != nil {
		writeError(w, err, "Failed to fetch checklist")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": items})
}

func (h *Handler) handleChecklistItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.catalog.ChecklistItem(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err, "Failed to fetch checklist item")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) handleChecklistCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.ChecklistCategories(r.Context())
	if err != nil {
		writeError(w, err, "Failed to fetch categories")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

func intQuery(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
