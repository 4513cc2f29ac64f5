package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cyberaware-service/internal/app"
	"cyberaware-service/internal/infra/memory"
)

func newTestServer(t *testing.T) (*httptest.Server, *app.AlertFeed) {
	t.Helper()

	bank := memory.SeedQuestions()
	quizRepo := memory.NewQuestionRepository(memory.NewStaticBankLoader(bank), time.Minute)
	quiz := app.NewQuizService(memory.NewSessionStore(), quizRepo)

	feed := app.NewAlertFeed()
	reports := app.NewReportService(memory.NewReportStore(), feed)
	catalog := app.NewCatalogService(memory.NewCatalog(time.Now()))

	mux := http.NewServeMux()
	NewHandler(quiz, reports, catalog).Register(mux)
	mux.HandleFunc("GET /ws/alerts", NewWSHandler(feed, catalog).ServeWS)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, feed
}

func getJSON(t *testing.T, url string, into any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		t.Fatalf("decode %s: %v", url, err)
	}
	return resp.StatusCode
}

func postJSON(t *testing.T, url string, body any, into any) int {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()
	if into != nil {
		if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestListQuestionsWithFilters(t *testing.T) {
	server, _ := newTestServer(t)

	var body struct {
		Data []map[string]any `json:"data"`
	}
	status := getJSON(t, server.URL+"/api/quiz/questions?difficulty=easy&limit=2", &body)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if len(body.Data) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(body.Data))
	}
	for _, q := range body.Data {
		if q["difficulty"] != "easy" {
			t.Fatalf("expected easy questions only, got %v", q["difficulty"])
		}
	}
}

func TestGetQuestionNotFound(t *testing.T) {
	server, _ := newTestServer(t)

	var body map[string]string
	status := getJSON(t, server.URL+"/api/quiz/questions/nope", &body)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	if body["error"] != "Question not found" {
		t.Fatalf("unexpected error message %q", body["error"])
	}
}

func TestSubmitQuizGrades(t *testing.T) {
	server, _ := newTestServer(t)

	var result struct {
		Score          int `json:"score"`
		TotalQuestions int `json:"totalQuestions"`
		Percentage     int `json:"percentage"`
	}
	status := postJSON(t, server.URL+"/api/quiz/submit", map[string]any{
		"answers": []map[string]any{
			{"questionId": "q1", "selectedAnswer": 0},
			{"questionId": "q2", "selectedAnswer": 0},
		},
	}, &result)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if result.TotalQuestions != 2 {
		t.Fatalf("expected 2 graded answers, got %d", result.TotalQuestions)
	}
	if result.Score != 1 || result.Percentage != 50 {
		t.Fatalf("expected score 1 at 50%%, got %d at %d%%", result.Score, result.Percentage)
	}
}

func TestQuizCategories(t *testing.T) {
	server, _ := newTestServer(t)

	var body struct {
		Categories []string `json:"categories"`
	}
	if status := getJSON(t, server.URL+"/api/quiz-categories", &body); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if len(body.Categories) == 0 {
		t.Fatalf("expected categories, got none")
	}
}

func TestSessionLifecycle(t *testing.T) {
	server, _ := newTestServer(t)

	var view struct {
		SessionID string `json:"sessionId"`
		Stage     string `json:"stage"`
		Total     int    `json:"total"`
		Progress  int    `json:"progress"`
	}
	status := postJSON(t, server.URL+"/api/quiz/session", map[string]string{"mode": "rapid"}, &view)
	if status != http.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}
	if view.Stage != "active" || view.Total != 6 {
		t.Fatalf("unexpected session view: %+v", view)
	}

	base := fmt.Sprintf("%s/api/quiz/session/%s", server.URL, view.SessionID)

	var answer map[string]any
	if status := postJSON(t, base+"/answer", map[string]int{"optionIndex": 0}, &answer); status != http.StatusOK {
		t.Fatalf("expected 200 on answer, got %d", status)
	}
	if answer["questionId"] == "" {
		t.Fatalf("expected recorded answer, got %v", answer)
	}

	if status := postJSON(t, base+"/advance", nil, &view); status != http.StatusOK {
		t.Fatalf("expected 200 on advance, got %d", status)
	}
	if view.Progress != 33 {
		t.Fatalf("expected progress 33, got %d", view.Progress)
	}

	if status := postJSON(t, base+"/reset", nil, &view); status != http.StatusOK {
		t.Fatalf("expected 200 on reset, got %d", status)
	}
	if view.Stage != "setup" {
		t.Fatalf("expected setup stage after reset, got %s", view.Stage)
	}
}

func TestStartSessionUnknownMode(t *testing.T) {
	server, _ := newTestServer(t)

	var body map[string]string
	status := postJSON(t, server.URL+"/api/quiz/session", map[string]string{"mode": "marathon"}, &body)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
}

func TestStartSessionNoMatchingQuestions(t *testing.T) {
	server, _ := newTestServer(t)

	var body map[string]string
	status := postJSON(t, server.URL+"/api/quiz/session", map[string]string{
		"mode":     "rapid",
		"category": "Astrology",
	}, &body)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
}

func TestPasswordCheckTool(t *testing.T) {
	server, _ := newTestServer(t)

	var body struct {
		Score    int      `json:"score"`
		Label    string   `json:"label"`
		Feedback []string `json:"feedback"`
	}
	status := postJSON(t, server.URL+"/api/tools/password-check", map[string]string{"password": "Str0ng!Passw0rd"}, &body)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if body.Score != 5 || body.Label != "Very Strong" {
		t.Fatalf("unexpected assessment: %+v", body)
	}
	if len(body.Feedback) != 0 {
		t.Fatalf("expected no feedback, got %v", body.Feedback)
	}
}

func TestURLCheckTool(t *testing.T) {
	server, _ := newTestServer(t)

	var body struct {
		IsSuspicious bool     `json:"isSuspicious"`
		Reasons      []string `json:"reasons"`
	}
	status := postJSON(t, server.URL+"/api/tools/url-check", map[string]string{"url": "http://paypa1.com/login"}, &body)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if !body.IsSuspicious || len(body.Reasons) != 2 {
		t.Fatalf("unexpected assessment: %+v", body)
	}
}

func TestSubmitReportValidation(t *testing.T) {
	server, _ := newTestServer(t)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	status := postJSON(t, server.URL+"/api/scam-report", map[string]any{
		"description":  "something happened",
		"incidentDate": "2024-03-09",
	}, &body)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if body.Success || body.Message != "Please select scam type." {
		t.Fatalf("unexpected response: %+v", body)
	}
}

func TestSubmitReportAndStatus(t *testing.T) {
	server, _ := newTestServer(t)

	var receipt struct {
		Success  bool   `json:"success"`
		ReportID string `json:"reportId"`
	}
	status := postJSON(t, server.URL+"/api/scam-report", map[string]any{
		"type":         "Phishing",
		"description":  "fake bank mail",
		"incidentDate": "2024-03-09",
	}, &receipt)
	if status != http.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}
	if !receipt.Success || receipt.ReportID == "" {
		t.Fatalf("unexpected receipt: %+v", receipt)
	}

	var reportStatus struct {
		Status string `json:"status"`
		Type   string `json:"type"`
	}
	if code := getJSON(t, server.URL+"/api/scam-report/"+receipt.ReportID, &reportStatus); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if reportStatus.Status != "Under Review" || reportStatus.Type != "Phishing" {
		t.Fatalf("unexpected status: %+v", reportStatus)
	}

	var stats struct {
		Total           int            `json:"total"`
		ByType          map[string]int `json:"byType"`
		AveragePerMonth int            `json:"averagePerMonth"`
	}
	if code := getJSON(t, server.URL+"/api/scam-report-stats", &stats); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if stats.Total != 1 || stats.ByType["Phishing"] != 1 || stats.AveragePerMonth != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestRecommendationsFallback(t *testing.T) {
	server, _ := newTestServer(t)

	var body struct {
		Type            string   `json:"type"`
		Recommendations []string `json:"recommendations"`
	}
	if status := getJSON(t, server.URL+"/api/scam-recommendations", &body); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if body.Type != "Phishing" || len(body.Recommendations) != 5 {
		t.Fatalf("unexpected recommendations: %+v", body)
	}
}

func TestLiveAlertsPagination(t *testing.T) {
	server, _ := newTestServer(t)

	var body struct {
		Data  []map[string]any `json:"data"`
		Total int              `json:"total"`
	}
	if status := getJSON(t, server.URL+"/api/live-alerts?limit=3&offset=5", &body); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if body.Total != 7 || len(body.Data) != 2 {
		t.Fatalf("expected trailing page of 2 out of 7, got %d of %d", len(body.Data), body.Total)
	}
}

func TestAlertsByType(t *testing.T) {
	server, _ := newTestServer(t)

	var body struct {
		Data  []map[string]any `json:"data"`
		Total int              `json:"total"`
	}
	if status := getJSON(t, server.URL+"/api/live-alerts/type/Phishing", &body); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if body.Total != 2 {
		t.Fatalf("expected 2 phishing alerts, got %d", body.Total)
	}
}

func TestChecklistFilters(t *testing.T) {
	server, _ := newTestServer(t)

	var body struct {
		Data []map[string]any `json:"data"`
	}
	if status := getJSON(t, server.URL+"/api/safety-checklist?priority=high", &body); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if len(body.Data) == 0 {
		t.Fatalf("expected high priority items")
	}
	for _, item := range body.Data {
		if item["priority"] != "high" {
			t.Fatalf("unexpected priority %v", item["priority"])
		}
	}
}

func TestCrimeTypeLookup(t *testing.T) {
	server, _ := newTestServer(t)

	var crimeType struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if status := getJSON(t, server.URL+"/api/cybercrime-types/phishing", &crimeType); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if crimeType.ID != "phishing" {
		t.Fatalf("unexpected crime type: %+v", crimeType)
	}

	var missing map[string]string
	if status := getJSON(t, server.URL+"/api/cybercrime-types/nope", &missing); status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
}

func TestHealthz(t *testing.T) {
	server, _ := newTestServer(t)

	var body map[string]string
	if status := getJSON(t, server.URL+"/healthz", &body); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected health payload: %v", body)
	}
}
