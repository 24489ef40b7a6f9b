package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	modelchat "github.com/meridianhq/hr-assistant/backend/internal/model/chat"
	"github.com/meridianhq/hr-assistant/backend/internal/model/reference"
	"github.com/meridianhq/hr-assistant/backend/internal/model/topic"
	"github.com/meridianhq/hr-assistant/backend/internal/service/memory"
	"github.com/meridianhq/hr-assistant/backend/internal/service/orchestrator"
)

type stubClassifier struct {
	result topic.Topic
	err    error
}

func (s stubClassifier) Classify(_ context.Context, _ string, _ []modelchat.Turn) (topic.Topic, error) {
	return s.result, s.err
}

type stubComposer struct {
	text string
}

func (s stubComposer) Compose(_ context.Context, _ orchestrator.ComposeRequest) (string, error) {
	return s.text, nil
}

func setupRouter(classifier orchestrator.Classifier, composer orchestrator.Composer) (*chi.Mux, *memory.Store) {
	data := reference.NewMemoryStore(reference.Dataset{
		Employees: []reference.Employee{
			{ID: "EMP001", Name: "Sarah Johnson", Department: "Engineering", Position: "Senior Developer"},
		},
		Payslips: map[string]reference.PayslipHistory{
			"EMP001": {EmployeeName: "Sarah Johnson", Payslips: []reference.Payslip{
				{Month: "July", Year: 2025, GrossPay: 8200, NetPay: 6100},
			}},
		},
	})
	mem := memory.NewStore(0)
	orch := orchestrator.NewService(mem, data, classifier, composer, orchestrator.Options{})
	handler := New(orch, mem, 10)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, mem
}

func postChat(t *testing.T, r http.Handler, body map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestChatHappyPath(t *testing.T) {
	r, mem := setupRouter(stubClassifier{result: topic.Payslip}, stubComposer{text: "Your net pay was $6,100."})

	resp := postChat(t, r, map[string]string{
		"message":     "Show my payslip",
		"employee_id": "EMP001",
		"session_id":  "s1",
		"language":    "en",
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var reply modelchat.Reply
	if err := json.Unmarshal(resp.Body.Bytes(), &reply); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if reply.AgentName != "Payslip Agent" {
		t.Fatalf("unexpected agent: %s", reply.AgentName)
	}
	if reply.Response == "" || reply.Timestamp.IsZero() {
		t.Fatalf("incomplete reply: %+v", reply)
	}

	if turns := mem.Recent("s1", 10); len(turns) != 2 {
		t.Fatalf("expected 2 turns stored, got %d", len(turns))
	}
}

func TestChatEmptyMessage(t *testing.T) {
	r, mem := setupRouter(stubClassifier{result: topic.General}, stubComposer{text: "x"})

	resp := postChat(t, r, map[string]string{
		"message":    "   ",
		"session_id": "s1",
	})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if turns := mem.Recent("s1", 10); len(turns) != 0 {
		t.Fatalf("rejected request must not store turns, got %d", len(turns))
	}
}

func TestChatUnknownEmployee(t *testing.T) {
	r, _ := setupRouter(stubClassifier{result: topic.General}, stubComposer{text: "x"})

	resp := postChat(t, r, map[string]string{
		"message":     "Show my payslip",
		"employee_id": "EMP999",
		"session_id":  "s1",
	})

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if body["code"] != "unknown_employee" {
		t.Fatalf("expected unknown_employee code, got %q", body["code"])
	}
}

func TestChatCollaboratorFailureStillOK(t *testing.T) {
	r, _ := setupRouter(stubClassifier{err: errors.New("model down")}, stubComposer{text: "unused"})

	resp := postChat(t, r, map[string]string{
		"message":     "Show my payslip",
		"employee_id": "EMP001",
		"session_id":  "s1",
	})

	// Collaborator faults degrade inside the orchestrator; the endpoint
	// still answers 200.
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var reply modelchat.Reply
	if err := json.Unmarshal(resp.Body.Bytes(), &reply); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if reply.AgentName != topic.SystemAgentName {
		t.Fatalf("expected System agent, got %s", reply.AgentName)
	}
}

func TestChatInvalidBody(t *testing.T) {
	r, _ := setupRouter(stubClassifier{result: topic.General}, stubComposer{text: "x"})

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader([]byte("{broken")))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestClearSessionEndpoint(t *testing.T) {
	r, mem := setupRouter(stubClassifier{result: topic.General}, stubComposer{text: "hi"})
	mem.Append("s1", modelchat.Turn{Role: modelchat.RoleUser, Content: "hello"})

	req := httptest.NewRequest(http.MethodDelete, "/session/s1", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if turns := mem.Recent("s1", 10); len(turns) != 0 {
		t.Fatalf("expected cleared session, got %d turns", len(turns))
	}
}

func TestHistoryEndpoint(t *testing.T) {
	r, mem := setupRouter(stubClassifier{result: topic.General}, stubComposer{text: "hi"})
	mem.Append("s1", modelchat.Turn{Role: modelchat.RoleUser, Content: "hello"})

	req := httptest.NewRequest(http.MethodGet, "/session/s1/history", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body struct {
		SessionID string           `json:"session_id"`
		Turns     []modelchat.Turn `json:"turns"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid history body: %v", err)
	}
	if len(body.Turns) != 1 || body.Turns[0].Content != "hello" {
		t.Fatalf("unexpected history: %+v", body.Turns)
	}
}
