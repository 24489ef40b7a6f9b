package orchestrator_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/meridianhq/hr-assistant/backend/internal/model/chat"
	"github.com/meridianhq/hr-assistant/backend/internal/model/reference"
	"github.com/meridianhq/hr-assistant/backend/internal/model/topic"
	"github.com/meridianhq/hr-assistant/backend/internal/service/memory"
	"github.com/meridianhq/hr-assistant/backend/internal/service/orchestrator"
)

func testStore() reference.Store {
	return reference.NewMemoryStore(reference.Dataset{
		Employees: []reference.Employee{
			{ID: "EMP001", Name: "Sarah Johnson", Department: "Engineering", Position: "Senior Developer"},
			{ID: "EMP003", Name: "Ravi Kumar", Department: "Finance", Position: "Analyst"},
		},
		Payslips: map[string]reference.PayslipHistory{
			"EMP001": {
				EmployeeName: "Sarah Johnson",
				Payslips: []reference.Payslip{{
					Month: "July", Year: 2025, PayPeriod: "2025-07-01 to 2025-07-31",
					PaymentDate: "2025-07-31", BasicSalary: 7500,
					GrossPay: 8200, NetPay: 6100,
				}},
			},
		},
		Policies: []reference.Policy{
			{ID: "POL001", Title: "Remote Work", Category: "Workplace", Content: "Up to three remote days per week."},
		},
	})
}

type fakeClassifier struct {
	result topic.Topic
	err    error
}

func (f *fakeClassifier) Classify(_ context.Context, _ string, _ []chat.Turn) (topic.Topic, error) {
	return f.result, f.err
}

type fakeComposer struct {
	text    string
	err     error
	lastReq orchestrator.ComposeRequest
}

func (f *fakeComposer) Compose(_ context.Context, req orchestrator.ComposeRequest) (string, error) {
	f.lastReq = req
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func TestHandleMessagePayslipScenario(t *testing.T) {
	mem := memory.NewStore(0)
	composer := &fakeComposer{text: "Your July net pay was $6,100."}
	svc := orchestrator.NewService(mem, testStore(),
		&fakeClassifier{result: topic.Payslip}, composer, orchestrator.Options{})

	reply, err := svc.HandleMessage(context.Background(), "s1", "EMP001", "Show my payslip", "en")
	if err != nil {
		t.Fatalf("HandleMessage err: %v", err)
	}
	if reply.AgentName != "Payslip Agent" {
		t.Fatalf("unexpected agent: %s", reply.AgentName)
	}
	if reply.Response == "" || reply.Timestamp.IsZero() {
		t.Fatalf("incomplete reply: %+v", reply)
	}
	if !strings.Contains(composer.lastReq.DataContext, "Net pay: $6100.00") {
		t.Fatalf("composer did not receive payslip context: %q", composer.lastReq.DataContext)
	}

	turns := mem.Recent("s1", 10)
	if len(turns) != 2 {
		t.Fatalf("expected user and assistant turns, got %d", len(turns))
	}
	if turns[0].Role != chat.RoleUser || turns[1].Role != chat.RoleAssistant {
		t.Fatalf("unexpected turn roles: %s, %s", turns[0].Role, turns[1].Role)
	}
	if turns[1].AgentName != "Payslip Agent" {
		t.Fatalf("assistant turn missing agent label: %q", turns[1].AgentName)
	}
}

func TestUnknownEmployeeRejectedWithoutSideEffects(t *testing.T) {
	mem := memory.NewStore(0)
	svc := orchestrator.NewService(mem, testStore(),
		&fakeClassifier{result: topic.Payslip}, &fakeComposer{text: "x"}, orchestrator.Options{})

	_, err := svc.HandleMessage(context.Background(), "s1", "EMP999", "Show my payslip", "en")
	if !errors.Is(err, orchestrator.ErrUnknownEmployee) {
		t.Fatalf("expected ErrUnknownEmployee, got %v", err)
	}
	if turns := mem.Recent("s1", 10); len(turns) != 0 {
		t.Fatalf("session mutated on rejected request: %d turns", len(turns))
	}
}

func TestEmptyMessageRejectedWithoutSideEffects(t *testing.T) {
	mem := memory.NewStore(0)
	svc := orchestrator.NewService(mem, testStore(),
		&fakeClassifier{result: topic.Payslip}, &fakeComposer{text: "x"}, orchestrator.Options{})

	_, err := svc.HandleMessage(context.Background(), "s1", "EMP001", "   ", "en")
	if !errors.Is(err, orchestrator.ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
	if turns := mem.Recent("s1", 10); len(turns) != 0 {
		t.Fatalf("session mutated on rejected request: %d turns", len(turns))
	}
}

func TestClassifierFailureDegradesToSystem(t *testing.T) {
	mem := memory.NewStore(0)
	svc := orchestrator.NewService(mem, testStore(),
		&fakeClassifier{err: errors.New("model timeout")}, &fakeComposer{text: "unused"},
		orchestrator.Options{})

	reply, err := svc.HandleMessage(context.Background(), "s1", "EMP001", "Show my payslip", "en")
	if err != nil {
		t.Fatalf("degraded path must not error: %v", err)
	}
	if reply.AgentName != topic.SystemAgentName {
		t.Fatalf("expected System agent, got %s", reply.AgentName)
	}
	if reply.Response == "" {
		t.Fatal("degraded reply must carry text")
	}

	turns := mem.Recent("s1", 10)
	if len(turns) != 2 || turns[0].Role != chat.RoleUser {
		t.Fatalf("user turn must survive collaborator failure, got %d turns", len(turns))
	}
}

func TestComposerFailureDegradesToSystem(t *testing.T) {
	mem := memory.NewStore(0)
	svc := orchestrator.NewService(mem, testStore(),
		&fakeClassifier{result: topic.Leave}, &fakeComposer{err: errors.New("upstream 500")},
		orchestrator.Options{})

	reply, err := svc.HandleMessage(context.Background(), "s1", "EMP001", "How much leave do I have?", "en")
	if err != nil {
		t.Fatalf("degraded path must not error: %v", err)
	}
	if reply.AgentName != topic.SystemAgentName {
		t.Fatalf("expected System agent, got %s", reply.AgentName)
	}
}

func TestOutOfSetClassificationFallsBackToGeneral(t *testing.T) {
	mem := memory.NewStore(0)
	composer := &fakeComposer{text: "Happy to help with HR questions."}
	svc := orchestrator.NewService(mem, testStore(),
		&fakeClassifier{result: topic.Topic("weather")}, composer, orchestrator.Options{})

	reply, err := svc.HandleMessage(context.Background(), "s1", "EMP001", "What is the weather?", "en")
	if err != nil {
		t.Fatalf("HandleMessage err: %v", err)
	}
	if reply.AgentName != "HR Assistant" {
		t.Fatalf("expected general path, got agent %s", reply.AgentName)
	}
}

func TestMissingRecordProducesNoDataContext(t *testing.T) {
	mem := memory.NewStore(0)
	composer := &fakeComposer{text: "I could not find payslips for you."}
	svc := orchestrator.NewService(mem, testStore(),
		&fakeClassifier{result: topic.Payslip}, composer, orchestrator.Options{})

	// EMP003 exists but has no payslip records.
	if _, err := svc.HandleMessage(context.Background(), "s1", "EMP003", "Show my payslip", "en"); err != nil {
		t.Fatalf("HandleMessage err: %v", err)
	}
	if !strings.Contains(composer.lastReq.DataContext, "No payslip records") {
		t.Fatalf("expected no-data context, got %q", composer.lastReq.DataContext)
	}
}

func TestLanguageInstructionForwarded(t *testing.T) {
	mem := memory.NewStore(0)
	composer := &fakeComposer{text: "Su salario neto fue $6,100."}
	svc := orchestrator.NewService(mem, testStore(),
		&fakeClassifier{result: topic.Payslip}, composer, orchestrator.Options{})

	if _, err := svc.HandleMessage(context.Background(), "s1", "EMP001", "Muéstrame mi nómina", "es"); err != nil {
		t.Fatalf("HandleMessage err: %v", err)
	}
	if !strings.Contains(composer.lastReq.LanguageInstruction, "Spanish") {
		t.Fatalf("expected Spanish instruction, got %q", composer.lastReq.LanguageInstruction)
	}
}

func TestHistoryWindowExcludesCurrentMessage(t *testing.T) {
	mem := memory.NewStore(0)
	composer := &fakeComposer{text: "ok"}
	svc := orchestrator.NewService(mem, testStore(),
		&fakeClassifier{result: topic.General}, composer, orchestrator.Options{HistoryLimit: 3})

	ctx := context.Background()
	for _, msg := range []string{"first", "second", "third"} {
		if _, err := svc.HandleMessage(ctx, "s1", "EMP001", msg, "en"); err != nil {
			t.Fatalf("HandleMessage err: %v", err)
		}
	}

	history := composer.lastReq.History
	if len(history) == 0 || len(history) > 2 {
		t.Fatalf("unexpected history window size: %d", len(history))
	}
	for _, turn := range history {
		if turn.Content == "third" {
			t.Fatal("current message leaked into history window")
		}
	}
}

func TestKeywordRoutingWithoutCollaborators(t *testing.T) {
	mem := memory.NewStore(0)
	svc := orchestrator.NewService(mem, testStore(), nil, nil, orchestrator.Options{})

	reply, err := svc.HandleMessage(context.Background(), "s1", "EMP001", "Show my payslip", "en")
	if err != nil {
		t.Fatalf("HandleMessage err: %v", err)
	}
	if reply.AgentName != "Payslip Agent" {
		t.Fatalf("expected keyword routing to payslip, got %s", reply.AgentName)
	}
	if !strings.Contains(reply.Response, "Net pay") {
		t.Fatalf("expected rule-rendered payslip data, got %q", reply.Response)
	}
}

func TestGreetingWithoutCollaborators(t *testing.T) {
	mem := memory.NewStore(0)
	svc := orchestrator.NewService(mem, testStore(), nil, nil, orchestrator.Options{})

	reply, err := svc.HandleMessage(context.Background(), "s1", "EMP001", "Hello!", "en")
	if err != nil {
		t.Fatalf("HandleMessage err: %v", err)
	}
	if !strings.Contains(reply.Response, "Sarah") {
		t.Fatalf("expected personalized greeting, got %q", reply.Response)
	}
	if reply.AgentName != "HR Assistant" {
		t.Fatalf("unexpected agent: %s", reply.AgentName)
	}
}
