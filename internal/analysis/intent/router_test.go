package intent

import (
	"testing"

	"github.com/meridianhq/hr-assistant/backend/internal/model/topic"
)

func TestRoutePayslipQuery(t *testing.T) {
	if got := Route("Show my payslip for last month"); got != topic.Payslip {
		t.Fatalf("expected payslip topic, got %s", got)
	}
}

func TestRouteLeaveQuery(t *testing.T) {
	if got := Route("How many vacation days do I have left?"); got != topic.Leave {
		t.Fatalf("expected leave topic, got %s", got)
	}
}

func TestRoutePolicyQuery(t *testing.T) {
	if got := Route("What is the work from home policy?"); got != topic.Policy {
		t.Fatalf("expected policy topic, got %s", got)
	}
}

func TestRouteUnmatchedQueryIsGeneral(t *testing.T) {
	if got := Route("Tell me a story about dragons"); got != topic.General {
		t.Fatalf("expected general topic, got %s", got)
	}
}

func TestRouteEmptyQueryIsGeneral(t *testing.T) {
	if got := Route("   "); got != topic.General {
		t.Fatalf("expected general topic, got %s", got)
	}
}

func TestGreetingAndHelpDetection(t *testing.T) {
	if !IsGreeting("Hello there!") {
		t.Fatal("expected greeting detection")
	}
	if IsGreeting("show my salary") {
		t.Fatal("did not expect greeting detection")
	}
	if !IsHelp("what can you do for me?") {
		t.Fatal("expected help detection")
	}
}
