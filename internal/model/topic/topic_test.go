package topic_test

import (
	"testing"

	"github.com/meridianhq/hr-assistant/backend/internal/model/topic"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in    string
		want  topic.Topic
		known bool
	}{
		{"payslip", topic.Payslip, true},
		{" Leave ", topic.Leave, true},
		{"GENERAL", topic.General, true},
		{"none", topic.General, true},
		{"weather", topic.General, false},
		{"", topic.General, false},
	}
	for _, tt := range tests {
		got, known := topic.Parse(tt.in)
		if got != tt.want || known != tt.known {
			t.Errorf("Parse(%q) = (%v, %v), want (%v, %v)", tt.in, got, known, tt.want, tt.known)
		}
	}
}

func TestAgentNames(t *testing.T) {
	if got := topic.Payslip.AgentName(); got != "Payslip Agent" {
		t.Errorf("payslip agent name = %q", got)
	}
	if got := topic.General.AgentName(); got != "HR Assistant" {
		t.Errorf("general agent name = %q", got)
	}
	if got := topic.Topic("bogus").AgentName(); got != "HR Assistant" {
		t.Errorf("unknown topic agent name = %q", got)
	}
}

func TestAllTopicsHaveDescriptions(t *testing.T) {
	for _, tp := range topic.All() {
		if tp.Description() == "" {
			t.Errorf("topic %q has no description", tp)
		}
	}
}
