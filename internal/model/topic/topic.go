package topic

import "strings"

// Topic identifies which specialist agent answers a query. The set is closed;
// anything a classifier produces outside of it maps to General.
type Topic string

const (
	Payslip     Topic = "payslip"
	Leave       Topic = "leave"
	Employee    Topic = "employee"
	Attendance  Topic = "attendance"
	Benefits    Topic = "benefits"
	Performance Topic = "performance"
	Policy      Topic = "policy"
	General     Topic = "general"
)

// SystemAgentName labels degraded replies produced when a collaborator fails.
const SystemAgentName = "System"

// All lists the specialist topics in catalogue order, General last.
func All() []Topic {
	return []Topic{Payslip, Leave, Employee, Attendance, Benefits, Performance, Policy, General}
}

// Parse maps an arbitrary classifier output onto the closed topic set. It is
// total: unknown or empty input yields (General, false).
func Parse(s string) (Topic, bool) {
	switch Topic(strings.ToLower(strings.TrimSpace(s))) {
	case Payslip:
		return Payslip, true
	case Leave:
		return Leave, true
	case Employee:
		return Employee, true
	case Attendance:
		return Attendance, true
	case Benefits:
		return Benefits, true
	case Performance:
		return Performance, true
	case Policy:
		return Policy, true
	case General, "none":
		return General, true
	}
	return General, false
}

// AgentName returns the user-facing agent label for a topic.
func (t Topic) AgentName() string {
	switch t {
	case Payslip:
		return "Payslip Agent"
	case Leave:
		return "Leave Agent"
	case Employee:
		return "Employee Agent"
	case Attendance:
		return "Attendance Agent"
	case Benefits:
		return "Benefits Agent"
	case Performance:
		return "Performance Agent"
	case Policy:
		return "Policy Agent"
	default:
		return "HR Assistant"
	}
}

// Description returns the catalogue description shown by /api/agents.
func (t Topic) Description() string {
	switch t {
	case Payslip:
		return "Handles payslip generation and salary queries"
	case Leave:
		return "Handles leave balance and request queries"
	case Employee:
		return "Handles profile and team queries"
	case Attendance:
		return "Handles attendance tracking"
	case Benefits:
		return "Handles benefits enrollment queries"
	case Performance:
		return "Handles performance reviews and goals"
	case Policy:
		return "Handles HR policies and FAQs"
	default:
		return "Answers general HR questions and routes to specialists"
	}
}
