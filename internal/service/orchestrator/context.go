package orchestrator

import (
	"fmt"
	"strings"

	"github.com/meridianhq/hr-assistant/backend/internal/model/topic"
)

// contextForTopic renders the employee's records for a topic as plain text
// fed to the composer prompt. Lookups are keyed by employeeID only. A missing
// record degrades to a "no records" line, never an error.
func (s *Service) contextForTopic(t topic.Topic, employeeID string) string {
	switch t {
	case topic.Payslip:
		return s.payslipContext(employeeID)
	case topic.Leave:
		return s.leaveContext(employeeID)
	case topic.Employee:
		return s.employeeContext(employeeID)
	case topic.Attendance:
		return s.attendanceContext(employeeID)
	case topic.Benefits:
		return s.benefitsContext(employeeID)
	case topic.Performance:
		return s.performanceContext(employeeID)
	case topic.Policy:
		return s.policyContext()
	default:
		return s.generalContext(employeeID)
	}
}

func (s *Service) payslipContext(employeeID string) string {
	rec, ok := s.data.PayslipsFor(employeeID)
	if !ok || len(rec.Payslips) == 0 {
		return "No payslip records are available for this employee."
	}

	var b strings.Builder
	latest := rec.Payslips[0]
	fmt.Fprintf(&b, "Employee: %s\n", rec.EmployeeName)
	fmt.Fprintf(&b, "Latest payslip: %s %d (period %s, paid %s)\n",
		latest.Month, latest.Year, latest.PayPeriod, latest.PaymentDate)
	fmt.Fprintf(&b, "Basic salary: $%.2f\n", latest.BasicSalary)
	for name, amount := range latest.Allowances {
		fmt.Fprintf(&b, "Allowance %s: $%.2f\n", name, amount)
	}
	for name, amount := range latest.Deductions {
		fmt.Fprintf(&b, "Deduction %s: $%.2f\n", name, amount)
	}
	fmt.Fprintf(&b, "Gross pay: $%.2f, Net pay: $%.2f\n", latest.GrossPay, latest.NetPay)
	fmt.Fprintf(&b, "Payslips on record: %d", len(rec.Payslips))
	return b.String()
}

func (s *Service) leaveContext(employeeID string) string {
	rec, ok := s.data.LeaveFor(employeeID)
	if !ok {
		return "No leave records are available for this employee."
	}

	bal := rec.Balance
	var b strings.Builder
	fmt.Fprintf(&b, "Employee: %s\n", rec.EmployeeName)
	fmt.Fprintf(&b, "Annual leave: %d total, %d used, %d remaining\n",
		bal.Annual, bal.UsedAnnual, bal.Annual-bal.UsedAnnual)
	fmt.Fprintf(&b, "Sick leave: %d total, %d used, %d remaining\n",
		bal.Sick, bal.UsedSick, bal.Sick-bal.UsedSick)
	fmt.Fprintf(&b, "Personal leave: %d total, %d used, %d remaining\n",
		bal.Personal, bal.UsedPersonal, bal.Personal-bal.UsedPersonal)
	for _, req := range rec.Requests {
		fmt.Fprintf(&b, "Request %s: %s leave %s to %s (%d days) - %s\n",
			req.ID, req.Type, req.StartDate, req.EndDate, req.Days, req.Status)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *Service) employeeContext(employeeID string) string {
	emp, ok := s.data.FindEmployee(employeeID)
	if !ok {
		return "No profile is available for this employee."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s (%s)\n", emp.Name, emp.ID)
	fmt.Fprintf(&b, "Position: %s, Department: %s\n", emp.Position, emp.Department)
	fmt.Fprintf(&b, "Email: %s, Phone: %s\n", emp.Email, emp.Phone)
	fmt.Fprintf(&b, "Joined: %s\n", emp.JoinDate)
	if emp.Manager != "" {
		fmt.Fprintf(&b, "Manager: %s\n", emp.Manager)
	}
	if len(emp.Team) > 0 {
		fmt.Fprintf(&b, "Team: %s\n", strings.Join(emp.Team, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *Service) attendanceContext(employeeID string) string {
	rec, ok := s.data.AttendanceFor(employeeID)
	if !ok {
		return "No attendance records are available for this employee."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Employee: %s\n", rec.EmployeeName)
	fmt.Fprintf(&b, "Days present: %d, days absent: %d, late arrivals: %d, overtime hours: %.1f\n",
		rec.Summary.DaysPresent, rec.Summary.DaysAbsent,
		rec.Summary.LateArrivals, rec.Summary.OvertimeHours)
	for _, day := range rec.Records {
		fmt.Fprintf(&b, "%s: in %s, out %s, %.1fh (%s)\n",
			day.Date, day.CheckIn, day.CheckOut, day.HoursWorked, day.Status)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *Service) benefitsContext(employeeID string) string {
	rec, ok := s.data.BenefitsFor(employeeID)
	if !ok {
		return "No benefits records are available for this employee."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Employee: %s\n", rec.EmployeeName)
	for _, plan := range rec.Plans {
		fmt.Fprintf(&b, "%s plan: %s by %s, coverage %s, $%.2f/month (%s)\n",
			plan.Type, plan.Name, plan.Provider, plan.Coverage, plan.MonthlyPremium, plan.Status)
	}
	ret := rec.Retirement
	if ret.Plan != "" {
		fmt.Fprintf(&b, "Retirement: %s, contributing %.1f%% with %.1f%% employer match, balance $%.2f\n",
			ret.Plan, ret.ContributionPercent, ret.EmployerMatchPercent, ret.Balance)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *Service) performanceContext(employeeID string) string {
	rec, ok := s.data.PerformanceFor(employeeID)
	if !ok {
		return "No performance records are available for this employee."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Employee: %s\n", rec.EmployeeName)
	for _, review := range rec.Reviews {
		fmt.Fprintf(&b, "Review %s: rating %.1f/5 by %s\n", review.Period, review.Rating, review.Reviewer)
		if len(review.Strengths) > 0 {
			fmt.Fprintf(&b, "  Strengths: %s\n", strings.Join(review.Strengths, "; "))
		}
		if len(review.Improvements) > 0 {
			fmt.Fprintf(&b, "  Improvements: %s\n", strings.Join(review.Improvements, "; "))
		}
	}
	for _, goal := range rec.Goals {
		fmt.Fprintf(&b, "Goal %q: %s, %d%% complete, due %s\n",
			goal.Title, goal.Status, goal.Progress, goal.DueDate)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *Service) policyContext() string {
	policies := s.data.Policies()
	if len(policies) == 0 {
		return "No policy documents are available."
	}

	var b strings.Builder
	for _, policy := range policies {
		fmt.Fprintf(&b, "[%s] %s (%s): %s\n", policy.ID, policy.Title, policy.Category, policy.Content)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *Service) generalContext(employeeID string) string {
	var b strings.Builder
	if emp, ok := s.data.FindEmployee(employeeID); ok {
		fmt.Fprintf(&b, "You are talking to %s, %s in %s.\n", emp.Name, emp.Position, emp.Department)
	}
	b.WriteString("Available specialists:\n")
	for _, t := range topic.All() {
		if t == topic.General {
			continue
		}
		fmt.Fprintf(&b, "- %s: %s\n", t.AgentName(), t.Description())
	}
	return strings.TrimRight(b.String(), "\n")
}
