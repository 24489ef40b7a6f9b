package reference

// Employee mirrors one record of employees.json.
type Employee struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Department string   `json:"department"`
	Position   string   `json:"position"`
	Manager    string   `json:"manager,omitempty"`
	ManagerID  string   `json:"manager_id,omitempty"`
	JoinDate   string   `json:"join_date"`
	Phone      string   `json:"phone"`
	Salary     float64  `json:"salary"`
	Team       []string `json:"team,omitempty"`
}

// PayslipHistory groups the payslips issued to one employee, newest first.
type PayslipHistory struct {
	EmployeeName string    `json:"employee_name"`
	Payslips     []Payslip `json:"payslips"`
}

type Payslip struct {
	Month       string             `json:"month"`
	Year        int                `json:"year"`
	PayPeriod   string             `json:"pay_period"`
	PaymentDate string             `json:"payment_date"`
	BasicSalary float64            `json:"basic_salary"`
	Allowances  map[string]float64 `json:"allowances"`
	Deductions  map[string]float64 `json:"deductions"`
	GrossPay    float64            `json:"gross_pay"`
	NetPay      float64            `json:"net_pay"`
}

type LeaveBalance struct {
	Annual       int `json:"annual"`
	Sick         int `json:"sick"`
	Personal     int `json:"personal"`
	UsedAnnual   int `json:"used_annual"`
	UsedSick     int `json:"used_sick"`
	UsedPersonal int `json:"used_personal"`
}

type LeaveRequest struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
	Status    string `json:"status"`
	Reason    string `json:"reason,omitempty"`
}

type LeaveRecord struct {
	EmployeeName string         `json:"employee_name"`
	Balance      LeaveBalance   `json:"balance"`
	Requests     []LeaveRequest `json:"requests"`
}

type AttendanceDay struct {
	Date        string  `json:"date"`
	CheckIn     string  `json:"check_in"`
	CheckOut    string  `json:"check_out"`
	HoursWorked float64 `json:"hours_worked"`
	Status      string  `json:"status"`
}

type AttendanceSummary struct {
	DaysPresent   int     `json:"days_present"`
	DaysAbsent    int     `json:"days_absent"`
	LateArrivals  int     `json:"late_arrivals"`
	OvertimeHours float64 `json:"overtime_hours"`
}

type AttendanceRecord struct {
	EmployeeName string            `json:"employee_name"`
	Summary      AttendanceSummary `json:"summary"`
	Records      []AttendanceDay   `json:"records"`
}

type BenefitPlan struct {
	Type           string  `json:"type"`
	Name           string  `json:"name"`
	Provider       string  `json:"provider"`
	Coverage       string  `json:"coverage"`
	MonthlyPremium float64 `json:"monthly_premium"`
	Status         string  `json:"status"`
}

type Retirement struct {
	Plan                 string  `json:"plan"`
	ContributionPercent  float64 `json:"contribution_percent"`
	EmployerMatchPercent float64 `json:"employer_match_percent"`
	Balance              float64 `json:"balance"`
}

type BenefitsRecord struct {
	EmployeeName string        `json:"employee_name"`
	Plans        []BenefitPlan `json:"plans"`
	Retirement   Retirement    `json:"retirement"`
}

type Review struct {
	Period       string   `json:"period"`
	Rating       float64  `json:"rating"`
	Reviewer     string   `json:"reviewer"`
	Strengths    []string `json:"strengths,omitempty"`
	Improvements []string `json:"improvements,omitempty"`
}

type Goal struct {
	Title    string `json:"title"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
	DueDate  string `json:"due_date"`
}

type PerformanceRecord struct {
	EmployeeName string   `json:"employee_name"`
	Reviews      []Review `json:"reviews"`
	Goals        []Goal   `json:"goals"`
}

// Policy is a company-wide document, not scoped to an employee.
type Policy struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Content  string `json:"content"`
}
