package reference

// Store exposes the read-only mock employee database. Per-employee lookups are
// keyed by employee id only, so a handler can never read another employee's
// records by accident.
type Store interface {
	Employees() []Employee
	FindEmployee(id string) (Employee, bool)
	PayslipsFor(employeeID string) (PayslipHistory, bool)
	LeaveFor(employeeID string) (LeaveRecord, bool)
	AttendanceFor(employeeID string) (AttendanceRecord, bool)
	BenefitsFor(employeeID string) (BenefitsRecord, bool)
	PerformanceFor(employeeID string) (PerformanceRecord, bool)
	Policies() []Policy
}

// Dataset is the full static reference dataset as loaded from disk.
type Dataset struct {
	Employees   []Employee
	Payslips    map[string]PayslipHistory
	Leaves      map[string]LeaveRecord
	Attendance  map[string]AttendanceRecord
	Benefits    map[string]BenefitsRecord
	Performance map[string]PerformanceRecord
	Policies    []Policy
}

// MemoryStore implements Store over an immutable in-memory Dataset.
type MemoryStore struct {
	data Dataset
}

// NewMemoryStore wraps a dataset. The caller must not mutate it afterwards.
func NewMemoryStore(data Dataset) *MemoryStore {
	return &MemoryStore{data: data}
}

func (s *MemoryStore) Employees() []Employee {
	return append([]Employee(nil), s.data.Employees...)
}

func (s *MemoryStore) FindEmployee(id string) (Employee, bool) {
	for _, emp := range s.data.Employees {
		if emp.ID == id {
			return emp, true
		}
	}
	return Employee{}, false
}

func (s *MemoryStore) PayslipsFor(employeeID string) (PayslipHistory, bool) {
	rec, ok := s.data.Payslips[employeeID]
	return rec, ok
}

func (s *MemoryStore) LeaveFor(employeeID string) (LeaveRecord, bool) {
	rec, ok := s.data.Leaves[employeeID]
	return rec, ok
}

func (s *MemoryStore) AttendanceFor(employeeID string) (AttendanceRecord, bool) {
	rec, ok := s.data.Attendance[employeeID]
	return rec, ok
}

func (s *MemoryStore) BenefitsFor(employeeID string) (BenefitsRecord, bool) {
	rec, ok := s.data.Benefits[employeeID]
	return rec, ok
}

func (s *MemoryStore) PerformanceFor(employeeID string) (PerformanceRecord, bool) {
	rec, ok := s.data.Performance[employeeID]
	return rec, ok
}

func (s *MemoryStore) Policies() []Policy {
	return append([]Policy(nil), s.data.Policies...)
}
