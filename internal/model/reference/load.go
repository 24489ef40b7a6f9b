package reference

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Load reads the mock employee database from dir. Every file is required; a
// broken dataset should fail startup rather than surface as per-request misses.
func Load(dir string) (*MemoryStore, error) {
	var data Dataset

	if err := readJSON(dir, "employees.json", &data.Employees); err != nil {
		return nil, err
	}
	if err := readJSON(dir, "payslips.json", &data.Payslips); err != nil {
		return nil, err
	}
	if err := readJSON(dir, "leaves.json", &data.Leaves); err != nil {
		return nil, err
	}
	if err := readJSON(dir, "attendance.json", &data.Attendance); err != nil {
		return nil, err
	}
	if err := readJSON(dir, "benefits.json", &data.Benefits); err != nil {
		return nil, err
	}
	if err := readJSON(dir, "performance.json", &data.Performance); err != nil {
		return nil, err
	}
	if err := readJSON(dir, "policies.json", &data.Policies); err != nil {
		return nil, err
	}

	if len(data.Employees) == 0 {
		return nil, fmt.Errorf("reference data in %s contains no employees", dir)
	}

	return NewMemoryStore(data), nil
}

func readJSON(dir, name string, out any) error {
	raw, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("failed to read reference data %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse reference data %s: %w", name, err)
	}
	return nil
}
