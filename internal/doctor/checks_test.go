package doctor

import (
	"errors"
	"testing"
)

// mockCheck is a configurable check for exercising the framework.
type mockCheck struct {
	name     string
	category string
	result   CheckResult
	fixErr   error
	fixed    bool
}

func (m *mockCheck) Name() string     { return m.name }
func (m *mockCheck) Category() string { return m.category }
func (m *mockCheck) Run() CheckResult { return m.result }
func (m *mockCheck) Fix() error {
	m.fixed = true
	return m.fixErr
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status CheckStatus
		want   string
	}{
		{StatusPass, "pass"},
		{StatusWarn, "warn"},
		{StatusFail, "fail"},
		{CheckStatus(99), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.status.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestRunAll(t *testing.T) {
	checks := []Check{
		&mockCheck{name: "a", result: CheckResult{Name: "a", Status: StatusPass}},
		&mockCheck{name: "b", result: CheckResult{Name: "b", Status: StatusFail}},
	}

	results := RunAll(checks)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Name != "a" || results[1].Name != "b" {
		t.Errorf("results out of order: %v", results)
	}
}

func TestRunAllParallel_PreservesOrder(t *testing.T) {
	var checks []Check
	names := []string{"a", "b", "c", "d", "e"}
	for _, n := range names {
		checks = append(checks, &mockCheck{name: n, result: CheckResult{Name: n, Status: StatusPass}})
	}

	results := RunAllParallel(checks)
	if len(results) != len(names) {
		t.Fatalf("got %d results, want %d", len(results), len(names))
	}
	for i, n := range names {
		if results[i].Name != n {
			t.Errorf("results[%d].Name = %q, want %q", i, results[i].Name, n)
		}
	}
}

func TestGroupByCategory(t *testing.T) {
	checks := []Check{
		&mockCheck{name: "a", category: "OLLAMA"},
		&mockCheck{name: "b", category: "CONFIG"},
		&mockCheck{name: "c", category: "OLLAMA"},
	}

	grouped := GroupByCategory(checks)
	if len(grouped["OLLAMA"]) != 2 {
		t.Errorf("OLLAMA group has %d checks, want 2", len(grouped["OLLAMA"]))
	}
	if len(grouped["CONFIG"]) != 1 {
		t.Errorf("CONFIG group has %d checks, want 1", len(grouped["CONFIG"]))
	}
}

func TestCountByStatus(t *testing.T) {
	results := []CheckResult{
		{Status: StatusPass},
		{Status: StatusPass},
		{Status: StatusWarn},
		{Status: StatusFail},
	}

	counts := CountByStatus(results)
	if counts[StatusPass] != 2 || counts[StatusWarn] != 1 || counts[StatusFail] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
}

func TestHasFailures(t *testing.T) {
	if HasFailures([]CheckResult{{Status: StatusPass}, {Status: StatusWarn}}) {
		t.Error("warn should not count as failure")
	}
	if !HasFailures([]CheckResult{{Status: StatusPass}, {Status: StatusFail}}) {
		t.Error("fail should count as failure")
	}
}

func TestFixableCount(t *testing.T) {
	results := []CheckResult{
		{Status: StatusPass, Fixable: true},
		{Status: StatusWarn, Fixable: true},
		{Status: StatusFail, Fixable: true},
		{Status: StatusFail, Fixable: false},
	}

	if got := FixableCount(results); got != 2 {
		t.Errorf("FixableCount = %d, want 2", got)
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name    string
		results []CheckResult
		want    string
	}{
		{"all pass", []CheckResult{{Status: StatusPass}}, "Everything looks good"},
		{"one failure", []CheckResult{{Status: StatusFail}}, "1 failure"},
		{"mixed", []CheckResult{{Status: StatusFail}, {Status: StatusFail}, {Status: StatusWarn}}, "2 failures, 1 warning"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Summary(tc.results); got != tc.want {
				t.Errorf("Summary = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMockFix(t *testing.T) {
	m := &mockCheck{fixErr: errors.New("boom")}
	if err := m.Fix(); err == nil {
		t.Error("expected fix error")
	}
	if !m.fixed {
		t.Error("fix was not invoked")
	}
}
