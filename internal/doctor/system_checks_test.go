package doctor

import (
	"testing"
)

func TestDiskSpaceCheck(t *testing.T) {
	check := &DiskSpaceCheck{Path: t.TempDir()}

	result := check.Run()
	if result.Status == StatusFail {
		t.Errorf("disk space check should never hard-fail, got %v: %s", result.Status, result.Message)
	}
	if result.Message == "" {
		t.Error("expected a message with the measured free space")
	}
}

func TestHardwareCheck(t *testing.T) {
	check := &HardwareCheck{}

	result := check.Run()
	if result.Status == StatusFail {
		t.Errorf("hardware detection failed on the test host: %s", result.Message)
	}
}
