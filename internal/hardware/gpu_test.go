package hardware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNvidiaSMI_SingleGPU(t *testing.T) {
	output := "NVIDIA GeForce RTX 3080, 10240, 2048\n"

	gpu, err := ParseNvidiaSMI(output)
	require.NoError(t, err)
	require.NotNil(t, gpu)

	assert.Equal(t, "NVIDIA GeForce RTX 3080", gpu.Name)
	assert.Equal(t, uint64(10240)*1024*1024, gpu.VRAMTotal)
	assert.Equal(t, uint64(2048)*1024*1024, gpu.VRAMUsed)
	assert.False(t, gpu.Unified)
}

func TestParseNvidiaSMI_MultiGPUUsesFirst(t *testing.T) {
	output := "NVIDIA A100-SXM4-40GB, 40960, 1024\nNVIDIA A100-SXM4-40GB, 40960, 512\n"

	gpu, err := ParseNvidiaSMI(output)
	require.NoError(t, err)
	require.NotNil(t, gpu)
	assert.Equal(t, uint64(40960)*1024*1024, gpu.VRAMTotal)
}

func TestParseNvidiaSMI_NoGPU(t *testing.T) {
	tests := []struct {
		name   string
		output string
	}{
		{"empty", ""},
		{"whitespace", "  \n"},
		{"no devices", "No devices were found"},
		{"driver failure", "NVIDIA-SMI has failed because it couldn't communicate with the NVIDIA driver"},
		{"not found", "nvidia-smi: command not found"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gpu, err := ParseNvidiaSMI(tc.output)
			assert.NoError(t, err)
			assert.Nil(t, gpu)
		})
	}
}

func TestParseNvidiaSMI_NotAvailableFields(t *testing.T) {
	gpu, err := ParseNvidiaSMI("Some GPU, [N/A], [N/A]")
	require.NoError(t, err)
	require.NotNil(t, gpu)
	assert.Equal(t, uint64(0), gpu.VRAMTotal)
	assert.Equal(t, uint64(0), gpu.VRAMUsed)
}

func TestParseNvidiaSMI_TooFewFields(t *testing.T) {
	_, err := ParseNvidiaSMI("just-a-name, 1024")
	assert.Error(t, err)
}

func TestParseNvidiaSMI_BadNumber(t *testing.T) {
	_, err := ParseNvidiaSMI("GPU, abc, 10")
	assert.Error(t, err)
}
