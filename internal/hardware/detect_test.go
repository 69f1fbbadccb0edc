package hardware

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect_ReturnsSaneValues(t *testing.T) {
	info, err := Detect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, runtime.GOOS, info.OS)
	assert.Equal(t, runtime.GOARCH, info.Arch)
	assert.Greater(t, info.TotalRAM, uint64(0))
	assert.LessOrEqual(t, info.AvailableRAM, info.TotalRAM)
	assert.Greater(t, info.EffectiveMemory(), uint64(0))
}
