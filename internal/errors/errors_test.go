package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Format(t *testing.T) {
	err := New(ErrConfig, "Preferences file not found", "Run 'llamactl init' to create one")

	msg := err.Error()
	assert.Contains(t, msg, "✗ Preferences file not found")
	assert.Contains(t, msg, "Run 'llamactl init' to create one")
}

func TestError_FormatWithCause(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := WrapWithCode(cause, ErrOllama, "Couldn't pull the model", "Check ollama is running")

	msg := err.Error()
	assert.Contains(t, msg, "Couldn't pull the model")
	assert.Contains(t, msg, "permission denied")
	assert.Contains(t, msg, "Check ollama is running")
}

func TestError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Wrap(cause, "something failed")

	assert.Equal(t, cause, err.Unwrap())
}

func TestIsCode(t *testing.T) {
	err := New(ErrHardware, "GPU query failed", "")

	assert.True(t, IsCode(err, ErrHardware))
	assert.False(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(nil, ErrConfig))
	assert.False(t, IsCode(fmt.Errorf("plain"), ErrConfig))
}

func TestIsCode_Wrapped(t *testing.T) {
	inner := New(ErrCatalog, "catalog unwritable", "")
	outer := fmt.Errorf("while starting: %w", inner)

	assert.True(t, IsCode(outer, ErrCatalog))
}
