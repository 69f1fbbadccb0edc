package ollama

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseList_Typical(t *testing.T) {
	output := `NAME                    ID              SIZE      MODIFIED
llama3.2:3b             a80c4f17acd5    2.0 GB    3 days ago
qwen2.5-coder:7b        2b0496514337    4.7 GB    2 weeks ago
nomic-embed-text:latest 0a109f422b47    274 MB    5 months ago
`

	models := ParseList(output)
	require.Len(t, models, 3)

	assert.Equal(t, "llama3.2:3b", models[0].Name)
	assert.Equal(t, "a80c4f17acd5", models[0].ID)
	assert.Equal(t, "2.0 GB", models[0].Size)
	assert.Equal(t, "3 days ago", models[0].Modified)

	assert.Equal(t, "nomic-embed-text:latest", models[2].Name)
	assert.Equal(t, "274 MB", models[2].Size)
}

func TestParseList_Empty(t *testing.T) {
	assert.Empty(t, ParseList(""))
	assert.Empty(t, ParseList("NAME  ID  SIZE  MODIFIED\n"))
}

func TestParseList_NoHeader(t *testing.T) {
	// Some builds print no header when piped.
	models := ParseList("phi3:mini    4f2222927938    2.2 GB    10 minutes ago\n")
	require.Len(t, models, 1)
	assert.Equal(t, "phi3:mini", models[0].Name)
}

func TestParseList_SkipsBlankLines(t *testing.T) {
	output := "NAME  ID  SIZE  MODIFIED\n\nllama3.2:3b  abc  2.0 GB  now\n\n"
	models := ParseList(output)
	require.Len(t, models, 1)
}

func TestNewRunner_DefaultBin(t *testing.T) {
	r := NewRunner("")
	assert.Equal(t, "ollama", r.bin)

	r = NewRunner("/opt/ollama/bin/ollama")
	assert.Equal(t, "/opt/ollama/bin/ollama", r.bin)
}

func TestRunner_Installed_MissingBinary(t *testing.T) {
	r := NewRunner("definitely-not-a-real-binary-xyz")
	assert.False(t, r.Installed())

	_, err := r.Path()
	assert.Error(t, err)
}
