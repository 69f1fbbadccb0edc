package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderSimpleTable_Empty(t *testing.T) {
	out := RenderSimpleTable([]TableColumn{{Title: "NAME", Width: 10}}, nil)
	assert.Empty(t, out)
}

func TestRenderSimpleTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "NAME", Width: 20},
		{Title: "SIZE", Width: 10},
	}
	rows := [][]string{
		{"llama3.2:3b", "2.0 GiB"},
		{"phi3:mini", "2.2 GiB"},
	}

	out := RenderSimpleTable(columns, rows)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "llama3.2:3b")
	assert.Contains(t, out, "phi3:mini")
}

func TestRenderModelTable_Empty(t *testing.T) {
	assert.Equal(t, "No models installed", RenderModelTable(nil))
}

func TestRenderModelTable(t *testing.T) {
	rows := []ModelRow{
		{Active: true, Name: "llama3.2:3b", Size: "2.0 GiB", Detail: "2 days ago"},
		{Name: "moondream", Size: "830 MiB", Detail: "5 weeks ago", Warning: "(tight fit)"},
	}

	out := RenderModelTable(rows)
	assert.Contains(t, out, "llama3.2:3b")
	assert.Contains(t, out, SymbolActive)
	assert.Contains(t, out, "(tight fit)")
}

func TestRenderDoctorTable_Empty(t *testing.T) {
	assert.Equal(t, "No checks to display", RenderDoctorTable(nil))
}

func TestRenderDoctorTable_GroupsByCategory(t *testing.T) {
	rows := []DoctorCheckRow{
		{Status: "pass", Category: "OLLAMA", Message: "v0.5.4 at /usr/local/bin/ollama"},
		{Status: "fail", Category: "OLLAMA", Message: "server is not responding", Suggestion: "Start it with 'ollama serve'"},
		{Status: "warn", Category: "SYSTEM", Message: "only 4.0 GiB free"},
	}

	out := RenderDoctorTable(rows)
	assert.Contains(t, out, "OLLAMA")
	assert.Contains(t, out, "SYSTEM")
	assert.Contains(t, out, "server is not responding")
	// Suggestions show only for non-passing checks.
	assert.Contains(t, out, "Start it with 'ollama serve'")
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "abcdef", padRight("abcdef", 3))
}
