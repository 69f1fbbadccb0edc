package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelItem(t *testing.T) {
	item := modelItem{model: ModelChoice{
		Name:     "qwen2.5-coder:7b",
		Size:     "4.7 GiB",
		Category: "code",
		Summary:  "Coding-tuned Qwen",
		Tags:     []string{"code", "popular"},
	}}

	assert.Equal(t, "qwen2.5-coder:7b", item.Title())
	assert.Contains(t, item.Description(), "4.7 GiB")
	assert.Contains(t, item.Description(), "code")
	assert.Contains(t, item.FilterValue(), "popular")
}

func TestModelItem_SparseFields(t *testing.T) {
	item := modelItem{model: ModelChoice{Name: "custom-model"}}
	assert.Equal(t, "custom-model", item.Title())
	assert.Empty(t, item.Description())
}

func TestPickModel_Empty(t *testing.T) {
	_, err := PickModel("Select a model", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No models to pick from")
}

func TestPickModel_SingleSkipsPicker(t *testing.T) {
	models := []ModelChoice{{Name: "llama3.2:3b"}}

	selected, err := PickModel("Select a model", models)
	require.NoError(t, err)
	require.NotNil(t, selected)
	assert.Equal(t, "llama3.2:3b", selected.Name)
}

func TestNewModelPickerModel(t *testing.T) {
	m := NewModelPickerModel("Select a model", []ModelChoice{
		{Name: "a"}, {Name: "b"},
	})

	assert.Nil(t, m.Selected())
	assert.NotEmpty(t, m.View())
}
