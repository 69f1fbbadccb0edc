package ui

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llamactl/llamactl/internal/errors"
)

// ModelChoice contains information about a model for display in the picker.
type ModelChoice struct {
	Name     string   // Model reference (e.g., "llama3.2:3b")
	Size     string   // Human-readable size
	Category string   // chat, code, vision, embedding
	Summary  string   // Short description
	Tags     []string // Tags for filtering
}

// modelItem implements list.Item for the Bubbles list component.
type modelItem struct {
	model ModelChoice
}

func (i modelItem) Title() string {
	return i.model.Name
}

func (i modelItem) Description() string {
	var parts []string
	if i.model.Size != "" {
		parts = append(parts, i.model.Size)
	}
	if i.model.Category != "" {
		parts = append(parts, i.model.Category)
	}
	if i.model.Summary != "" {
		parts = append(parts, i.model.Summary)
	}
	return strings.Join(parts, " | ")
}

func (i modelItem) FilterValue() string {
	// Search by name, category, and tags.
	values := []string{i.model.Name, i.model.Category}
	values = append(values, i.model.Tags...)
	return strings.Join(values, " ")
}

// ModelPickerModel is a Bubble Tea model for selecting a model.
type ModelPickerModel struct {
	list     list.Model
	selected *ModelChoice
	quitting bool
}

type modelPickerKeyMap struct {
	Enter key.Binding
	Quit  key.Binding
}

var modelPickerKeys = modelPickerKeyMap{
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q/esc", "cancel"),
	),
}

// NewModelPickerModel creates a new model picker.
func NewModelPickerModel(title string, models []ModelChoice) ModelPickerModel {
	items := make([]list.Item, len(models))
	for i, m := range models {
		items[i] = modelItem{model: m}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color(string(ColorPrimary))).
		BorderForeground(lipgloss.Color(string(ColorSecondary)))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.Color(string(ColorMuted)))

	l := list.New(items, delegate, 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color(string(ColorPrimary))).
		Bold(true).
		Padding(0, 0, 1, 0)
	l.Styles.HelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(string(ColorMuted)))

	return ModelPickerModel{list: l}
}

// Init implements tea.Model.
func (m ModelPickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ModelPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, modelPickerKeys.Enter):
			if item, ok := m.list.SelectedItem().(modelItem); ok {
				m.selected = &item.model
			}
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, modelPickerKeys.Quit):
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-2)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ModelPickerModel) View() string {
	if m.quitting {
		return ""
	}
	return m.list.View()
}

// Selected returns the selected model, or nil if cancelled.
func (m ModelPickerModel) Selected() *ModelChoice {
	return m.selected
}

// PickModel displays an interactive model picker and returns the selection.
// Returns nil if the user cancels (ESC/q/Ctrl+C).
func PickModel(title string, models []ModelChoice) (*ModelChoice, error) {
	return PickModelWithOutput(title, models, os.Stdout, os.Stdin)
}

// PickModelWithOutput displays the model picker using custom I/O.
func PickModelWithOutput(title string, models []ModelChoice, output io.Writer, input io.Reader) (*ModelChoice, error) {
	if len(models) == 0 {
		return nil, errors.New(errors.ErrCatalog,
			"No models to pick from",
			"Pull one first with 'llamactl pull' or check 'llamactl recommend'")
	}

	if len(models) == 1 {
		return &models[0], nil
	}

	p := tea.NewProgram(
		NewModelPickerModel(title, models),
		tea.WithOutput(output),
		tea.WithInput(input),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrExec,
			"Model picker failed",
			"Try again or pass the model name directly")
	}

	if m, ok := finalModel.(ModelPickerModel); ok {
		return m.Selected(), nil
	}

	return nil, nil
}

// IsTerminal returns true if the file descriptor is a terminal.
func IsTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
