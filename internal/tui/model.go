// Package tui provides the interactive expression prompt.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aaronyao/dateparser/internal/compound"
	"github.com/aaronyao/dateparser/internal/pipeline"
)

// probe is one per-language resolution outcome shown in the panel.
type probe struct {
	lang   string
	result string // formatted time when ok
	ok     bool
}

// Model is the interactive prompt model. The input is re-parsed on every
// keystroke, so the panel always reflects the current expression.
type Model struct {
	parser   *pipeline.Parser
	resolver *compound.Resolver
	format   string
	base     time.Time

	input  textinput.Model
	result *pipeline.Result
	err    error
	probes []probe
	width  int
}

// New creates a prompt model parsing against the given base time.
func New(parser *pipeline.Parser, format string, base time.Time) Model {
	ti := textinput.New()
	ti.Placeholder = `try "last friday", "上个月十七号", "+3d" ...`
	ti.Focus()
	ti.CharLimit = 120

	return Model{
		parser:   parser,
		resolver: compound.NewResolver(),
		format:   format,
		base:     base,
		input:    ti,
		width:    80,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.reparse()
	return m, cmd
}

// reparse recomputes the pipeline result and the per-language probes for the
// current input.
func (m *Model) reparse() {
	m.result = nil
	m.err = nil
	m.probes = m.probes[:0]

	text := m.input.Value()
	if text == "" {
		return
	}

	res, err := m.parser.Parse(text, m.base)
	if err != nil {
		m.err = err
	} else {
		m.result = &res
	}

	for _, lang := range m.parser.Languages() {
		got, err := m.resolver.TryResolve(text, m.base, lang)
		if err != nil {
			m.probes = append(m.probes, probe{lang: lang})
			continue
		}
		m.probes = append(m.probes, probe{lang: lang, result: got.Format(m.format), ok: true})
	}
}

// Run starts the interactive prompt and blocks until the user quits.
func Run(parser *pipeline.Parser, format string, base time.Time) error {
	_, err := tea.NewProgram(New(parser, format, base)).Run()
	return err
}
