// Package tui implements zforge's interactive prompt.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zforge/internal/cli"
	"github.com/zarlcorp/zforge/internal/user"
)

type field int

const (
	fieldCount field = iota
	fieldOutput
	numFields
)

// forgeFunc generates and writes records for a config.
type forgeFunc func(user.Config) (cli.Result, error)

// forgeResultMsg carries the outcome of a generation run.
type forgeResultMsg struct {
	result cli.Result
	err    error
}

// Model is the root prompt model.
type Model struct {
	cfg     user.Config
	forge   forgeFunc
	inputs  [numFields]textinput.Model
	focused field
	errMsg  string
	busy    bool

	done   bool
	result cli.Result
	err    error

	width int
}

// New creates the prompt, prefilled from cfg.
func New(cfg user.Config) Model {
	count := textinput.New()
	count.Placeholder = fmt.Sprint(user.DefaultCount)
	count.SetValue(fmt.Sprint(cfg.Count))
	count.CharLimit = 9
	count.Width = 12
	count.Focus()

	out := textinput.New()
	out.Placeholder = user.DefaultOutput
	if cfg.Output != user.DefaultOutput {
		out.SetValue(cfg.Output)
	}
	out.CharLimit = 256
	out.Width = 48

	return Model{
		cfg:    cfg,
		forge:  func(c user.Config) (cli.Result, error) { return cli.Forge(c, cli.Options{}) },
		inputs: [numFields]textinput.Model{count, out},
	}
}

// Err returns the generation error, if the run failed.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case forgeResultMsg:
		m.busy = false
		m.done = true
		m.result = msg.result
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}

		if m.done {
			return m, tea.Quit
		}
		if m.busy {
			return m, nil
		}

		if msg.Type == tea.KeyShiftTab {
			return m.focus((m.focused + numFields - 1) % numFields)
		}

		if key.Matches(msg, zstyle.KeyTab) {
			return m.focus((m.focused + 1) % numFields)
		}

		if key.Matches(msg, zstyle.KeyEnter) {
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m Model) focus(f field) (Model, tea.Cmd) {
	m.inputs[m.focused].Blur()
	m.focused = f
	return m, m.inputs[f].Focus()
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	n, err := cli.ParseCount(m.inputs[fieldCount].Value())
	if err != nil {
		m.errMsg = "please enter a positive integer"
		if m.focused != fieldCount {
			return m.focus(fieldCount)
		}
		return m, nil
	}
	m.errMsg = ""

	if m.focused == fieldCount {
		return m.focus(fieldOutput)
	}

	cfg := m.cfg
	cfg.Count = n
	cfg.Output = cli.OutputPath(m.inputs[fieldOutput].Value())

	m.busy = true
	forge := m.forge
	return m, func() tea.Msg {
		res, err := forge(cfg)
		return forgeResultMsg{result: res, err: err}
	}
}

func (m Model) View() string {
	header := zstyle.RenderHeader("zforge", "Generate Users", cli.Accent)
	sep := zstyle.RenderSeparator(m.width)

	var b strings.Builder
	b.WriteString("\n" + header + "\n" + sep + "\n\n")

	labels := [numFields]string{"number of users:", "output file:"}
	for i, label := range labels {
		if field(i) == m.focused && !m.done {
			b.WriteString("  " + zstyle.Highlight.Render(label) + "\n")
		} else {
			b.WriteString("  " + zstyle.MutedText.Render(label) + "\n")
		}
		b.WriteString("  " + m.inputs[i].View() + "\n\n")
	}

	switch {
	case m.errMsg != "":
		b.WriteString("  " + zstyle.StatusErr.Render(m.errMsg) + "\n")
	case m.busy:
		b.WriteString("  " + zstyle.MutedText.Render("generating...") + "\n")
	case m.done && m.err != nil:
		b.WriteString("  " + zstyle.StatusErr.Render("Error: "+m.err.Error()) + "\n")
	case m.done:
		b.WriteString("  " + zstyle.StatusOK.Render(cli.SuccessMessage(m.result)) + "\n")
	}

	b.WriteString("\n" + zstyle.RenderFooter(m.help()) + "\n")
	return b.String()
}

func (m Model) help() []zstyle.HelpPair {
	if m.done {
		return []zstyle.HelpPair{{Key: "any key", Desc: "exit"}}
	}
	return []zstyle.HelpPair{
		{Key: "tab", Desc: "next"},
		{Key: "enter", Desc: "confirm"},
		{Key: "esc", Desc: "quit"},
	}
}
