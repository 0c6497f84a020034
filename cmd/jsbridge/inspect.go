package main

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/wippyai/js-bridge/adapter"
	"github.com/wippyai/js-bridge/errors"
	"github.com/wippyai/js-bridge/wire"
)

type inspectState int

const (
	stateSelectType inspectState = iota
	stateEditLiteral
)

// inspectModel lets the user pick a host type and live-edit a literal,
// showing the script value and wire bytes on every keystroke.
type inspectModel struct {
	err      error
	factory  *adapter.Factory
	buf      *wire.Buffer
	enc      *encoded
	types    []adapter.HostType
	input    textinput.Model
	selected int
	state    inspectState
}

func newInspectModel(f *adapter.Factory, buf *wire.Buffer) *inspectModel {
	ti := textinput.New()
	ti.Width = 40
	return &inspectModel{
		factory: f,
		buf:     buf,
		types:   adapter.StandardHostTypes(),
		input:   ti,
		state:   stateSelectType,
	}
}

func (m *inspectModel) Init() tea.Cmd {
	return nil
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.state == stateEditLiteral {
			m.state = stateSelectType
			m.input.Blur()
			m.input.Reset()
			m.enc, m.err = nil, nil
		}
		return m, nil
	}

	if m.state == stateSelectType {
		switch key.String() {
		case "q":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.types)-1 {
				m.selected++
			}
		case "enter":
			m.state = stateEditLiteral
			ht := m.types[m.selected]
			m.input.Prompt = ht.String() + ": "
			m.input.Placeholder = placeholder(ht)
			m.refresh()
			return m, m.input.Focus()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

// refresh re-encodes the current literal.
func (m *inspectModel) refresh() {
	enc, err := encodeLiteral(m.factory, m.buf, m.types[m.selected], m.input.Value())
	if err != nil {
		m.enc, m.err = nil, err
		return
	}
	m.enc, m.err = &enc, nil
}

func placeholder(ht adapter.HostType) string {
	var p string
	switch ht.Kind {
	case adapter.KindVoid:
		p = "(no value)"
	case adapter.KindBool:
		p = "true"
	case adapter.KindChar:
		p = "x"
	case adapter.KindString:
		p = "text"
	case adapter.KindFloat, adapter.KindDouble:
		p = "1.5"
	default:
		p = "42"
	}
	if ht.Boxed {
		p += " or null"
	}
	return p
}

func (m *inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("jsbridge inspect"))
	b.WriteString(" nullable encode: ")
	b.WriteString(m.factory.NullableEncoding().String())
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectType:
		b.WriteString("Select a host type:\n\n")
		for i, ht := range m.types {
			line := fmt.Sprintf("%-8s %s", ht, typeStyle.Render(ht.GoType()))
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter edit • q quit"))

	case stateEditLiteral:
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		switch {
		case m.err != nil:
			b.WriteString(errorStyle.Render(describeError(m.err)))
		case m.enc != nil:
			p := printer{w: &b, styled: true}
			p.field("host", fmt.Sprintf("%T", m.enc.host), formatHost(m.enc.ht, m.enc.host))
			p.field("script", m.enc.script.Kind().String(), m.enc.script.String())
			p.field("wire", fmt.Sprintf("[%d]", len(m.enc.wire)), hexBytes(m.enc.wire))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("type a literal • esc back • ctrl+c quit"))
	}

	return b.String()
}

// describeError prefers the structured detail over the full chain.
func describeError(err error) string {
	var e *errors.Error
	if stderrors.As(err, &e) && e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
	return err.Error()
}

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Interactively encode literals and watch the wire bytes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !a.styled {
				return fmt.Errorf("inspect needs an interactive terminal")
			}
			p := tea.NewProgram(newInspectModel(a.factory, a.cfg.NewBuffer()),
				tea.WithAltScreen(),
				tea.WithOutput(a.out),
				tea.WithContext(cmd.Context()))
			_, err := p.Run()
			return err
		},
	}
}
