package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/js-bridge/adapter"
	"github.com/wippyai/js-bridge/wire"
)

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func typeText(m *inspectModel, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func selectType(t *testing.T, m *inspectModel, ht adapter.HostType) {
	t.Helper()
	for m.types[m.selected] != ht {
		before := m.selected
		m.Update(key(tea.KeyDown))
		require.NotEqual(t, before, m.selected, "host type %s not listed", ht)
	}
	m.Update(key(tea.KeyEnter))
	require.Equal(t, stateEditLiteral, m.state)
}

func TestInspectModel_LivePreview(t *testing.T) {
	m := newInspectModel(adapter.NewFactory(), wire.NewBuffer())
	require.Nil(t, m.Init())
	require.Contains(t, m.View(), "Select a host type")

	selectType(t, m, adapter.Prim(adapter.KindInt))
	// empty literal does not parse as int
	require.Error(t, m.err)

	typeText(m, "42")
	require.NoError(t, m.err)
	require.NotNil(t, m.enc)
	require.Equal(t, []byte{0, 0, 0, 42}, m.enc.wire)
	require.Contains(t, m.View(), "00 00 00 2a")

	typeText(m, "x")
	require.Error(t, m.err)
	require.Nil(t, m.enc)
	require.Contains(t, m.View(), "invalid_input")

	m.Update(key(tea.KeyEsc))
	require.Equal(t, stateSelectType, m.state)
	require.Empty(t, m.input.Value())
}

func TestInspectModel_NullableAndQuit(t *testing.T) {
	m := newInspectModel(adapter.NewFactory(adapter.WithNullableEncoding(adapter.NullableEncodeDelegate)), wire.NewBuffer())
	require.Contains(t, m.View(), "nullable encode: delegate")

	selectType(t, m, adapter.Boxed(adapter.KindString))
	require.NoError(t, m.err, "empty string is a valid literal")

	// q is text while editing
	typeText(m, "q")
	require.Equal(t, stateEditLiteral, m.state)
	require.Equal(t, "q", m.input.Value())
	require.Equal(t, `"q"`, m.enc.script.String())

	m.Update(key(tea.KeyEsc))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	_, quit := cmd().(tea.QuitMsg)
	require.True(t, quit)
}

func TestPlaceholder(t *testing.T) {
	require.Equal(t, "42", placeholder(adapter.Prim(adapter.KindLong)))
	require.Equal(t, "text or null", placeholder(adapter.Boxed(adapter.KindString)))
}
