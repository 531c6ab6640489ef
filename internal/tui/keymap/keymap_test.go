package keymap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestLookup(t *testing.T) {
	km := Default()

	tests := []struct {
		name  string
		mode  Mode
		key   string
		want  Command
		bound bool
	}{
		{name: "browse j scrolls", mode: ModeBrowse, key: "j", want: CmdCursorDown, bound: true},
		{name: "browse slash searches", mode: ModeBrowse, key: "/", want: CmdSearch, bound: true},
		{name: "browse digit sets status", mode: ModeBrowse, key: "3", want: CmdSetStatus, bound: true},
		{name: "text enter accepts", mode: ModeText, key: "enter", want: CmdAccept, bound: true},
		{name: "text esc cancels", mode: ModeText, key: "esc", want: CmdCancel, bound: true},
		{name: "confirm y confirms", mode: ModeConfirm, key: "y", want: CmdYes, bound: true},
		{name: "confirm esc declines", mode: ModeConfirm, key: "esc", want: CmdNo, bound: true},
		{name: "text j is unbound", mode: ModeText, key: "j", bound: false},
		{name: "browse z is unbound", mode: ModeBrowse, key: "z", bound: false},
		{name: "ctrl+c quits in every mode", mode: ModeConfirm, key: "ctrl+c", want: CmdQuit, bound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.Lookup(tt.mode, keyMsg(tt.key))
			if ok != tt.bound {
				t.Fatalf("Lookup(%s, %q) bound = %v, want %v", tt.mode, tt.key, ok, tt.bound)
			}
			if ok && got != tt.want {
				t.Errorf("Lookup(%s, %q) = %q, want %q", tt.mode, tt.key, got, tt.want)
			}
		})
	}
}

func TestHelpCollapsesDuplicates(t *testing.T) {
	km := Default()

	seen := make(map[Command]int)
	for _, b := range km.Help(ModeBrowse) {
		seen[b.Command]++
	}
	for cmd, count := range seen {
		if count > 1 {
			t.Errorf("Help() lists %q %d times, want once", cmd, count)
		}
	}
	if seen[CmdCursorDown] != 1 {
		t.Error("Help() should keep one entry per command")
	}
}
