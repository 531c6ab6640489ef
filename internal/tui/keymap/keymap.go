// Package keymap declares the key bindings for the dashboard as data,
// keyed by input mode, so pages can look up the command for a keypress
// instead of switching on key strings inline.
package keymap

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents the current input mode. Different modes have
// different bindings active.
type Mode string

const (
	ModeBrowse  Mode = "browse"  // Navigating a list
	ModeText    Mode = "text"    // Keys forwarded to a text input
	ModeConfirm Mode = "confirm" // Yes/no prompt
)

// Command is a named action triggered by a key binding.
type Command string

const (
	// Navigation
	CmdCursorDown Command = "cursor_down"
	CmdCursorUp   Command = "cursor_up"
	CmdNextTab    Command = "next_tab"
	CmdPrevTab    Command = "prev_tab"
	CmdSelect     Command = "select"

	// Menu page
	CmdSearch     Command = "search"
	CmdNewItem    Command = "new_item"
	CmdEditItem   Command = "edit_item"
	CmdDelete     Command = "delete"
	CmdToggle     Command = "toggle_availability"
	CmdQuickOrder Command = "quick_order"
	CmdCycleCat   Command = "cycle_category"
	CmdCycleAvail Command = "cycle_availability"
	CmdPriceRange Command = "price_range"

	// Orders page
	CmdCycleStatus   Command = "cycle_status_filter"
	CmdAdvanceStatus Command = "advance_status"
	CmdSetStatus     Command = "set_status" // 1-5 keys

	// Shared
	CmdRefresh    Command = "refresh"
	CmdToggleHelp Command = "toggle_help"
	CmdQuit       Command = "quit"

	// Text mode
	CmdAccept Command = "accept"
	CmdCancel Command = "cancel"
	CmdNext   Command = "next_field"
	CmdPrev   Command = "prev_field"

	// Confirm mode
	CmdYes Command = "yes"
	CmdNo  Command = "no"
)

// Binding pairs a key with a command.
type Binding struct {
	Key         string
	Command     Command
	Description string
}

// Keymap holds the bindings for every mode.
type Keymap struct {
	Modes map[Mode][]Binding
}

// Default returns the standard bindings.
func Default() *Keymap {
	return &Keymap{
		Modes: map[Mode][]Binding{
			ModeBrowse: {
				{Key: "j", Command: CmdCursorDown, Description: "Down"},
				{Key: "down", Command: CmdCursorDown, Description: "Down"},
				{Key: "k", Command: CmdCursorUp, Description: "Up"},
				{Key: "up", Command: CmdCursorUp, Description: "Up"},
				{Key: "tab", Command: CmdNextTab, Description: "Next tab"},
				{Key: "shift+tab", Command: CmdPrevTab, Description: "Previous tab"},
				{Key: "enter", Command: CmdSelect, Description: "Select"},
				{Key: "/", Command: CmdSearch, Description: "Search"},
				{Key: "n", Command: CmdNewItem, Description: "New item"},
				{Key: "e", Command: CmdEditItem, Description: "Edit item"},
				{Key: "d", Command: CmdDelete, Description: "Delete"},
				{Key: "t", Command: CmdToggle, Description: "Toggle availability"},
				{Key: "o", Command: CmdQuickOrder, Description: "Quick order"},
				{Key: "c", Command: CmdCycleCat, Description: "Cycle category"},
				{Key: "a", Command: CmdCycleAvail, Description: "Cycle availability filter"},
				{Key: "p", Command: CmdPriceRange, Description: "Price range"},
				{Key: "s", Command: CmdCycleStatus, Description: "Cycle status filter"},
				{Key: "u", Command: CmdAdvanceStatus, Description: "Advance status"},
				{Key: "1", Command: CmdSetStatus, Description: "Set Pending"},
				{Key: "2", Command: CmdSetStatus, Description: "Set Preparing"},
				{Key: "3", Command: CmdSetStatus, Description: "Set Ready"},
				{Key: "4", Command: CmdSetStatus, Description: "Set Delivered"},
				{Key: "5", Command: CmdSetStatus, Description: "Set Cancelled"},
				{Key: "r", Command: CmdRefresh, Description: "Refresh"},
				{Key: "?", Command: CmdToggleHelp, Description: "Help"},
				{Key: "q", Command: CmdQuit, Description: "Quit"},
				{Key: "ctrl+c", Command: CmdQuit, Description: "Quit"},
			},
			ModeText: {
				{Key: "enter", Command: CmdAccept, Description: "Accept"},
				{Key: "esc", Command: CmdCancel, Description: "Cancel"},
				{Key: "tab", Command: CmdNext, Description: "Next field"},
				{Key: "shift+tab", Command: CmdPrev, Description: "Previous field"},
				{Key: "ctrl+c", Command: CmdQuit, Description: "Quit"},
			},
			ModeConfirm: {
				{Key: "y", Command: CmdYes, Description: "Confirm"},
				{Key: "enter", Command: CmdYes, Description: "Confirm"},
				{Key: "n", Command: CmdNo, Description: "Cancel"},
				{Key: "esc", Command: CmdNo, Description: "Cancel"},
				{Key: "ctrl+c", Command: CmdQuit, Description: "Quit"},
			},
		},
	}
}

// Lookup resolves a keypress to a command in the given mode. The second
// return is false when the key has no binding.
func (k *Keymap) Lookup(mode Mode, msg tea.KeyMsg) (Command, bool) {
	for _, b := range k.Modes[mode] {
		if b.Key == msg.String() {
			return b.Command, true
		}
	}
	return "", false
}

// Help returns the mode's bindings for rendering a help bar, in
// declaration order with duplicate commands collapsed.
func (k *Keymap) Help(mode Mode) []Binding {
	seen := make(map[Command]bool)
	var out []Binding
	for _, b := range k.Modes[mode] {
		if seen[b.Command] {
			continue
		}
		seen[b.Command] = true
		out = append(out, b)
	}
	return out
}
