// Package debounce delays reactions to rapidly changing inputs until the
// input has been stable for a settle window. It follows the Bubble Tea tag
// convention: every trigger bumps a sequence number and schedules a timer
// carrying that number; by the time a timer fires, the consumer acts only if
// the delivered tag still matches the latest sequence. Superseded timers
// arrive with a stale tag and are ignored, so a late timer can never act
// on behalf of a consumer that moved on.
package debounce

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Msg is delivered when a settle window elapses. Consumers must check the
// tag against the debouncer before acting on it.
type Msg struct {
	// Tag identifies which trigger scheduled this message.
	Tag int
}

// Debouncer issues tagged settle timers for one logical input.
// One Debouncer per debounced value; it is not safe for concurrent use
// (Bubble Tea's Update loop is single-threaded, which is the intended home).
type Debouncer struct {
	delay time.Duration
	seq   int
}

// New creates a Debouncer with the given settle window.
func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger records an input change and returns a command that delivers a Msg
// after the settle window. Calling Trigger again before the window elapses
// supersedes the earlier timer: its Msg will no longer match.
func (d *Debouncer) Trigger() tea.Cmd {
	d.seq++
	tag := d.seq
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return Msg{Tag: tag}
	})
}

// Cancel invalidates any pending timer without scheduling a new one.
// Use it when the consumer acts on the input immediately (or discards
// it): a timer still in flight arrives with a stale tag and no longer
// matches.
func (d *Debouncer) Cancel() {
	d.seq++
}

// Match reports whether m was scheduled by the most recent Trigger.
// Exactly one Msg per burst of triggers can match.
func (d *Debouncer) Match(m Msg) bool {
	return m.Tag == d.seq
}

// Pending reports whether a trigger has been issued at all. Useful for
// distinguishing "never typed" from "settled".
func (d *Debouncer) Pending() bool {
	return d.seq > 0
}

// Seq returns the tag of the most recent trigger.
func (d *Debouncer) Seq() int {
	return d.seq
}

// Delay returns the settle window.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}
