package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Toast lifecycle: inserted hidden, marked visible shortly after, removed
// at the fixed lifetime. Feedback stays independent of the render cycle;
// several toasts may stack in insertion order.
const (
	toastShowDelay = 50 * time.Millisecond
	toastLifetime  = 4 * time.Second
)

type toastLevel int

const (
	toastSuccess toastLevel = iota
	toastError
	toastInfo
)

type toast struct {
	id      int
	level   toastLevel
	text    string
	visible bool
}

type toastShownMsg struct{ id int }
type toastExpiredMsg struct{ id int }

type toastModel struct {
	items  []toast
	nextID int
}

// Push inserts a toast and schedules its show transition and expiry.
func (m toastModel) Push(level toastLevel, text string) (toastModel, tea.Cmd) {
	id := m.nextID
	m.nextID++
	m.items = append(append([]toast(nil), m.items...), toast{id: id, level: level, text: text})

	show := tea.Tick(toastShowDelay, func(time.Time) tea.Msg { return toastShownMsg{id: id} })
	expire := tea.Tick(toastLifetime, func(time.Time) tea.Msg { return toastExpiredMsg{id: id} })
	return m, tea.Batch(show, expire)
}

func (m toastModel) Update(msg tea.Msg) toastModel {
	switch msg := msg.(type) {
	case toastShownMsg:
		items := append([]toast(nil), m.items...)
		for i := range items {
			if items[i].id == msg.id {
				items[i].visible = true
			}
		}
		m.items = items

	case toastExpiredMsg:
		items := make([]toast, 0, len(m.items))
		for _, t := range m.items {
			if t.id != msg.id {
				items = append(items, t)
			}
		}
		m.items = items
	}
	return m
}

func (m toastModel) icon(level toastLevel) string {
	switch level {
	case toastSuccess:
		return toastSuccessStyle.Render("✓")
	case toastError:
		return toastErrorStyle.Render("✗")
	default:
		return toastInfoStyle.Render("·")
	}
}

// View renders the stack, one line per visible toast, insertion order.
func (m toastModel) View() string {
	var out string
	for _, t := range m.items {
		if !t.visible {
			continue
		}
		out += " " + m.icon(t.level) + " " + normalStyle.Render(t.text) + "\n"
	}
	return out
}

// Len reports how many toasts are held, visible or not.
func (m toastModel) Len() int { return len(m.items) }
