package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/kshetty/huntboard/internal/sync"
	"github.com/kshetty/huntboard/pkg/client"
	"github.com/kshetty/huntboard/pkg/domain"
)

// stoneField indexes the add-stone form fields.
type stoneField int

const (
	stoneFieldNumber stoneField = iota
	stoneFieldTitle
	stoneFieldMinutes
	stoneFieldBuilt
	stoneFieldInsights
	stoneFieldNext
	stoneFieldFelt
	numStoneFields
)

var stoneFieldLabels = [numStoneFields]string{
	"stone #", "title", "minutes", "built", "insights", "next stone", "felt sense",
}

// stonesModel is the sacred work tab: aggregate stats, the progress log,
// and an append-only add form. Stones are never edited or deleted.
type stonesModel struct {
	client *client.Client

	stats    *domain.SacredWorkStats
	statsErr error
	stones   []domain.Stone
	logErr   error
	loading  bool

	cursor int

	adding    bool
	fields    [numStoneFields]string
	focus     stoneField
	statusMsg string

	width  int
	height int
}

func newStonesModel(c *client.Client) stonesModel {
	return stonesModel{client: c, loading: true}
}

func (m stonesModel) Init() tea.Cmd {
	return tea.Batch(m.loadStats(), m.loadProgress())
}

func (m stonesModel) loadStats() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		stats, err := c.SacredWorkStats(context.Background())
		return sacredStatsLoadedMsg{stats: stats, err: err}
	}
}

func (m stonesModel) loadProgress() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		stones, err := c.SacredWorkProgress(context.Background())
		return sacredProgressLoadedMsg{stones: stones, err: err}
	}
}

func (m stonesModel) Update(msg tea.Msg) (stonesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case sacredStatsLoadedMsg:
		m.loading = false
		m.stats, m.statsErr = msg.stats, msg.err
		return m, nil

	case sacredProgressLoadedMsg:
		m.loading = false
		m.stones, m.logErr = msg.stones, msg.err
		if m.cursor >= len(m.stones) {
			m.cursor = 0
		}
		return m, nil

	case mutationDoneMsg:
		// Leave the form only when our own submission succeeded.
		if _, ok := msg.mutation.(sync.AddStone); ok && msg.err == nil {
			m.adding = false
			m.fields = [numStoneFields]string{}
			m.focus = stoneFieldNumber
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			return m.updateForm(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m stonesModel) handleKey(msg tea.KeyMsg) (stonesModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.stones)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "n":
		m.adding = true
		m.statusMsg = ""
		m.focus = stoneFieldNumber
		// Suggest the next stone number from the log.
		next := 1
		for _, s := range m.stones {
			if s.StoneNumber >= next {
				next = s.StoneNumber + 1
			}
		}
		m.fields[stoneFieldNumber] = strconv.Itoa(next)
	}
	return m, nil
}

func (m stonesModel) updateForm(msg tea.KeyMsg) (stonesModel, tea.Cmd) {
	m.statusMsg = ""

	switch msg.String() {
	case "ctrl+s":
		return m.submit()
	case "esc":
		m.adding = false
		return m, nil
	case "tab", "down":
		m.focus = (m.focus + 1) % numStoneFields
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + numStoneFields) % numStoneFields
	case "enter":
		if m.focus == numStoneFields-1 {
			return m.submit()
		}
		m.focus++
	default:
		switch m.focus {
		case stoneFieldNumber, stoneFieldMinutes:
			m.fields[m.focus] = editDigits(m.fields[m.focus], msg.String())
		default:
			m.fields[m.focus] = editRune(m.fields[m.focus], msg.String())
		}
	}
	return m, nil
}

// submit validates client-side first: a bad form never reaches the wire.
func (m stonesModel) submit() (stonesModel, tea.Cmd) {
	number, _ := strconv.Atoi(m.fields[stoneFieldNumber])
	minutes, _ := strconv.Atoi(m.fields[stoneFieldMinutes])

	switch {
	case number <= 0:
		m.statusMsg = "stone number is required"
		return m, nil
	case strings.TrimSpace(m.fields[stoneFieldTitle]) == "":
		m.statusMsg = "title is required"
		return m, nil
	case minutes <= 0:
		m.statusMsg = "minutes is required"
		return m, nil
	case strings.TrimSpace(m.fields[stoneFieldBuilt]) == "":
		m.statusMsg = "built is required"
		return m, nil
	}

	stone := domain.Stone{
		StoneNumber:      number,
		StoneTitle:       strings.TrimSpace(m.fields[stoneFieldTitle]),
		TimeSpentMinutes: minutes,
		WhatBuilt:        strings.TrimSpace(m.fields[stoneFieldBuilt]),
		Insights:         strings.TrimSpace(m.fields[stoneFieldInsights]),
		NextStone:        strings.TrimSpace(m.fields[stoneFieldNext]),
		FeltSense:        strings.TrimSpace(m.fields[stoneFieldFelt]),
	}
	return m, mutationCmd(m.client, sync.AddStone{Stone: stone})
}

func (m stonesModel) View() string {
	if m.loading {
		return " " + dimStyle.Render("loading sacred work...")
	}
	if m.adding {
		return m.formView()
	}

	var sb strings.Builder
	sb.WriteString(m.statsView())
	sb.WriteString("\n")

	if m.logErr != nil {
		sb.WriteString(" " + dimStyle.Render("error loading progress log") + "\n")
		return sb.String()
	}
	if len(m.stones) == 0 {
		sb.WriteString(" " + dimStyle.Render("no stones placed yet — press n to log one") + "\n")
		return sb.String()
	}

	for i, s := range m.stones {
		line := fmt.Sprintf(" %s  %-34s %s",
			accentStyle.Render(fmt.Sprintf("#%-3d", s.StoneNumber)),
			normalStyle.Render(truncStr(s.StoneTitle, 34)),
			metaStyle.Render(fmt.Sprintf("%dm  %s", s.TimeSpentMinutes, s.Date)))
		if i == m.cursor {
			line = selectedRowBg.Render(line)
			sb.WriteString(line + "\n")
			if s.WhatBuilt != "" {
				sb.WriteString("      " + dimStyle.Render(truncStr(s.WhatBuilt, 70)) + "\n")
			}
			if s.Insights != "" {
				sb.WriteString("      " + metaStyle.Render(truncStr(s.Insights, 70)) + "\n")
			}
			continue
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}

func (m stonesModel) statsView() string {
	if m.statsErr != nil || m.stats == nil {
		return " " + dimStyle.Render("stats unavailable") + "\n"
	}
	s := m.stats
	return " " + metricValueStyle.Render(fmt.Sprintf("%d", s.TotalStones)) + metricLabelStyle.Render(" stones") +
		"   " + metricValueStyle.Render(humanize.Comma(int64(s.TotalMinutes))) + metricLabelStyle.Render(" minutes") +
		"   " + metricValueStyle.Render(fmt.Sprintf("%.0f", s.AvgMinutesPerStone)) + metricLabelStyle.Render(" avg/stone") +
		"\n"
}

func (m stonesModel) formView() string {
	var b strings.Builder
	b.WriteString(" " + selectedStyle.Render("Place a stone") + "\n\n")

	for i := stoneField(0); i < numStoneFields; i++ {
		cursor := " "
		style := metaStyle
		if i == m.focus {
			cursor = ">"
			style = selectedStyle
		}
		value := m.fields[i]
		if i == m.focus {
			value += "█"
		}
		fmt.Fprintf(&b, " %s %s: %s\n", cursor, style.Render(fmt.Sprintf("%-10s", stoneFieldLabels[i])), value)
	}

	b.WriteString("\n")
	if m.statusMsg != "" {
		b.WriteString(" " + toastErrorStyle.Render(m.statusMsg) + "\n")
	}
	return b.String()
}
