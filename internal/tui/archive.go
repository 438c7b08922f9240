package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kshetty/huntboard/internal/sync"
	"github.com/kshetty/huntboard/pkg/client"
	"github.com/kshetty/huntboard/pkg/domain"
)

// archiveModel renders opportunities with terminal statuses. Rows are
// fed from the same dashboard snapshot as the board; mutating from here
// is limited to restore; delete stays intercepted.
type archiveModel struct {
	client *client.Client
	rows   []domain.Opportunity
	err    error
	cursor int
	width  int
	height int
}

func newArchiveModel(c *client.Client) archiveModel {
	return archiveModel{client: c}
}

func (m archiveModel) Update(msg tea.Msg) (archiveModel, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.rows, m.err = msg.snap.Archived, msg.snap.ArchivedErr
		if m.cursor >= len(m.rows) {
			m.cursor = 0
		}
		return m, nil

	case archivedLoadedMsg:
		m.rows, m.err = msg.opps, msg.err
		if m.cursor >= len(m.rows) {
			m.cursor = 0
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m archiveModel) handleKey(msg tea.KeyMsg) (archiveModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "u":
		if m.cursor < len(m.rows) {
			return m, mutationCmd(m.client, sync.Restore{ID: m.rows[m.cursor].ID})
		}
	case "d":
		if m.cursor < len(m.rows) {
			return m, mutationCmd(m.client, sync.Delete{ID: m.rows[m.cursor].ID})
		}
	}
	return m, nil
}

func (m archiveModel) View() string {
	if m.err != nil {
		return " " + dimStyle.Render("error loading archive")
	}
	if len(m.rows) == 0 {
		return " " + dimStyle.Render("nothing archived yet")
	}

	var sb strings.Builder
	sb.WriteString(" " + selectedStyle.Render("Archive") + "\n")
	for i, opp := range m.rows {
		line := fmt.Sprintf(" %-22s %-26s %-10s %s",
			normalStyle.Render(truncStr(opp.Company, 22)),
			dimStyle.Render(truncStr(opp.Role, 26)),
			StatusStyle(opp.Status).Render(opp.Status),
			metaStyle.Render(formatWhen(opp.UpdatedAt.Time)))
		if i == m.cursor {
			line = selectedRowBg.Render(line)
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}
