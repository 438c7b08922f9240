package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kshetty/huntboard/internal/sync"
	"github.com/kshetty/huntboard/pkg/client"
	"github.com/kshetty/huntboard/pkg/domain"
)

// boardSection identifies which region of the board the cursor is in.
type boardSection int

const (
	sectionPipeline boardSection = iota
	sectionAgenda
)

// boardModel renders the main dashboard: metrics strip, today's agenda,
// and the active pipeline table. All three come from one snapshot so a
// render never mixes two loads.
type boardModel struct {
	client  *client.Client
	loader  *sync.Loader
	snap    sync.Snapshot
	loading bool

	section      boardSection
	cursor       int // pipeline row
	agendaCursor int

	editing    bool // inline notes edit on the selected row
	notesInput string

	width  int
	height int
}

func newBoardModel(c *client.Client, l *sync.Loader) boardModel {
	return boardModel{client: c, loader: l, loading: true}
}

func (m boardModel) Init() tea.Cmd {
	return m.load()
}

// load runs the four-resource fan-out. The snapshot is swapped in as a
// unit; overlapping refreshes are last-writer-wins.
func (m boardModel) load() tea.Cmd {
	l := m.loader
	return func() tea.Msg {
		return dashboardLoadedMsg{snap: l.Dashboard(context.Background())}
	}
}

func (m boardModel) selected() (domain.Opportunity, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snap.Pipeline) {
		return domain.Opportunity{}, false
	}
	return m.snap.Pipeline[m.cursor], true
}

func (m boardModel) Update(msg tea.Msg) (boardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		m.snap = msg.snap
		if m.cursor >= len(m.snap.Pipeline) {
			m.cursor = 0
		}
		if m.agendaCursor >= len(m.snap.Agenda) {
			m.agendaCursor = 0
		}
		return m, nil

	// Targeted resyncs patch the matching region of the held snapshot.
	case metricsLoadedMsg:
		m.snap.Metrics, m.snap.MetricsErr = msg.metrics, msg.err
		return m, nil

	case agendaLoadedMsg:
		m.snap.Agenda, m.snap.AgendaErr = msg.items, msg.err
		if m.agendaCursor >= len(m.snap.Agenda) {
			m.agendaCursor = 0
		}
		return m, nil

	case pipelineLoadedMsg:
		m.snap.Pipeline, m.snap.PipelineErr = msg.opps, msg.err
		if m.cursor >= len(m.snap.Pipeline) {
			m.cursor = 0
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateNotesEdit(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m boardModel) updateNotesEdit(msg tea.KeyMsg) (boardModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		opp, ok := m.selected()
		if !ok {
			m.editing = false
			return m, nil
		}
		m.editing = false
		return m, mutationCmd(m.client, sync.EditNotes{ID: opp.ID, Notes: strings.TrimSpace(m.notesInput)})
	case "esc":
		m.editing = false
		m.notesInput = ""
		return m, nil
	default:
		m.notesInput = editRune(m.notesInput, msg.String())
	}
	return m, nil
}

func (m boardModel) handleKey(msg tea.KeyMsg) (boardModel, tea.Cmd) {
	if m.section == sectionAgenda {
		return m.handleAgendaKey(msg)
	}

	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.snap.Pipeline)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "tab":
		m.section = sectionAgenda
	case "s":
		if opp, ok := m.selected(); ok {
			return m, mutationCmd(m.client, sync.SetStatus{ID: opp.ID, Status: domain.NextStatus(opp.Status)})
		}
	case "r":
		if opp, ok := m.selected(); ok {
			return m, mutationCmd(m.client, sync.ToggleRemote{ID: opp.ID, Remote: !bool(opp.IsRemote)})
		}
	case "a":
		if opp, ok := m.selected(); ok {
			return m, mutationCmd(m.client, sync.Archive{ID: opp.ID})
		}
	case "e":
		if opp, ok := m.selected(); ok {
			m.editing = true
			m.notesInput = opp.Notes
		}
	case "d":
		if opp, ok := m.selected(); ok {
			return m, mutationCmd(m.client, sync.Delete{ID: opp.ID})
		}
	case "c":
		if opp, ok := m.selected(); ok {
			contact := strings.TrimSpace(opp.RecruiterName + " " + opp.RecruiterPhone)
			if contact != "" {
				return m, copyCmd(contact, "recruiter contact")
			}
		}
	}
	return m, nil
}

func (m boardModel) handleAgendaKey(msg tea.KeyMsg) (boardModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.agendaCursor < len(m.snap.Agenda)-1 {
			m.agendaCursor++
		}
	case "k", "up":
		if m.agendaCursor > 0 {
			m.agendaCursor--
		}
	case "tab":
		m.section = sectionPipeline
	case "o", "enter":
		if m.agendaCursor < len(m.snap.Agenda) {
			item := m.snap.Agenda[m.agendaCursor]
			if item.MeetLink != "" {
				return m, openLinkCmd(item.MeetLink, "meeting link")
			}
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.loading {
		return " " + dimStyle.Render("loading dashboard...")
	}

	var sb strings.Builder
	sb.WriteString(m.metricsView())
	sb.WriteString("\n")
	sb.WriteString(m.agendaView())
	sb.WriteString("\n")
	sb.WriteString(m.pipelineView())
	return sb.String()
}

// metricsView renders the aggregate strip, dashes when degraded.
func (m boardModel) metricsView() string {
	if m.snap.MetricsErr != nil || m.snap.Metrics == nil {
		return " " + dimStyle.Render("metrics unavailable") + "\n"
	}
	mt := m.snap.Metrics
	seg := func(n int, label string) string {
		return metricValueStyle.Render(fmt.Sprintf("%d", n)) + " " + metricLabelStyle.Render(label)
	}
	return " " + seg(mt.ActiveCount, "active") + "   " +
		seg(mt.InterviewCount, "interviews") + "   " +
		seg(mt.RemoteCount, "remote") + "   " +
		seg(mt.PriorityCount, "high priority") + "\n"
}

func (m boardModel) agendaView() string {
	header := " " + selectedStyle.Render("Today")
	if m.section == sectionAgenda {
		header += " " + accentStyle.Render("◂")
	}
	header += "\n"

	if m.snap.AgendaErr != nil {
		return header + " " + dimStyle.Render("error loading agenda") + "\n"
	}
	if len(m.snap.Agenda) == 0 {
		return header + " " + dimStyle.Render("no interviews scheduled") + "\n"
	}

	var sb strings.Builder
	sb.WriteString(header)
	for i, item := range m.snap.Agenda {
		line := fmt.Sprintf(" %8s  %s %s  %s",
			metaStyle.Render(item.Time),
			normalStyle.Render(truncStr(item.Company, 24)),
			dimStyle.Render(truncStr(item.Role, 28)),
			StatusStyle(item.Type).Render(item.Type))
		if item.MeetLink != "" {
			line += " " + remoteStyle.Render("▸ meet")
		}
		if m.section == sectionAgenda && i == m.agendaCursor {
			line = selectedRowBg.Render(line)
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}

func (m boardModel) pipelineView() string {
	header := " " + selectedStyle.Render("Pipeline")
	if m.section == sectionPipeline {
		header += " " + accentStyle.Render("◂")
	}
	header += "\n"

	if m.snap.PipelineErr != nil {
		return header + " " + dimStyle.Render("error loading pipeline") + "\n"
	}
	if len(m.snap.Pipeline) == 0 {
		return header + " " + dimStyle.Render("pipeline is empty — press n to add an opportunity") + "\n"
	}

	var sb strings.Builder
	sb.WriteString(header)
	for i, opp := range m.snap.Pipeline {
		remote := "      "
		if opp.IsRemote {
			remote = remoteStyle.Render("remote")
		}
		line := fmt.Sprintf(" %-22s %-26s %-10s %s  %-6s %s",
			normalStyle.Render(truncStr(opp.Company, 22)),
			dimStyle.Render(truncStr(opp.Role, 26)),
			StatusStyle(opp.Status).Render(opp.Status),
			PriorityStyle(opp.Priority).Render(fmt.Sprintf("%-6s", opp.Priority)),
			remote,
			metaStyle.Render(formatWhen(opp.UpdatedAt.Time)))
		if m.section == sectionPipeline && i == m.cursor {
			line = selectedRowBg.Render(line)
		}
		sb.WriteString(line + "\n")

		if m.section == sectionPipeline && i == m.cursor && opp.Notes != "" && !m.editing {
			sb.WriteString("   " + metaStyle.Render(truncStr(opp.Notes, m.bodyWidth()-4)) + "\n")
		}
	}

	if m.editing {
		sb.WriteString("\n " + accentStyle.Render("notes> ") + normalStyle.Render(m.notesInput) + accentStyle.Render("█") + "\n")
	}
	return sb.String()
}

func (m boardModel) bodyWidth() int {
	if m.width < 40 {
		return 80
	}
	return m.width
}
