package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kshetty/huntboard/internal/sync"
	"github.com/kshetty/huntboard/pkg/client"
	"github.com/kshetty/huntboard/pkg/domain"
)

// sourceSentinel is the select option that switches the source field
// into free-text mode for creating a source on demand.
const sourceSentinel = "+ add new…"

type createField int

const (
	fieldCompany createField = iota
	fieldRole
	fieldSource
	fieldNewSource
	fieldRemote
	fieldTechStack
	fieldRecruiter
	fieldNotes
	fieldStatus
	fieldPriority
	numCreateFields
)

var createFieldLabels = [numCreateFields]string{
	"company", "role", "source", "new source", "remote", "tech stack",
	"recruiter", "notes", "status", "priority",
}

// createModel is the add-opportunity form. The source select is
// populated from the cached server-provided list; choosing the sentinel
// switches to free text, and submission then creates the source before
// the opportunity referencing it.
type createModel struct {
	client  *client.Client
	sources []string // cached source names + sentinel

	fields    [numCreateFields]string
	sourceIdx int
	statusIdx int
	prioIdx   int
	remote    bool
	focus     createField

	submitting bool
	statusMsg  string
}

func newCreateModel(c *client.Client, sources []domain.Source) createModel {
	m := createModel{client: c, prioIdx: 1} // default Medium
	m.setSources(sources)
	return m
}

// setSources refreshes the select options, keeping the sentinel last.
func (m *createModel) setSources(sources []domain.Source) {
	names := make([]string, 0, len(sources)+1)
	for _, s := range sources {
		names = append(names, s.SourceName)
	}
	names = append(names, sourceSentinel)
	m.sources = names
	if m.sourceIdx >= len(m.sources) {
		m.sourceIdx = 0
	}
}

func (m createModel) sourceOption() string {
	if m.sourceIdx < 0 || m.sourceIdx >= len(m.sources) {
		return sourceSentinel
	}
	return m.sources[m.sourceIdx]
}

func (m createModel) newSourceMode() bool {
	return m.sourceOption() == sourceSentinel
}

func (m createModel) Update(msg tea.Msg) (createModel, tea.Cmd) {
	switch msg := msg.(type) {
	case mutationDoneMsg:
		if _, ok := msg.mutation.(sync.AddOpportunity); ok {
			m.submitting = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

// nextFocus advances focus, skipping the new-source field unless the
// sentinel is selected.
func (m createModel) nextFocus(delta createField) createField {
	f := m.focus
	for {
		f = (f + delta + numCreateFields) % numCreateFields
		if f == fieldNewSource && !m.newSourceMode() {
			continue
		}
		return f
	}
}

func (m createModel) updateKeys(msg tea.KeyMsg) (createModel, tea.Cmd) {
	m.statusMsg = ""

	switch msg.String() {
	case "ctrl+s":
		return m.submit()
	case "tab", "down":
		m.focus = m.nextFocus(1)
		return m, nil
	case "shift+tab", "up":
		m.focus = m.nextFocus(numCreateFields - 1)
		return m, nil
	case "enter":
		m.focus = m.nextFocus(1)
		return m, nil
	}

	key := msg.String()
	switch m.focus {
	case fieldSource:
		if key == "h" || key == "l" {
			n := len(m.sources)
			if key == "l" {
				m.sourceIdx = (m.sourceIdx + 1) % n
			} else {
				m.sourceIdx = (m.sourceIdx - 1 + n) % n
			}
		}
	case fieldStatus:
		if key == "h" || key == "l" {
			n := len(domain.ValidStatuses)
			if key == "l" {
				m.statusIdx = (m.statusIdx + 1) % n
			} else {
				m.statusIdx = (m.statusIdx - 1 + n) % n
			}
		}
	case fieldPriority:
		if key == "h" || key == "l" {
			n := len(domain.ValidPriorities)
			if key == "l" {
				m.prioIdx = (m.prioIdx + 1) % n
			} else {
				m.prioIdx = (m.prioIdx - 1 + n) % n
			}
		}
	case fieldRemote:
		if key == "h" || key == "l" || key == "space" || key == " " {
			m.remote = !m.remote
		}
	default:
		m.fields[m.focus] = editRune(m.fields[m.focus], key)
	}
	return m, nil
}

// submit validates locally, then hands the two-step create (source
// first when needed, then opportunity) to the mutation.
func (m createModel) submit() (createModel, tea.Cmd) {
	company := strings.TrimSpace(m.fields[fieldCompany])
	role := strings.TrimSpace(m.fields[fieldRole])

	if company == "" {
		m.statusMsg = "company is required"
		return m, nil
	}
	if role == "" {
		m.statusMsg = "role is required"
		return m, nil
	}

	useNew := m.newSourceMode()
	newName := strings.TrimSpace(m.fields[fieldNewSource])
	if useNew && newName == "" {
		// Short-circuit: nothing goes on the wire for a nameless source.
		m.statusMsg = "source name is required"
		return m, nil
	}

	source := m.sourceOption()
	if useNew {
		source = ""
	}

	mut := sync.AddOpportunity{
		Req: client.AddOpportunityRequest{
			Company:          company,
			Role:             role,
			Source:           source,
			IsRemote:         m.remote,
			TechStack:        strings.TrimSpace(m.fields[fieldTechStack]),
			RecruiterContact: strings.TrimSpace(m.fields[fieldRecruiter]),
			Notes:            strings.TrimSpace(m.fields[fieldNotes]),
			Status:           domain.ValidStatuses[m.statusIdx],
			Priority:         domain.ValidPriorities[m.prioIdx],
		},
		UseNewSource:  useNew,
		NewSourceName: newName,
	}
	m.submitting = true
	return m, mutationCmd(m.client, mut)
}

func (m createModel) View() string {
	var b strings.Builder
	b.WriteString(" " + selectedStyle.Render("New opportunity") + "\n\n")

	for i := createField(0); i < numCreateFields; i++ {
		if i == fieldNewSource && !m.newSourceMode() {
			continue
		}
		cursor := " "
		style := metaStyle
		if i == m.focus {
			cursor = ">"
			style = selectedStyle
		}
		label := style.Render(fmt.Sprintf("%-11s", createFieldLabels[i]))

		switch i {
		case fieldSource:
			fmt.Fprintf(&b, " %s %s: %s  %s\n", cursor, label,
				accentStyle.Render(m.sourceOption()), metaStyle.Render("(h/l to cycle)"))
		case fieldStatus:
			status := domain.ValidStatuses[m.statusIdx]
			fmt.Fprintf(&b, " %s %s: %s\n", cursor, label, StatusStyle(status).Render(status))
		case fieldPriority:
			prio := domain.ValidPriorities[m.prioIdx]
			fmt.Fprintf(&b, " %s %s: %s\n", cursor, label, PriorityStyle(prio).Render(prio))
		case fieldRemote:
			val := "no"
			if m.remote {
				val = "yes"
			}
			fmt.Fprintf(&b, " %s %s: %s\n", cursor, label, remoteStyle.Render(val))
		default:
			value := m.fields[i]
			if i == m.focus {
				value += "█"
			}
			fmt.Fprintf(&b, " %s %s: %s\n", cursor, label, value)
		}
	}

	b.WriteString("\n")
	if m.submitting {
		b.WriteString(" " + dimStyle.Render("submitting..."))
	} else if m.statusMsg != "" {
		b.WriteString(" " + toastErrorStyle.Render(m.statusMsg))
	}
	return b.String()
}
