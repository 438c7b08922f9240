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

// scoreStep is how far +/- moves the match score filter.
const scoreStep = 5

// matchesModel lists scraper matches at or above the score filter. The
// filter and the cached source list are the only client-side state that
// outlives a render; rows always come from the latest response.
type matchesModel struct {
	client *client.Client

	jobs     []domain.ScrapedJob
	err      error
	stats    *domain.ScrapedJobStats
	statsErr error
	loading  bool

	minScore int
	cursor   int

	width  int
	height int
}

func newMatchesModel(c *client.Client, minScore int) matchesModel {
	return matchesModel{client: c, minScore: minScore, loading: true}
}

func (m matchesModel) Init() tea.Cmd {
	return tea.Batch(m.load(), m.loadStats())
}

func (m matchesModel) load() tea.Cmd {
	c := m.client
	minScore := m.minScore
	return func() tea.Msg {
		jobs, err := c.ScrapedJobs(context.Background(), minScore, pageSize)
		return scrapedJobsLoadedMsg{jobs: jobs, err: err}
	}
}

func (m matchesModel) loadStats() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		stats, err := c.ScrapedJobStats(context.Background())
		return jobStatsLoadedMsg{stats: stats, err: err}
	}
}

func (m matchesModel) Update(msg tea.Msg) (matchesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case scrapedJobsLoadedMsg:
		m.loading = false
		m.jobs, m.err = msg.jobs, msg.err
		if m.cursor >= len(m.jobs) {
			m.cursor = 0
		}
		return m, nil

	case jobStatsLoadedMsg:
		m.stats, m.statsErr = msg.stats, msg.err
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

func (m matchesModel) handleKey(msg tea.KeyMsg) (matchesModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.jobs)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "+", "=":
		if m.minScore <= 100-scoreStep {
			m.minScore += scoreStep
			m.loading = true
			return m, m.load()
		}
	case "-":
		if m.minScore >= scoreStep {
			m.minScore -= scoreStep
			m.loading = true
			return m, m.load()
		}
	case "i":
		if m.cursor < len(m.jobs) {
			job := m.jobs[m.cursor]
			if !job.Imported {
				return m, mutationCmd(m.client, sync.ImportJob{ID: job.ID})
			}
		}
	case "o", "enter":
		if m.cursor < len(m.jobs) {
			if url := m.jobs[m.cursor].JobURL; url != "" {
				return m, openLinkCmd(url, "job posting")
			}
		}
	case "c":
		if m.cursor < len(m.jobs) {
			if url := m.jobs[m.cursor].JobURL; url != "" {
				return m, copyCmd(url, "job URL")
			}
		}
	}
	return m, nil
}

func (m matchesModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.headerView())

	if m.loading {
		sb.WriteString(" " + dimStyle.Render("loading matches...") + "\n")
		return sb.String()
	}
	if m.err != nil {
		sb.WriteString(" " + dimStyle.Render("error loading scraped jobs") + "\n")
		return sb.String()
	}
	if len(m.jobs) == 0 {
		sb.WriteString(" " + dimStyle.Render(fmt.Sprintf("no matches at score ≥ %d", m.minScore)) + "\n")
		return sb.String()
	}

	for i, job := range m.jobs {
		sb.WriteString(m.rowView(job, i == m.cursor))
	}
	return sb.String()
}

func (m matchesModel) headerView() string {
	h := " " + selectedStyle.Render("Matches") + "  " +
		metaStyle.Render("score ≥ ") + accentStyle.Render(fmt.Sprintf("%d", m.minScore))
	if m.stats != nil && m.statsErr == nil {
		h += "   " + metaStyle.Render(fmt.Sprintf("%d scraped · %d excellent · %d imported",
			m.stats.Total, m.stats.Excellent, m.stats.Imported))
	}
	return h + "\n\n"
}

func (m matchesModel) rowView(job domain.ScrapedJob, sel bool) string {
	tier := domain.TierFor(job.MatchScore)
	score := TierStyle(tier).Render(fmt.Sprintf("%3.0f", job.MatchScore))

	imported := "  "
	if job.Imported {
		imported = accentStyle.Render("↳ ")
	}

	line := fmt.Sprintf(" %s %s %-24s %-28s %s",
		score,
		imported,
		normalStyle.Render(truncStr(job.Company, 24)),
		dimStyle.Render(truncStr(job.JobTitle, 28)),
		metaStyle.Render(truncStr(job.Location, 16)))
	if sel {
		line = selectedRowBg.Render(line)
	}
	out := line + "\n"

	if sel {
		skills := job.Skills()
		if len(skills) == 0 {
			out += "       " + dimStyle.Render("None matched") + "\n"
		} else {
			out += "       " + skillStyle.Render(truncStr(strings.Join(skills, ", "), 70)) + "\n"
		}
		if flags := job.Flags(); len(flags) > 0 {
			out += "       " + redFlagStyle.Render(truncStr("⚑ "+strings.Join(flags, ", "), 70)) + "\n"
		}
		if job.SalaryRange != "" {
			out += "       " + metaStyle.Render(job.SalaryRange) + "\n"
		}
	}
	return out
}
