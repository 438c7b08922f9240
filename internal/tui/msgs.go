package tui

import (
	"context"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kshetty/huntboard/internal/browser"
	"github.com/kshetty/huntboard/internal/sync"
	"github.com/kshetty/huntboard/pkg/client"
	"github.com/kshetty/huntboard/pkg/domain"
)

// -- load results, one typed message per resource --

type dashboardLoadedMsg struct{ snap sync.Snapshot }

type metricsLoadedMsg struct {
	metrics *domain.Metrics
	err     error
}

type agendaLoadedMsg struct {
	items []domain.AgendaItem
	err   error
}

type pipelineLoadedMsg struct {
	opps []domain.Opportunity
	err  error
}

type archivedLoadedMsg struct {
	opps []domain.Opportunity
	err  error
}

type sourcesLoadedMsg struct {
	sources []domain.Source
	err     error
}

type sacredStatsLoadedMsg struct {
	stats *domain.SacredWorkStats
	err   error
}

type sacredProgressLoadedMsg struct {
	stones []domain.Stone
	err    error
}

type scrapedJobsLoadedMsg struct {
	jobs []domain.ScrapedJob
	err  error
}

type jobStatsLoadedMsg struct {
	stats *domain.ScrapedJobStats
	err   error
}

// mutationDoneMsg reports one completed (or intercepted) mutation.
type mutationDoneMsg struct {
	mutation sync.Mutation
	err      error
}

// copyDoneMsg reports a clipboard copy attempt.
type copyDoneMsg struct {
	what string
	err  error
}

// openDoneMsg reports a browser-open attempt.
type openDoneMsg struct {
	what string
	err  error
}

// mutationCmd applies a mutation off the Update loop. The resulting
// mutationDoneMsg drives the toast and the resync fetches at app level.
func mutationCmd(c *client.Client, m sync.Mutation) tea.Cmd {
	return func() tea.Msg {
		err := m.Apply(context.Background(), c)
		return mutationDoneMsg{mutation: m, err: err}
	}
}

func copyCmd(text, what string) tea.Cmd {
	return func() tea.Msg {
		return copyDoneMsg{what: what, err: clipboard.WriteAll(text)}
	}
}

func openLinkCmd(url, what string) tea.Cmd {
	return func() tea.Msg {
		return openDoneMsg{what: what, err: browser.Open(url)}
	}
}
