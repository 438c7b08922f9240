package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kshetty/huntboard/internal/sync"
	"github.com/kshetty/huntboard/pkg/client"
	"github.com/kshetty/huntboard/pkg/domain"
)

type view int

const (
	viewBoard view = iota
	viewArchive
	viewStones
	viewMatches
	viewCreate
)

// refreshTickMsg fires on the periodic dashboard refresh schedule.
type refreshTickMsg time.Time

// App is the root Bubbletea model. It owns the tab router, the toast
// stack, the cached source list, and the resync fan-out that follows
// every mutation.
type App struct {
	client  *client.Client
	loader  *sync.Loader
	refresh time.Duration

	view    view
	board   boardModel
	archive archiveModel
	stones  stonesModel
	matches matchesModel
	create  createModel

	toasts  toastModel
	sources []domain.Source

	width  int
	height int
}

// NewApp wires up the dashboard. minScore seeds the matches filter and
// refreshEvery drives the background dashboard reload.
func NewApp(c *client.Client, minScore int, refreshEvery time.Duration) App {
	loader := sync.NewLoader(c)
	return App{
		client:  c,
		loader:  loader,
		refresh: refreshEvery,
		board:   newBoardModel(c, loader),
		archive: newArchiveModel(c),
		stones:  newStonesModel(c),
		matches: newMatchesModel(c, minScore),
		create:  newCreateModel(c, nil),
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.board.Init(), a.loadSources(), a.refreshTick())
}

func (a App) refreshTick() tea.Cmd {
	return tea.Tick(a.refresh, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

func (a App) loadSources() tea.Cmd {
	c := a.client
	return func() tea.Msg {
		sources, err := c.Sources(context.Background())
		return sourcesLoadedMsg{sources: sources, err: err}
	}
}

// resyncCmd maps one stale resource to the fetch that refreshes it. The
// resulting typed message is broadcast to every model that holds a copy.
func (a App) resyncCmd(r sync.Resource) tea.Cmd {
	c := a.client
	switch r {
	case sync.ResourceMetrics:
		return func() tea.Msg {
			m, err := c.Metrics(context.Background())
			return metricsLoadedMsg{metrics: m, err: err}
		}
	case sync.ResourceAgenda:
		return func() tea.Msg {
			items, err := c.TodaysAgenda(context.Background())
			return agendaLoadedMsg{items: items, err: err}
		}
	case sync.ResourcePipeline:
		return func() tea.Msg {
			opps, err := c.Pipeline(context.Background())
			return pipelineLoadedMsg{opps: opps, err: err}
		}
	case sync.ResourceArchived:
		return func() tea.Msg {
			opps, err := c.ArchivedPipeline(context.Background())
			return archivedLoadedMsg{opps: opps, err: err}
		}
	case sync.ResourceSources:
		return a.loadSources()
	case sync.ResourceSacredStats:
		return a.stones.loadStats()
	case sync.ResourceSacredProgress:
		return a.stones.loadProgress()
	case sync.ResourceScrapedJobs:
		return a.matches.load()
	}
	return nil
}

func (a App) resyncCmds(resources []sync.Resource) []tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(resources))
	for _, r := range resources {
		if cmd := a.resyncCmd(r); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Chrome: header(2) + tabs(1) + help(1) = 4 lines
		bodyMsg := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 4}
		a.board, _ = a.board.Update(bodyMsg)
		a.archive, _ = a.archive.Update(bodyMsg)
		a.stones, _ = a.stones.Update(bodyMsg)
		a.matches, _ = a.matches.Update(bodyMsg)
		return a, nil

	case refreshTickMsg:
		return a, tea.Batch(a.board.load(), a.refreshTick())

	case sourcesLoadedMsg:
		if msg.err == nil {
			a.sources = msg.sources
			a.create.setSources(msg.sources)
		}
		return a, nil

	case mutationDoneMsg:
		return a.handleMutationDone(msg)

	case copyDoneMsg:
		var cmd tea.Cmd
		if msg.err != nil {
			a.toasts, cmd = a.toasts.Push(toastError, "copy failed: "+msg.what)
		} else {
			a.toasts, cmd = a.toasts.Push(toastSuccess, msg.what+" copied")
		}
		return a, cmd

	case openDoneMsg:
		var cmd tea.Cmd
		if msg.err != nil {
			a.toasts, cmd = a.toasts.Push(toastError, "could not open "+msg.what)
		} else {
			a.toasts, cmd = a.toasts.Push(toastInfo, "opened "+msg.what)
		}
		return a, cmd

	case toastShownMsg, toastExpiredMsg:
		a.toasts = a.toasts.Update(msg)
		return a, nil

	case tea.KeyMsg:
		if !a.isEditing() {
			switch msg.String() {
			case "q", "ctrl+c":
				return a, tea.Quit
			case "1":
				return a.activate(viewBoard)
			case "2":
				return a.activate(viewArchive)
			case "3":
				return a.activate(viewStones)
			case "4":
				return a.activate(viewMatches)
			case "n":
				if a.view == viewBoard || a.view == viewArchive {
					a.view = viewCreate
					a.create = newCreateModel(a.client, a.sources)
					return a, nil
				}
			case "R":
				return a, a.refreshActive()
			case "esc":
				if a.view == viewCreate {
					a.view = viewBoard
					return a, nil
				}
			}
		} else if msg.String() == "esc" && a.view == viewCreate {
			a.view = viewBoard
			return a, nil
		}
		return a.routeToActive(msg)
	}

	return a.broadcast(msg)
}

// activate switches tabs. Re-activating the current tab is a no-op;
// entering a tab refreshes it.
func (a App) activate(v view) (tea.Model, tea.Cmd) {
	if a.view == v {
		return a, nil
	}
	a.view = v
	switch v {
	case viewBoard, viewArchive:
		// Both render from the dashboard snapshot already held.
		return a, nil
	case viewStones:
		return a, a.stones.Init()
	case viewMatches:
		return a, a.matches.Init()
	}
	return a, nil
}

func (a App) refreshActive() tea.Cmd {
	switch a.view {
	case viewBoard, viewArchive:
		return a.board.load()
	case viewStones:
		return a.stones.Init()
	case viewMatches:
		return a.matches.Init()
	}
	return nil
}

// handleMutationDone turns a finished mutation into a toast and the
// resync fetches for every resource it touched. Resyncs run on failure
// too: the server state is authoritative either way.
func (a App) handleMutationDone(msg mutationDoneMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var tcmd tea.Cmd

	switch {
	case errors.Is(msg.err, sync.ErrDeleteUnsupported):
		a.toasts, tcmd = a.toasts.Push(toastInfo, msg.err.Error())
		return a, tcmd
	case msg.err != nil:
		a.toasts, tcmd = a.toasts.Push(toastError, client.Reason(msg.err))
	default:
		if d := msg.mutation.Describe(); d != "" {
			a.toasts, tcmd = a.toasts.Push(toastSuccess, d)
		}
	}
	if tcmd != nil {
		cmds = append(cmds, tcmd)
	}
	cmds = append(cmds, a.resyncCmds(msg.mutation.Resync())...)

	// Forms watch for their own completion.
	a.stones, _ = a.stones.Update(msg)
	a.create, _ = a.create.Update(msg)
	if _, ok := msg.mutation.(sync.AddOpportunity); ok && msg.err == nil {
		a.create = newCreateModel(a.client, a.sources)
		if a.view == viewCreate {
			a.view = viewBoard
		}
	}
	return a, tea.Batch(cmds...)
}

func (a App) routeToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.view {
	case viewBoard:
		a.board, cmd = a.board.Update(msg)
	case viewArchive:
		a.archive, cmd = a.archive.Update(msg)
	case viewStones:
		a.stones, cmd = a.stones.Update(msg)
	case viewMatches:
		a.matches, cmd = a.matches.Update(msg)
	case viewCreate:
		a.create, cmd = a.create.Update(msg)
	}
	return a, cmd
}

// broadcast delivers load results to every model holding that resource,
// whether or not its tab is showing.
func (a App) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg.(type) {
	case dashboardLoadedMsg:
		a.board, cmd = a.board.Update(msg)
		cmds = append(cmds, cmd)
		a.archive, cmd = a.archive.Update(msg)
		cmds = append(cmds, cmd)
	case metricsLoadedMsg, agendaLoadedMsg, pipelineLoadedMsg:
		a.board, cmd = a.board.Update(msg)
		cmds = append(cmds, cmd)
	case archivedLoadedMsg:
		a.archive, cmd = a.archive.Update(msg)
		cmds = append(cmds, cmd)
	case sacredStatsLoadedMsg, sacredProgressLoadedMsg:
		a.stones, cmd = a.stones.Update(msg)
		cmds = append(cmds, cmd)
	case scrapedJobsLoadedMsg, jobStatsLoadedMsg:
		a.matches, cmd = a.matches.Update(msg)
		cmds = append(cmds, cmd)
	default:
		return a.routeToActive(msg)
	}
	return a, tea.Batch(cmds...)
}

func (a App) isEditing() bool {
	switch a.view {
	case viewBoard:
		return a.board.editing
	case viewStones:
		return a.stones.adding
	case viewCreate:
		return true
	}
	return false
}

func (a App) View() string {
	logo := logoStyle.Render("huntboard")
	header := " " + logo
	if !a.board.snap.LoadedAt.IsZero() {
		header += "  " + metaStyle.Render("synced "+formatWhen(a.board.snap.LoadedAt))
		if a.board.snap.Degraded() {
			header += " " + toastErrorStyle.Render("(degraded)")
		}
	}

	type tabEntry struct {
		key  string
		name string
		v    view
	}
	tabs := []tabEntry{
		{"1", "Board", viewBoard},
		{"2", "Archive", viewArchive},
		{"3", "Stones", viewStones},
		{"4", "Matches", viewMatches},
	}
	colWidth := 0
	if len(tabs) > 0 && a.width > 0 {
		colWidth = a.width / len(tabs)
	}
	var tabBar strings.Builder
	for _, t := range tabs {
		var label string
		if t.v == a.view || (a.view == viewCreate && t.v == viewBoard) {
			label = accentStyle.Render(t.key) + " " + selectedStyle.Underline(true).Render(t.name)
		} else {
			label = metaStyle.Render(t.key) + " " + dimStyle.Render(t.name)
		}
		labelWidth := lipgloss.Width(label)
		leftPad := (colWidth - labelWidth) / 2
		if leftPad < 0 {
			leftPad = 0
		}
		rightPad := colWidth - labelWidth - leftPad
		if rightPad < 0 {
			rightPad = 1
		}
		tabBar.WriteString(strings.Repeat(" ", leftPad) + label + strings.Repeat(" ", rightPad))
	}

	var body, help string
	switch a.view {
	case viewBoard:
		body = a.board.View()
		if a.board.editing {
			help = " " + helpEntry("enter", "save") + "  " + helpEntry("esc", "cancel")
		} else {
			help = " " + helpEntry("1-4", "tabs") + "  " + helpEntry("j/k", "nav") + "  " + helpEntry("tab", "section") + "  " + helpEntry("s", "status") + "  " + helpEntry("a", "archive") + "  " + helpEntry("e", "notes") + "  " + helpEntry("n", "new") + "  " + helpEntry("R", "refresh") + "  " + helpEntry("q", "quit")
		}
	case viewArchive:
		body = a.archive.View()
		help = " " + helpEntry("1-4", "tabs") + "  " + helpEntry("j/k", "nav") + "  " + helpEntry("u", "restore") + "  " + helpEntry("q", "quit")
	case viewStones:
		body = a.stones.View()
		if a.stones.adding {
			help = " " + helpEntry("tab", "next") + "  " + helpEntry("ctrl+s", "submit") + "  " + helpEntry("esc", "cancel")
		} else {
			help = " " + helpEntry("1-4", "tabs") + "  " + helpEntry("j/k", "nav") + "  " + helpEntry("n", "place stone") + "  " + helpEntry("q", "quit")
		}
	case viewMatches:
		body = a.matches.View()
		help = " " + helpEntry("1-4", "tabs") + "  " + helpEntry("j/k", "nav") + "  " + helpEntry("+/-", "filter") + "  " + helpEntry("i", "import") + "  " + helpEntry("o", "open") + "  " + helpEntry("q", "quit")
	case viewCreate:
		body = a.create.View()
		help = " " + helpEntry("tab", "next") + "  " + helpEntry("h/l", "cycle") + "  " + helpEntry("ctrl+s", "submit") + "  " + helpEntry("esc", "cancel")
	}

	if t := a.toasts.View(); t != "" {
		body = strings.TrimRight(body, "\n") + "\n\n" + t
	}

	chrome := 4
	if a.height > chrome {
		body = strings.TrimRight(truncateToHeight(body, a.height-chrome), "\n")
	}

	return fmt.Sprintf("%s\n%s\n%s\n%s", header, tabBar.String(), body, help)
}
