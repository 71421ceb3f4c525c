package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Ledger panel layout constants
const (
	maxRounds      = 100 // Max rounds to load
	ledgerMinRows  = 3
	ledgerChrome   = 8 // title, stats line, borders and help
	ledgerMaxWidth = 50
)

var (
	ledgerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				MarginBottom(1)

	ledgerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	ledgerMutedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))
)

// ledgerPanel shows the rounds finished in this session.
type ledgerPanel struct {
	store  *storage.Store
	table  table.Model
	rounds []storage.Round
	stats  storage.Stats
	err    error
}

// newLedgerPanel creates a panel that fits in the given terminal height.
func newLedgerPanel(store *storage.Store, height int) ledgerPanel {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 6},
		{Title: "Length", Width: 7},
		{Title: "Time", Width: 7},
		{Title: "End", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-ledgerChrome, ledgerMinRows)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return ledgerPanel{store: store, table: t}
}

// refresh reloads rounds and stats from the store.
func (p *ledgerPanel) refresh() {
	p.rounds, p.stats, p.err = nil, storage.Stats{}, nil
	if p.store == nil {
		p.updateTableRows()
		return
	}

	rounds, err := p.store.Rounds(maxRounds)
	if err != nil {
		p.err = err
	} else {
		p.rounds = rounds
	}
	if stats, err := p.store.Stats(); err == nil {
		p.stats = stats
	}
	p.updateTableRows()
}

// updateTableRows fills the table, newest round first.
func (p *ledgerPanel) updateTableRows() {
	rows := make([]table.Row, len(p.rounds))
	for i, r := range p.rounds {
		rows[i] = table.Row{
			fmt.Sprintf("%d", len(p.rounds)-i),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Length),
			formatDuration(r.Duration()),
			string(r.EndReason),
		}
	}
	p.table.SetRows(rows)
	p.table.GotoTop()
}

// Update passes scrolling input to the table.
func (p ledgerPanel) Update(msg tea.Msg) (ledgerPanel, tea.Cmd) {
	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return p, cmd
}

// View renders the panel.
func (p ledgerPanel) View() string {
	title := ledgerTitleStyle.Render("THIS SESSION")

	var body string
	switch {
	case p.err != nil:
		body = ledgerMutedStyle.Render("Could not load rounds: " + p.err.Error())
	case len(p.rounds) == 0:
		body = ledgerMutedStyle.Italic(true).Padding(1, 2).
			Render("No rounds finished yet.")
	default:
		body = p.table.View()
	}

	stats := ledgerMutedStyle.Render(fmt.Sprintf(
		"rounds %d  best %d  avg %.1f  longest %d",
		p.stats.Rounds, p.stats.HighScore, p.stats.AvgScore, p.stats.LongestSnake,
	))

	box := ledgerBoxStyle.MaxWidth(ledgerMaxWidth + 4).Render(body)
	return lipgloss.JoinVertical(lipgloss.Center, title, box, stats)
}

// formatDuration renders a round duration as m:ss.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
