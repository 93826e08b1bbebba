package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pingpong/internal/storage"
)

const maxResults = 50

// resultsView shows the session's finished games.
type resultsView struct {
	table table.Model
	tally storage.Tally
}

func newResultsView(width, height int) resultsView {
	columns := []table.Column{
		{Title: "Game", Width: 6},
		{Title: "Format", Width: 10},
		{Title: "Score", Width: 8},
		{Title: "Winner", Width: 8},
		{Title: "Time", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-8, 3)), // Leave room for title, tally and border
		table.WithWidth(min(width-4, 56)),
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

	return resultsView{table: t}
}

// load refreshes rows and tally from the ledger.
func (v *resultsView) load(ledger *storage.Store, session string) error {
	if ledger == nil {
		v.table.SetRows(nil)
		v.tally = storage.Tally{}
		return nil
	}

	results, err := ledger.RecentMatches(session, maxResults)
	if err != nil {
		return err
	}
	tally, err := ledger.Tally(session)
	if err != nil {
		return err
	}

	rows := make([]table.Row, len(results))
	for i, r := range results {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", r.Game),
			fmt.Sprintf("best of %d", r.BestOf),
			fmt.Sprintf("%d - %d", r.PlayerScore, r.AIScore),
			r.Winner,
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	v.table.SetRows(rows)
	v.table.GotoTop()
	v.tally = tally
	return nil
}

func (v resultsView) update(msg tea.Msg) (resultsView, tea.Cmd) {
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

func (v resultsView) view(session string) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("RESULTS - " + session))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(tallyText(v.tally)))
	b.WriteString("\n\n")

	if len(v.table.Rows()) == 0 {
		b.WriteString(statusStyle.Render("No finished games yet."))
	} else {
		b.WriteString(v.table.View())
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(b.String())
}

func tallyText(t storage.Tally) string {
	return fmt.Sprintf("Wins: %d  Losses: %d", t.Wins, t.Losses)
}
