// Package tui provides the interactive Bubble Tea dashboard for xpense.
package tui

import (
	"fmt"
	"strconv"

	"xpense/internal/cli"
	"xpense/internal/config"
	"xpense/internal/exporter"
	"xpense/internal/model"
	"xpense/internal/report"
	"xpense/internal/store"
	"xpense/internal/tui/theme"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// view identifiers
const (
	viewLedger = iota
	viewSummary
)

// recordsLoadedMsg is sent when the store has been (re)read.
type recordsLoadedMsg struct {
	records []model.Record
	skipped int
	err     error
}

// exportDoneMsg is sent when a dashboard-triggered export finishes.
type exportDoneMsg struct {
	path  string
	count int
	err   error
}

// addValues backs the embedded add form.
type addValues struct {
	category    string
	description string
	amount      string
}

// App is the root Bubble Tea model.
type App struct {
	st  *store.Store
	cfg config.Config

	records []model.Record
	skipped int
	loaded  bool
	loadErr error

	view    int
	tbl     table.Model
	status  string

	// Add form state (huh form embedded in the app, nil when inactive)
	addForm *huh.Form
	addVals addValues

	width  int
	height int
}

// NewApp builds the dashboard over the given store.
func NewApp(st *store.Store, cfg config.Config) *App {
	t := theme.Active

	tbl := table.New(
		table.WithColumns(ledgerColumns(80)),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		Foreground(t.Accent).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		BorderBottom(true)
	styles.Selected = styles.Selected.
		Foreground(t.TextPrimary).
		Background(t.SurfaceHover)
	tbl.SetStyles(styles)

	return &App{st: st, cfg: cfg, tbl: tbl}
}

func ledgerColumns(width int) []table.Column {
	desc := width - 38
	if desc < 16 {
		desc = 16
	}
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Category", Width: 16},
		{Title: "Description", Width: desc},
		{Title: "Amount", Width: 12},
	}
}

// Init kicks off the initial ledger load.
func (a *App) Init() tea.Cmd {
	return a.loadCmd()
}

func (a *App) loadCmd() tea.Cmd {
	return func() tea.Msg {
		result, err := a.st.List()
		if err != nil {
			return recordsLoadedMsg{err: err}
		}
		return recordsLoadedMsg{records: result.Records, skipped: result.Skipped}
	}
}

func (a *App) exportCmd() tea.Cmd {
	records := a.records
	dest := a.cfg.General.ExportFile
	return func() tea.Msg {
		if err := exporter.Export(records, dest); err != nil {
			return exportDoneMsg{path: dest, err: err}
		}
		return exportDoneMsg{path: dest, count: len(records)}
	}
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.tbl.SetColumns(ledgerColumns(msg.Width - 4))
		h := msg.Height - 8
		if h < 4 {
			h = 4
		}
		a.tbl.SetHeight(h)

	case recordsLoadedMsg:
		a.loaded = true
		a.loadErr = msg.err
		if msg.err == nil {
			a.records = msg.records
			a.skipped = msg.skipped
			a.refreshRows()
		}

	case exportDoneMsg:
		if msg.err != nil {
			a.status = fmt.Sprintf("export failed: %v", msg.err)
		} else {
			a.status = fmt.Sprintf("exported %d record(s) to %s", msg.count, msg.path)
		}
	}

	if a.addForm != nil {
		return a.updateAddForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "r":
			a.status = ""
			return a, a.loadCmd()
		case "e":
			return a, a.exportCmd()
		case "a":
			a.openAddForm()
			return a, a.addForm.Init()
		case "tab", "s":
			if a.view == viewLedger {
				a.view = viewSummary
			} else {
				a.view = viewLedger
			}
		}
	}

	var cmd tea.Cmd
	a.tbl, cmd = a.tbl.Update(msg)
	return a, cmd
}

func (a *App) refreshRows() {
	rows := make([]table.Row, 0, len(a.records))
	for i, rec := range a.records {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			rec.Category,
			rec.Description,
			cli.FormatAmount(rec.Amount),
		})
	}
	a.tbl.SetRows(rows)
}

func (a *App) openAddForm() {
	a.addVals = addValues{}
	a.addForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Category").
				Placeholder("Food, Travel, Shopping...").
				Value(&a.addVals.category),
			huh.NewInput().
				Title("Description").
				Placeholder("optional").
				Value(&a.addVals.description),
			huh.NewInput().
				Title("Amount").
				Placeholder("12.50").
				Validate(func(s string) error {
					_, err := model.ParseAmount(s)
					return err
				}).
				Value(&a.addVals.amount),
		),
	)
}

func (a *App) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.addForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.addForm = f
	}

	switch a.addForm.State {
	case huh.StateCompleted:
		rec := model.Record{
			Category:    a.addVals.category,
			Description: a.addVals.description,
			Amount:      0,
		}
		if rec.Category == "" {
			rec.Category = "Other"
		}
		amount, err := model.ParseAmount(a.addVals.amount)
		if err == nil {
			rec.Amount = amount
			err = a.st.Add(rec)
		}
		a.addForm = nil
		if err != nil {
			a.status = fmt.Sprintf("add failed: %v", err)
			return a, nil
		}
		a.status = fmt.Sprintf("added %s  %s", cli.FormatAmount(rec.Amount), rec.Category)
		return a, a.loadCmd()

	case huh.StateAborted:
		a.addForm = nil
		a.status = ""
		return a, nil
	}

	return a, cmd
}

// View renders the dashboard.
func (a *App) View() string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)

	if !a.loaded {
		return mutedStyle.Render("\n  Loading ledger...")
	}
	if a.loadErr != nil {
		return errStyle.Render(fmt.Sprintf("\n  %v\n\n  press q to quit", a.loadErr))
	}

	if a.addForm != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("\n  New expense"),
			"",
			a.addForm.View(),
		)
	}

	var b []string
	b = append(b, titleStyle.Render(fmt.Sprintf("\n  XPENSE  %s", a.st.Path())))

	if a.skipped > 0 {
		b = append(b, warnStyle.Render(fmt.Sprintf("  %d malformed row(s) skipped", a.skipped)))
	}
	b = append(b, "")

	switch a.view {
	case viewSummary:
		b = append(b, a.renderSummary())
	default:
		if len(a.records) == 0 {
			b = append(b, mutedStyle.Render("  No expenses recorded yet. Press a to add one."))
		} else {
			b = append(b, a.tbl.View())
		}
	}

	b = append(b, "")
	b = append(b, a.renderStatusBar())

	return lipgloss.JoinVertical(lipgloss.Left, b...)
}

func (a *App) renderSummary() string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	s := report.Summarize(a.records)
	if len(s.Categories) == 0 {
		return labelStyle.Render("  Nothing to summarize yet.")
	}

	var lines []string
	maxTotal := s.Categories[0].Total
	for _, ct := range s.Categories {
		lines = append(lines, fmt.Sprintf("  %s %s  %s  %s",
			valueStyle.Render(fmt.Sprintf("%-16s", cli.Truncate(ct.Category, 16))),
			cli.RenderHorizontalBar(ct.Total, maxTotal, 20),
			valueStyle.Render(fmt.Sprintf("%12s", cli.FormatAmount(ct.Total))),
			labelStyle.Render(cli.FormatPercent(ct.SharePercent)),
		))
	}
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("  %s %s",
		labelStyle.Render("grand total"),
		valueStyle.Render(cli.FormatAmount(s.GrandTotal)),
	))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (a *App) renderStatusBar() string {
	t := theme.Active
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	statusStyle := lipgloss.NewStyle().Foreground(t.Green)

	var total float64
	for _, rec := range a.records {
		total += rec.Amount
	}

	line := fmt.Sprintf("  %d record(s)  total %s", len(a.records), cli.FormatAmount(total))
	if a.status != "" {
		line += "  ·  " + a.status
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		statusStyle.Render(line),
		hintStyle.Render("  a add · e export · s summary · r reload · q quit"),
	)
}
