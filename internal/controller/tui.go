package controller

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "iacscan.dev/pkg/iacscan/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI with a Bubble Tea spinner while paths are scanned.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress program in scan mode. View mode renders nothing
// until DisplayAggregate.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if newStartConfig(options...).mode != ModeScan {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.program != nil {
		return fmt.Errorf("ui already started")
	}

	p.program = tea.NewProgram(newScanModel(),
		tea.WithOutput(p.output),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	p.done = make(chan struct{})

	go func(program *tea.Program, done chan struct{}) {
		defer close(done)

		_, _ = program.Run()
	}(p.program, p.done)

	return nil
}

// Close stops the progress program and waits for it to restore the terminal.
func (p *TUI) Close(_ context.Context) {
	p.mu.Lock()
	program, done := p.program, p.done
	p.program, p.done = nil, nil
	p.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

func (p *TUI) send(msg tea.Msg) {
	p.mu.Lock()
	program := p.program
	p.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

// DisplayPathStarted updates the spinner line.
func (p *TUI) DisplayPathStarted(_ context.Context, index, total int, path m.Path) {
	p.send(pathStartedMsg{index: index, total: total, path: path})
}

// DisplayPathCompleted records a finished path above the spinner.
func (p *TUI) DisplayPathCompleted(_ context.Context, index, total int, path m.Path, err error) {
	p.send(pathCompletedMsg{index: index, total: total, path: path, err: err})
}

// DisplayAggregate renders the final report.
func (p *TUI) DisplayAggregate(ctx context.Context, agg m.ScanAggregate) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("IaC scan results"))
	b.WriteString("\n")

	if agg.OutputMeta != nil {
		fmt.Fprintf(&b, "%s %s  %s %s\n",
			faintStyle.Render("org"), agg.OutputMeta.OrgName,
			faintStyle.Render("project"), agg.OutputMeta.ProjectName)
	}

	for _, result := range agg.Results {
		if result.Failed() || len(result.Issues) == 0 {
			continue
		}

		fmt.Fprintf(&b, "\n%s\n%s", titleStyle.Render(result.Path), renderIssuesTable(result.Issues))
	}

	b.WriteString("\n")
	b.WriteString(renderResultsTable(agg.Results))

	if len(agg.Failures) > 0 {
		b.WriteString("\n")
		b.WriteString(failureStyle.Render("Failed paths"))
		b.WriteString("\n")
		b.WriteString(renderFailuresTable(agg.Failures))
	}

	summary := summaryLine(agg)
	if agg.IssueCount() == 0 && len(agg.Failures) == 0 {
		summary = successStyle.Render(summary)
	}

	fmt.Fprintf(&b, "\n%s\n", summary)

	_, err := fmt.Fprint(p.output, b.String())

	return err
}

// DisplayReportSaved prints where the report was written.
func (p *TUI) DisplayReportSaved(_ context.Context, path m.Path) {
	_, _ = fmt.Fprintf(p.output, "%s %s\n", faintStyle.Render("report"), path)
}

// DisplayCacheCleaned prints the outcome of a cache clean.
func (p *TUI) DisplayCacheCleaned(_ context.Context, dir m.Path, removed int) {
	_, _ = fmt.Fprintf(p.output, "%s removed %d cached artifact(s) from %s\n", successStyle.Render("✓"), removed, dir)
}

type pathStartedMsg struct {
	index int
	total int
	path  m.Path
}

type pathCompletedMsg struct {
	index int
	total int
	path  m.Path
	err   error
}

// scanModel is the Bubble Tea model shown while paths are scanned.
type scanModel struct {
	spinner  spinner.Model
	current  *pathStartedMsg
	finished []pathCompletedMsg
}

func newScanModel() scanModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return scanModel{spinner: s}
}

func (sm scanModel) Init() tea.Cmd {
	return sm.spinner.Tick
}

func (sm scanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pathStartedMsg:
		sm.current = &msg
		return sm, nil

	case pathCompletedMsg:
		sm.finished = append(sm.finished, msg)
		sm.current = nil

		return sm, nil

	case spinner.TickMsg:
		var cmd tea.Cmd

		sm.spinner, cmd = sm.spinner.Update(msg)

		return sm, cmd
	}

	return sm, nil
}

func (sm scanModel) View() string {
	var b strings.Builder

	for _, f := range sm.finished {
		if f.err != nil {
			fmt.Fprintf(&b, "%s %s %s\n", failureStyle.Render("✗"), f.path, faintStyle.Render(f.err.Error()))
			continue
		}

		fmt.Fprintf(&b, "%s %s\n", successStyle.Render("✓"), f.path)
	}

	if sm.current != nil {
		fmt.Fprintf(&b, "%s Scanning %s %s\n", sm.spinner.View(), sm.current.path,
			faintStyle.Render(fmt.Sprintf("(%d/%d)", sm.current.index+1, sm.current.total)))
	}

	return b.String()
}
