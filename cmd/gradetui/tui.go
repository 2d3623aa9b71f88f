package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rrmudry/labgrader/conf"
	"github.com/rrmudry/labgrader/gemini"
	"github.com/rrmudry/labgrader/grader"
	"github.com/rrmudry/labgrader/pdfrender"
	"github.com/rrmudry/labgrader/qrscan"
)

const exportFilename = "grades_export.csv"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F97316"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f7f7f"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e74c3c"))
)

// batchEvent wraps one pipeline event from the worker goroutine.
type batchEvent struct {
	ev grader.Event
}

// batchDone is the worker's final message for a run.
type batchDone struct {
	csvPath string
	err     error
}

type model struct {
	cfg    conf.Config
	client *gemini.Client

	pathInput textinput.Model
	progBar   progress.Model
	logView   viewport.Model

	logLines []string
	running  bool
	ratio    float64
	status   string
	errMsg   string

	// worker-to-interface channel; the worker never touches the
	// model, it only sends messages here.
	events chan tea.Msg

	width  int
	height int
}

func initialModel(cfg conf.Config, client *gemini.Client) model {
	ti := textinput.New()
	ti.SetValue(cfg.InputDir)
	ti.CharLimit = 256
	ti.Width = 60
	ti.Focus()

	return model{
		cfg:       cfg,
		client:    client,
		pathInput: ti,
		progBar:   progress.New(progress.WithDefaultGradient()),
		logView:   viewport.New(76, 14),
		logLines:  []string{"Ready to grade. Enter a folder and press Enter."},
		status:    "Idle",
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			// Start is disabled while a run is in progress.
			if m.running {
				return m, nil
			}
			return m.startRun()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logView.Width = msg.Width - 4
		if msg.Height > 12 {
			m.logView.Height = msg.Height - 10
		}
		m.progBar.Width = msg.Width - 4
		m.refreshLog()
		return m, nil
	case batchEvent:
		m.applyEvent(msg.ev)
		return m, m.waitForEvent()
	case batchDone:
		m.running = false
		m.status = "Idle"
		m.pathInput.Focus()
		if msg.err != nil {
			if errors.Is(msg.err, grader.ErrNoSubmissions) {
				m.log("Error: No PDF files found.")
			} else {
				m.errMsg = msg.err.Error()
				m.log(fmt.Sprintf("CRITICAL ERROR: %v", msg.err))
			}
			return m, textinput.Blink
		}
		m.log("--------------------------------------------------")
		m.log(fmt.Sprintf("DONE! CSV saved to: %s", msg.csvPath))
		if err := openFile(msg.csvPath); err != nil {
			m.log(fmt.Sprintf("Could not open CSV automatically: %v", err))
		}
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	if m.running {
		m.logView, cmd = m.logView.Update(msg)
	} else {
		m.pathInput, cmd = m.pathInput.Update(msg)
	}
	return m, cmd
}

// startRun launches the batch on a single worker goroutine. The
// worker communicates only through the events channel; it never
// mutates the model.
func (m model) startRun() (tea.Model, tea.Cmd) {
	dir := strings.TrimSpace(m.pathInput.Value())
	if dir == "" {
		m.errMsg = "enter a folder path first"
		return m, nil
	}

	m.running = true
	m.errMsg = ""
	m.ratio = 0
	m.status = "Starting..."
	m.logLines = nil
	m.log(fmt.Sprintf("Starting scan in: %s", dir))
	m.pathInput.Blur()

	runCfg := m.cfg
	runCfg.InputDir = dir
	runCfg.OutputCSV = filepath.Join(dir, exportFilename)

	svc := grader.New(runCfg, pdfrender.New(runCfg.DPI), qrscan.Scanner{}, m.client)
	svc.SetLogger(slog.Default().With("module", "gradetui"))

	ch := make(chan tea.Msg, 64)
	m.events = ch

	go func() {
		_, err := svc.Run(context.Background(), func(ev grader.Event) {
			ch <- batchEvent{ev: ev}
		})
		ch <- batchDone{csvPath: runCfg.OutputCSV, err: err}
	}()

	return m, m.waitForEvent()
}

// waitForEvent blocks on the worker channel and delivers the next
// message; Update re-issues it after every event so the interface
// drains the channel on its own schedule.
func (m model) waitForEvent() tea.Cmd {
	ch := m.events
	return func() tea.Msg {
		return <-ch
	}
}

func (m *model) applyEvent(ev grader.Event) {
	switch e := ev.(type) {
	case grader.RunStarted:
		m.log(fmt.Sprintf("Found %d PDFs. Initializing Gemini...", e.Total))
	case grader.SubmissionStarted:
		m.status = fmt.Sprintf("Processing %s...", e.Filename)
		m.log(fmt.Sprintf("Processing (%d/%d): %s...", e.Index, e.Total, e.Filename))
	case grader.IdentifierFound:
		if e.Source == grader.SourceQR {
			m.log(fmt.Sprintf("  > QR Code Detected: %s", e.SID))
		} else {
			m.log(fmt.Sprintf("  > AI Fallback Found SID: %s", e.SID))
		}
	case grader.SubmissionGraded:
		m.log(fmt.Sprintf("  > Score: %d | Plagiarism Flag: %s", e.Row.Score, e.Row.Flagged))
	case grader.SubmissionSkipped:
		m.log(fmt.Sprintf("  > Error: %v", e.Err))
	case grader.SubmissionFinished:
		m.ratio = float64(e.Index) / float64(e.Total)
	case grader.RunFinished:
		m.log(fmt.Sprintf("Processed %d rows in %s.", e.Rows, e.Elapsed.Round(time.Second)))
	}
}

func (m *model) log(message string) {
	line := fmt.Sprintf("[%s] %s", time.Now().Format("15:04:05"), message)
	m.logLines = append(m.logLines, line)
	m.refreshLog()
}

func (m *model) refreshLog() {
	m.logView.SetContent(strings.Join(m.logLines, "\n"))
	m.logView.GotoBottom()
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Physics Lab Bulk Grader"))
	b.WriteString("\n\n")

	b.WriteString("Submissions folder: ")
	b.WriteString(m.pathInput.View())
	if m.running {
		b.WriteString("  (running...)")
	} else {
		b.WriteString("  (Enter to start, Esc to quit)")
	}
	b.WriteString("\n\n")

	b.WriteString(m.progBar.ViewAs(m.ratio))
	b.WriteString("\n\n")

	b.WriteString(m.logView.View())
	b.WriteString("\n")

	b.WriteString(statusStyle.Render("Status: " + m.status))
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("ERROR: " + m.errMsg))
	}
	b.WriteString("\n")

	return b.String()
}
