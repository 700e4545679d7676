package progress

import (
	"fmt"
	"io"
	"sync"
	"time"

	"charm.land/bubbles/v2/progress"
	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/ghu/internal/ui/styles"
)

// progressUpdate is sent to update the progress bar
type progressUpdate struct {
	current int
	message string
}

// ProgressBar shows determinate progress, such as profiles fetched out of
// the listed users.
type ProgressBar struct {
	out       io.Writer
	enabled   bool
	program   *tea.Program
	updateCh  chan progressUpdate
	done      chan struct{}
	mu        sync.Mutex
	isRunning bool
	total     int
	current   int
	message   string
}

type progressBarModel struct {
	progress progress.Model
	total    int
	current  int
	message  string
	updateCh chan progressUpdate
}

func (m progressBarModel) Init() tea.Cmd {
	return m.waitForUpdate()
}

func (m progressBarModel) waitForUpdate() tea.Cmd {
	return func() tea.Msg {
		update, ok := <-m.updateCh
		if !ok {
			return tea.Quit()
		}
		return update
	}
}

func (m progressBarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressUpdate:
		m.current = msg.current
		m.message = msg.message
		return m, m.waitForUpdate()
	default:
		var cmd tea.Cmd
		m.progress, cmd = m.progress.Update(msg)
		return m, cmd
	}
}

func (m progressBarModel) View() tea.View {
	if m.message == "" {
		return tea.NewView("")
	}
	return tea.NewView(m.render())
}

// render formats "[████░░░░] 12/30 Fetching profiles"
func (m progressBarModel) render() string {
	percent := 0.0
	if m.total > 0 {
		percent = min(float64(m.current)/float64(m.total), 1)
	}
	return fmt.Sprintf("%s %d/%d %s", m.progress.ViewAs(percent), m.current, m.total, m.message)
}

// NewProgressBar creates a progress bar writing to out. It stays silent
// unless out is a terminal.
func NewProgressBar(out io.Writer, total int, message string) *ProgressBar {
	return &ProgressBar{
		out:      out,
		enabled:  IsTerminal(out),
		updateCh: make(chan progressUpdate, 10),
		done:     make(chan struct{}),
		total:    total,
		message:  message,
	}
}

func (p *ProgressBar) newModel() progressBarModel {
	return progressBarModel{
		progress: progress.New(
			progress.WithWidth(30),
			progress.WithoutPercentage(),
			progress.WithColors(styles.Primary, styles.Accent),
		),
		total:    p.total,
		current:  p.current,
		message:  p.message,
		updateCh: p.updateCh,
	}
}

// Start begins the display.
func (p *ProgressBar) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isRunning || !p.enabled {
		return
	}

	p.program = tea.NewProgram(p.newModel(),
		tea.WithoutSignalHandler(),
		tea.WithInput(nil),
		tea.WithOutput(p.out))
	p.isRunning = true

	go func() {
		_, _ = p.program.Run()
		close(p.done)
	}()
}

// SetProgress updates the current count and message.
func (p *ProgressBar) SetProgress(current int, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current = current
	p.message = message
	if !p.isRunning {
		return
	}

	select {
	case p.updateCh <- progressUpdate{current: current, message: message}:
	default:
	}
}

// Stop stops the display and clears its line.
func (p *ProgressBar) Stop() {
	p.mu.Lock()
	if !p.isRunning {
		p.mu.Unlock()
		return
	}
	p.isRunning = false
	close(p.updateCh)
	p.mu.Unlock()

	if p.program != nil {
		p.program.Quit()
	}

	select {
	case <-p.done:
	case <-time.After(500 * time.Millisecond):
	}

	fmt.Fprint(p.out, "\r\033[K")
}

// Total returns the total count.
func (p *ProgressBar) Total() int {
	return p.total
}

// Current returns the last reported count.
func (p *ProgressBar) Current() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}
