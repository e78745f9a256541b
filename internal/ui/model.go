// Package ui provides the Bubbletea terminal meter for live processing.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cwbudde/hilbert-envelope/dsp/envelope"
	"github.com/cwbudde/hilbert-envelope/dsp/param"
)

// PollInterval is the telemetry refresh period (30 Hz).
const PollInterval = time.Second / 30

const (
	mixStep  = 0.05
	gainStep = 0.1
)

// Source is the processor surface the meter reads and controls.
type Source interface {
	ReadCurrentEnvelope() float64
	ReadPeakEnvelope() float64
	ResetPeak()
	Parameters() *param.Set
}

// Model is the Bubbletea model for the live meter.
type Model struct {
	source Source

	// Latest telemetry snapshot
	Current float64
	Peak    float64
	Values  param.Values

	// Status line shown under the meters
	Status string

	Width    int
	Quitting bool
}

// NewModel creates a meter bound to source.
func NewModel(source Source) Model {
	return Model{
		source: source,
		Values: source.Parameters().Snapshot(),
		Width:  60,
	}
}

// Init starts the poll loop.
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update handles key presses, resizes and poll ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width

	case TickMsg:
		m.poll()
		return m, tick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	params := m.source.Parameters()

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.Quitting = true
		return m, tea.Quit

	case "m":
		next := envelope.ModeFromValue(params.Value(param.Mode)).Next()
		m.set(param.Mode, next.Value())

	case "+", "=":
		m.nudge(param.Mix, mixStep)
	case "-", "_":
		m.nudge(param.Mix, -mixStep)

	case "]":
		m.nudge(param.Gain, gainStep)
	case "[":
		m.nudge(param.Gain, -gainStep)

	case "r":
		m.source.ResetPeak()
		m.Peak = 0
		m.Status = "peak reset"
	}

	m.Values = params.Snapshot()

	return m, nil
}

func (m *Model) set(id param.ID, v float64) {
	if err := m.source.Parameters().SetValue(id, v); err != nil {
		m.Status = err.Error()
		return
	}
	m.Status = id.String() + " " + param.Format(id, m.source.Parameters().Value(id))
}

func (m *Model) nudge(id param.ID, delta float64) {
	v, err := m.source.Parameters().Nudge(id, delta)
	if err != nil {
		m.Status = err.Error()
		return
	}
	m.Status = id.String() + " " + param.Format(id, v)
}

func (m *Model) poll() {
	m.Current = m.source.ReadCurrentEnvelope()
	m.Peak = m.source.ReadPeakEnvelope()
	m.Values = m.source.Parameters().Snapshot()
}

// View renders the meter.
func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	return renderMeterView(m)
}
