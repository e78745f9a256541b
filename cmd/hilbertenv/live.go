package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cwbudde/hilbert-envelope/internal/live"
	"github.com/cwbudde/hilbert-envelope/internal/ui"
	"github.com/sirupsen/logrus"
)

// LiveCmd runs the default duplex audio device through the processor.
type LiveCmd struct {
	SampleRate uint32 `default:"48000" env:"HILBERTENV_SAMPLE_RATE" help:"Device sample rate in Hz."`
	Channels   int    `default:"2" help:"Capture and playback channel count."`
	Period     uint32 `default:"256" env:"HILBERTENV_BLOCK_SIZE" help:"Device period in frames."`

	ParamFlags  `embed:""`
	KernelFlags `embed:""`
}

// Run executes the live command until the meter is closed.
func (c *LiveCmd) Run(app *appContext) (err error) {
	if c.SampleRate == 0 || c.Period == 0 {
		return fmt.Errorf("sample rate and period must be positive")
	}

	proc, err := newProcessor(c.Channels, c.KernelFlags, c.ParamFlags, app.logger)
	if err != nil {
		return err
	}
	if err := proc.Prepare(float64(c.SampleRate), int(c.Period)); err != nil {
		return err
	}
	defer proc.Release()

	engine, err := live.NewEngine(proc, c.Channels, int(c.Period))
	if err != nil {
		return err
	}

	dev, err := live.Open(live.Config{
		SampleRate:   c.SampleRate,
		Channels:     c.Channels,
		PeriodFrames: c.Period,
	}, engine, app.logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := dev.Close(); err == nil {
			err = cerr
		}
	}()

	if err := dev.Start(); err != nil {
		return err
	}

	if _, err := tea.NewProgram(ui.NewModel(proc), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("meter: %w", err)
	}

	app.logger.WithFields(logrus.Fields{
		"frames": engine.Frames(),
		"errors": engine.Errors(),
	}).Info("live session ended")

	return nil
}
