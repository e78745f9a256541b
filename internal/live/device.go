package live

import (
	"fmt"

	"github.com/gen2brain/malgo"
	"github.com/sirupsen/logrus"
)

// Config describes the duplex stream to open.
type Config struct {
	SampleRate   uint32
	Channels     int
	PeriodFrames uint32
}

// Device is an open duplex audio device feeding an Engine.
type Device struct {
	ctx    *malgo.AllocatedContext
	dev    *malgo.Device
	logger logrus.FieldLogger
}

// Open initializes the default capture and playback devices as one duplex
// stream in 32-bit float format and routes its callback to engine.
func Open(cfg Config, engine *Engine, logger logrus.FieldLogger) (*Device, error) {
	if cfg.Channels != engine.Channels() {
		return nil, fmt.Errorf("live: config has %d channels, engine %d", cfg.Channels, engine.Channels())
	}

	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, func(msg string) {
		logger.WithField("source", "malgo").Debug(msg)
	})
	if err != nil {
		return nil, fmt.Errorf("live: init context: %w", err)
	}

	deviceConfig := malgo.DefaultDeviceConfig(malgo.Duplex)
	deviceConfig.Capture.Format = malgo.FormatF32
	deviceConfig.Capture.Channels = uint32(cfg.Channels)
	deviceConfig.Playback.Format = malgo.FormatF32
	deviceConfig.Playback.Channels = uint32(cfg.Channels)
	deviceConfig.SampleRate = cfg.SampleRate
	deviceConfig.PeriodSizeInFrames = cfg.PeriodFrames

	callbacks := malgo.DeviceCallbacks{Data: engine.Render}
	dev, err := malgo.InitDevice(ctx.Context, deviceConfig, callbacks)
	if err != nil {
		_ = ctx.Uninit()
		ctx.Free()
		return nil, fmt.Errorf("live: init device: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"sample_rate": cfg.SampleRate,
		"channels":    cfg.Channels,
		"period":      cfg.PeriodFrames,
	}).Info("live: duplex device opened")

	return &Device{ctx: ctx, dev: dev, logger: logger}, nil
}

// Start begins streaming.
func (d *Device) Start() error {
	if err := d.dev.Start(); err != nil {
		return fmt.Errorf("live: start: %w", err)
	}

	return nil
}

// Close stops the stream and releases the device and context.
func (d *Device) Close() error {
	if err := d.dev.Stop(); err != nil {
		d.logger.WithError(err).Warn("live: stop failed")
	}
	d.dev.Uninit()

	err := d.ctx.Uninit()
	d.ctx.Free()
	if err != nil {
		return fmt.Errorf("live: uninit context: %w", err)
	}

	return nil
}
