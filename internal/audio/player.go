package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

// Config contains playback options.
type Config struct {
	Enabled    bool
	SampleRate int
	Volume     float64
}

// DefaultConfig returns playback defaults.
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		SampleRate: 44100,
		Volume:     0.8,
	}
}

// Player plays the chime on the default output device.
// The device is opened on first use; failures are logged and playback is skipped.
type Player struct {
	config Config
	logger *zap.Logger

	initOnce sync.Once
	initErr  error
}

// NewPlayer creates a Player.
func NewPlayer(config Config, logger *zap.Logger) *Player {
	if config.SampleRate <= 0 {
		config.SampleRate = DefaultConfig().SampleRate
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Player{config: config, logger: logger}
}

// Play starts the chime and returns immediately.
func (player *Player) Play() {
	if !player.config.Enabled {
		return
	}
	rate := beep.SampleRate(player.config.SampleRate)

	player.initOnce.Do(func() {
		player.initErr = speaker.Init(rate, rate.N(100*time.Millisecond))
		if player.initErr != nil {
			player.logger.Warn("audio output unavailable", zap.Error(player.initErr))
		}
	})
	if player.initErr != nil {
		return
	}

	speaker.Play(Chime(rate, player.config.Volume))
}
