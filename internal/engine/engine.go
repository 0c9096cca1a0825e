package engine

import (
	"context"
	"time"

	"github.com/vk/tcplika/internal/config"
)

// LogFunc receives one human-readable line per call.
type LogFunc func(message string)

// Engine runs a load test for a resolved configuration.
type Engine interface {
	Start(ctx context.Context) error
}

// Factory builds an Engine. Construction errors are reported to the user
// the same way as errors returned from Start.
type Factory func(cfg config.Configuration, logf LogFunc) (Engine, error)

// Settings is a Configuration with defaults filled in for every option the
// user left out.
type Settings struct {
	Threads            int
	Connections        int
	ReceiveBufferSize  int
	SendBufferSize     int
	Nagle              bool
	WebSocket          bool
	ConnectTimeout     time.Duration
	ConnectionLifetime time.Duration
}

// EffectiveSettings applies the package config defaults to cfg.
func EffectiveSettings(cfg config.Configuration) Settings {
	return Settings{
		Threads:            cfg.Threads.OrElse(config.DefaultThreads),
		Connections:        cfg.Connections.OrElse(config.DefaultConnections),
		ReceiveBufferSize:  cfg.ReceiveBufferSize.OrElse(config.DefaultReceiveBufferSize),
		SendBufferSize:     cfg.SendBufferSize.OrElse(config.DefaultSendBufferSize),
		Nagle:              cfg.Nagle.OrElse(config.DefaultNagle),
		WebSocket:          cfg.WebSocket,
		ConnectTimeout:     cfg.ConnectTimeout.OrElse(config.DefaultConnectTimeout),
		ConnectionLifetime: cfg.ConnectionLifetime.OrElse(config.DefaultConnectionLifetime),
	}
}
