package config

import (
	"log/slog"
	"time"

	"github.com/vk/tcplika/internal/endpoint"
)

// Values used by consumers for options the user did not supply.
const (
	DefaultThreads            = 1
	DefaultConnections        = 1
	DefaultReceiveBufferSize  = 8192
	DefaultSendBufferSize     = 8192
	DefaultConnectTimeout     = 5 * time.Second
	DefaultConnectionLifetime = 30 * time.Second
	DefaultNagle              = false
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "text"
)

// Configuration is the resolved set of run parameters. It is built once by
// Resolve and treated as read-only afterwards.
type Configuration struct {
	Threads            Optional[int]
	Nagle              Optional[bool]
	ReceiveBufferSize  Optional[int]
	SendBufferSize     Optional[int]
	Connections        Optional[int]
	ConnectTimeout     Optional[time.Duration]
	ConnectionLifetime Optional[time.Duration]

	WebSocket bool
	Help      bool
	Version   bool

	Profile   Optional[string]
	LogLevel  Optional[string]
	LogFormat Optional[string]

	// RemoteEndpoints keeps command-line order; duplicates are allowed.
	RemoteEndpoints []endpoint.RemoteEndpoint
}

// Validate checks the cross-field invariant: a run without help or version
// needs at least one endpoint.
func (c Configuration) Validate() error {
	if c.Help || c.Version {
		return nil
	}
	if len(c.RemoteEndpoints) == 0 {
		return invalidContext("must specify a <host:port>.")
	}
	return nil
}

// LogValue implements slog.LogValuer.
func (c Configuration) LogValue() slog.Value {
	endpoints := make([]string, len(c.RemoteEndpoints))
	for i, ep := range c.RemoteEndpoints {
		endpoints[i] = ep.String()
	}
	return slog.GroupValue(
		slog.String("threads", c.Threads.String()),
		slog.String("nagle", c.Nagle.String()),
		slog.String("receive_buffer_size", c.ReceiveBufferSize.String()),
		slog.String("send_buffer_size", c.SendBufferSize.String()),
		slog.String("connections", c.Connections.String()),
		slog.String("connect_timeout", c.ConnectTimeout.String()),
		slog.String("connection_lifetime", c.ConnectionLifetime.String()),
		slog.Bool("websocket", c.WebSocket),
		slog.Bool("help", c.Help),
		slog.Bool("version", c.Version),
		slog.String("profile", c.Profile.String()),
		slog.Any("endpoints", endpoints),
	)
}
