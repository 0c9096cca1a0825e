package config

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/vk/tcplika/internal/catalog"
	"github.com/vk/tcplika/internal/endpoint"
)

// Resolve validates raw options and positional endpoint tokens and builds
// the Configuration. Option keys are visited once each, in sorted order, so
// the error reported for several bad options is stable across runs.
func Resolve(raw map[string]string, positionals []string) (Configuration, error) {
	var cfg Configuration

	for _, key := range slices.Sorted(maps.Keys(raw)) {
		if err := cfg.apply(catalog.Lookup(key), key, raw[key]); err != nil {
			return Configuration{}, err
		}
	}

	if len(positionals) > 0 {
		endpoints, err := endpoint.ParseAll(positionals)
		if err != nil {
			return Configuration{}, Wrap(err, "Invalid formats of endpoints -- %s", err)
		}
		cfg.RemoteEndpoints = endpoints
	}

	if err := cfg.Validate(); err != nil {
		return Configuration{}, err
	}
	return cfg, nil
}

// apply sets the field for a single option. It only ever touches the field
// that belongs to kind.
func (c *Configuration) apply(kind catalog.Kind, token, value string) error {
	switch kind {
	case catalog.Threads:
		n, err := parseCount("threads", value)
		if err != nil {
			return err
		}
		c.Threads = Some(n)
	case catalog.Nagle:
		on, err := parseNagle(value)
		if err != nil {
			return err
		}
		c.Nagle = Some(on)
	case catalog.ReceiveBufferSize:
		n, err := parseCount("receive buffer size", value)
		if err != nil {
			return err
		}
		c.ReceiveBufferSize = Some(n)
	case catalog.SendBufferSize:
		n, err := parseCount("send buffer size", value)
		if err != nil {
			return err
		}
		c.SendBufferSize = Some(n)
	case catalog.Connections:
		n, err := parseCount("connections", value)
		if err != nil {
			return err
		}
		c.Connections = Some(n)
	case catalog.ConnectTimeout:
		d, err := parseMilliseconds("connect timeout [milliseconds]", value)
		if err != nil {
			return err
		}
		c.ConnectTimeout = Some(d)
	case catalog.ConnectionLifetime:
		d, err := parseMilliseconds("connection lifetime [milliseconds]", value)
		if err != nil {
			return err
		}
		c.ConnectionLifetime = Some(d)
	case catalog.WebSocket:
		c.WebSocket = true
	case catalog.Help:
		c.Help = true
	case catalog.Version:
		c.Version = true
	case catalog.Profile:
		if strings.TrimSpace(value) == "" {
			return Errorf("Invalid formats of profile option -- %s.", value)
		}
		c.Profile = Some(value)
	case catalog.LogLevel:
		level, err := parseChoice("log level", value, "debug", "info", "warn", "error")
		if err != nil {
			return err
		}
		c.LogLevel = Some(level)
	case catalog.LogFormat:
		format, err := parseChoice("log format", value, "text", "json")
		if err != nil {
			return err
		}
		c.LogFormat = Some(format)
	default:
		return invalidContext(fmt.Sprintf("cannot parse the command line argument: [%s].", token))
	}
	return nil
}

// parseCount accepts a 32-bit decimal integer of at least 1.
func parseCount(label, value string) (int, error) {
	n, err := strconv.ParseInt(value, 10, 32)
	if err != nil || n < 1 {
		return 0, Errorf("Invalid formats of %s option -- %s.", label, value)
	}
	return int(n), nil
}

func parseMilliseconds(label, value string) (time.Duration, error) {
	n, err := parseCount(label, value)
	if err != nil {
		return 0, err
	}
	return time.Duration(n) * time.Millisecond, nil
}

func parseNagle(value string) (bool, error) {
	switch strings.ToUpper(value) {
	case "ON":
		return true, nil
	case "OFF":
		return false, nil
	}
	return false, Errorf("Invalid formats of nagle option (ON|OFF) -- %s.", value)
}

// parseChoice matches value case-insensitively and returns it lower-cased.
func parseChoice(label, value string, choices ...string) (string, error) {
	v := strings.ToLower(value)
	if slices.Contains(choices, v) {
		return v, nil
	}
	return "", Errorf("Invalid formats of %s option (%s) -- %s.", label, strings.Join(choices, "|"), value)
}
