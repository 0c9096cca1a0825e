package config

import (
	"errors"
	"fmt"
	"net/netip"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/tcplika/internal/endpoint"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(Optional[int]{}, Optional[bool]{}, Optional[time.Duration]{}, Optional[string]{}),
	cmp.Comparer(func(a, b netip.Addr) bool { return a == b }),
}

func ep(s string) endpoint.RemoteEndpoint {
	ap := netip.MustParseAddrPort(s)
	return endpoint.New(ap.Addr(), ap.Port())
}

func TestResolve(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		raw         map[string]string
		positionals []string
		expected    Configuration
		expectErr   string
	}{
		{
			name:        "endpoints only",
			positionals: []string{"10.0.0.1:9000", "10.0.0.2:9001"},
			expected: Configuration{
				RemoteEndpoints: []endpoint.RemoteEndpoint{ep("10.0.0.1:9000"), ep("10.0.0.2:9001")},
			},
		},
		{
			name: "every option in long form",
			raw: map[string]string{
				"threads":            "4",
				"nagle":              "off",
				"receivebuffersize":  "16384",
				"sendbuffersize":     "4096",
				"connections":        "250",
				"connecttimeout":     "1500",
				"connectionlifetime": "60000",
				"websocket":          "",
				"loglevel":           "DEBUG",
				"logformat":          "json",
			},
			positionals: []string{"127.0.0.1:80"},
			expected: Configuration{
				Threads:            Some(4),
				Nagle:              Some(false),
				ReceiveBufferSize:  Some(16384),
				SendBufferSize:     Some(4096),
				Connections:        Some(250),
				ConnectTimeout:     Some(1500 * time.Millisecond),
				ConnectionLifetime: Some(time.Minute),
				WebSocket:          true,
				LogLevel:           Some("debug"),
				LogFormat:          Some("json"),
				RemoteEndpoints:    []endpoint.RemoteEndpoint{ep("127.0.0.1:80")},
			},
		},
		{
			name:        "every option in short form",
			raw:         map[string]string{"t": "2", "n": "ON", "rb": "1", "sb": "1", "c": "3", "ct": "1", "cl": "1", "ws": ""},
			positionals: []string{"127.0.0.1:80"},
			expected: Configuration{
				Threads:            Some(2),
				Nagle:              Some(true),
				ReceiveBufferSize:  Some(1),
				SendBufferSize:     Some(1),
				Connections:        Some(3),
				ConnectTimeout:     Some(time.Millisecond),
				ConnectionLifetime: Some(time.Millisecond),
				WebSocket:          true,
				RemoteEndpoints:    []endpoint.RemoteEndpoint{ep("127.0.0.1:80")},
			},
		},
		{
			name:        "explicit value equal to the default is still marked as supplied",
			raw:         map[string]string{"threads": "1"},
			positionals: []string{"127.0.0.1:80"},
			expected: Configuration{
				Threads:         Some(DefaultThreads),
				RemoteEndpoints: []endpoint.RemoteEndpoint{ep("127.0.0.1:80")},
			},
		},
		{
			name:     "help without endpoints",
			raw:      map[string]string{"help": ""},
			expected: Configuration{Help: true},
		},
		{
			name:     "version without endpoints",
			raw:      map[string]string{"v": ""},
			expected: Configuration{Version: true},
		},
		{
			name:        "help still validates other options",
			raw:         map[string]string{"h": "", "threads": "0"},
			expectErr:   "Invalid formats of threads option -- 0.",
			positionals: nil,
		},
		{
			name:        "profile path is recorded",
			raw:         map[string]string{"profile": "run.hcl"},
			positionals: []string{"127.0.0.1:80"},
			expected: Configuration{
				Profile:         Some("run.hcl"),
				RemoteEndpoints: []endpoint.RemoteEndpoint{ep("127.0.0.1:80")},
			},
		},
		{
			name:      "error - no endpoints",
			expectErr: "Option used in invalid context -- must specify a <host:port>.",
		},
		{
			name:      "error - options but no endpoints",
			raw:       map[string]string{"threads": "8"},
			expectErr: "Option used in invalid context -- must specify a <host:port>.",
		},
		{
			name:        "error - unrecognized option",
			raw:         map[string]string{"bogus": "1"},
			positionals: []string{"127.0.0.1:80"},
			expectErr:   "Option used in invalid context -- cannot parse the command line argument: [bogus].",
		},
		{
			name:        "error - bad host",
			positionals: []string{"bad-host:80"},
			expectErr:   "Invalid formats of endpoints -- 'bad-host' is not a valid IP address in bad-host:80.",
		},
		{
			name:        "error - second endpoint is malformed",
			positionals: []string{"10.0.0.1:80", "10.0.0.2"},
			expectErr:   "Invalid formats of endpoints -- 10.0.0.2 is not well formatted as <host:port>.",
		},
		{
			name:        "error - nagle",
			raw:         map[string]string{"nagle": "yes"},
			positionals: []string{"127.0.0.1:80"},
			expectErr:   "Invalid formats of nagle option (ON|OFF) -- yes.",
		},
		{
			name:        "error - receive buffer size",
			raw:         map[string]string{"rb": "0"},
			positionals: []string{"127.0.0.1:80"},
			expectErr:   "Invalid formats of receive buffer size option -- 0.",
		},
		{
			name:        "error - send buffer size",
			raw:         map[string]string{"sb": "big"},
			positionals: []string{"127.0.0.1:80"},
			expectErr:   "Invalid formats of send buffer size option -- big.",
		},
		{
			name:        "error - connections",
			raw:         map[string]string{"c": "-5"},
			positionals: []string{"127.0.0.1:80"},
			expectErr:   "Invalid formats of connections option -- -5.",
		},
		{
			name:        "error - connect timeout",
			raw:         map[string]string{"ct": "1.5"},
			positionals: []string{"127.0.0.1:80"},
			expectErr:   "Invalid formats of connect timeout [milliseconds] option -- 1.5.",
		},
		{
			name:        "error - connection lifetime",
			raw:         map[string]string{"cl": ""},
			positionals: []string{"127.0.0.1:80"},
			expectErr:   "Invalid formats of connection lifetime [milliseconds] option -- .",
		},
		{
			name:        "error - empty profile path",
			raw:         map[string]string{"profile": " "},
			positionals: []string{"127.0.0.1:80"},
			expectErr:   "Invalid formats of profile option --  .",
		},
		{
			name:        "error - log level",
			raw:         map[string]string{"loglevel": "trace"},
			positionals: []string{"127.0.0.1:80"},
			expectErr:   "Invalid formats of log level option (debug|info|warn|error) -- trace.",
		},
		{
			name:        "error - log format",
			raw:         map[string]string{"logformat": "yaml"},
			positionals: []string{"127.0.0.1:80"},
			expectErr:   "Invalid formats of log format option (text|json) -- yaml.",
		},
		{
			name:        "error - first bad key in sorted order wins",
			raw:         map[string]string{"threads": "0", "connections": "0"},
			positionals: []string{"127.0.0.1:80"},
			expectErr:   "Invalid formats of connections option -- 0.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			cfg, err := Resolve(tc.raw, tc.positionals)

			// --- Assert ---
			if tc.expectErr != "" {
				require.Error(t, err)
				var cliErr *CommandLineError
				require.True(t, errors.As(err, &cliErr), "expected a *CommandLineError, got %T", err)
				assert.Equal(t, tc.expectErr, cliErr.Message)
				if diff := cmp.Diff(Configuration{}, cfg, cmpOpts...); diff != "" {
					t.Errorf("a failed resolution must not return a partial configuration (-want +got):\n%s", diff)
				}
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, cfg, cmpOpts...); diff != "" {
				t.Errorf("Configuration mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolve_ThreadsAcceptsEveryPositiveInteger(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 7, 64, 1000, 2147483647} {
		cfg, err := Resolve(map[string]string{"threads": fmt.Sprint(n)}, []string{"127.0.0.1:80"})
		require.NoError(t, err, "threads=%d", n)

		got, ok := cfg.Threads.Get()
		assert.True(t, ok)
		assert.Equal(t, n, got)
	}
}

func TestResolve_ThreadsRejectsNonPositiveAndMalformed(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"0", "-1", "-100", "abc", "", "1.5", " 3", "2147483648", "0x10"} {
		_, err := Resolve(map[string]string{"threads": v}, []string{"127.0.0.1:80"})
		require.Error(t, err, "threads=%q", v)
		assert.Equal(t, fmt.Sprintf("Invalid formats of threads option -- %s.", v), err.Error())
	}
}

func TestResolve_NagleIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"on", "ON", "On", "oN"} {
		cfg, err := Resolve(map[string]string{"nagle": v}, []string{"127.0.0.1:80"})
		require.NoError(t, err)
		assert.True(t, cfg.Nagle.OrElse(false), "nagle=%q", v)
	}
	for _, v := range []string{"off", "OFF", "Off"} {
		cfg, err := Resolve(map[string]string{"nagle": v}, []string{"127.0.0.1:80"})
		require.NoError(t, err)
		on, set := cfg.Nagle.Get()
		assert.True(t, set)
		assert.False(t, on, "nagle=%q", v)
	}
	for _, v := range []string{"", "1", "true", "enable", "ONN"} {
		_, err := Resolve(map[string]string{"nagle": v}, []string{"127.0.0.1:80"})
		assert.Error(t, err, "nagle=%q", v)
	}
}

func TestResolve_EndpointErrorKeepsCause(t *testing.T) {
	t.Parallel()

	_, err := Resolve(nil, []string{"bad-host:80"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, endpoint.ErrInvalidEndpoint))
	assert.Contains(t, err.Error(), "bad-host:80")
	assert.Contains(t, err.Error(), "Invalid formats of endpoints")
}

func TestResolve_IsIdempotent(t *testing.T) {
	t.Parallel()

	raw := map[string]string{"threads": "3", "nagle": "on", "ct": "250", "ws": ""}
	positionals := []string{"10.0.0.1:9000", "[::1]:9001", "10.0.0.1:9000"}

	first, err := Resolve(raw, positionals)
	require.NoError(t, err)
	second, err := Resolve(raw, positionals)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second, cmpOpts...); diff != "" {
		t.Errorf("resolving twice gave different configurations (-first +second):\n%s", diff)
	}
	assert.Len(t, first.RemoteEndpoints, 3)
}

func TestResolve_DoesNotModifyInputs(t *testing.T) {
	t.Parallel()

	raw := map[string]string{"threads": "3"}
	positionals := []string{"10.0.0.1:9000"}

	_, err := Resolve(raw, positionals)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"threads": "3"}, raw)
	assert.Equal(t, []string{"10.0.0.1:9000"}, positionals)
}
