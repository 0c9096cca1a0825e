package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	t.Parallel()

	var unset Optional[int]
	v, ok := unset.Get()
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.False(t, unset.IsSet())
	assert.Equal(t, 42, unset.OrElse(42))
	assert.Equal(t, "unset", unset.String())

	zero := Some(0)
	v, ok = zero.Get()
	assert.True(t, ok)
	assert.Zero(t, v)
	assert.Equal(t, 0, zero.OrElse(42), "a supplied zero must not fall back to the default")
	assert.Equal(t, "0", zero.String())

	d := Some(1500 * time.Millisecond)
	assert.Equal(t, "1.5s", d.String())
}

func TestConfiguration_Validate(t *testing.T) {
	t.Parallel()

	require.Error(t, Configuration{}.Validate())
	require.NoError(t, Configuration{Help: true}.Validate())
	require.NoError(t, Configuration{Version: true}.Validate())
	require.NoError(t, Configuration{Help: true, Version: true}.Validate())
}

func TestConfiguration_LogValue(t *testing.T) {
	t.Parallel()

	cfg, err := Resolve(map[string]string{"threads": "2"}, []string{"10.0.0.1:9000"})
	require.NoError(t, err)

	attrs := map[string]slog.Value{}
	for _, a := range cfg.LogValue().Group() {
		attrs[a.Key] = a.Value
	}
	assert.Equal(t, "2", attrs["threads"].String())
	assert.Equal(t, "unset", attrs["connections"].String())
	assert.Equal(t, []string{"10.0.0.1:9000"}, attrs["endpoints"].Any())
}
