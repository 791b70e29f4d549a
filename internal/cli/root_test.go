package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	cmd := New()
	require.NotNil(t, cmd)
	require.Equal(t, "tracker", cmd.Use)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Use)
	}
	require.Contains(t, names, "browse")
	require.Contains(t, names, "serve")
	require.Contains(t, names, "status")
	require.Contains(t, names, "version")
}

func TestClientConfigDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	cc, err := clientConfig(&Options{})
	require.NoError(t, err)
	require.Equal(t, "http://localhost:3000", cc.APIURL)
	require.Empty(t, cc.DefaultOwner)
}

func TestClientConfigFlagOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	cc, err := clientConfig(&Options{APIURL: "http://tracker:9000", Owner: "acme"})
	require.NoError(t, err)
	require.Equal(t, "http://tracker:9000", cc.APIURL)
	require.Equal(t, "acme", cc.DefaultOwner)
}

func TestSetVersionInfo(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	require.Equal(t, "1.2.3", version)
	require.Equal(t, "abc123", commit)
	require.Equal(t, "2026-01-01", date)
}
