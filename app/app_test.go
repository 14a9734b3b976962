package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDump(t *testing.T) {
	t.Setenv("PORT", "9090")

	testCases := []struct {
		format string
		want   []string
	}{
		{"toml", []string{"Port = 9090", "[Webserver]"}},
		{"json", []string{`"Port": 9090`, `"Webserver"`}},
	}

	for _, tc := range testCases {
		t.Run(tc.format, func(t *testing.T) {
			var out bytes.Buffer
			rootCmd.SetOut(&out)
			rootCmd.SetArgs([]string{"config", "dump", "--config", "../etc/", "--format", tc.format})

			require.NoError(t, rootCmd.Execute())

			for _, w := range tc.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}

func TestConfigDump_UnknownFormat(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"config", "dump", "--config", "../etc/", "--format", "yaml"})

	require.Error(t, rootCmd.Execute())
}
