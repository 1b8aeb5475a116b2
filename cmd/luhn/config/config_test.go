package config

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_BuildConfig(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
		want Config
	}{
		{
			name: "defaults",
			want: Config{Number: DefaultNumber, LogLevel: "warn"},
		},
		{
			name: "flags",
			args: []string{"-n", "79927398713", "-l", "debug"},
			want: Config{Number: "79927398713", LogLevel: "debug"},
		},
		{
			name: "env overrides flags",
			args: []string{"-n", "79927398713"},
			env:  map[string]string{"CARD_NUMBER": "18", "LOG_LEVEL": "error"},
			want: Config{Number: "18", LogLevel: "error"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CARD_NUMBER", "")
			t.Setenv("LOG_LEVEL", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := buildConfig(flag.NewFlagSet("test", flag.ContinueOnError), tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}
