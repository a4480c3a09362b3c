package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-a", "http://localhost:5000", "-x", "1"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://localhost:5000"},
		},
		{
			name:    "equals form",
			args:    []string{"-config=cli.json", "-a", "x"},
			allowed: []string{"-c", "-config"},
			want:    []string{"-config=cli.json"},
		},
		{
			name:    "unknown flags dropped",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "trailing flag without value",
			args:    []string{"-o"},
			allowed: []string{"-o"},
			want:    []string{"-o"},
		},
		{
			name:    "next token is a flag, not a value",
			args:    []string{"-c", "-t", "5"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "repeated flag keeps order",
			args:    []string{"-c", "one.json", "-c", "two.json"},
			allowed: []string{"-c"},
			want:    []string{"-c", "one.json", "-c", "two.json"},
		},
		{
			name:    "empty",
			args:    []string{},
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigPath(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short flag", func(t *testing.T) {
		os.Args = []string{"bin", "-c", "/etc/st/cli.json"}
		assert.Equal(t, "/etc/st/cli.json", ConfigPath())
	})

	t.Run("long flag wins over env", func(t *testing.T) {
		t.Setenv(ConfigFileEnv, "/env.json")
		os.Args = []string{"bin", "-config", "/flag.json"}
		assert.Equal(t, "/flag.json", ConfigPath())
	})

	t.Run("env fallback", func(t *testing.T) {
		t.Setenv(ConfigFileEnv, "/env.json")
		os.Args = []string{"bin", "-a", "x"}
		assert.Equal(t, "/env.json", ConfigPath())
	})

	t.Run("nothing set", func(t *testing.T) {
		t.Setenv(ConfigFileEnv, "")
		os.Args = []string{"bin"}
		assert.Empty(t, ConfigPath())
	})
}
