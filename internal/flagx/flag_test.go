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
			args:    []string{"-c", "conf.json", "-x", "other"},
			allowed: []string{"-c"},
			want:    []string{"-c", "conf.json"},
		},
		{
			name:    "equals form",
			args:    []string{"--config=conf.json", "-x=1"},
			allowed: []string{"--config"},
			want:    []string{"--config=conf.json"},
		},
		{
			name:    "flag without value",
			args:    []string{"-c", "-d", "dsn"},
			allowed: []string{"-c", "-d"},
			want:    []string{"-c", "-d", "dsn"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-c", "conf.json"},
			allowed: []string{"-d"},
			want:    []string{},
		},
		{
			name:    "empty args",
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

func TestJsonConfigFlags(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"portal", "-c", "conf.json", "-d", "dsn"}
	assert.Equal(t, "conf.json", JsonConfigFlags())

	os.Args = []string{"portal", "-config=other.json"}
	assert.Equal(t, "other.json", JsonConfigFlags())

	os.Args = []string{"portal", "-d", "dsn"}
	assert.Equal(t, "", JsonConfigFlags())
}
