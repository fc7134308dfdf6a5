package dungeon

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		filename   string
		args       []string
		expectCode int
		expectOut  string
	}{
		{
			name:       "Defaults to level one",
			filename:   "demo.exe",
			args:       nil,
			expectCode: 0,
			expectOut:  "PixelLight dungeon demo (demo.exe): entering level 1\n",
		},
		{
			name:       "Explicit level",
			filename:   "/opt/pl/bin/demo.exe",
			args:       []string{"--level", "2"},
			expectCode: 0,
			expectOut:  "PixelLight dungeon demo (demo.exe): entering level 2\n",
		},
		{
			name:       "Empty filename",
			filename:   "",
			args:       []string{},
			expectCode: 0,
			expectOut:  "PixelLight dungeon demo (dungeon): entering level 1\n",
		},
		{
			name:       "Level below one",
			filename:   "demo.exe",
			args:       []string{"--level=0"},
			expectCode: 2,
			expectOut:  "invalid level 0: must be 1 or greater\n",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out := &bytes.Buffer{}
			app := NewWithOutput(out)

			code := app.Run(tc.filename, tc.args)

			assert.Equal(t, tc.expectCode, code)
			assert.Equal(t, tc.expectOut, out.String())
		})
	}
}

func TestRun_UnknownFlag(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	code := NewWithOutput(out).Run("demo.exe", []string{"--fullscreen"})

	assert.Equal(t, 2, code)
	assert.Contains(t, out.String(), "flag provided but not defined: -fullscreen")
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	code := NewWithOutput(out).Run("demo.exe", []string{"-h"})

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "-level")
}

func TestClose_IsIdempotent(t *testing.T) {
	t.Parallel()

	app := NewWithOutput(&bytes.Buffer{})
	require.NoError(t, app.Close())
	require.NoError(t, app.Close())
}
