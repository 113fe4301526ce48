package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matdombrock/timg/config"
	"github.com/matdombrock/timg/stringtest"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "timg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		content     string
		want        config.File
		expectError bool
	}{
		"full file": {
			content: stringtest.JoinLF(
				"fps: 30",
				"mode: inline",
				"ffmpeg: /opt/ffmpeg/bin/ffmpeg",
				"ffprobe: /opt/ffmpeg/bin/ffprobe",
			),
			want: config.File{
				FPS:     30,
				Mode:    "inline",
				FFmpeg:  "/opt/ffmpeg/bin/ffmpeg",
				FFprobe: "/opt/ffmpeg/bin/ffprobe",
			},
		},
		"partial file keeps defaults": {
			content: "fps: 24\n",
			want: config.File{
				FPS:     24,
				FFmpeg:  "ffmpeg",
				FFprobe: "ffprobe",
			},
		},
		"malformed yaml": {
			content:     "fps: [nope\n",
			expectError: true,
		},
		"non positive fps": {
			content:     "fps: 0\n",
			expectError: true,
		},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := config.Load(writeConfig(t, tc.content))
			if tc.expectError {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	t.Parallel()

	got, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NoError(t, err)
	assert.Equal(t, config.Default(), got)
}

func TestLoadEmptyPathYieldsDefaults(t *testing.T) {
	t.Parallel()

	got, err := config.Load("")

	require.NoError(t, err)
	assert.Equal(t, config.Default(), got)
}
