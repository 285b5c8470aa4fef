package cmd

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// replies maps request paths to JSON bodies.
type replies map[string]string

// newService starts a fake prediction service.
func newService(t *testing.T, r replies) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, req *http.Request) {
			_, _ = io.Copy(io.Discard, req.Body)
			body, ok := r[req.URL.Path]
			if !ok {
				http.NotFound(w, req)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, body)
		}))
	t.Cleanup(srv.Close)
	return srv.URL
}

// run executes mavuno with a temporary home directory and returns what
// the command printed.
func run(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	root := getRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

const metadataReply = `{"counties":["Clark"],"crops":["Corn","Wheat"]}`

func TestMetadataCmd(t *testing.T) {
	url := newService(t, replies{"/metadata": metadataReply})

	out, err := run(t, t.TempDir(), "metadata", "--url", url)
	require.NoError(t, err)
	assert.Equal(t,
		"Counties (1):\n  Clark\nCrops (2):\n  Corn\n  Wheat\n", out)
}

func TestMetadataCmd_Unavailable(t *testing.T) {
	url := newService(t, replies{})

	_, err := run(t, t.TempDir(), "metadata", "--url", url)
	assert.Error(t, err)
}

func TestPredictCmd(t *testing.T) {
	tests := []struct {
		msg     string
		reply   string
		area    string
		out     string
		success bool
	}{
		{
			msg:     "yield",
			reply:   `{"predicted_yield": 9.8}`,
			area:    "12.5",
			out:     "OK: Predicted Yield: 9.8 tons/ha\n",
			success: true,
		},
		{
			msg:     "service error",
			reply:   `{"error":"model unavailable"}`,
			area:    "12.5",
			out:     "WARNING: model unavailable\n",
			success: true,
		},
		{
			msg:   "bad area",
			reply: `{"predicted_yield": 9.8}`,
			area:  "twelve",
			out:   "WARNING: Area \"twelve\" is not a number\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			url := newService(t, replies{
				"/metadata": metadataReply,
				"/predict":  tt.reply,
			})

			out, err := run(t, t.TempDir(), "predict", "--url", url,
				"--county", "Clark", "--crop", "Corn", "--area", tt.area)
			assert.Equal(t, tt.out, out)
			if tt.success {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, errNoResult)
			}
		})
	}
}

// TestTrendCmd verifies that the chart file is written on success and
// kept when a later query has no data.
func TestTrendCmd(t *testing.T) {
	home := t.TempDir()
	chartPath := filepath.Join(home, "charts", "corn.svg")

	url := newService(t, replies{
		"/metadata": metadataReply,
		"/trend": `{"trend":[{"year":2020,"yield":5},{"year":2021,"yield":6}],
			"trend_note":"rising"}`,
	})
	out, err := run(t, home, "trend", "--url", url,
		"--county", "Clark", "--crop", "Corn", "--out", chartPath)
	require.NoError(t, err)
	assert.Equal(t, "rising\n", out)

	data, err := os.ReadFile(chartPath)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "<svg"))

	url = newService(t, replies{
		"/metadata": metadataReply,
		"/trend":    `{"trend":[]}`,
	})
	out, err = run(t, home, "trend", "--url", url,
		"--county", "Clark", "--crop", "Wheat", "--out", chartPath)
	require.NoError(t, err)
	assert.Equal(t, "WARNING: No trend data.\n", out)

	after, err := os.ReadFile(chartPath)
	require.NoError(t, err)
	assert.Equal(t, data, after, "chart is left untouched")
}

func TestTrendCmd_DefaultPath(t *testing.T) {
	home := t.TempDir()
	url := newService(t, replies{
		"/metadata": metadataReply,
		"/trend":    `{"trend":[{"year":2020,"yield_ton_per_ha":5}],"trend_note":"flat"}`,
	})

	_, err := run(t, home, "trend", "--url", url,
		"--county", "Clark", "--crop", "Corn")
	require.NoError(t, err)

	path := filepath.Join(home, ".local", "share", "mavuno", "charts", "trend.png")
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestTrendCmd_EmptyCounty(t *testing.T) {
	url := newService(t, replies{"/metadata": metadataReply})

	out, err := run(t, t.TempDir(), "trend", "--url", url, "--crop", "Corn")
	assert.ErrorIs(t, err, errNoResult)
	assert.Equal(t, "WARNING: Select a county first\n", out)
}

// TestStatusCmd_Env verifies that the service URL can come from the
// environment.
func TestStatusCmd_Env(t *testing.T) {
	url := newService(t, replies{
		"/": `{"message":"Crop yield prediction API is running"}`,
	})
	t.Setenv("MAVUNO_SERVICE_URL", url)

	out, err := run(t, t.TempDir(), "status")
	require.NoError(t, err)
	assert.Equal(t, url+": Crop yield prediction API is running\n", out)
}

// TestBootstrap_Files verifies that the first run creates the config
// file and the log.
func TestBootstrap_Files(t *testing.T) {
	home := t.TempDir()
	url := newService(t, replies{"/": `{"message":"ok"}`})

	_, err := run(t, home, "status", "--url", url)
	require.NoError(t, err)

	for _, path := range []string{
		filepath.Join(home, ".config", "mavuno", "config.yaml"),
		filepath.Join(home, ".local", "share", "mavuno", "logs", "mavuno.log"),
	} {
		_, err = os.Stat(path)
		assert.NoError(t, err, path)
	}
	assert.Equal(t, url, cfg.Service.URL)
	assert.Equal(t, home, cfg.HomeDir)
}

func TestBootstrap_MissingConfigFile(t *testing.T) {
	home := t.TempDir()
	_, err := run(t, home, "status",
		"--config", filepath.Join(home, "nope.yaml"))
	assert.Error(t, err)
}
