package report

import (
	"archive/zip"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cneate93/btdoctor/internal/runner"
)

func sampleResults() Results {
	return Results{
		When:        time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		DeviceType:  "headphone",
		Vendor:      "JBL",
		Model:       "Tune 660NC",
		MAC:         "FC:FB:FB:01:02:03",
		VendorGuess: "JBL",
		PolicyKey:   "connect_failed_audio",
		Plan:        "Problem: Audio device pairs but no audio.",
		Executions: []runner.Execution{
			{Command: "sudo systemctl restart bluetooth", Output: ""},
		},
		Warnings: []string{"failed to load vendors.json: no such file"},
	}
}

func TestRenderHTML(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.html")
	require.NoError(t, RenderHTML(sampleResults(), out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, "connect_failed_audio")
	assert.Contains(t, html, "Tune 660NC")
	assert.Contains(t, html, "FC:FB:FB:01:02:03")
	assert.Contains(t, html, "sudo systemctl restart bluetooth")
	assert.Contains(t, html, "failed to load vendors.json")
}

func TestWriteJSON(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "results.json")
	require.NoError(t, WriteJSON(out, sampleResults()))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var back Results
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "connect_failed_audio", back.PolicyKey)
	assert.Len(t, back.Executions, 1)
}

func TestWriteBundle(t *testing.T) {
	out := filepath.Join(t.TempDir(), "evidence.zip")
	raws := map[string][]byte{
		"command-01.txt": []byte("$ lsusb\nBus 001 Device 004\n"),
		"command-02.txt": nil,
	}
	require.NoError(t, WriteBundle(out, sampleResults(), raws))

	zr, err := zip.OpenReader(out)
	require.NoError(t, err)
	defer zr.Close()

	names := map[string]bool{}
	for _, f := range zr.File {
		names[f.Name] = true
	}
	assert.True(t, names["report.html"])
	assert.True(t, names["summary.json"])
	assert.True(t, names["command-01.txt"])
	assert.True(t, names["command-02.txt"])
}

func TestWriteBundleEmptyPath(t *testing.T) {
	assert.Error(t, WriteBundle("", sampleResults(), nil))
}
