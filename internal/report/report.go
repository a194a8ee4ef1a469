package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/cneate93/btdoctor/assets"
	"github.com/cneate93/btdoctor/internal/runner"
)

// Results is everything one diagnostic session produced. It feeds the HTML
// report, the JSON dump, and the evidence bundle.
type Results struct {
	When        time.Time          `json:"when"`
	DeviceType  string             `json:"device_type,omitempty"`
	Vendor      string             `json:"vendor,omitempty"`
	Model       string             `json:"model,omitempty"`
	MAC         string             `json:"mac,omitempty"`
	VendorGuess string             `json:"vendor_guess,omitempty"`
	PolicyKey   string             `json:"policy_key"`
	Plan        string             `json:"plan"`
	Executions  []runner.Execution `json:"executions,omitempty"`
	Warnings    []string           `json:"warnings,omitempty"`
}

// RenderHTML writes the session report to outPath using the embedded
// template.
func RenderHTML(r Results, outPath string) error {
	buf, err := renderHTML(r)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, buf, 0o644)
}

func renderHTML(r Results) ([]byte, error) {
	tpl, err := template.New("rep").Parse(string(assets.ReportTemplate))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteJSON writes an indented JSON representation of the results, creating
// parent directories as needed.
func WriteJSON(path string, r Results) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
