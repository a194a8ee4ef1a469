// Package catalog loads the three reference tables (vendor prefixes, known
// devices, problem policies) from optional JSON files, falling back to the
// embedded defaults when a file is missing or unreadable.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/cneate93/btdoctor/assets"
)

// Device is one known device model for a vendor.
type Device struct {
	Model string `json:"model"`
	Type  string `json:"type"`
}

// Step is one remediation action: an explanation plus the command templates
// that implement it.
type Step struct {
	Explain  string   `json:"explain"`
	Commands []string `json:"commands"`
}

// Policy describes one known problem and how to diagnose and remediate it.
type Policy struct {
	Description      string   `json:"description"`
	QuickDiagnostics []string `json:"quick_diagnostics"`
	RemediationSteps []Step   `json:"remediation_steps"`
	Notes            string   `json:"notes,omitempty"`
}

// ProblemTable holds the problem policies in source-file key order. Order is
// part of the contract: ordinal selection and first-match fuzzy lookup both
// follow it.
type ProblemTable struct {
	keys    []string
	entries map[string]Policy
}

// UnmarshalJSON decodes the table while preserving the key order of the
// source object, which encoding/json maps would lose.
func (t *ProblemTable) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("problem table: expected JSON object, got %v", tok)
	}
	t.keys = nil
	t.entries = map[string]Policy{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("problem table: unexpected key token %v", keyTok)
		}
		var p Policy
		if err := dec.Decode(&p); err != nil {
			return fmt.Errorf("policy %q: %w", key, err)
		}
		if _, dup := t.entries[key]; !dup {
			t.keys = append(t.keys, key)
		}
		t.entries[key] = p
	}
	_, err = dec.Token()
	return err
}

// Keys returns the policy keys in table order.
func (t *ProblemTable) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Get returns the policy stored under key.
func (t *ProblemTable) Get(key string) (Policy, bool) {
	p, ok := t.entries[key]
	return p, ok
}

// Len returns the number of policies in the table.
func (t *ProblemTable) Len() int {
	return len(t.keys)
}

// Tables bundles the three loaded reference tables. All three are immutable
// after Load returns.
type Tables struct {
	Vendors  map[string]string
	Devices  map[string][]Device
	Problems *ProblemTable
}

// Paths names the optional source files for each table. An empty path means
// "use the embedded default without complaint"; a path that cannot be read
// or parsed produces a warning and the embedded default.
type Paths struct {
	Vendors  string
	Devices  string
	Problems string
}

// Load reads the three tables. It never fails: any table that cannot be
// loaded from its file comes from the embedded defaults instead, and the
// returned warnings describe what went wrong.
func Load(p Paths) (*Tables, []string) {
	var warnings []string
	warn := func(path string, err error) {
		warnings = append(warnings, fmt.Sprintf("failed to load %s: %v", path, err))
	}

	t := &Tables{}

	rawVendors := map[string]string{}
	if w := loadTable(p.Vendors, assets.VendorData, &rawVendors); w != nil {
		warn(p.Vendors, w)
		rawVendors = map[string]string{}
		_ = json.Unmarshal(assets.VendorData, &rawVendors)
	}
	t.Vendors = normalizeVendors(rawVendors)

	t.Devices = map[string][]Device{}
	if w := loadTable(p.Devices, assets.DeviceData, &t.Devices); w != nil {
		warn(p.Devices, w)
		t.Devices = map[string][]Device{}
		_ = json.Unmarshal(assets.DeviceData, &t.Devices)
	}

	t.Problems = &ProblemTable{}
	if w := loadTable(p.Problems, assets.ProblemData, t.Problems); w != nil {
		warn(p.Problems, w)
		t.Problems = &ProblemTable{}
		_ = json.Unmarshal(assets.ProblemData, t.Problems)
	}

	return t, warnings
}

// loadTable parses path into v, or the embedded fallback when path is empty.
// A non-nil return means the file existed in configuration but could not be
// used; the caller falls back and records the warning.
func loadTable(path string, fallback []byte, v any) error {
	if strings.TrimSpace(path) == "" {
		return json.Unmarshal(fallback, v)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return err
	}
	return nil
}

// ModelsFor returns the known device list for a vendor name, matching
// case-insensitively so prompt input like "logitech" still hits.
func (t *Tables) ModelsFor(vendor string) []Device {
	if devs, ok := t.Devices[vendor]; ok {
		return devs
	}
	for name, devs := range t.Devices {
		if strings.EqualFold(name, vendor) {
			return devs
		}
	}
	return nil
}

func normalizeVendors(raw map[string]string) map[string]string {
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		key, ok := normalizePrefix(k)
		if !ok {
			continue
		}
		out[key] = strings.TrimSpace(v)
	}
	return out
}
