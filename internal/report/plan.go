package report

import (
	"fmt"
	"strings"

	"github.com/cneate93/btdoctor/internal/catalog"
)

// Placeholder tokens recognized inside command templates.
const (
	TokenMAC    = "<MAC>"
	TokenVendor = "<vendor>"
	TokenModel  = "<model>"
)

// Subst holds the values substituted for placeholder tokens in command
// templates. Empty fields mean "no value supplied".
type Subst struct {
	MAC    string
	Vendor string
	Model  string
}

// ForDisplay substitutes placeholders for the on-screen plan. A missing
// value leaves the literal token in place so the user can see what would
// have gone there.
func (s Subst) ForDisplay(cmd string) string {
	return s.apply(cmd, true)
}

// ForExec substitutes placeholders for execution. A missing value becomes
// the empty string.
func (s Subst) ForExec(cmd string) string {
	return s.apply(cmd, false)
}

func (s Subst) apply(cmd string, keepMissing bool) string {
	for token, val := range map[string]string{
		TokenMAC:    s.MAC,
		TokenVendor: s.Vendor,
		TokenModel:  s.Model,
	} {
		if val == "" && keepMissing {
			continue
		}
		cmd = strings.ReplaceAll(cmd, token, val)
	}
	return cmd
}

// FormatPlan renders the human-readable plan for one resolved policy:
// description, quick diagnostics verbatim, each remediation step's
// explanation and substituted commands, optional notes, and optionally a
// vendor-guess line derived from the MAC.
func FormatPlan(p catalog.Policy, s Subst, vendorGuess string, includeGuess bool) string {
	var out []string
	out = append(out, fmt.Sprintf("Problem: %s\n", p.Description))
	out = append(out, "Quick diagnostics:")
	for _, c := range p.QuickDiagnostics {
		out = append(out, "  $ "+c)
	}
	out = append(out, "\nRemediation steps:")
	for i, st := range p.RemediationSteps {
		out = append(out, fmt.Sprintf("\nStep %d: %s", i+1, st.Explain))
		for _, c := range st.Commands {
			out = append(out, "  $ "+s.ForDisplay(c))
		}
	}
	if p.Notes != "" {
		out = append(out, "\nNotes: "+p.Notes)
	}
	if includeGuess {
		guess := vendorGuess
		if guess == "" {
			guess = "Unknown"
		}
		out = append(out, "\nVendor guess: "+guess)
	}
	return strings.Join(out, "\n")
}
