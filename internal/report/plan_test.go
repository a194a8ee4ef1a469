package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cneate93/btdoctor/internal/catalog"
)

func TestSubstForDisplay(t *testing.T) {
	s := Subst{MAC: "11:22:33:44:55:66", Vendor: "JBL"}

	got := s.ForDisplay("sudo bluetoothctl info <MAC>")
	assert.Equal(t, "sudo bluetoothctl info 11:22:33:44:55:66", got)

	// Missing value keeps the literal token visible.
	got = s.ForDisplay("pair <model> from <vendor>")
	assert.Equal(t, "pair <model> from JBL", got)
}

func TestSubstForExec(t *testing.T) {
	s := Subst{Vendor: "JBL"}

	// Missing values become empty strings when commands actually run.
	got := s.ForExec("bluetoothctl remove <MAC> # <model>")
	assert.Equal(t, "bluetoothctl remove  # ", got)
	assert.NotContains(t, got, "<MAC>")
	assert.NotContains(t, got, "<model>")
}

func TestSubstTotalAndIdempotent(t *testing.T) {
	s := Subst{MAC: "AA:BB:CC:DD:EE:FF", Vendor: "Acme", Model: "X1"}
	cmd := "echo <MAC> <MAC> <vendor>/<model> <model>"

	once := s.ForDisplay(cmd)
	assert.NotContains(t, once, "<MAC>")
	assert.NotContains(t, once, "<vendor>")
	assert.NotContains(t, once, "<model>")

	assert.Equal(t, once, s.ForDisplay(once), "substitution must be idempotent")
	assert.Equal(t, once, s.ForExec(cmd), "both modes agree when every value is present")
}

func testPolicy() catalog.Policy {
	return catalog.Policy{
		Description:      "Audio device pairs but no audio.",
		QuickDiagnostics: []string{"pactl list sinks short", "sudo bluetoothctl info <MAC>"},
		RemediationSteps: []catalog.Step{
			{Explain: "Restart services", Commands: []string{"sudo systemctl restart bluetooth"}},
			{Explain: "Reconnect", Commands: []string{"bluetoothctl connect <MAC>"}},
		},
		Notes: "Codec support depends on installed modules.",
	}
}

func TestFormatPlan(t *testing.T) {
	s := Subst{MAC: "11:22:33:44:55:66"}
	plan := FormatPlan(testPolicy(), s, "JBL", true)

	assert.Contains(t, plan, "Problem: Audio device pairs but no audio.")
	assert.Contains(t, plan, "Quick diagnostics:")
	// Quick diagnostics are listed verbatim, placeholders included.
	assert.Contains(t, plan, "  $ sudo bluetoothctl info <MAC>")
	assert.Contains(t, plan, "Step 1: Restart services")
	assert.Contains(t, plan, "Step 2: Reconnect")
	assert.Contains(t, plan, "  $ bluetoothctl connect 11:22:33:44:55:66")
	assert.Contains(t, plan, "Notes: Codec support depends on installed modules.")
	assert.Contains(t, plan, "Vendor guess: JBL")

	// Steps come out in order.
	require.Less(t, strings.Index(plan, "Step 1"), strings.Index(plan, "Step 2"))
}

func TestFormatPlanUnknownVendorGuess(t *testing.T) {
	plan := FormatPlan(testPolicy(), Subst{MAC: "DE:AD:BE:EF:00:01"}, "", true)
	assert.Contains(t, plan, "Vendor guess: Unknown")
}

func TestFormatPlanWithoutGuessLine(t *testing.T) {
	plan := FormatPlan(testPolicy(), Subst{}, "", false)
	assert.NotContains(t, plan, "Vendor guess")
	// No notes line when the policy has none.
	p := testPolicy()
	p.Notes = ""
	assert.NotContains(t, FormatPlan(p, Subst{}, "", false), "Notes:")
}
