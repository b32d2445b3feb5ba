package explore

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseAcceptanceMode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pda.explore")
	defer teardown()
	//
	for _, mode := range []AcceptanceMode{FinalState, EmptyStack, FinalStateAndEmptyStack} {
		m, err := ParseAcceptanceMode(mode.String())
		if err != nil || m != mode {
			t.Errorf("expected %s to parse as itself, got %s (%v)", mode, m, err)
		}
	}
	if m, _ := ParseAcceptanceMode("both"); m != FinalStateAndEmptyStack {
		t.Errorf("expected 'both' to select %s, got %s", FinalStateAndEmptyStack, m)
	}
	if _, err := ParseAcceptanceMode("never"); err == nil {
		t.Errorf("expected unknown mode to be an error")
	}
}
