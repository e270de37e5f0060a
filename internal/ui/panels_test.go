package ui

import (
	"testing"

	"github.com/five82/lsmdash/internal/lsmdb"
	"github.com/five82/lsmdash/internal/state"
)

func TestStatsText_LoadingUntilFirstSuccess(t *testing.T) {
	store := &state.Store{}
	snap := store.Snapshot()
	if got := memTableText(snap); got != loadingText {
		t.Fatalf("memTableText = %q, want %q", got, loadingText)
	}
	if got := sstableText(snap); got != loadingText {
		t.Fatalf("sstableText = %q, want %q", got, loadingText)
	}

	store.UpdateStats(0, lsmdb.Stats{MemTableSize: 120, SSTableCount: 3})
	snap = store.Snapshot()
	if got := memTableText(snap); got != "120 bytes" {
		t.Fatalf("memTableText = %q, want 120 bytes", got)
	}
	if got := sstableText(snap); got != "3" {
		t.Fatalf("sstableText = %q, want 3", got)
	}
}

func TestStatsText_ZeroValuesAreNotLoading(t *testing.T) {
	store := &state.Store{}
	store.UpdateStats(0, lsmdb.Stats{})
	snap := store.Snapshot()
	if got := memTableText(snap); got != "0 bytes" {
		t.Fatalf("memTableText = %q, want 0 bytes", got)
	}
	if got := sstableText(snap); got != "0" {
		t.Fatalf("sstableText = %q, want 0", got)
	}
}

func TestSetButtonText(t *testing.T) {
	if got := setButtonText(state.Snapshot{}); got != "Set Key" {
		t.Fatalf("setButtonText idle = %q, want Set Key", got)
	}
	if got := setButtonText(state.Snapshot{WriteInFlight: true}); got != "Writing..." {
		t.Fatalf("setButtonText in flight = %q, want Writing...", got)
	}
}

func TestPanelWidths(t *testing.T) {
	tests := []struct {
		width       int
		left, right int
		stacked     bool
	}{
		{width: 120, left: 60, right: 60},
		{width: 101, left: 50, right: 51},
		{width: 80, left: 80, right: 80, stacked: true},
		{width: 10, left: LayoutMinPanelWidth, right: LayoutMinPanelWidth, stacked: true},
	}
	for _, tt := range tests {
		m := Model{width: tt.width}
		left, right, stacked := m.panelWidths()
		if left != tt.left || right != tt.right || stacked != tt.stacked {
			t.Fatalf("panelWidths(%d) = %d,%d,%v, want %d,%d,%v",
				tt.width, left, right, stacked, tt.left, tt.right, tt.stacked)
		}
	}
}
