package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the write and read
	// panels stack vertically.
	LayoutCompactWidth = 100

	// LayoutMinPanelWidth keeps inputs usable on very narrow terminals.
	LayoutMinPanelWidth = 24
)

// Log pane limits.
const (
	// LogTailLines is the number of trailing log lines shown in the log pane.
	LogTailLines = 200
)

// Timing constants.
const (
	// DefaultUIInterval is how often the model re-reads the store.
	DefaultUIInterval = 500 * time.Millisecond
)

// chromeHeight is the number of rows used by the header and footer.
const chromeHeight = 2
