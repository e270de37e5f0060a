// Package logtail reads the end of the lsmdash log file for the log pane.
//
// Read only looks at the last 256 KiB of the file, so a long-running log costs
// the same to tail on every refresh. Lines come back in file order. A log file that does not exist yet is not an error; the
// dashboard simply has nothing to show.
//
//	lines, err := logtail.Read(cfg.LogFile, 200)
//
// Level pulls the level attribute out of a log/slog text handler line so the
// UI can color warnings and errors:
//
//	time=2026-10-16T09:12:03.120Z level=WARN msg="stats poll failed" error="..."
//	→ "WARN"
package logtail
