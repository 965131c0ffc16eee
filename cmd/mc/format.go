package main

import "time"

// formatDate renders a timestamp the way the history views show it
// (e.g. "Jan 2, 2026 3:04 PM").
func formatDate(t time.Time) string {
	return t.Local().Format("Jan 2, 2006 3:04 PM")
}

// truncate shortens s to max characters, appending "..." when it cuts.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
