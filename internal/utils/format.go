package utils

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// FormatRelativeTime renders a timestamp the way the conversation list
// shows it: coarse buckets for the recent past, a plain date beyond a
// week.
func FormatRelativeTime(t time.Time, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "Just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}

// Preview truncates text to max runes, appending an ellipsis when
// anything was cut. Newlines collapse to spaces so previews stay on
// one line.
func Preview(text string, max int) string {
	text = strings.Join(strings.Fields(text), " ")
	if max <= 0 || utf8.RuneCountInString(text) <= max {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:max])) + "..."
}
