package srt

import (
	"fmt"
	"strings"

	"github.com/pedro199288/reelforge-sub003/internal/pipeline"
)

// Render converts pages to SRT subtitle content.
func Render(pages []pipeline.Page) string {
	if len(pages) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, page := range pages {
		fmt.Fprintf(&sb, "%d\n%s --> %s\n%s\n",
			i+1, formatTime(page.StartMs), formatTime(page.EndMs), pageText(page))
		if i < len(pages)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// formatTime converts milliseconds to SRT time format HH:MM:SS,mmm.
func formatTime(ms int) string {
	if ms < 0 {
		ms = -ms
	}
	hours := ms / 3600000
	minutes := ms / 60000 % 60
	seconds := ms / 1000 % 60
	millis := ms % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}

func pageText(page pipeline.Page) string {
	var b strings.Builder
	for _, w := range page.Words {
		b.WriteString(w.Text)
	}
	return strings.TrimSpace(b.String())
}
