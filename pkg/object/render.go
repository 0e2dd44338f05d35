package object

import (
	"fmt"
	"strings"
	"time"
)

// DefaultTimeLayout is the timestamp layout used when no display
// config overrides it. The zone suffix is appended separately as
// ±HH:MM, so the layout itself carries no zone verb.
const DefaultTimeLayout = "2006-01-02 15:04:05"

// FormatCommit renders a decoded commit as structured text: tree line,
// parents line (omitted when the commit has none, "a | b" for merges),
// author and committer lines with labelled timestamps, blank line,
// message.
//
// Both timestamps are rendered in the author's zone, matching the
// program this models; author and committer offsets rarely diverge in
// practice.
func FormatCommit(c *Commit, timeLayout string) string {
	if timeLayout == "" {
		timeLayout = DefaultTimeLayout
	}

	var b strings.Builder
	fmt.Fprintf(&b, "tree %s\n", c.TreeID)
	switch len(c.ParentIDs) {
	case 1:
		fmt.Fprintf(&b, "parents %s\n", c.ParentIDs[0])
	case 2:
		fmt.Fprintf(&b, "parents %s | %s\n", c.ParentIDs[0], c.ParentIDs[1])
	}
	fmt.Fprintf(&b, "author %s <%s> original timestamp: %s\n",
		c.Author.Name, c.Author.Email,
		formatStamp(c.Author.Unix, c.Author.OffsetMinutes, timeLayout))
	fmt.Fprintf(&b, "committer %s <%s> commit timestamp: %s\n",
		c.Committer.Name, c.Committer.Email,
		formatStamp(c.Committer.Unix, c.Author.OffsetMinutes, timeLayout))
	b.WriteByte('\n')
	b.WriteString(c.Message)
	return b.String()
}

// FormatTree renders tree entries one per line: "<mode> <id> <name>",
// in the order given (on-disk order unless the caller re-sorted).
func FormatTree(entries []TreeEntry) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s %s %s\n", e.Mode, e.ID, e.Name)
	}
	return b.String()
}

// FormatBlob renders a blob body as raw text.
func FormatBlob(body []byte) string {
	return string(body)
}

func formatStamp(unix int64, offsetMinutes int, layout string) string {
	zone := OffsetZone(offsetMinutes)
	loc := time.FixedZone(zone, offsetMinutes*60)
	return time.Unix(unix, 0).In(loc).Format(layout) + " " + zone
}

// OffsetZone renders signed minutes as a ±HH:MM zone label.
func OffsetZone(offsetMinutes int) string {
	sign := "+"
	if offsetMinutes < 0 {
		sign = "-"
		offsetMinutes = -offsetMinutes
	}
	return fmt.Sprintf("%s%02d:%02d", sign, offsetMinutes/60, offsetMinutes%60)
}
