// Package reltime renders timestamps the way the dashboard feeds show them.
package reltime

import (
	"time"

	"github.com/dustin/go-humanize"
)

// Format renders then relative to now, e.g. "2 hours ago".
func Format(then, now time.Time) string {
	if d := now.Sub(then); d < time.Minute && d > -time.Minute {
		return "just now"
	}
	return humanize.RelTime(then, now, "ago", "from now")
}
