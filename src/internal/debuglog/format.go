package debuglog

import (
	"fmt"
	"strings"
	"time"
)

// concat renders each part with its default format and joins them with
// no separator, so ("a", 1, "b") becomes "a1b".
func concat(parts []any) string {
	var sb strings.Builder
	for _, part := range parts {
		fmt.Fprint(&sb, part)
	}
	return sb.String()
}

// streamPrefix renders "[name] HH:MM:SS:uuuuuuu 1.23e-05 ".
func streamPrefix(name string, now time.Time, elapsed time.Duration) string {
	return fmt.Sprintf("[%s] %02d:%02d:%02d:%07d %.2e ",
		name, now.Hour(), now.Minute(), now.Second(), now.Nanosecond()/1000, elapsed.Seconds())
}

// filePrefix renders "[name] uuuuuuu sssssss ". The backend prepends the
// full date and time, so only the microseconds and the elapsed whole
// seconds are repeated here.
func filePrefix(name string, now time.Time, elapsed time.Duration) string {
	return fmt.Sprintf("[%s] %7d %7d ", name, now.Nanosecond()/1000, int64(elapsed.Seconds()))
}
