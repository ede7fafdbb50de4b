package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var sinceParser = func() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}()

// parseSince разбирает --since: дату 2006-01-02 или выражение
// вроде "yesterday", "3 days ago", "last week"
func parseSince(expr string, now time.Time) (time.Time, error) {
	expr = strings.TrimSpace(expr)
	if t, err := time.ParseInLocation(time.DateOnly, expr, now.Location()); err == nil {
		return t, nil
	}

	result, err := sinceParser.Parse(expr, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse --since %q: %w", expr, err)
	}
	if result == nil {
		return time.Time{}, fmt.Errorf("failed to parse --since %q: unrecognized time expression", expr)
	}
	return result.Time, nil
}
