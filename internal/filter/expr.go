package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/not-matthias/fdtrace/internal/session"
)

// ParseExpr parses one of the small set of `--filter` expressions the CLI
// accepts into a Criterion over FileSession. Supported forms:
//
//	path~SUBSTR        session path contains SUBSTR
//	duration>=NS       session was open at least NS nanoseconds
//	bytes>=N           at least one event transferred at least N bytes
//	reads              session has at least one read event
//	writes             session has at least one write event
//
// An empty expr matches everything.
func ParseExpr(expr string) (Criterion[session.FileSession], error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Criterion[session.FileSession]{func(session.FileSession) bool { return true }}, nil
	}

	switch {
	case expr == "reads":
		return HasReads(), nil
	case expr == "writes":
		return HasWrites(), nil
	case strings.HasPrefix(expr, "path~"):
		return PathContains(strings.TrimPrefix(expr, "path~")), nil
	case strings.HasPrefix(expr, "duration>="):
		n, err := strconv.ParseUint(strings.TrimPrefix(expr, "duration>="), 10, 64)
		if err != nil {
			return Criterion[session.FileSession]{}, fmt.Errorf("filter: bad duration>= value in %q: %w", expr, err)
		}
		return DurationAtLeast(n), nil
	case strings.HasPrefix(expr, "bytes>="):
		n, err := strconv.ParseUint(strings.TrimPrefix(expr, "bytes>="), 10, 64)
		if err != nil {
			return Criterion[session.FileSession]{}, fmt.Errorf("filter: bad bytes>= value in %q: %w", expr, err)
		}
		eventCriterion := BytesAtLeast(n)
		return Criterion[session.FileSession]{func(s session.FileSession) bool {
			return len(Events(s, eventCriterion)) > 0
		}}, nil
	default:
		return Criterion[session.FileSession]{}, fmt.Errorf("filter: unrecognized expression %q", expr)
	}
}
