// Package policy resolves a user's problem selection to one entry of the
// problem table.
package policy

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cneate93/btdoctor/internal/catalog"
)

// NotFoundError reports that no policy matched the selection. It carries the
// available keys so the caller can surface them to the user.
type NotFoundError struct {
	Input string
	Keys  []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no policy found for %q. Available: %s", e.Input, strings.Join(e.Keys, ", "))
}

// Match resolves a selection against the table. Precedence: an input that
// parses as an integer is a 1-based ordinal into the table's key order
// (out of range is an error, never a fallback); otherwise an exact
// case-sensitive key match; otherwise the first entry in table order whose
// key or description contains the input case-insensitively. Anything else
// is a *NotFoundError.
func Match(table *catalog.ProblemTable, input string) (string, catalog.Policy, error) {
	sel := strings.TrimSpace(input)
	keys := table.Keys()

	if n, err := strconv.Atoi(sel); err == nil {
		if n < 1 || n > len(keys) {
			return "", catalog.Policy{}, fmt.Errorf("selection %d is out of range (1-%d)", n, len(keys))
		}
		key := keys[n-1]
		p, _ := table.Get(key)
		return key, p, nil
	}

	if p, ok := table.Get(sel); ok {
		return sel, p, nil
	}

	if needle := strings.ToLower(sel); needle != "" {
		for _, key := range keys {
			p, _ := table.Get(key)
			if strings.Contains(strings.ToLower(key), needle) ||
				strings.Contains(strings.ToLower(p.Description), needle) {
				return key, p, nil
			}
		}
	}

	return "", catalog.Policy{}, &NotFoundError{Input: sel, Keys: keys}
}
