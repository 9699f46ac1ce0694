package match

import (
	"fmt"
	"strings"
)

// PrefixSet holds the target address prefixes. It is built once at
// startup and read-only afterwards, so all workers share it without
// locking.
type PrefixSet struct {
	prefixes []string
}

// NewPrefixSet builds a set from the configured prefixes. Duplicates
// are dropped, whitespace is trimmed. An empty-string prefix is
// rejected: it would match every address, while an empty set must
// match nothing.
func NewPrefixSet(prefixes []string) (*PrefixSet, error) {
	seen := make(map[string]struct{}, len(prefixes))
	out := make([]string, 0, len(prefixes))
	for i, p := range prefixes {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fmt.Errorf("prefix %d is empty", i)
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return &PrefixSet{prefixes: out}, nil
}

// Match reports whether addr starts with any configured prefix and
// returns the first one that hits. Matching is literal and
// case-sensitive. With an empty set nothing ever matches.
func (s *PrefixSet) Match(addr string) (string, bool) {
	for _, p := range s.prefixes {
		if strings.HasPrefix(addr, p) {
			return p, true
		}
	}
	return "", false
}

// Len returns the number of distinct prefixes.
func (s *PrefixSet) Len() int { return len(s.prefixes) }

// Prefixes returns a copy of the configured prefixes for display.
func (s *PrefixSet) Prefixes() []string {
	out := make([]string, len(s.prefixes))
	copy(out, s.prefixes)
	return out
}
