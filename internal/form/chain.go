package form

import (
	"fmt"
	"strings"
)

// Move swaps the stop at idx with its neighbour in direction dir (-1 up,
// +1 down). Out-of-range moves return the chain unchanged.
func Move(chain []string, idx, dir int) []string {
	j := idx + dir
	if idx < 0 || idx >= len(chain) || j < 0 || j >= len(chain) {
		return chain
	}
	next := clone(chain)
	next[idx], next[j] = next[j], next[idx]
	return next
}

// Remove drops the stop at idx.
func Remove(chain []string, idx int) []string {
	if idx < 0 || idx >= len(chain) {
		return chain
	}
	next := make([]string, 0, len(chain)-1)
	next = append(next, chain[:idx]...)
	return append(next, chain[idx+1:]...)
}

// AddStop inserts stop just before the destination. A chain shorter than two
// entries is rebuilt as origin, stop, destination. Blank stops are ignored.
func AddStop(chain []string, origin, dest, stop string) []string {
	stop = strings.TrimSpace(stop)
	if stop == "" {
		return chain
	}
	if len(chain) < 2 {
		return []string{origin, stop, dest}
	}
	next := make([]string, 0, len(chain)+1)
	next = append(next, chain[:len(chain)-1]...)
	next = append(next, stop)
	return append(next, chain[len(chain)-1])
}

// Reset returns a chain of exactly origin and destination.
func Reset(origin, dest string) []string {
	return []string{origin, dest}
}

// SyncChain keeps a short chain tied to the origin/destination fields.
// Chains with intermediate stops (three or more entries) are left alone.
func SyncChain(chain []string, origin, dest string) []string {
	if len(chain) < 3 {
		return Reset(origin, dest)
	}
	return chain
}

// ChainWarnings describes problems with the chain without fixing them.
// Submission is never blocked on these.
func ChainWarnings(chain []string) []string {
	var warnings []string
	if len(chain) < 2 {
		warnings = append(warnings, "The chain needs at least an origin and a destination.")
	}
	for i := 1; i < len(chain); i++ {
		if strings.EqualFold(strings.TrimSpace(chain[i]), strings.TrimSpace(chain[i-1])) {
			warnings = append(warnings, fmt.Sprintf("Stops %d and %d are both %s.", i, i+1, chain[i]))
		}
	}
	return warnings
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
