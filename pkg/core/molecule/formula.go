package molecule

import (
	"fmt"
	"sort"
	"strings"
)

// Formula returns the molecular formula in Hill order: carbon first,
// then hydrogen, then the remaining elements alphabetically. Without
// carbon all elements sort alphabetically.
func (m *Molecule) Formula() string {
	counts := map[string]int{}
	for _, a := range m.Atoms {
		sym := a.Symbol
		if sym == "D" {
			sym = "H"
		}
		counts[sym]++
		if a.HKnown && sym != "H" {
			counts["H"] += a.HCount
		}
	}

	var order []string
	if counts["C"] > 0 {
		order = append(order, "C")
		if counts["H"] > 0 {
			order = append(order, "H")
		}
		var rest []string
		for sym := range counts {
			if sym != "C" && sym != "H" {
				rest = append(rest, sym)
			}
		}
		sort.Strings(rest)
		order = append(order, rest...)
	} else {
		for sym := range counts {
			order = append(order, sym)
		}
		sort.Strings(order)
	}

	var b strings.Builder
	for _, sym := range order {
		n := counts[sym]
		if n == 0 {
			continue
		}
		b.WriteString(sym)
		if n > 1 {
			fmt.Fprintf(&b, "%d", n)
		}
	}
	return b.String()
}
