package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ParseSelection turns a row selection such as "1,3-5" or "all" into
// sorted, unique zero-based indexes into a listing of n rows.
func ParseSelection(s string, n int) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty selection")
	}
	if n == 0 {
		return nil, fmt.Errorf("nothing listed; run list first")
	}

	if strings.EqualFold(s, "all") {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out, nil
	}

	seen := make(map[int]struct{})
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		lo, hi := part, part
		if i := strings.Index(part, "-"); i >= 0 {
			lo, hi = part[:i], part[i+1:]
		}

		from, err := row(lo, n)
		if err != nil {
			return nil, err
		}
		to, err := row(hi, n)
		if err != nil {
			return nil, err
		}
		if from > to {
			return nil, fmt.Errorf("bad range %q", part)
		}
		for r := from; r <= to; r++ {
			seen[r-1] = struct{}{}
		}
	}

	if len(seen) == 0 {
		return nil, fmt.Errorf("empty selection")
	}
	out := make([]int, 0, len(seen))
	for i := range seen {
		out = append(out, i)
	}
	sort.Ints(out)
	return out, nil
}

func row(s string, n int) (int, error) {
	r, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("bad row %q", s)
	}
	if r < 1 || r > n {
		return 0, fmt.Errorf("row %d out of range 1..%d", r, n)
	}
	return r, nil
}
