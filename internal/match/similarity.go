// Package match scores externally retrieved candidate metadata records
// against a local entry and selects at most one accepted identifier.
package match

import "sort"

// Ratio computes a Ratcliff/Obershelp character-sequence similarity
// between a and b: twice the number of matching characters over the total
// length. 1.0 means identical, 0.0 means nothing in common. Two empty
// strings are identical.
func Ratio(a, b string) float64 {
	ar, br := []rune(a), []rune(b)
	total := len(ar) + len(br)
	if total == 0 {
		return 1.0
	}
	return 2.0 * float64(matchedRunes(ar, br)) / float64(total)
}

// blockMatch is one maximal matching block between two rune slices.
type blockMatch struct {
	a, b, size int
}

// longestMatch finds the longest matching block in a[alo:ahi] and
// b[blo:bhi], preferring the earliest such block in a, then in b.
func longestMatch(a []rune, b2j map[rune][]int, alo, ahi, blo, bhi int) blockMatch {
	best := blockMatch{a: alo, b: blo}
	j2len := make(map[int]int)

	for i := alo; i < ahi; i++ {
		newJ2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newJ2len[j] = k
			if k > best.size {
				best = blockMatch{a: i - k + 1, b: j - k + 1, size: k}
			}
		}
		j2len = newJ2len
	}
	return best
}

// matchedRunes returns the total size of all matching blocks between a
// and b, found by recursively splitting around the longest match.
func matchedRunes(a, b []rune) int {
	b2j := make(map[rune][]int, len(b))
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}

	var walk func(alo, ahi, blo, bhi int) int
	walk = func(alo, ahi, blo, bhi int) int {
		m := longestMatch(a, b2j, alo, ahi, blo, bhi)
		if m.size == 0 {
			return 0
		}
		return m.size +
			walk(alo, m.a, blo, m.b) +
			walk(m.a+m.size, ahi, m.b+m.size, bhi)
	}
	return walk(0, len(a), 0, len(b))
}

// CloseMatches returns up to n strings from possibilities whose
// similarity to word is at least cutoff, best first. Ties keep the
// original order of possibilities.
func CloseMatches(word string, possibilities []string, n int, cutoff float64) []string {
	type scored struct {
		s     string
		score float64
	}
	var hits []scored
	for _, p := range possibilities {
		if score := Ratio(word, p); score >= cutoff {
			hits = append(hits, scored{p, score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	if n > 0 && len(hits) > n {
		hits = hits[:n]
	}
	if len(hits) == 0 {
		return nil
	}

	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.s
	}
	return out
}
