package analyzer

// Pair is a single letter together with the number of times it occurs.
type Pair struct {
	Letter rune
	Count  int
}

// Stats holds everything computed from one pass over a document.
type Stats struct {
	Words   int
	Letters *FrequencyTable
}

// FrequencyTable maps case-folded letters to their occurrence counts.
// Entries are enumerated in the order each letter first appears in the text.
// A FrequencyTable is not modified after CountLetters returns it.
type FrequencyTable struct {
	index map[rune]int // letter -> position in pairs
	pairs []Pair
}

// Len returns the number of distinct letters.
func (ft *FrequencyTable) Len() int {
	return len(ft.pairs)
}

// Count returns the occurrences of letter, or 0 if it never appeared.
// letter must already be case-folded.
func (ft *FrequencyTable) Count(letter rune) int {
	i, ok := ft.index[letter]
	if !ok {
		return 0
	}
	return ft.pairs[i].Count
}

// Pairs returns a copy of the entries in first-occurrence order.
func (ft *FrequencyTable) Pairs() []Pair {
	out := make([]Pair, len(ft.pairs))
	copy(out, ft.pairs)
	return out
}

// Total returns the number of letters counted across all entries.
func (ft *FrequencyTable) Total() int {
	total := 0
	for _, p := range ft.pairs {
		total += p.Count
	}
	return total
}
