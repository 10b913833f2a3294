// Package analyzer computes word and letter statistics for a text.
package analyzer

import (
	"strings"
	"unicode"
)

// CountWords returns the number of whitespace-separated tokens in text.
// Runs of whitespace count as one separator, so "a b  c" has three words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// CountLetters case-folds text and counts every letter in it. Digits,
// punctuation, whitespace and invalid UTF-8 are ignored.
func CountLetters(text string) *FrequencyTable {
	ft := &FrequencyTable{index: make(map[rune]int)}

	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		r = unicode.ToLower(r)

		if i, ok := ft.index[r]; ok {
			ft.pairs[i].Count++
			continue
		}
		ft.index[r] = len(ft.pairs)
		ft.pairs = append(ft.pairs, Pair{Letter: r, Count: 1})
	}

	return ft
}

// Analyze runs both counters over text.
func Analyze(text string) Stats {
	return Stats{
		Words:   CountWords(text),
		Letters: CountLetters(text),
	}
}
