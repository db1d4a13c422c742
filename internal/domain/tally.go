package domain

type TallyEntry struct {
	Symbol string
	Count  int
}

// Tally counts symbol occurrences and remembers the order symbols were first seen.
type Tally struct {
	order  []string
	counts map[string]int
}

func NewTally(sequence []string) Tally {
	t := Tally{counts: make(map[string]int)}
	for _, symbol := range sequence {
		if _, ok := t.counts[symbol]; !ok {
			t.order = append(t.order, symbol)
		}
		t.counts[symbol]++
	}

	return t
}

func (t Tally) Total() int {
	total := 0
	for _, count := range t.counts {
		total += count
	}
	return total
}

func (t Tally) Entries() []TallyEntry {
	entries := make([]TallyEntry, 0, len(t.order))
	for _, symbol := range t.order {
		entries = append(entries, TallyEntry{Symbol: symbol, Count: t.counts[symbol]})
	}
	return entries
}
