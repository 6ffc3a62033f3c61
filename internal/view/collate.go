package view

import (
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var collators = sync.Pool{
	New: func() any {
		return collate.New(language.English, collate.IgnoreCase, collate.Numeric, collate.Loose)
	},
}

// compareTitles orders titles the way people expect: case and accents are
// ignored and digit runs compare numerically.
func compareTitles(a, b string) int {
	c := collators.Get().(*collate.Collator)
	defer collators.Put(c)
	return c.CompareString(a, b)
}

// compareTimes orders nil after every date.
func compareTimes(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return a.Compare(*b)
}
