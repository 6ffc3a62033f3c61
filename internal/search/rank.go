package search

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/vmunix/arrsync/internal/media"
)

var (
	numberRegex = regexp.MustCompile(`\b(\d+)\b`)
	accents     = runes.Remove(runes.In(unicode.Mn))
)

// normalizeTerm tidies a catalog lookup term: "&" becomes "and" and runs of
// whitespace collapse.
func normalizeTerm(term string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(term, "&", " and ")), " ")
}

// cleanTitle lowercases s, strips accents, punctuation and leading articles.
func cleanTitle(s string) string {
	s = strings.ToLower(s)
	s, _, _ = transform.String(transform.Chain(norm.NFD, accents, norm.NFC), s)
	s = strings.NewReplacer("&", " and ", "-", " ", "'", "", ".", " ").Replace(s)

	parts := strings.Split(s, ":")
	for i, part := range parts {
		parts[i] = stripArticle(strings.TrimSpace(part))
	}

	var b strings.Builder
	for _, r := range strings.Join(parts, " ") {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func stripArticle(s string) string {
	for _, article := range []string{"the ", "a ", "an "} {
		if rest, ok := strings.CutPrefix(s, article); ok {
			return rest
		}
	}
	return s
}

// similarity scores title against an already cleaned term in [0, 1]. A
// sequence number present in both lifts the score; a missing or different
// one lowers it.
func similarity(term, title string) float64 {
	title = cleanTitle(title)
	score := float64(edlib.JaroWinklerSimilarity(term, title))

	want := numberRegex.FindAllString(term, -1)
	if len(want) == 0 {
		return score
	}
	have := numberRegex.FindAllString(title, -1)
	switch {
	case len(have) == 0:
		return score * 0.85
	case slices.ContainsFunc(want, func(n string) bool { return slices.Contains(have, n) }):
		return min(score*1.05, 1.0)
	}
	return score * 0.90
}

// rank orders items by how closely their title or an alternate title
// matches term. Equal scores keep the server's order.
func rank[T media.Item](items []T, term string) []T {
	term = cleanTitle(term)
	if term == "" {
		return items
	}
	type scored struct {
		item  T
		score float64
	}
	ranked := make([]scored, len(items))
	for i, item := range items {
		best := similarity(term, item.SearchTitle())
		if alt := item.AlternateTitlesString(); alt != "" {
			best = max(best, similarity(term, alt))
		}
		ranked[i] = scored{item: item, score: best}
	}
	slices.SortStableFunc(ranked, func(a, b scored) int { return cmp.Compare(b.score, a.score) })

	out := make([]T, len(ranked))
	for i, r := range ranked {
		out[i] = r.item
	}
	return out
}
