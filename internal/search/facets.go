package search

import (
	"cmp"
	"slices"
	"strings"

	"github.com/vmunix/arrsync/internal/media"
)

// Facets are the distinct values found in a result set, used to offer
// filters. Indexers are alphabetized; the others keep first-occurrence
// order.
type Facets struct {
	Indexers      []string
	Qualities     []string
	Protocols     []string
	Languages     []string
	CustomFormats []string
}

// NewFacets collects the facets of results.
func NewFacets[R media.ReleaseInfo](results []R) Facets {
	var f Facets
	for _, r := range results {
		f.Indexers = appendDistinct(f.Indexers, r.IndexerLabel())
		f.Qualities = appendDistinct(f.Qualities, r.QualityName())
		f.Protocols = appendDistinct(f.Protocols, r.ProtocolLabel())
		f.Languages = appendDistinct(f.Languages, r.LanguageLabels()...)
		f.CustomFormats = appendDistinct(f.CustomFormats, r.CustomFormatLabels()...)
	}
	slices.SortFunc(f.Indexers, func(a, b string) int {
		return cmp.Or(cmp.Compare(strings.ToLower(a), strings.ToLower(b)), cmp.Compare(a, b))
	})
	return f
}

func appendDistinct(values []string, add ...string) []string {
	for _, v := range add {
		if v != "" && !slices.Contains(values, v) {
			values = append(values, v)
		}
	}
	return values
}

// Filter narrows a result set. Empty fields match everything.
type Filter struct {
	Indexer      string
	Quality      string
	Protocol     string
	Language     string
	CustomFormat string
	// ApprovedOnly drops releases the server rejected.
	ApprovedOnly bool
}

// Match reports whether r passes the filter.
func (f Filter) Match(r media.ReleaseInfo) bool {
	switch {
	case f.ApprovedOnly && r.Base().Rejected:
		return false
	case f.Indexer != "" && !strings.EqualFold(r.IndexerLabel(), f.Indexer):
		return false
	case f.Quality != "" && !strings.EqualFold(r.QualityName(), f.Quality):
		return false
	case f.Protocol != "" && !strings.EqualFold(r.ProtocolLabel(), f.Protocol):
		return false
	case f.Language != "" && !containsFold(r.LanguageLabels(), f.Language):
		return false
	case f.CustomFormat != "" && !containsFold(r.CustomFormatLabels(), f.CustomFormat):
		return false
	}
	return true
}

func containsFold(values []string, s string) bool {
	return slices.ContainsFunc(values, func(v string) bool { return strings.EqualFold(v, s) })
}

// Release sort keys.
const (
	SortWeight  = "weight"
	SortAge     = "age"
	SortSize    = "size"
	SortSeeders = "seeders"
	SortQuality = "quality"
)

var releaseCompare = map[string]func(a, b media.Release) int{
	SortWeight:  func(a, b media.Release) int { return cmp.Compare(a.ReleaseWeight, b.ReleaseWeight) },
	SortAge:     func(a, b media.Release) int { return cmp.Compare(a.AgeMinutes, b.AgeMinutes) },
	SortSize:    func(a, b media.Release) int { return cmp.Compare(a.Size, b.Size) },
	SortSeeders: func(a, b media.Release) int { return cmp.Compare(deref(a.Seeders), deref(b.Seeders)) },
	SortQuality: func(a, b media.Release) int { return cmp.Compare(a.QualityWeight, b.QualityWeight) },
}

func deref(p *int) int {
	if p == nil {
		return -1
	}
	return *p
}

// Arrange filters and orders results without modifying them. The weight
// order is the server's preference, so it keeps the server's order when
// ascending is false.
func Arrange[R media.ReleaseInfo](results []R, filter Filter, sortKey string, ascending bool) ([]R, error) {
	compare, ok := releaseCompare[sortKey]
	if !ok {
		return nil, ErrUnknownSort
	}
	out := make([]R, 0, len(results))
	for _, r := range results {
		if filter.Match(r) {
			out = append(out, r)
		}
	}
	if sortKey == SortWeight {
		if ascending {
			slices.Reverse(out)
		}
		return out, nil
	}
	slices.SortStableFunc(out, func(a, b R) int {
		if ascending {
			return compare(a.Base(), b.Base())
		}
		return compare(b.Base(), a.Base())
	})
	return out, nil
}
