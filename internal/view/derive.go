// Package view derives the displayed sequence of a cached collection from a
// sort order and a search query. It never performs I/O.
package view

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/vmunix/arrsync/internal/media"
)

// Option is a sort order, optionally restricted to matching items.
type Option[T media.Item] struct {
	Key     string
	Label   string
	Compare func(a, b T) int
	// Filter, when set, drops items the order does not apply to.
	Filter func(T) bool
}

// Filter restricts the displayed items.
type Filter[T media.Item] struct {
	Key   string
	Label string
	Match func(T) bool
}

// Sort is a selected sort option plus direction.
type Sort[T media.Item] struct {
	Option    Option[T]
	Filter    Filter[T]
	Ascending bool
}

// Derive filters items, keeps those matching query and orders them. Ties are
// broken by identity so the result does not depend on the input order. items
// is not modified.
func Derive[T media.Item](items []T, sort Sort[T], query string, altTitles map[int]string) []T {
	query = strings.TrimSpace(query)
	var m *matcher
	if query != "" {
		m = newMatcher(query)
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if sort.Option.Filter != nil && !sort.Option.Filter(item) {
			continue
		}
		if sort.Filter.Match != nil && !sort.Filter.Match(item) {
			continue
		}
		if m != nil && !m.match(item, altTitles[item.Identity()]) {
			continue
		}
		out = append(out, item)
	}

	compare := sort.Option.Compare
	slices.SortStableFunc(out, func(a, b T) int {
		if compare != nil {
			if c := compare(a, b); c != 0 {
				return c
			}
		}
		return cmp.Compare(a.Identity(), b.Identity())
	})
	if !sort.Ascending {
		slices.Reverse(out)
	}
	return out
}

type matcher struct {
	caser cases.Caser
	query string
}

func newMatcher(query string) *matcher {
	m := &matcher{caser: cases.Fold()}
	m.query = m.fold(query)
	return m
}

func (m *matcher) fold(s string) string {
	return m.caser.String(norm.NFC.String(s))
}

func (m *matcher) contains(s string) bool {
	return s != "" && strings.Contains(m.fold(s), m.query)
}

func (m *matcher) match(item media.Searchable, altTitles string) bool {
	return m.contains(item.SearchTitle()) ||
		m.contains(item.SearchNetwork()) ||
		m.contains(altTitles)
}
