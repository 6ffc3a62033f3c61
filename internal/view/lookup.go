package view

import (
	"fmt"
	"strings"

	"github.com/vmunix/arrsync/internal/media"
)

// FindOption returns the option with the given key.
func FindOption[T media.Item](options []Option[T], key string) (Option[T], error) {
	for _, o := range options {
		if strings.EqualFold(o.Key, key) {
			return o, nil
		}
	}
	return Option[T]{}, fmt.Errorf("unknown sort option %q", key)
}

// FindFilter returns the filter with the given key. An empty key selects all
// items.
func FindFilter[T media.Item](filters []Filter[T], key string) (Filter[T], error) {
	if key == "" {
		return Filter[T]{}, nil
	}
	for _, f := range filters {
		if strings.EqualFold(f.Key, key) {
			return f, nil
		}
	}
	return Filter[T]{}, fmt.Errorf("unknown filter %q", key)
}
