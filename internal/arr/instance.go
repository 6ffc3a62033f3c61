// Package arr executes typed requests against Radarr and Sonarr instances and
// classifies their failures.
package arr

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Kind is the backend flavor of an instance.
type Kind string

const (
	Radarr Kind = "radarr"
	Sonarr Kind = "sonarr"
)

// ParseKind parses a configured backend flavor.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case Radarr, Sonarr:
		return k, nil
	}
	return "", fmt.Errorf("unknown instance kind %q", s)
}

// Resource is the REST noun for the instance's primary entity.
func (k Kind) Resource() string {
	if k == Sonarr {
		return "series"
	}
	return "movie"
}

// Instance is one configured backend server. Instances are immutable; stores
// bound to an instance are rebuilt rather than re-pointed.
type Instance struct {
	ID     uuid.UUID
	Kind   Kind
	Label  string
	URL    string
	APIKey string
	Slow   bool
}

// String returns the label, or the URL when no label is set.
func (i Instance) String() string {
	if i.Label != "" {
		return i.Label
	}
	return i.URL
}

// Endpoint joins the instance base URL with an API path and query.
func (i Instance) Endpoint(path string, query url.Values) (string, error) {
	base, err := url.Parse(strings.TrimRight(i.URL, "/"))
	if err != nil {
		return "", fmt.Errorf("parse instance url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return "", fmt.Errorf("invalid instance url %q", i.URL)
	}
	base.Path += path
	if len(query) > 0 {
		base.RawQuery = query.Encode()
	}
	return base.String(), nil
}
