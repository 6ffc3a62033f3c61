package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vmunix/arrsync/internal/arr"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}
	for _, d := range []struct {
		name  string
		value time.Duration
	}{
		{"http.timeout", c.HTTP.Timeout},
		{"http.slow_timeout", c.HTTP.SlowTimeout},
		{"queue.poll_interval", c.Queue.PollInterval},
		{"indexing.delay", c.Indexing.Delay},
	} {
		if d.value < 0 {
			errs = append(errs, fmt.Sprintf("%s: must be positive", d.name))
		}
	}

	if len(c.Instances) == 0 {
		errs = append(errs, "instances: at least one radarr or sonarr instance must be configured")
	}
	ids := make(map[string]int)
	labels := make(map[string]int)
	for i, inst := range c.Instances {
		prefix := fmt.Sprintf("instances[%d]", i)
		if _, err := arr.ParseKind(inst.Kind); err != nil {
			errs = append(errs, fmt.Sprintf("%s.kind: must be radarr or sonarr; got %q", prefix, inst.Kind))
		}
		if u, err := url.Parse(inst.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Sprintf("%s.url: must be an http(s) URL; got %q", prefix, inst.URL))
		}
		if inst.APIKey == "" {
			errs = append(errs, fmt.Sprintf("%s.api_key: required", prefix))
		}
		if inst.ID != "" {
			if _, err := uuid.Parse(inst.ID); err != nil {
				errs = append(errs, fmt.Sprintf("%s.id: must be a UUID; got %q", prefix, inst.ID))
			}
		}

		converted, err := inst.Instance()
		if err != nil {
			continue
		}
		id := converted.ID.String()
		if j, dup := ids[id]; dup {
			errs = append(errs, fmt.Sprintf("%s.id: duplicates instances[%d]", prefix, j))
		}
		ids[id] = i
		label := strings.ToLower(converted.Label)
		if j, dup := labels[label]; dup {
			errs = append(errs, fmt.Sprintf("%s.label: %q duplicates instances[%d]", prefix, converted.Label, j))
		}
		labels[label] = i
	}

	return errs
}
