package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Instances: []InstanceConfig{
			{Label: "Movies", Kind: "radarr", URL: "http://localhost:7878", APIKey: "a"},
			{Label: "TV", Kind: "sonarr", URL: "https://sonarr.example.com", APIKey: "b"},
		},
	}
}

func TestValidate_MinimalValid(t *testing.T) {
	assert.Empty(t, validConfig().Validate())
}

func TestValidate_NoInstances(t *testing.T) {
	errs := (&Config{}).Validate()
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "instances")
}

func TestValidate_Instances(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"bad kind", func(c *Config) { c.Instances[0].Kind = "lidarr" }, "instances[0].kind"},
		{"bad url", func(c *Config) { c.Instances[1].URL = "sonarr:8989" }, "instances[1].url"},
		{"missing key", func(c *Config) { c.Instances[0].APIKey = "" }, "instances[0].api_key"},
		{"bad id", func(c *Config) { c.Instances[0].ID = "42" }, "instances[0].id"},
		{"duplicate label", func(c *Config) { c.Instances[1].Label = "movies" }, "instances[1].label"},
		{"duplicate url", func(c *Config) {
			c.Instances[1].URL = c.Instances[0].URL
			c.Instances[1].Label = "Other"
		}, "instances[1].id"},
		{"negative poll", func(c *Config) { c.Queue.PollInterval = -1 }, "queue.poll_interval"},
		{"log level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)
			errs := cfg.Validate()
			found := false
			for _, e := range errs {
				if strings.HasPrefix(e, tt.want) {
					found = true
				}
			}
			assert.True(t, found, "expected %s in %v", tt.want, errs)
		})
	}
}
