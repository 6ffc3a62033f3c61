package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512 B", formatSize(512))
	assert.Equal(t, "1.5 KB", formatSize(1536))
	assert.Equal(t, "1.0 GB", formatSize(1<<30))
}

func TestFormatAge(t *testing.T) {
	assert.Equal(t, "45m", formatAge(45))
	assert.Equal(t, "3h", formatAge(200))
	assert.Equal(t, "2d", formatAge(3000))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "The Ma...", truncate("The Matrix Reloaded", 9))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}
