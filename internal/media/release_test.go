package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestQuality_NormalizedName(t *testing.T) {
	tests := []struct {
		name       *string
		resolution int
		want       string
	}{
		{ptr("Bluray-1080p"), 1080, "1080p"},
		{ptr("WEBDL-2160p"), 2160, "2160p"},
		{ptr("HDTV-720p"), 720, "720p"},
		{ptr("SDTV"), 0, "480p"},
		{ptr("DVD-R"), 480, "480p"},
		{ptr("BR-DISK"), 1080, "1080p"},
		{ptr("Raw-HD"), 1080, "Raw-HD"},
		{ptr(""), 0, "Unknown"},
		{ptr("   "), 0, "Unknown"},
		{nil, 720, "Unknown"},
	}

	for _, tt := range tests {
		label := "<nil>"
		if tt.name != nil {
			label = *tt.name
		}
		t.Run(label, func(t *testing.T) {
			q := Quality{Name: tt.name, Resolution: tt.resolution}
			assert.Equal(t, tt.want, q.NormalizedName())
		})
	}
}

func TestRelease_IndexerLabel(t *testing.T) {
	assert.Equal(t, "NZBgeek", Release{Indexer: "NZBgeek (Prowlarr)"}.IndexerLabel())
	assert.Equal(t, "DrunkenSlug", Release{Indexer: "DrunkenSlug"}.IndexerLabel())
	assert.Equal(t, "12", Release{IndexerID: 12}.IndexerLabel())
}

func TestRelease_Labels(t *testing.T) {
	r := Release{
		Protocol:      ProtocolTorrent,
		Languages:     []Language{{ID: 1, Name: "English"}, {ID: 2}},
		CustomFormats: []CustomFormat{{ID: 3, Name: "x265"}},
	}

	assert.Equal(t, "Torrent", r.ProtocolLabel())
	assert.Equal(t, []string{"English", "Unknown"}, r.LanguageLabels())
	assert.Equal(t, []string{"x265"}, r.CustomFormatLabels())
	assert.True(t, r.IsTorrent())
	assert.False(t, r.IsUsenet())
}

func TestReleaseFreeleech(t *testing.T) {
	assert.True(t, MovieRelease{IndexerFlags: []string{"G_Freeleech"}}.IsFreeleech())
	assert.False(t, MovieRelease{IndexerFlags: []string{"G_Halfleech"}}.IsFreeleech())
	assert.True(t, SeriesRelease{IndexerFlags: 1}.IsFreeleech())
	assert.False(t, SeriesRelease{IndexerFlags: 8}.IsFreeleech())
}
