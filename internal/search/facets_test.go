package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/arrsync/internal/media"
)

func quality(name string) media.QualityModel {
	return media.QualityModel{Quality: media.Quality{Name: &name}}
}

func movieRelease(guid, indexer, q string, proto media.Protocol, langs ...string) media.MovieRelease {
	r := media.MovieRelease{Release: media.Release{
		GUID:     guid,
		Indexer:  indexer,
		Quality:  quality(q),
		Protocol: proto,
	}}
	for _, l := range langs {
		r.Languages = append(r.Languages, media.Language{Name: l})
	}
	return r
}

func TestNewFacets(t *testing.T) {
	results := []media.MovieRelease{
		movieRelease("a", "NZBgeek (Prowlarr)", "Bluray-1080p", media.ProtocolUsenet, "English"),
		movieRelease("b", "DrunkenSlug", "WEBDL-2160p", media.ProtocolUsenet, "English", "French"),
		movieRelease("c", "altHUB", "BR-DISK", media.ProtocolTorrent, "German"),
		movieRelease("d", "NZBgeek", "SDTV", media.ProtocolTorrent),
	}
	results[1].CustomFormats = []media.CustomFormat{{Name: "HDR"}, {Name: "DV"}}
	results[2].CustomFormats = []media.CustomFormat{{Name: "HDR"}}

	f := NewFacets(results)
	assert.Equal(t, []string{"altHUB", "DrunkenSlug", "NZBgeek"}, f.Indexers)
	assert.Equal(t, []string{"1080p", "2160p", "480p"}, f.Qualities)
	assert.Equal(t, []string{"Usenet", "Torrent"}, f.Protocols)
	assert.Equal(t, []string{"English", "French", "German"}, f.Languages)
	assert.Equal(t, []string{"HDR", "DV"}, f.CustomFormats)
}

func TestNewFacets_Empty(t *testing.T) {
	f := NewFacets[media.SeriesRelease](nil)
	assert.Empty(t, f.Indexers)
	assert.Empty(t, f.Qualities)
}

func TestFilter_Match(t *testing.T) {
	r := movieRelease("a", "NZBgeek (Prowlarr)", "Bluray-1080p", media.ProtocolUsenet, "English")
	rejected := r
	rejected.Rejected = true

	tests := []struct {
		name   string
		filter Filter
		in     media.MovieRelease
		want   bool
	}{
		{"empty", Filter{}, r, true},
		{"indexer", Filter{Indexer: "nzbgeek"}, r, true},
		{"other indexer", Filter{Indexer: "altHUB"}, r, false},
		{"quality", Filter{Quality: "1080p"}, r, true},
		{"protocol", Filter{Protocol: "torrent"}, r, false},
		{"language", Filter{Language: "english"}, r, true},
		{"custom format", Filter{CustomFormat: "HDR"}, r, false},
		{"approved only", Filter{ApprovedOnly: true}, rejected, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Match(tt.in))
		})
	}
}

func TestArrange(t *testing.T) {
	small := movieRelease("small", "a", "HDTV-720p", media.ProtocolUsenet)
	small.Size = 100
	big := movieRelease("big", "a", "Bluray-1080p", media.ProtocolUsenet)
	big.Size = 900
	torrent := movieRelease("torrent", "b", "Bluray-1080p", media.ProtocolTorrent)
	torrent.Size = 500
	results := []media.MovieRelease{small, big, torrent}

	got, err := Arrange(results, Filter{}, SortSize, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"big", "torrent", "small"}, keys(got))

	got, err = Arrange(results, Filter{Protocol: "usenet"}, SortSize, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"small", "big"}, keys(got))

	got, err = Arrange(results, Filter{}, SortWeight, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"small", "big", "torrent"}, keys(got), "server order")

	_, err = Arrange(results, Filter{}, "rating", false)
	assert.ErrorIs(t, err, ErrUnknownSort)
	assert.Equal(t, "small", results[0].GUID, "input is not reordered")
}

func keys[R media.ReleaseInfo](rs []R) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Key()
	}
	return out
}
