package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vmunix/arrsync/internal/media"
)

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"The Matrix", "matrix"},
		{"Léon: The Professional", "leon professional"},
		{"Fast & Furious", "fast and furious"},
		{"Spider-Man: No Way Home", "spider man no way home"},
		{"  A  Quiet   Place ", "quiet place"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanTitle(tt.in))
		})
	}
}

func TestNormalizeTerm(t *testing.T) {
	assert.Equal(t, "Law and Order", normalizeTerm("  Law &   Order "))
	assert.Equal(t, "", normalizeTerm(" \t "))
}

func TestSimilarity_SequenceNumbers(t *testing.T) {
	term := cleanTitle("Alien 3")
	assert.Greater(t, similarity(term, "Alien 3"), similarity(term, "Alien 2"))
	assert.Greater(t, similarity(term, "Alien 2"), similarity(term, "Alien")*0.9)
	assert.InDelta(t, 1.0, similarity(cleanTitle("The Matrix"), "Matrix"), 0.0001)
}

func TestRank(t *testing.T) {
	items := []media.Movie{
		{TMDBID: 1, Title: "The Batman"},
		{TMDBID: 2, Title: "Heat"},
		{TMDBID: 3, Title: "Heat 2"},
		{TMDBID: 4, Title: "Batman"},
	}

	got := rank(items, "heat")
	assert.Equal(t, 2, got[0].TMDBID)
	assert.Len(t, got, 4)

	got = rank(items, "batman")
	assert.ElementsMatch(t, []int{1, 4}, []int{got[0].TMDBID, got[1].TMDBID})
	assert.Equal(t, 1, got[0].TMDBID, "equal scores keep server order")

	assert.Equal(t, items, rank(items, "  "))
}
