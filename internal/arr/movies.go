package arr

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vmunix/arrsync/internal/media"
)

// Movies lists the Radarr library.
func (c *Client) Movies(ctx context.Context, inst Instance) ([]media.Movie, error) {
	return get[[]media.Movie](ctx, c, inst, "/movie", nil)
}

// Movie fetches one movie by library id.
func (c *Client) Movie(ctx context.Context, inst Instance, id int) (media.Movie, error) {
	return get[media.Movie](ctx, c, inst, "/movie/"+strconv.Itoa(id), nil)
}

// AddMovie adds a looked-up movie and returns the server's record.
func (c *Client) AddMovie(ctx context.Context, inst Instance, m media.Movie) (media.Movie, error) {
	return send[media.Movie](ctx, c, http.MethodPost, inst, "/movie", nil, m)
}

// PushMovie saves a movie and returns the server's record.
func (c *Client) PushMovie(ctx context.Context, inst Instance, m media.Movie) (media.Movie, error) {
	id, err := libraryID(m)
	if err != nil {
		return media.Movie{}, err
	}
	return send[media.Movie](ctx, c, http.MethodPut, inst, "/movie/"+strconv.Itoa(id), nil, m)
}

// UpdateMovie saves a movie, optionally moving its files to a new root folder.
func (c *Client) UpdateMovie(ctx context.Context, inst Instance, m media.Movie, moveFiles bool) error {
	id, err := libraryID(m)
	if err != nil {
		return err
	}
	var query url.Values
	if moveFiles {
		query = url.Values{"moveFiles": {"true"}}
	}
	return exec(ctx, c, http.MethodPut, inst, "/movie/"+strconv.Itoa(id), query, m)
}

// DeleteMovie removes a movie from the library.
func (c *Client) DeleteMovie(ctx context.Context, inst Instance, m media.Movie, addExclusion bool) error {
	id, err := libraryID(m)
	if err != nil {
		return err
	}
	query := url.Values{}
	if addExclusion {
		query.Set("addImportExclusion", "true")
	}
	return exec(ctx, c, http.MethodDelete, inst, "/movie/"+strconv.Itoa(id), query, nil)
}

// LookupMovies searches the catalog.
func (c *Client) LookupMovies(ctx context.Context, inst Instance, term string) ([]media.Movie, error) {
	return get[[]media.Movie](ctx, c, inst, "/movie/lookup", url.Values{"term": {term}})
}

// MovieReleases searches indexers for releases of a movie.
func (c *Client) MovieReleases(ctx context.Context, inst Instance, movieID int) ([]media.MovieRelease, error) {
	return get[[]media.MovieRelease](ctx, c, inst, "/release", url.Values{"movieId": {strconv.Itoa(movieID)}})
}

// MovieFiles lists the files of a movie.
func (c *Client) MovieFiles(ctx context.Context, inst Instance, movieID int) ([]media.MovieFile, error) {
	return get[[]media.MovieFile](ctx, c, inst, "/moviefile", url.Values{"movieId": {strconv.Itoa(movieID)}})
}

// DeleteMovieFile deletes a movie file from disk.
func (c *Client) DeleteMovieFile(ctx context.Context, inst Instance, fileID int) error {
	return exec(ctx, c, http.MethodDelete, inst, "/moviefile/"+strconv.Itoa(fileID), nil, nil)
}
