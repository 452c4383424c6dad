package spotify

import (
	"context"
	"fmt"
	"net/url"
)

const searchLimit = 20

func search(ctx context.Context, query string, entityType string) (*SearchResponse, error) {
	apiURL := fmt.Sprintf("%s/search?q=%s&type=%s&limit=%d",
		spotifyAPIURL, url.QueryEscape(query), entityType, searchLimit)
	return getItem[SearchResponse](ctx, apiURL)
}

func SearchTracks(ctx context.Context, query string) ([]Track, error) {
	response, err := search(ctx, query, "track")
	if err != nil {
		return nil, err
	}
	if response.Tracks == nil {
		return nil, nil
	}
	return response.Tracks.Items, nil
}

func SearchAlbums(ctx context.Context, query string) ([]Album, error) {
	response, err := search(ctx, query, "album")
	if err != nil {
		return nil, err
	}
	if response.Albums == nil {
		return nil, nil
	}
	return response.Albums.Items, nil
}

func SearchArtists(ctx context.Context, query string) ([]Artist, error) {
	response, err := search(ctx, query, "artist")
	if err != nil {
		return nil, err
	}
	if response.Artists == nil {
		return nil, nil
	}
	return response.Artists.Items, nil
}
