package spotify

import (
	"context"
	"fmt"
)

func GetTrack(ctx context.Context, id string) (*Track, error) {
	url := fmt.Sprintf("%s/tracks/%s", spotifyAPIURL, id)
	return getItem[Track](ctx, url)
}

func GetAlbumTracks(ctx context.Context, albumId string) ([]Track, error) {
	url := fmt.Sprintf("%s/albums/%s/tracks?limit=50", spotifyAPIURL, albumId)

	var allTracks []Track
	for url != "" {
		page, err := getItem[TracksPage](ctx, url)
		if err != nil {
			return nil, err
		}
		allTracks = append(allTracks, page.Items...)
		url = page.Next
	}
	return allTracks, nil
}
