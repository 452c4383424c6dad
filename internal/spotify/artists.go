package spotify

import (
	"context"
	"fmt"
)

func GetArtist(ctx context.Context, id string) (*Artist, error) {
	url := fmt.Sprintf("%s/artists/%s", spotifyAPIURL, id)
	return getItem[Artist](ctx, url)
}
