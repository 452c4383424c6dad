package spotify

import (
	"context"
	"fmt"
)

func GetAlbum(ctx context.Context, id string) (*Album, error) {
	url := fmt.Sprintf("%s/albums/%s", spotifyAPIURL, id)
	return getItem[Album](ctx, url)
}
