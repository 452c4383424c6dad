package store

import (
	"context"

	"go.uber.org/zap"
)

// SaveAlbum caches a catalog album document, first writer wins.
func (s *Store) SaveAlbum(ctx context.Context, album *Album) error {
	if album.AlbumId == "" {
		return invalidArgf("missing album id")
	}
	_, err := s.client.Collection(albumsCollection).Doc(album.AlbumId).Create(ctx, album)
	if err != nil {
		if isAlreadyExists(err) {
			logger.Debug("Album already cached", zap.String("albumId", album.AlbumId))
			return nil
		}
		return wrapStoreErr("save album", err)
	}
	return nil
}

func (s *Store) GetAlbum(ctx context.Context, albumId string) (*Album, error) {
	var album Album
	if err := s.getDoc(ctx, albumsCollection, albumId, &album); err != nil {
		return nil, err
	}
	return &album, nil
}
