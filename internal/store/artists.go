package store

import (
	"context"

	"go.uber.org/zap"
)

// SaveArtist caches a catalog artist document, first writer wins.
func (s *Store) SaveArtist(ctx context.Context, artist *Artist) error {
	if artist.ArtistId == "" {
		return invalidArgf("missing artist id")
	}
	_, err := s.client.Collection(artistsCollection).Doc(artist.ArtistId).Create(ctx, artist)
	if err != nil {
		if isAlreadyExists(err) {
			logger.Debug("Artist already cached", zap.String("artistId", artist.ArtistId))
			return nil
		}
		return wrapStoreErr("save artist", err)
	}
	return nil
}

func (s *Store) GetArtist(ctx context.Context, artistId string) (*Artist, error) {
	var artist Artist
	if err := s.getDoc(ctx, artistsCollection, artistId, &artist); err != nil {
		return nil, err
	}
	return &artist, nil
}
