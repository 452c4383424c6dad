package store

import (
	"context"

	"go.uber.org/zap"
)

// SaveSong caches a catalog song document. Aggregates are only written
// on first materialization so a re-save cannot clobber review counts.
func (s *Store) SaveSong(ctx context.Context, song *Song) error {
	if song.SongId == "" {
		return invalidArgf("missing song id")
	}
	_, err := s.client.Collection(songsCollection).Doc(song.SongId).Create(ctx, song)
	if err != nil {
		if isAlreadyExists(err) {
			// Lost a materialization race, the cached copy wins.
			logger.Debug("Song already cached", zap.String("songId", song.SongId))
			return nil
		}
		return wrapStoreErr("save song", err)
	}
	return nil
}

func (s *Store) GetSong(ctx context.Context, songId string) (*Song, error) {
	var song Song
	if err := s.getDoc(ctx, songsCollection, songId, &song); err != nil {
		return nil, err
	}
	return &song, nil
}
