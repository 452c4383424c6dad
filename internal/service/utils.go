package service

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jukeboxd.com/m/v2/internal/spotify"
	"jukeboxd.com/m/v2/internal/store"
)

// writeError maps store errors onto HTTP statuses: missing documents to
// 404, bad requests to 400, failures of the backing services to 502.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound) || errors.Is(err, spotify.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case store.IsInvalidArgument(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		var ese *store.ExternalServiceError
		if errors.As(err, &ese) {
			logger.Error("Store operation failed",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Storage error"})
			return
		}
		var sae *spotify.APIError
		if errors.As(err, &sae) {
			logger.Error("Catalog request failed",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Catalog error"})
			return
		}
		logger.Error("Unhandled error",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func artistNames(artists []*spotify.Artist) []string {
	names := make([]string, len(artists))
	for i, artist := range artists {
		names[i] = artist.Name
	}
	return names
}

func imageURLs(images []spotify.Image) []string {
	urls := make([]string, len(images))
	for i, image := range images {
		urls[i] = image.URL
	}
	return urls
}

func convertSpotifyTrackToSong(track *spotify.Track) *store.Song {
	song := &store.Song{
		SongId:      track.Id,
		Name:        track.Name,
		ArtistNames: artistNames(track.Artists),
	}
	if track.Album != nil {
		song.AlbumId = track.Album.Id
		song.ImageURLs = imageURLs(track.Album.ImageURLs)
	}
	return song
}

func convertSpotifyAlbumToAlbum(album *spotify.Album) *store.Album {
	return &store.Album{
		AlbumId:     album.Id,
		Name:        album.Name,
		ArtistNames: artistNames(album.Artists),
		ReleaseDate: album.ReleaseDate,
		TotalTracks: album.TotalTracks,
		ImageURLs:   imageURLs(album.ImageURLs),
	}
}

func convertSpotifyArtistToArtist(artist *spotify.Artist) *store.Artist {
	return &store.Artist{
		ArtistId:  artist.Id,
		Name:      artist.Name,
		Genres:    artist.Genres,
		Followers: artist.Followers.Total,
		ImageURLs: imageURLs(artist.ImageURLs),
	}
}
