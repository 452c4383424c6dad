package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jukeboxd.com/m/v2/internal/spotify"
	"jukeboxd.com/m/v2/internal/store"
)

// ensureSong resolves a song cache-aside: the stored copy if present,
// else fetched from Spotify and cached.
func (h *Handler) ensureSong(ctx context.Context, songId string) (*store.Song, error) {
	song, err := h.store.GetSong(ctx, songId)
	if err == nil {
		metrics.CatalogCacheHits.Inc()
		return song, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	metrics.CatalogCacheMisses.Inc()
	track, err := spotify.GetTrack(ctx, songId)
	if err != nil {
		metrics.CatalogErrors.Inc()
		return nil, err
	}
	song = convertSpotifyTrackToSong(track)
	if err := h.store.SaveSong(ctx, song); err != nil {
		return nil, err
	}
	logger.Debug("Materialized song from catalog", zap.String("songId", songId))
	return song, nil
}

func (h *Handler) ensureAlbum(ctx context.Context, albumId string) (*store.Album, error) {
	album, err := h.store.GetAlbum(ctx, albumId)
	if err == nil {
		metrics.CatalogCacheHits.Inc()
		return album, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	metrics.CatalogCacheMisses.Inc()
	spotifyAlbum, err := spotify.GetAlbum(ctx, albumId)
	if err != nil {
		metrics.CatalogErrors.Inc()
		return nil, err
	}
	album = convertSpotifyAlbumToAlbum(spotifyAlbum)
	if err := h.store.SaveAlbum(ctx, album); err != nil {
		return nil, err
	}
	logger.Debug("Materialized album from catalog", zap.String("albumId", albumId))
	return album, nil
}

func (h *Handler) ensureArtist(ctx context.Context, artistId string) (*store.Artist, error) {
	artist, err := h.store.GetArtist(ctx, artistId)
	if err == nil {
		metrics.CatalogCacheHits.Inc()
		return artist, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	metrics.CatalogCacheMisses.Inc()
	spotifyArtist, err := spotify.GetArtist(ctx, artistId)
	if err != nil {
		metrics.CatalogErrors.Inc()
		return nil, err
	}
	artist = convertSpotifyArtistToArtist(spotifyArtist)
	if err := h.store.SaveArtist(ctx, artist); err != nil {
		return nil, err
	}
	logger.Debug("Materialized artist from catalog", zap.String("artistId", artistId))
	return artist, nil
}

// Search proxies catalog search for tracks, albums, or artists.
func (h *Handler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing q"})
		return
	}
	entityType := c.DefaultQuery("type", "track")

	ctx := c.Request.Context()
	switch entityType {
	case "track":
		tracks, err := spotify.SearchTracks(ctx, query)
		if err != nil {
			metrics.CatalogErrors.Inc()
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"tracks": tracks})
	case "album":
		albums, err := spotify.SearchAlbums(ctx, query)
		if err != nil {
			metrics.CatalogErrors.Inc()
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"albums": albums})
	case "artist":
		artists, err := spotify.SearchArtists(ctx, query)
		if err != nil {
			metrics.CatalogErrors.Inc()
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"artists": artists})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be track, album or artist"})
	}
}

// GetSong returns the song with its reviews and the average rating
// derived from the running score sum.
func (h *Handler) GetSong(c *gin.Context) {
	ctx := c.Request.Context()
	song, err := h.ensureSong(ctx, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	reviews, err := h.store.ReviewsForTarget(ctx, store.TargetSong, song.SongId)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"song":          song,
		"averageRating": song.AverageScore(),
		"reviews":       reviews,
	})
}

func (h *Handler) GetAlbum(c *gin.Context) {
	ctx := c.Request.Context()
	album, err := h.ensureAlbum(ctx, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	reviews, err := h.store.ReviewsForTarget(ctx, store.TargetAlbum, album.AlbumId)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"album":         album,
		"averageRating": album.AverageScore(),
		"reviews":       reviews,
	})
}

func (h *Handler) GetAlbumTracks(c *gin.Context) {
	tracks, err := spotify.GetAlbumTracks(c.Request.Context(), c.Param("id"))
	if err != nil {
		metrics.CatalogErrors.Inc()
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tracks": tracks})
}

func (h *Handler) GetArtist(c *gin.Context) {
	artist, err := h.ensureArtist(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"artist": artist})
}
