package service

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the API. requireAuth guards every mutating or
// me-scoped route; read-only catalog and profile reads stay public.
func RegisterRoutes(router *gin.Engine, h *Handler, requireAuth gin.HandlerFunc) {
	router.GET("/", h.Home)
	router.GET("/health", h.Health)

	v1 := router.Group("/api/v1")

	v1.GET("/search", h.Search)
	v1.GET("/songs/:id", h.GetSong)
	v1.GET("/albums/:id", h.GetAlbum)
	v1.GET("/albums/:id/tracks", h.GetAlbumTracks)
	v1.GET("/artists/:id", h.GetArtist)
	v1.GET("/users/:id", h.GetUser)
	v1.GET("/users/:id/reviews", h.UserReviews)
	v1.GET("/reviews/:id", h.GetReview)
	v1.GET("/reviews/:id/comments", h.ReviewComments)

	authed := v1.Group("", requireAuth)

	authed.POST("/users", h.CreateUser)
	authed.PATCH("/me", h.UpdateMe)
	authed.POST("/me/bookmarks/:songId", h.ToggleBookmark)
	authed.POST("/users/:id/follow", h.FollowUser)
	authed.DELETE("/users/:id/follow", h.UnfollowUser)
	authed.POST("/reviews", h.CreateReview)
	authed.PUT("/reviews/:id/reaction", h.SetReaction)
	authed.POST("/reviews/:id/comments", h.CreateComment)
	authed.GET("/feed", h.Feed)
}
