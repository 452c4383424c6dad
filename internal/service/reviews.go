package service

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jukeboxd.com/m/v2/internal/store"
)

type createReviewRequest struct {
	TargetType string  `json:"targetType" binding:"required"`
	TargetId   string  `json:"targetId" binding:"required"`
	Rating     float64 `json:"rating" binding:"required"`
	Text       string  `json:"text"`
}

// CreateReview posts a review for a song or album. The target is
// materialized from Spotify on first reference, then the review and the
// target's aggregates are written in one transaction.
func (h *Handler) CreateReview(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid body: " + err.Error()})
		return
	}

	targetType := store.TargetType(req.TargetType)
	ctx := c.Request.Context()

	var err error
	switch targetType {
	case store.TargetSong:
		_, err = h.ensureSong(ctx, req.TargetId)
	case store.TargetAlbum:
		_, err = h.ensureAlbum(ctx, req.TargetId)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "targetType must be song or album"})
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}

	review, err := h.store.CreateReview(ctx, callerUid(c), targetType, req.TargetId, req.Rating, req.Text)
	if err != nil {
		writeError(c, err)
		return
	}
	metrics.ReviewsCreated.Inc()
	c.JSON(http.StatusCreated, review)
}

func (h *Handler) GetReview(c *gin.Context) {
	review, err := h.store.GetReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

type reactionRequest struct {
	Reaction string `json:"reaction" binding:"required"`
}

// SetReaction moves the caller's like/dislike toggle on a review.
func (h *Handler) SetReaction(c *gin.Context) {
	var req reactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid body: " + err.Error()})
		return
	}

	reaction, err := store.ParseReaction(req.Reaction)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := h.store.SetReaction(c.Request.Context(), c.Param("id"), callerUid(c), reaction); err != nil {
		writeError(c, err)
		return
	}
	metrics.ReactionsApplied.Inc()
	c.JSON(http.StatusOK, Message{Status: "success", Message: "Reaction updated"})
}

type createCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

func (h *Handler) CreateComment(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid body: " + err.Error()})
		return
	}

	comment, err := h.store.AddComment(c.Request.Context(), c.Param("id"), callerUid(c), req.Text)
	if err != nil {
		writeError(c, err)
		return
	}
	metrics.CommentsCreated.Inc()
	c.JSON(http.StatusCreated, comment)
}

func (h *Handler) ReviewComments(c *gin.Context) {
	comments, err := h.store.Comments(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// Feed returns reviews authored by users the caller follows, newest
// first. An empty following set produces an empty list.
func (h *Handler) Feed(c *gin.Context) {
	reviews, err := h.store.FriendReviews(c.Request.Context(), callerUid(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
