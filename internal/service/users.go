package service

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jukeboxd.com/m/v2/internal/store"
)

type createUserRequest struct {
	Username       string `json:"username" binding:"required"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture"`
	Bio            string `json:"bio"`
}

// CreateUser materializes a profile for the authenticated uid. Called by
// the frontend right after sign-up completes.
func (h *Handler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid body: " + err.Error()})
		return
	}

	user := &store.User{
		UserId:         callerUid(c),
		Username:       req.Username,
		Email:          req.Email,
		ProfilePicture: req.ProfilePicture,
		Bio:            req.Bio,
	}
	if err := h.store.SaveUser(c.Request.Context(), user); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.store.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// updateProfileRequest uses pointer fields so a client can distinguish
// "leave this field alone" (absent) from "clear it" (explicit "").
type updateProfileRequest struct {
	Bio            *string `json:"bio"`
	ProfilePicture *string `json:"profilePicture"`
}

func (h *Handler) UpdateMe(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid body: " + err.Error()})
		return
	}

	if err := h.store.UpdateProfile(c.Request.Context(), callerUid(c), req.Bio, req.ProfilePicture); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, Message{Status: "success", Message: "Profile updated"})
}

func (h *Handler) FollowUser(c *gin.Context) {
	if err := h.store.Follow(c.Request.Context(), callerUid(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	metrics.FollowUpdates.Inc()
	c.JSON(http.StatusOK, Message{Status: "success", Message: "Followed"})
}

func (h *Handler) UnfollowUser(c *gin.Context) {
	if err := h.store.Unfollow(c.Request.Context(), callerUid(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	metrics.FollowUpdates.Inc()
	c.JSON(http.StatusOK, Message{Status: "success", Message: "Unfollowed"})
}

func (h *Handler) ToggleBookmark(c *gin.Context) {
	bookmarked, err := h.store.ToggleBookmark(c.Request.Context(), callerUid(c), c.Param("songId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarked": bookmarked})
}

func (h *Handler) UserReviews(c *gin.Context) {
	reviews, err := h.store.ReviewsByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
