package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/skillhive/skillhive-backend/internal/services"
  "github.com/skillhive/skillhive-backend/internal/types"
)

type LikeHandler struct {
  likeService services.LikeService
}

func NewLikeHandler(likeService services.LikeService) *LikeHandler {
  return &LikeHandler{likeService: likeService}
}

func (lh *LikeHandler) Create(c *gin.Context) {
  var like types.Like
  if err := c.ShouldBindJSON(&like); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  created, err := lh.likeService.Create(c.Request.Context(), &like)
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusCreated, gin.H{"like": created})
}

func (lh *LikeHandler) GetByPostID(c *gin.Context) {
  postID, err := uuid.Parse(c.Param("postId"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
    return
  }
  likes, err := lh.likeService.GetByPostID(c.Request.Context(), postID)
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"likes": likes})
}

func (lh *LikeHandler) CountByPostID(c *gin.Context) {
  postID, err := uuid.Parse(c.Param("postId"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
    return
  }
  count, err := lh.likeService.CountByPostID(c.Request.Context(), postID)
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"count": count})
}

func (lh *LikeHandler) Delete(c *gin.Context) {
  id, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid like id"})
    return
  }
  if _, err := lh.likeService.Delete(c.Request.Context(), id); err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.Status(http.StatusNoContent)
}
