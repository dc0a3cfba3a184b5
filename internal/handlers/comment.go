package handlers

import (
  "errors"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/skillhive/skillhive-backend/internal/services"
  "github.com/skillhive/skillhive-backend/internal/types"
)

type CommentHandler struct {
  commentService services.CommentService
}

func NewCommentHandler(commentService services.CommentService) *CommentHandler {
  return &CommentHandler{commentService: commentService}
}

func (ch *CommentHandler) Create(c *gin.Context) {
  var comment types.Comment
  if err := c.ShouldBindJSON(&comment); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  created, err := ch.commentService.Create(c.Request.Context(), &comment)
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusCreated, gin.H{"comment": created})
}

func (ch *CommentHandler) GetByPostID(c *gin.Context) {
  postID, err := uuid.Parse(c.Param("postId"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
    return
  }
  comments, err := ch.commentService.GetByPostID(c.Request.Context(), postID)
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func (ch *CommentHandler) Update(c *gin.Context) {
  id, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
    return
  }
  var body struct {
    CommentText string `json:"comment_text"`
  }
  if err := c.ShouldBindJSON(&body); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  comment, err := ch.commentService.Update(c.Request.Context(), id, body.CommentText)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
      return
    }
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"comment": comment})
}

func (ch *CommentHandler) Delete(c *gin.Context) {
  id, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
    return
  }
  if _, err := ch.commentService.Delete(c.Request.Context(), id); err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.Status(http.StatusNoContent)
}
