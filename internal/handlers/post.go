package handlers

import (
  "errors"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/skillhive/skillhive-backend/internal/services"
)

type PostHandler struct {
  postService services.PostService
}

func NewPostHandler(postService services.PostService) *PostHandler {
  return &PostHandler{postService: postService}
}

// Create accepts multipart form data: "userId", "description" and any number
// of "files" parts.
func (ph *PostHandler) Create(c *gin.Context) {
  userID, err := uuid.Parse(c.PostForm("userId"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid userId"})
    return
  }
  description := c.PostForm("description")

  form, err := c.MultipartForm()
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  fileHeaders := form.File["files"]
  media := make([]services.PostMedia, 0, len(fileHeaders))
  for _, fh := range fileHeaders {
    file, oErr := fh.Open()
    if oErr != nil {
      c.JSON(http.StatusBadRequest, gin.H{"error": oErr.Error()})
      return
    }
    defer file.Close()
    media = append(media, services.PostMedia{
      Filename:    fh.Filename,
      ContentType: fh.Header.Get("Content-Type"),
      Content:     file,
    })
  }

  post, err := ph.postService.Create(c.Request.Context(), userID, description, media)
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusCreated, gin.H{"post": post})
}

func (ph *PostHandler) GetAll(c *gin.Context) {
  posts, err := ph.postService.GetAll(c.Request.Context())
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (ph *PostHandler) GetByID(c *gin.Context) {
  id, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
    return
  }
  post, err := ph.postService.GetByID(c.Request.Context(), id)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
      return
    }
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"post": post})
}

func (ph *PostHandler) Update(c *gin.Context) {
  id, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
    return
  }
  var body struct {
    Description string `json:"description"`
  }
  if err := c.ShouldBindJSON(&body); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  post, err := ph.postService.UpdateDescription(c.Request.Context(), id, body.Description)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
      return
    }
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"post": post})
}

func (ph *PostHandler) SearchByHashtag(c *gin.Context) {
  posts, err := ph.postService.SearchByHashtag(c.Request.Context(), c.Param("tag"))
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (ph *PostHandler) Delete(c *gin.Context) {
  id, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
    return
  }
  if _, err := ph.postService.Delete(c.Request.Context(), id); err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.Status(http.StatusNoContent)
}
