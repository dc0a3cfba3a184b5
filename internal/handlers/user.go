package handlers

import (
  "encoding/json"
  "errors"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/skillhive/skillhive-backend/internal/services"
  "github.com/skillhive/skillhive-backend/internal/types"
)

type UserHandler struct {
  userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
  return &UserHandler{userService: userService}
}

// Create accepts multipart form data: a "user" part holding the user JSON
// and an optional "profilePicture" file part.
func (uh *UserHandler) Create(c *gin.Context) {
  userJSON := c.PostForm("user")
  if userJSON == "" {
    c.JSON(http.StatusBadRequest, gin.H{"error": "missing user form field"})
    return
  }
  var user types.User
  if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }

  var created *types.User
  fileHeader, fErr := c.FormFile("profilePicture")
  if fErr == nil && fileHeader != nil {
    file, err := fileHeader.Open()
    if err != nil {
      c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
      return
    }
    defer file.Close()
    created, fErr = uh.userService.Create(c.Request.Context(), &user, file, fileHeader.Filename)
  } else {
    created, fErr = uh.userService.Create(c.Request.Context(), &user, nil, "")
  }
  if fErr != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": fErr.Error()})
    return
  }
  c.JSON(http.StatusCreated, gin.H{"user": created})
}

func (uh *UserHandler) GetAll(c *gin.Context) {
  users, err := uh.userService.GetAll(c.Request.Context())
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"users": users})
}

func (uh *UserHandler) GetByID(c *gin.Context) {
  id, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
    return
  }
  user, err := uh.userService.GetByID(c.Request.Context(), id)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
      return
    }
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"user": user})
}

func (uh *UserHandler) Update(c *gin.Context) {
  id, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
    return
  }
  var body types.User
  if err := c.ShouldBindJSON(&body); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  user, err := uh.userService.Update(c.Request.Context(), id, &body)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
      return
    }
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"user": user})
}

func (uh *UserHandler) Delete(c *gin.Context) {
  id, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
    return
  }
  if _, err := uh.userService.Delete(c.Request.Context(), id); err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.Status(http.StatusNoContent)
}

func (uh *UserHandler) Follow(c *gin.Context) {
  followerID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
    return
  }
  followeeID, err := uuid.Parse(c.Param("targetId"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid target id"})
    return
  }
  followed, err := uh.userService.Follow(c.Request.Context(), followerID, followeeID)
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"followed": followed})
}

func (uh *UserHandler) Unfollow(c *gin.Context) {
  followerID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
    return
  }
  followeeID, err := uuid.Parse(c.Param("targetId"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid target id"})
    return
  }
  if err := uh.userService.Unfollow(c.Request.Context(), followerID, followeeID); err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.Status(http.StatusNoContent)
}

func (uh *UserHandler) GetFollowers(c *gin.Context) {
  id, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
    return
  }
  followers, err := uh.userService.GetFollowers(c.Request.Context(), id)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
      return
    }
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"users": followers})
}

func (uh *UserHandler) GetFollowing(c *gin.Context) {
  id, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
    return
  }
  following, err := uh.userService.GetFollowing(c.Request.Context(), id)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
      return
    }
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"users": following})
}

func (uh *UserHandler) UpdateSkills(c *gin.Context) {
  id, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
    return
  }
  var body struct {
    Skills []string `json:"skills"`
  }
  if err := c.ShouldBindJSON(&body); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  user, err := uh.userService.UpdateSkills(c.Request.Context(), id, body.Skills)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
      return
    }
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"user": user})
}

func (uh *UserHandler) GetSuggestions(c *gin.Context) {
  id, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
    return
  }
  suggestions, err := uh.userService.SuggestBySkills(c.Request.Context(), id)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
      return
    }
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"users": suggestions})
}
