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

type ProgressHandler struct {
  progressService services.ProgressService
}

func NewProgressHandler(progressService services.ProgressService) *ProgressHandler {
  return &ProgressHandler{progressService: progressService}
}

func (ph *ProgressHandler) Create(c *gin.Context) {
  var record types.LearningProgress
  if err := c.ShouldBindJSON(&record); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  created, err := ph.progressService.Create(c.Request.Context(), &record)
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusCreated, gin.H{"progress": created})
}

func (ph *ProgressHandler) GetAll(c *gin.Context) {
  records, err := ph.progressService.GetAll(c.Request.Context())
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"progress": records})
}

func (ph *ProgressHandler) GetByUserID(c *gin.Context) {
  userID, err := uuid.Parse(c.Param("userId"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
    return
  }
  records, err := ph.progressService.GetByUserID(c.Request.Context(), userID)
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"progress": records})
}

func (ph *ProgressHandler) GetLatest(c *gin.Context) {
  userID, err := uuid.Parse(c.Param("userId"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
    return
  }
  record, err := ph.progressService.GetLatest(c.Request.Context(), userID, c.Param("progressName"))
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      c.JSON(http.StatusNotFound, gin.H{"error": "progress not found"})
      return
    }
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"progress": record})
}

func (ph *ProgressHandler) CheckDuplicate(c *gin.Context) {
  userID, err := uuid.Parse(c.Query("userId"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid userId"})
    return
  }
  progressName := c.Query("progressName")
  if progressName == "" {
    c.JSON(http.StatusBadRequest, gin.H{"error": "missing progressName"})
    return
  }
  exists, err := ph.progressService.CheckDuplicate(c.Request.Context(), userID, progressName)
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"exists": exists})
}

func (ph *ProgressHandler) Update(c *gin.Context) {
  id, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid progress id"})
    return
  }
  var body types.LearningProgress
  if err := c.ShouldBindJSON(&body); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  record, err := ph.progressService.Update(c.Request.Context(), id, &body)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      c.JSON(http.StatusNotFound, gin.H{"error": "progress not found"})
      return
    }
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"progress": record})
}

func (ph *ProgressHandler) Delete(c *gin.Context) {
  id, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid progress id"})
    return
  }
  if err := ph.progressService.Delete(c.Request.Context(), id); err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.Status(http.StatusNoContent)
}
