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

type PlanHandler struct {
  planService services.PlanService
}

func NewPlanHandler(planService services.PlanService) *PlanHandler {
  return &PlanHandler{planService: planService}
}

func (ph *PlanHandler) Create(c *gin.Context) {
  var plan types.LearningPlan
  if err := c.ShouldBindJSON(&plan); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  created, err := ph.planService.Create(c.Request.Context(), &plan)
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusCreated, gin.H{"plan": created})
}

func (ph *PlanHandler) GetAll(c *gin.Context) {
  plans, err := ph.planService.GetAll(c.Request.Context())
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"plans": plans})
}

func (ph *PlanHandler) GetByID(c *gin.Context) {
  id, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
    return
  }
  plan, err := ph.planService.GetByID(c.Request.Context(), id)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
      return
    }
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"plan": plan})
}

func (ph *PlanHandler) GetByUserAndProgressName(c *gin.Context) {
  userID, err := uuid.Parse(c.Param("userId"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
    return
  }
  plans, err := ph.planService.GetByUserAndProgressName(c.Request.Context(), userID, c.Param("progressName"))
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"plans": plans})
}

func (ph *PlanHandler) GetLatest(c *gin.Context) {
  userID, err := uuid.Parse(c.Param("userId"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
    return
  }
  plan, err := ph.planService.GetLatest(c.Request.Context(), userID, c.Param("progressName"))
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
      return
    }
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"plan": plan})
}

func (ph *PlanHandler) Update(c *gin.Context) {
  id, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
    return
  }
  var body types.LearningPlan
  if err := c.ShouldBindJSON(&body); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  plan, err := ph.planService.Update(c.Request.Context(), id, &body)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
      return
    }
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"plan": plan})
}

func (ph *PlanHandler) UpdateCompleted(c *gin.Context) {
  progressName := c.Param("progressName")
  if progressName == "" {
    c.JSON(http.StatusBadRequest, gin.H{"error": "missing progressName"})
    return
  }
  if err := ph.planService.UpdateIsCompletedForPlans(c.Request.Context(), progressName); err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.Status(http.StatusOK)
}

func (ph *PlanHandler) Delete(c *gin.Context) {
  id, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
    return
  }
  if _, err := ph.planService.Delete(c.Request.Context(), id); err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.Status(http.StatusNoContent)
}
