package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/skillhive/skillhive-backend/internal/logger"
  "github.com/skillhive/skillhive-backend/internal/requestdata"
  "github.com/skillhive/skillhive-backend/internal/sse"
)

type SSEHandler struct {
  log *logger.Logger
  hub *sse.SSEHub
}

func NewSSEHandler(log *logger.Logger, hub *sse.SSEHub) *SSEHandler {
  return &SSEHandler{log: log.With("handler", "SSEHandler"), hub: hub}
}

// Stream subscribes the authenticated user to their notification channel and
// holds the connection open until the client disconnects.
func (sh *SSEHandler) Stream(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil || rd.UserID == uuid.Nil {
    c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})
    return
  }
  client := sh.hub.NewSSEClient(rd.UserID)
  sh.hub.AddChannel(client, sse.UserChannel(rd.UserID))
  defer sh.hub.CloseClient(client)
  sh.hub.ServeHTTP(c.Writer, c.Request, client)
}
