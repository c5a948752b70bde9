package lobby

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// POST /lobby/join (player id comes from the JWT middleware)
func (h *Handler) Join(c *gin.Context) {
	playerID := c.GetString("playerID")
	if playerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	match, queued, err := h.svc.Join(c.Request.Context(), playerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if queued {
		c.JSON(http.StatusOK, JoinResponse{Queued: true})
		return
	}
	c.JSON(http.StatusOK, JoinResponse{
		Queued: false, RoomID: match.RoomID, Players: match.Players,
	})
}

// POST /lobby/cancel
func (h *Handler) Cancel(c *gin.Context) {
	playerID := c.GetString("playerID")
	if playerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	if err := h.svc.Cancel(c.Request.Context(), playerID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
