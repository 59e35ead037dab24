package handlers

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// WSHandler pousse les événements d'adhésion vers les tableaux de bord
// admin connectés, pour rafraîchir les compteurs en direct.
type WSHandler struct {
	M *melody.Melody
}

func NewWSHandler() *WSHandler {
	m := melody.New()

	m.Config.MaxMessageSize = 64 * 1024

	// Keep-alive pour les hébergements cloud qui coupent les
	// connexions inactives.
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	m.HandleDisconnect(func(s *melody.Session) {
		log.Printf("🔌 Dashboard disconnected")
	})

	m.HandleError(func(s *melody.Session, err error) {
		log.Printf("❌ WebSocket Error: %v", err)
	})

	return &WSHandler{M: m}
}

// HandleWS upgrade la connexion du tableau de bord.
func (h *WSHandler) HandleWS(c *gin.Context) {
	if err := h.M.HandleRequest(c.Writer, c.Request); err != nil {
		log.Printf("❌ Failed to upgrade websocket: %v", err)
	}
}

type registrationEvent struct {
	Type             string `json:"type"`
	MembershipNumber string `json:"membership_number"`
	Department       string `json:"department"`
}

// BroadcastRegistration signale une nouvelle adhésion à tous les
// tableaux de bord connectés. Pas d'identité dans le message.
func (h *WSHandler) BroadcastRegistration(membershipNumber, department string) {
	msg, err := json.Marshal(registrationEvent{
		Type:             "registration",
		MembershipNumber: membershipNumber,
		Department:       department,
	})
	if err != nil {
		return
	}

	if err := h.M.Broadcast(msg); err != nil {
		log.Printf("⚠️ Error broadcasting registration: %v", err)
	}
}
