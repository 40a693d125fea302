package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-mvp/internal/audit"
	"github.com/BruksfildServices01/barber-mvp/internal/docstore"
	"github.com/BruksfildServices01/barber-mvp/internal/models"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler é a superfície de autoatendimento: sem login, o cliente
// vê os serviços/barbeiros e deixa um pedido de agendamento. Só toca no
// documento via CreateSchedulingRequest — nunca lê ou muta o resto.
type PublicHandler struct {
	store *docstore.Store
	audit *audit.Dispatcher
}

func NewPublicHandler(store *docstore.Store, audit *audit.Dispatcher) *PublicHandler {
	return &PublicHandler{store: store, audit: audit}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateRequestRequest struct {
	ClientName    string `json:"client_name" binding:"required"`
	ClientPhone   string `json:"client_phone" binding:"required"`
	PreferredDate string `json:"preferred_date" binding:"required"` // YYYY-MM-DD
	PreferredTime string `json:"preferred_time" binding:"required"` // HH:mm

	ServiceID string `json:"service_id"`
	BarberID  string `json:"barber_id"`
	Notes     string `json:"notes"`
}

////////////////////////////////////////////////////////
// BOOKING INFO
////////////////////////////////////////////////////////

func (h *PublicHandler) BookingInfo(c *gin.Context) {
	var out gin.H
	h.store.View(c.Request.Context(), func(doc *models.Document) {
		out = gin.H{
			"barbershopName":  doc.BarbershopName,
			"services":        doc.Services,
			"barbers":         doc.Barbers,
			"defaultBarberId": doc.DefaultBarberID,
		}
	})

	c.JSON(http.StatusOK, out)
}

////////////////////////////////////////////////////////
// CREATE SCHEDULING REQUEST
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateRequest(c *gin.Context) {
	var req PublicCreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	in := docstore.RequestInput{
		ClientName:    strings.TrimSpace(req.ClientName),
		ClientPhone:   strings.TrimSpace(req.ClientPhone),
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Notes:         strings.TrimSpace(req.Notes),
	}
	if req.ServiceID != "" {
		in.ServiceID = &req.ServiceID
	}
	if req.BarberID != "" {
		in.BarberID = &req.BarberID
	}

	var created models.SchedulingRequest
	_ = h.store.Update(c.Request.Context(), func(doc *models.Document) error {
		created = *docstore.CreateSchedulingRequest(doc, in)
		return nil
	})

	h.audit.Dispatch(audit.Event{
		Action:   "scheduling_request_created",
		Entity:   "scheduling_request",
		EntityID: created.ID,
	})

	c.JSON(http.StatusCreated, created)
}
