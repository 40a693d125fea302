package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-mvp/internal/audit"
	"github.com/BruksfildServices01/barber-mvp/internal/docstore"
	"github.com/BruksfildServices01/barber-mvp/internal/httperr"
	"github.com/BruksfildServices01/barber-mvp/internal/httpresp"
	"github.com/BruksfildServices01/barber-mvp/internal/models"
)

type ServiceHandler struct {
	store *docstore.Store
	audit *audit.Dispatcher
}

func NewServiceHandler(store *docstore.Store, audit *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{store: store, audit: audit}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	h.store.View(c.Request.Context(), func(doc *models.Document) {
		services = append(services, doc.Services...)
	})

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Price < 0 {
		httperr.BadRequest(c, "invalid_price", "Preço deve ser zero ou positivo.")
		return
	}

	service := models.Service{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(req.Name),
		Price: req.Price,
	}

	_ = h.store.Update(c.Request.Context(), func(doc *models.Document) error {
		doc.Services = append(doc.Services, service)
		return nil
	})

	h.audit.Dispatch(audit.Event{
		Action:   "service_created",
		Entity:   "service",
		EntityID: service.ID,
	})

	c.JSON(http.StatusCreated, service)
}

// Delete remove o serviço sem cascata: atendimentos antigos mantêm o
// serviceId pendurado e a exibição cai para vazio (lacuna aceita).
func (h *ServiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	_ = h.store.Update(c.Request.Context(), func(doc *models.Document) error {
		services := doc.Services[:0]
		for i := range doc.Services {
			if doc.Services[i].ID != id {
				services = append(services, doc.Services[i])
			}
		}
		doc.Services = services
		return nil
	})

	h.audit.Dispatch(audit.Event{
		Action:   "service_removed",
		Entity:   "service",
		EntityID: id,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Serviço removido."})
}
