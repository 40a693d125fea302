package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-mvp/internal/docstore"
	"github.com/BruksfildServices01/barber-mvp/internal/httperr"
	"github.com/BruksfildServices01/barber-mvp/internal/models"
	ucBarber "github.com/BruksfildServices01/barber-mvp/internal/usecase/barber"
)

type BarberHandler struct {
	store        *docstore.Store
	addUC        *ucBarber.Add
	removeUC     *ucBarber.Remove
	setDefaultUC *ucBarber.SetDefault
}

func NewBarberHandler(
	store *docstore.Store,
	addUC *ucBarber.Add,
	removeUC *ucBarber.Remove,
	setDefaultUC *ucBarber.SetDefault,
) *BarberHandler {
	return &BarberHandler{
		store:        store,
		addUC:        addUC,
		removeUC:     removeUC,
		setDefaultUC: setDefaultUC,
	}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	var defaultID string
	h.store.View(c.Request.Context(), func(doc *models.Document) {
		barbers = append(barbers, doc.Barbers...)
		defaultID = doc.DefaultBarberID
	})

	c.JSON(http.StatusOK, gin.H{
		"data":            barbers,
		"total":           len(barbers),
		"defaultBarberId": defaultID,
	})
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	barber, err := h.addUC.Execute(c.Request.Context(), ucBarber.AddInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		httperr.BadRequest(c, "invalid_barber", "Informe o nome do barbeiro.")
		return
	}

	c.JSON(http.StatusCreated, barber)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	err := h.removeUC.Execute(c.Request.Context(), id)
	switch {
	case httperr.IsBusiness(err, "last_barber"):
		httperr.BadRequest(c, "last_barber", "Precisa ter pelo menos 1 barbeiro.")
		return
	case httperr.IsBusiness(err, "barber_not_found"):
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	case err != nil:
		httperr.Internal(c, "failed_to_remove_barber", "Erro ao remover barbeiro.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Barbeiro removido. Atendimentos reatribuídos."})
}

func (h *BarberHandler) SetDefault(c *gin.Context) {
	id := c.Param("id")

	if err := h.setDefaultUC.Execute(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "failed_to_set_default", "Erro ao definir barbeiro padrão.")
		return
	}

	var barbers []models.Barber
	var defaultID string
	h.store.View(c.Request.Context(), func(doc *models.Document) {
		barbers = append(barbers, doc.Barbers...)
		defaultID = doc.DefaultBarberID
	})

	c.JSON(http.StatusOK, gin.H{
		"data":            barbers,
		"defaultBarberId": defaultID,
	})
}
