package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-mvp/internal/docstore"
	"github.com/BruksfildServices01/barber-mvp/internal/httperr"
	"github.com/BruksfildServices01/barber-mvp/internal/models"
)

type BarbershopHandler struct {
	store *docstore.Store
}

func NewBarbershopHandler(store *docstore.Store) *BarbershopHandler {
	return &BarbershopHandler{store: store}
}

type UpdateBarbershopRequest struct {
	Name *string `json:"name"`
}

// ======================================================
// OVERVIEW (nome + badges da navegação)
// ======================================================
func (h *BarbershopHandler) Overview(c *gin.Context) {
	var out gin.H
	h.store.View(c.Request.Context(), func(doc *models.Document) {
		out = gin.H{
			"barbershopName":  doc.BarbershopName,
			"pendingRequests": docstore.CountPendingRequests(doc),
			"newRequests":     docstore.CountNewRequests(doc),
		}
	})

	c.JSON(http.StatusOK, out)
}

// ======================================================
// RENOMEAR BARBEARIA
// ======================================================
func (h *BarbershopHandler) Update(c *gin.Context) {
	var req UpdateBarbershopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		httperr.BadRequest(c, "invalid_name", "Informe o nome da barbearia.")
		return
	}

	var out gin.H
	_ = h.store.Update(c.Request.Context(), func(doc *models.Document) error {
		doc.BarbershopName = strings.TrimSpace(*req.Name)
		out = gin.H{"barbershopName": doc.BarbershopName}
		return nil
	})

	c.JSON(http.StatusOK, out)
}
