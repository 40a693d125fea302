package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-mvp/internal/docstore"
	"github.com/BruksfildServices01/barber-mvp/internal/httperr"
	"github.com/BruksfildServices01/barber-mvp/internal/httpresp"
	"github.com/BruksfildServices01/barber-mvp/internal/models"
	"github.com/BruksfildServices01/barber-mvp/internal/stats"
	"github.com/BruksfildServices01/barber-mvp/internal/timezone"
	ucClient "github.com/BruksfildServices01/barber-mvp/internal/usecase/client"
)

type ClientHandler struct {
	store    *docstore.Store
	addUC    *ucClient.Add
	removeUC *ucClient.Remove
	tz       string
}

func NewClientHandler(
	store *docstore.Store,
	addUC *ucClient.Add,
	removeUC *ucClient.Remove,
	tz string,
) *ClientHandler {
	return &ClientHandler{
		store:    store,
		addUC:    addUC,
		removeUC: removeUC,
		tz:       tz,
	}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

// --------- Handlers ---------

// ======================================================
// LIST CLIENTS (com busca por nome/telefone)
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	var clients []models.Client
	h.store.View(c.Request.Context(), func(doc *models.Document) {
		for i := range doc.Clients {
			cl := &doc.Clients[i]
			if query != "" &&
				!strings.Contains(strings.ToLower(cl.Name), query) &&
				!strings.Contains(strings.ToLower(cl.Phone), query) {
				continue
			}
			clients = append(clients, *cl)
		}
	})

	httpresp.List(c, clients)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	client, err := h.addUC.Execute(c.Request.Context(), ucClient.AddInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		httperr.BadRequest(c, "invalid_client", "Informe o nome do cliente.")
		return
	}

	c.JSON(http.StatusCreated, client)
}

// Delete remove o cliente e os atendimentos dele em cascata.
func (h *ClientHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.removeUC.Execute(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "failed_to_remove_client", "Erro ao remover cliente.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cliente removido."})
}

// ======================================================
// RELATÓRIO "ÚLTIMO CORTE"
// ======================================================
func (h *ClientHandler) LastVisitReport(c *gin.Context) {
	now := timezone.NowIn(h.tz)

	var report []stats.ClientVisit
	h.store.View(c.Request.Context(), func(doc *models.Document) {
		report = stats.ClientsLastVisit(doc.Clients, now)
	})

	httpresp.List(c, report)
}
