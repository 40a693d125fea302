package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-mvp/internal/audit"
	"github.com/BruksfildServices01/barber-mvp/internal/docstore"
	"github.com/BruksfildServices01/barber-mvp/internal/domain/request"
	"github.com/BruksfildServices01/barber-mvp/internal/format"
	"github.com/BruksfildServices01/barber-mvp/internal/httperr"
	"github.com/BruksfildServices01/barber-mvp/internal/httpresp"
	"github.com/BruksfildServices01/barber-mvp/internal/models"
	"github.com/BruksfildServices01/barber-mvp/internal/stats"
	"github.com/BruksfildServices01/barber-mvp/internal/timezone"
)

// RequestHandler é a caixa de entrada de pedidos de agendamento do
// painel: filtrar, marcar visto, mudar status, reativar.
type RequestHandler struct {
	store *docstore.Store
	audit *audit.Dispatcher
	tz    string
}

func NewRequestHandler(store *docstore.Store, audit *audit.Dispatcher, tz string) *RequestHandler {
	return &RequestHandler{store: store, audit: audit, tz: tz}
}

// --------- Requests / Responses ---------

type UpdateRequestStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// RequestView anexa o rótulo relativo de criação ("5min atrás", "ontem")
// usado pela listagem da caixa de entrada.
type RequestView struct {
	models.SchedulingRequest

	CreatedAtLabel string `json:"createdAtLabel"`
}

func (h *RequestHandler) toView(r models.SchedulingRequest) RequestView {
	return RequestView{
		SchedulingRequest: r,
		CreatedAtLabel:    format.RelativeTime(r.CreatedAt, timezone.NowIn(h.tz)),
	}
}

// --------- Handlers ---------

// List recorta por ?filter=active|done|dismissed|all (padrão: active) e
// devolve também os contadores das abas.
func (h *RequestHandler) List(c *gin.Context) {
	filter := c.DefaultQuery("filter", stats.InboxActive)

	var filtered []models.SchedulingRequest
	var counts stats.InboxCounts
	h.store.View(c.Request.Context(), func(doc *models.Document) {
		filtered = stats.FilterRequests(doc.SchedulingRequests, filter)
		counts = stats.CountInbox(doc.SchedulingRequests)
	})

	views := make([]RequestView, 0, len(filtered))
	for _, r := range filtered {
		views = append(views, h.toView(r))
	}

	c.JSON(http.StatusOK, gin.H{
		"data":   views,
		"total":  len(views),
		"counts": counts,
	})
}

// Get devolve um pedido (usado para pré-preencher o formulário de novo
// atendimento a partir de um pedido).
func (h *RequestHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var found *models.SchedulingRequest
	h.store.View(c.Request.Context(), func(doc *models.Document) {
		if r := doc.FindSchedulingRequest(id); r != nil {
			copy := *r
			found = &copy
		}
	})

	if found == nil {
		httperr.NotFound(c, "request_not_found", "Pedido não encontrado.")
		return
	}
	httpresp.OK(c, h.toView(*found))
}

// UpdateStatus sobrescreve o status do pedido. DONE e DISMISSED aceitam
// voltar para PENDING (reativação); id inexistente é no-op silencioso.
func (h *RequestHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req UpdateRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	newStatus := request.Status(req.Status)
	if err := request.CanTransition("", newStatus); err != nil {
		httperr.BadRequest(c, "invalid_status", "Status desconhecido.")
		return
	}

	var updated *models.SchedulingRequest
	_ = h.store.Update(c.Request.Context(), func(doc *models.Document) error {
		if r := docstore.UpdateRequestStatus(doc, id, newStatus); r != nil {
			copy := *r
			updated = &copy
		}
		return nil
	})

	if updated != nil {
		h.audit.Dispatch(audit.Event{
			Action:   "request_status_changed",
			Entity:   "scheduling_request",
			EntityID: id,
			Metadata: gin.H{"status": req.Status},
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": updated})
}

// MarkSeen registra a visita à caixa de entrada, zerando o badge de
// "novos" sem mexer nos pendentes.
func (h *RequestHandler) MarkSeen(c *gin.Context) {
	_ = h.store.Update(c.Request.Context(), func(doc *models.Document) error {
		docstore.UpdateLastSeenRequestAt(doc)
		return nil
	})

	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}
