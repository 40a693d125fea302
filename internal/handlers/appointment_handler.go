package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-mvp/internal/docstore"
	"github.com/BruksfildServices01/barber-mvp/internal/httperr"
	"github.com/BruksfildServices01/barber-mvp/internal/httpresp"
	"github.com/BruksfildServices01/barber-mvp/internal/models"
	ucAppointment "github.com/BruksfildServices01/barber-mvp/internal/usecase/appointment"
)

type AppointmentHandler struct {
	store    *docstore.Store
	createUC *ucAppointment.Create
}

func NewAppointmentHandler(store *docstore.Store, createUC *ucAppointment.Create) *AppointmentHandler {
	return &AppointmentHandler{store: store, createUC: createUC}
}

// --------- Requests / Responses ---------

type CreateAppointmentRequest struct {
	ClientID    string `json:"client_id"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`

	ServiceID string  `json:"service_id" binding:"required"`
	BarberID  string  `json:"barber_id"`
	Price     float64 `json:"price"`
	Date      string  `json:"date" binding:"required"` // YYYY-MM-DD
}

// AppointmentView resolve os nomes para exibição. Referências penduradas
// (serviço/barbeiro removidos depois) rendem nome vazio, nunca erro.
type AppointmentView struct {
	models.Appointment

	ClientName  string `json:"clientName"`
	ServiceName string `json:"serviceName"`
	BarberName  string `json:"barberName"`
}

// --------- Handlers ---------

func (h *AppointmentHandler) List(c *gin.Context) {
	var views []AppointmentView
	h.store.View(c.Request.Context(), func(doc *models.Document) {
		for i := range doc.Appointments {
			ap := doc.Appointments[i]
			view := AppointmentView{Appointment: ap}
			if cl := doc.FindClient(ap.ClientID); cl != nil {
				view.ClientName = cl.Name
			}
			if sv := doc.FindService(ap.ServiceID); sv != nil {
				view.ServiceName = sv.Name
			}
			if b := doc.FindBarber(ap.BarberID); b != nil {
				view.BarberName = b.Name
			}
			views = append(views, view)
		}
	})

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].DateAt.After(views[j].DateAt)
	})

	httpresp.List(c, views)
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.ClientID == "" && req.ClientName == "" {
		httperr.BadRequest(c, "client_required", "Selecione um cliente ou informe o nome.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateInput{
		ClientID:    req.ClientID,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ServiceID:   req.ServiceID,
		BarberID:    req.BarberID,
		Price:       req.Price,
		Date:        req.Date,
	})
	switch {
	case httperr.IsBusiness(err, "invalid_price"):
		httperr.BadRequest(c, "invalid_price", "Informe um valor válido.")
		return
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Informe a data.")
		return
	case httperr.IsBusiness(err, "client_not_found"):
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	case httperr.IsBusiness(err, "client_name_required"):
		httperr.BadRequest(c, "client_name_required", "Informe o nome do cliente.")
		return
	case err != nil:
		httperr.Internal(c, "failed_to_create_appointment", "Erro ao registrar atendimento.")
		return
	}

	c.JSON(http.StatusCreated, ap)
}
