package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-mvp/internal/docstore"
	"github.com/BruksfildServices01/barber-mvp/internal/httperr"
	"github.com/BruksfildServices01/barber-mvp/internal/httpresp"
	"github.com/BruksfildServices01/barber-mvp/internal/models"
	"github.com/BruksfildServices01/barber-mvp/internal/stats"
	"github.com/BruksfildServices01/barber-mvp/internal/timeutil"
	"github.com/BruksfildServices01/barber-mvp/internal/timezone"
)

type StatsHandler struct {
	store *docstore.Store
	tz    string
}

func NewStatsHandler(store *docstore.Store, tz string) *StatsHandler {
	return &StatsHandler{store: store, tz: tz}
}

// Get calcula as estatísticas do dashboard para o período pedido:
// ?days=N (janela terminando hoje) ou ?start=YYYY-MM-DD&end=YYYY-MM-DD.
// Sem parâmetros, últimos 7 dias.
func (h *StatsHandler) Get(c *gin.Context) {
	now := timezone.NowIn(h.tz)
	loc := timezone.Location(h.tz)

	period := stats.LastDays(7, now)

	if daysStr := c.Query("days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil || days < 1 {
			httperr.BadRequest(c, "invalid_period", "Período inválido.")
			return
		}
		period = stats.LastDays(days, now)
	} else if startStr := c.Query("start"); startStr != "" {
		endStr := c.Query("end")

		start, err := timeutil.ParseDate(startStr, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_period", "Selecione as datas de início e fim.")
			return
		}
		end, err := timeutil.ParseDate(endStr, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_period", "Selecione as datas de início e fim.")
			return
		}
		if start.After(end) {
			httperr.BadRequest(c, "invalid_period", "A data inicial deve ser anterior à data final.")
			return
		}
		period = stats.Range(start, end)
	}

	var out stats.Stats
	h.store.View(c.Request.Context(), func(doc *models.Document) {
		out = stats.Compute(doc, period, now)
	})

	httpresp.OK(c, out)
}
