package stats

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/barber-mvp/internal/format"
	"github.com/BruksfildServices01/barber-mvp/internal/models"
	"github.com/BruksfildServices01/barber-mvp/internal/timeutil"
)

// ClientVisit é a linha do relatório "Último Corte": todo cliente com o
// rótulo da última visita e o contador de dias.
type ClientVisit struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`

	LastVisitLabel string `json:"lastVisitLabel"`
	DaysSince      *int   `json:"daysSince"`
	DaysLabel      string `json:"daysLabel"`
}

// ClientsLastVisit monta o relatório completo, com a mesma regra de
// ordenação da lista de inativos: nunca-visitou primeiro, depois por dias
// decrescente.
func ClientsLastVisit(clients []models.Client, now time.Time) []ClientVisit {
	out := make([]ClientVisit, 0, len(clients))
	for i := range clients {
		c := &clients[i]

		if c.LastVisitAt == nil {
			out = append(out, ClientVisit{
				ID: c.ID, Name: c.Name, Phone: c.Phone,
				LastVisitLabel: "Nunca",
				DaysSince:      nil,
				DaysLabel:      "Nunca",
			})
			continue
		}

		days := timeutil.DaysBetween(*c.LastVisitAt, now)
		d := days
		out = append(out, ClientVisit{
			ID: c.ID, Name: c.Name, Phone: c.Phone,
			LastVisitLabel: format.DateBR(*c.LastVisitAt),
			DaysSince:      &d,
			DaysLabel:      format.DaysLabel(days),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].DaysSince, out[j].DaysSince
		if a == nil && b == nil {
			return false
		}
		if a == nil {
			return true
		}
		if b == nil {
			return false
		}
		return *a > *b
	})
	return out
}
