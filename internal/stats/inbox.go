package stats

import (
	"sort"

	"github.com/BruksfildServices01/barber-mvp/internal/domain/request"
	"github.com/BruksfildServices01/barber-mvp/internal/models"
)

// Partições da caixa de entrada de pedidos.
const (
	InboxActive    = "active"
	InboxDone      = "done"
	InboxDismissed = "dismissed"
	InboxAll       = "all"
)

// FilterRequests recorta os pedidos pela partição pedida e ordena por
// createdAt decrescente (mais novo primeiro). Filtro desconhecido cai em
// "all".
func FilterRequests(requests []models.SchedulingRequest, filter string) []models.SchedulingRequest {
	out := make([]models.SchedulingRequest, 0, len(requests))
	for i := range requests {
		r := &requests[i]
		switch filter {
		case InboxActive:
			if request.IsActive(request.Status(r.Status)) {
				out = append(out, *r)
			}
		case InboxDone:
			if r.Status == string(request.StatusDone) {
				out = append(out, *r)
			}
		case InboxDismissed:
			if r.Status == string(request.StatusDismissed) {
				out = append(out, *r)
			}
		default:
			out = append(out, *r)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// InboxCounts são os contadores das abas de filtro.
type InboxCounts struct {
	Active    int `json:"active"`
	Done      int `json:"done"`
	Dismissed int `json:"dismissed"`
	Total     int `json:"total"`
}

func CountInbox(requests []models.SchedulingRequest) InboxCounts {
	counts := InboxCounts{Total: len(requests)}
	for i := range requests {
		switch request.Status(requests[i].Status) {
		case request.StatusPending, request.StatusSeen:
			counts.Active++
		case request.StatusDone:
			counts.Done++
		case request.StatusDismissed:
			counts.Dismissed++
		}
	}
	return counts
}
