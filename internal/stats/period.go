package stats

import (
	"time"

	"github.com/BruksfildServices01/barber-mvp/internal/timeutil"
)

// Period é o recorte de datas do dashboard: ou uma janela de N dias
// terminando hoje (inclusive), ou um par início/fim explícito.
type Period struct {
	Start time.Time
	End   time.Time
}

// LastDays monta a janela "últimos n dias": hoje e os n-1 anteriores.
func LastDays(n int, now time.Time) Period {
	if n < 1 {
		n = 1
	}
	return Period{
		Start: now.AddDate(0, 0, -(n - 1)),
		End:   now,
	}
}

// Range monta um período explícito.
func Range(start, end time.Time) Period {
	return Period{Start: start, End: end}
}

// Bounds expande o período para [início do dia, fim do dia], inclusivo
// nas duas pontas.
func (p Period) Bounds() (time.Time, time.Time) {
	return timeutil.StartOfDay(p.Start), timeutil.EndOfDay(p.End)
}

// Contains diz se t cai dentro do período.
func (p Period) Contains(t time.Time) bool {
	start, end := p.Bounds()
	return timeutil.IsBetweenInclusive(t, start, end)
}
