package timeutil

import "time"

// --------------------------------------------------
// Aritmética de datas com granularidade de dia.
// Toda comparação de "dias" trunca para a meia-noite
// local antes de subtrair — nunca divisão crua de ms.
// --------------------------------------------------

// StartOfDay retorna t às 00:00:00 no fuso do próprio t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay retorna t às 23:59:59.999... no fuso do próprio t.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// DaysBetween conta dias de calendário entre from e to. Um atendimento
// 20h atrás que cruzou a meia-noite conta 1 dia, não 0.
func DaysBetween(from, to time.Time) int {
	f := StartOfDay(from)
	t := StartOfDay(to.In(from.Location()))
	return int(t.Sub(f) / (24 * time.Hour))
}

// IsBetweenInclusive diz se t está dentro de [start, end].
func IsBetweenInclusive(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// ParseDate interpreta "YYYY-MM-DD" no fuso dado.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, loc)
}

// AtMidday retorna a data de t ao meio-dia. Atendimentos são gravados ao
// meio-dia para ficarem longe das bordas de fuso horário.
func AtMidday(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, t.Location())
}
