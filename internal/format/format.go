package format

import (
	"fmt"
	"strings"
	"time"
)

// MoneyBRL formata um valor como moeda brasileira: R$ 1.234,56.
// Valores negativos não aparecem no domínio, mas são formatados
// com o sinal na frente por via das dúvidas.
func MoneyBRL(value float64) string {
	neg := value < 0
	if neg {
		value = -value
	}

	cents := int64(value*100 + 0.5)
	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := fmt.Sprintf("R$ %s,%02d", b.String(), frac)
	if neg {
		out = "-" + out
	}
	return out
}

// DateBR formata uma data como DD/MM/YYYY.
func DateBR(t time.Time) string {
	return t.Format("02/01/2006")
}

// DaysLabel é o rótulo de "dias desde a última visita":
// "Hoje" para 0, "1 dia", senão "N dias".
func DaysLabel(days int) string {
	switch {
	case days == 0:
		return "Hoje"
	case days == 1:
		return "1 dia"
	default:
		return fmt.Sprintf("%d dias", days)
	}
}

// RelativeTime formata o tempo decorrido desde t, no mesmo espírito da
// caixa de entrada: "agora", "5min atrás", "2h atrás", "ontem",
// "3 dias atrás" e, passada uma semana, a data completa.
func RelativeTime(t, now time.Time) string {
	diff := now.Sub(t)

	sec := int(diff.Seconds())
	min := sec / 60
	hour := min / 60
	day := hour / 24

	switch {
	case sec < 60:
		return "agora"
	case min < 60:
		return fmt.Sprintf("%dmin atrás", min)
	case hour < 24:
		return fmt.Sprintf("%dh atrás", hour)
	case day == 1:
		return "ontem"
	case day < 7:
		return fmt.Sprintf("%d dias atrás", day)
	default:
		return DateBR(t)
	}
}
