package timezone

import "time"

// Fuso padrão da barbearia. Toda aritmética de dias (inativos, "Hoje",
// janelas do dashboard) acontece neste fuso, não em UTC.
const DefaultTimezone = "America/Sao_Paulo"

// Location resolve o fuso configurado, caindo no padrão se o nome for
// vazio ou desconhecido.
func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// NowIn é o "agora" no fuso da barbearia.
func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
