package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMoneyBRL(t *testing.T) {
	assert.Equal(t, "R$ 0,00", MoneyBRL(0))
	assert.Equal(t, "R$ 30,00", MoneyBRL(30))
	assert.Equal(t, "R$ 25,50", MoneyBRL(25.5))
	assert.Equal(t, "R$ 1.234,56", MoneyBRL(1234.56))
	assert.Equal(t, "R$ 1.000.000,00", MoneyBRL(1000000))
	assert.Equal(t, "-R$ 12,30", MoneyBRL(-12.3))
}

func TestDateBR(t *testing.T) {
	d := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "05/03/2024", DateBR(d))
}

func TestDaysLabel(t *testing.T) {
	assert.Equal(t, "Hoje", DaysLabel(0))
	assert.Equal(t, "1 dia", DaysLabel(1))
	assert.Equal(t, "15 dias", DaysLabel(15))
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "agora", RelativeTime(now.Add(-30*time.Second), now))
	assert.Equal(t, "5min atrás", RelativeTime(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3h atrás", RelativeTime(now.Add(-3*time.Hour), now))
	assert.Equal(t, "ontem", RelativeTime(now.Add(-30*time.Hour), now))
	assert.Equal(t, "3 dias atrás", RelativeTime(now.Add(-3*24*time.Hour), now))
	// passada uma semana, cai na data completa
	assert.Equal(t, "01/06/2024", RelativeTime(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), now))
}
