package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-mvp/internal/models"
)

func TestClientsLastVisitLabels(t *testing.T) {
	now := ts(2024, 6, 15, 12)
	today := ts(2024, 6, 15, 9)
	yesterday := ts(2024, 6, 14, 9)
	old := ts(2024, 5, 1, 9)

	clients := []models.Client{
		{ID: "c1", Name: "Hoje", Phone: "11999990001", LastVisitAt: &today},
		{ID: "c2", Name: "Ontem", LastVisitAt: &yesterday},
		{ID: "c3", Name: "Antigo", LastVisitAt: &old},
		{ID: "c4", Name: "Novato"},
	}

	got := ClientsLastVisit(clients, now)
	require.Len(t, got, 4)

	byID := make(map[string]ClientVisit, len(got))
	for _, v := range got {
		byID[v.ID] = v
	}

	assert.Equal(t, "15/06/2024", byID["c1"].LastVisitLabel)
	assert.Equal(t, "Hoje", byID["c1"].DaysLabel)
	assert.Equal(t, "11999990001", byID["c1"].Phone)

	assert.Equal(t, "1 dia", byID["c2"].DaysLabel)
	assert.Equal(t, "45 dias", byID["c3"].DaysLabel)

	assert.Equal(t, "Nunca", byID["c4"].LastVisitLabel)
	assert.Equal(t, "Nunca", byID["c4"].DaysLabel)
	assert.Nil(t, byID["c4"].DaysSince)
}

func TestClientsLastVisitOrdering(t *testing.T) {
	now := ts(2024, 6, 15, 12)
	recent := ts(2024, 6, 14, 9)
	old := ts(2024, 4, 1, 9)

	clients := []models.Client{
		{ID: "recent", Name: "Recente", LastVisitAt: &recent},
		{ID: "never", Name: "Nunca"},
		{ID: "old", Name: "Antigo", LastVisitAt: &old},
	}

	got := ClientsLastVisit(clients, now)
	require.Len(t, got, 3)

	// nunca-visitou primeiro, depois por dias decrescente
	assert.Equal(t, "never", got[0].ID)
	assert.Equal(t, "old", got[1].ID)
	assert.Equal(t, "recent", got[2].ID)
}

func TestClientsLastVisitEmpty(t *testing.T) {
	got := ClientsLastVisit(nil, ts(2024, 6, 15, 12))
	require.NotNil(t, got)
	assert.Empty(t, got)
}
