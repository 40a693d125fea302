package docstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-mvp/internal/models"
)

func TestMigrateIsIdempotent(t *testing.T) {
	doc := Seed()

	assert.False(t, Migrate(doc), "documento atual não tem o que migrar")
}

func TestMigrateElectsDefaultWhenMissing(t *testing.T) {
	doc := Seed()
	doc.DefaultBarberID = ""
	doc.Barbers[0].IsDefault = false
	doc.Barbers = append(doc.Barbers, models.Barber{ID: "b2", Name: "Barbeiro 2"})

	require.True(t, Migrate(doc))

	assert.Equal(t, doc.Barbers[0].ID, doc.DefaultBarberID)
	assert.True(t, doc.Barbers[0].IsDefault)
	assert.False(t, doc.Barbers[1].IsDefault)
}

func TestMigratePrefersFlaggedBarber(t *testing.T) {
	doc := Seed()
	doc.DefaultBarberID = ""
	doc.Barbers[0].IsDefault = false
	doc.Barbers = append(doc.Barbers, models.Barber{ID: "b2", Name: "Barbeiro 2", IsDefault: true})

	require.True(t, Migrate(doc))

	assert.Equal(t, "b2", doc.DefaultBarberID)
}

func TestMigrateBumpsVersionOnly(t *testing.T) {
	doc := Seed()
	doc.Version = 2

	require.True(t, Migrate(doc))
	assert.Equal(t, models.SchemaVersion, doc.Version)

	// rodar de novo não muda mais nada
	assert.False(t, Migrate(doc))
}

func TestMigrateAddsSchedulingRequests(t *testing.T) {
	doc := Seed()
	doc.SchedulingRequests = nil

	require.True(t, Migrate(doc))
	assert.NotNil(t, doc.SchedulingRequests)
	assert.Empty(t, doc.SchedulingRequests)
}
