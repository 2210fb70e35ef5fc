package search

import (
	"testing"

	"ndiscare-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestFlattenServicesDedupsFirstSeen(t *testing.T) {
	services := []models.WorkerService{
		{Category: "Personal Care"},
		{Category: "Transport"},
		{Category: "Personal Care"},
		{Category: "Nursing"},
		{Category: "Transport"},
	}
	assert.Equal(t, []string{"Personal Care", "Transport", "Nursing"}, FlattenServices(services))
}

func TestFlattenServicesEmpty(t *testing.T) {
	assert.Equal(t, []string{}, FlattenServices(nil))
}

func TestSummarize(t *testing.T) {
	lat, lng := -33.86, 151.21
	w := models.Worker{
		ID:        7,
		FirstName: "Mia",
		LastName:  "Chen",
		Languages: "English, Mandarin,,Cantonese",
		Latitude:  &lat,
		Longitude: &lng,
		Services: []models.WorkerService{
			{Category: "Nursing"},
			{Category: "Nursing"},
		},
	}

	got := Summarize(w)
	assert.Equal(t, uint64(7), got.ID)
	assert.Equal(t, []string{"English", "Mandarin", "Cantonese"}, got.Languages)
	assert.Equal(t, []string{"Nursing"}, got.Services)
	assert.Nil(t, got.DistanceKm)
}
