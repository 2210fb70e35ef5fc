package search

import (
	"strings"
	"time"

	"ndiscare-backend/internal/models"
)

// WorkerSummary is the response-facing worker shape. Services are
// flattened from the association table into plain category names because
// older clients expect a string array, not nested rows.
type WorkerSummary struct {
	ID           uint64    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Mobile       string    `json:"mobile"`
	Gender       string    `json:"gender"`
	Age          int       `json:"age"`
	Languages    []string  `json:"languages"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Postcode     string    `json:"postcode"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
	Introduction string    `json:"introduction"`
	PhotoURL     string    `json:"photoUrl"`
	Services     []string  `json:"services"`
	DistanceKm   *float64  `json:"distanceKm,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Summarize projects a worker row into the response shape. Pure: same
// row in, same summary out.
func Summarize(w models.Worker) WorkerSummary {
	return WorkerSummary{
		ID:           w.ID,
		FirstName:    w.FirstName,
		LastName:     w.LastName,
		Mobile:       w.Mobile,
		Gender:       w.Gender,
		Age:          w.Age,
		Languages:    splitList(w.Languages),
		City:         w.City,
		State:        w.State,
		Postcode:     w.Postcode,
		Latitude:     w.Latitude,
		Longitude:    w.Longitude,
		Introduction: w.Introduction,
		PhotoURL:     w.PhotoURL,
		Services:     FlattenServices(w.Services),
		CreatedAt:    w.CreatedAt,
	}
}

// FlattenServices collapses association rows into distinct category
// names, first-seen order. Legacy data contains duplicate rows.
func FlattenServices(services []models.WorkerService) []string {
	out := []string{}
	seen := make(map[string]bool, len(services))
	for _, s := range services {
		if seen[s.Category] {
			continue
		}
		seen[s.Category] = true
		out = append(out, s.Category)
	}
	return out
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
