package search

import (
	"context"
	"log"
	"sort"
	"strings"

	"ndiscare-backend/internal/geo"
	"ndiscare-backend/internal/models"

	"golang.org/x/sync/errgroup"
)

// WorkerStore is the slice of the datastore the pipeline needs. The gorm
// implementation lives in internal/store; tests use an in-memory fake.
type WorkerStore interface {
	Count(ctx context.Context, p Predicate) (int64, error)
	FindPage(ctx context.Context, p Predicate, order string, offset, limit int) ([]models.Worker, error)
	FindAll(ctx context.Context, p Predicate, order string) ([]models.Worker, error)
}

// Pagination is the page envelope. The derived fields are always kept
// consistent with total/page/pageSize.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// NewPagination derives the envelope from a total row count.
func NewPagination(total int64, page, pageSize int) Pagination {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return Pagination{
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// Result is one page of search output.
type Result struct {
	Items      []WorkerSummary
	Pagination Pagination
}

// Service runs worker searches: compose the predicate, execute, and when
// a location is present, re-rank by true distance.
type Service struct {
	store    WorkerStore
	geocoder geo.Geocoder
}

func NewService(store WorkerStore, geocoder geo.Geocoder) *Service {
	return &Service{store: store, geocoder: geocoder}
}

// Search runs the full pipeline for one request.
func (s *Service) Search(ctx context.Context, q *Query) (*Result, error) {
	q.Normalize()

	location := strings.TrimSpace(q.Location)
	radius, radiusDisabled := q.RadiusKm()

	if location != "" && !radiusDisabled {
		center, err := s.geocoder.Resolve(ctx, location)
		if err != nil {
			// Degraded mode, same as an unresolvable location. The search
			// still answers, just without distance ranking.
			log.Printf("geocoding %q failed, falling back to standard search: %v", location, err)
		}
		if center != nil {
			return s.searchByDistance(ctx, q, *center, radius)
		}
	}
	return s.searchStandard(ctx, q)
}

// searchStandard runs the count and the page fetch concurrently. The two
// reads are independent, a total that drifts by a row under concurrent
// writes is fine for a list view.
func (s *Service) searchStandard(ctx context.Context, q *Query) (*Result, error) {
	p := Compose(q)
	order := OrderClause(q.SortBy, q.SortOrder)

	var (
		total   int64
		workers []models.Worker
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.store.Count(gctx, p)
		return err
	})
	g.Go(func() error {
		var err error
		workers, err = s.store.FindPage(gctx, p, order, q.Offset(), q.PageSize)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]WorkerSummary, 0, len(workers))
	for _, w := range workers {
		items = append(items, Summarize(w))
	}
	return &Result{Items: items, Pagination: NewPagination(total, q.Page, q.PageSize)}, nil
}

// searchByDistance narrows candidates with a bounding box in the
// database, then applies the exact haversine cut, sorts closest-first
// and paginates in memory. Distance ordering overrides the requested
// sort key: once the caller asked "near Parramatta", proximity is the
// relevance.
func (s *Service) searchByDistance(ctx context.Context, q *Query, center geo.Point, radiusKm float64) (*Result, error) {
	p := Compose(q)
	box := geo.BoxAround(center, radiusKm)

	// The box over-selects (a circle's bounding square), rows outside the
	// radius are cut below. The NOT NULL conditions are part of the
	// predicate on purpose: a worker without coordinates must never reach
	// the ranking step.
	p.Conds = append(p.Conds,
		Cond{Expr: "workers.latitude IS NOT NULL", Args: nil},
		Cond{Expr: "workers.longitude IS NOT NULL", Args: nil},
		Cond{Expr: "workers.latitude BETWEEN ? AND ?", Args: []interface{}{box.MinLat, box.MaxLat}},
		Cond{Expr: "workers.longitude BETWEEN ? AND ?", Args: []interface{}{box.MinLng, box.MaxLng}},
	)

	candidates, err := s.store.FindAll(ctx, p, OrderClause(q.SortBy, q.SortOrder))
	if err != nil {
		return nil, err
	}

	type ranked struct {
		worker   models.Worker
		distance float64
	}
	within := make([]ranked, 0, len(candidates))
	for _, w := range candidates {
		if w.Latitude == nil || w.Longitude == nil {
			continue
		}
		d := geo.Haversine(center, geo.Point{Latitude: *w.Latitude, Longitude: *w.Longitude})
		if d > radiusKm {
			continue
		}
		within = append(within, ranked{worker: w, distance: d})
	}
	sort.SliceStable(within, func(i, j int) bool {
		return within[i].distance < within[j].distance
	})

	// Page slice over the filtered list. Total reflects what survived the
	// exact distance cut, not the bounding-box candidate count.
	total := int64(len(within))
	start := q.Offset()
	if start > len(within) {
		start = len(within)
	}
	end := start + q.PageSize
	if end > len(within) {
		end = len(within)
	}

	items := make([]WorkerSummary, 0, end-start)
	for _, r := range within[start:end] {
		summary := Summarize(r.worker)
		d := r.distance
		summary.DistanceKm = &d
		items = append(items, summary)
	}
	return &Result{Items: items, Pagination: NewPagination(total, q.Page, q.PageSize)}, nil
}

// AppliedFilters echoes the active filter dimensions back to the client
// so the frontend can render filter chips without re-deriving them.
func (q *Query) AppliedFilters() map[string]interface{} {
	applied := map[string]interface{}{}
	if q.Search != "" {
		applied["search"] = q.Search
	}
	if q.Location != "" {
		applied["location"] = q.Location
	}
	if q.SupportType != "" {
		applied["supportType"] = q.SupportType
	}
	if q.Gender != "" {
		applied["gender"] = q.Gender
	}
	if len(q.Languages) > 0 {
		applied["languages"] = q.Languages
	}
	if q.Age != "" {
		applied["age"] = q.Age
	}
	if q.Within != "" {
		applied["within"] = q.Within
	}
	if len(q.DocumentCategories) > 0 {
		applied["documentCategories"] = q.DocumentCategories
	}
	if len(q.DocumentStatuses) > 0 {
		applied["documentStatuses"] = q.DocumentStatuses
	}
	if len(q.RequirementTypes) > 0 {
		applied["requirementTypes"] = q.RequirementTypes
	}
	return applied
}
