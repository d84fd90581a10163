// Package seed makes sure the reference data of the site exists after startup.
//
// Locations are keyed by slug and inserted only when missing. Offices and
// testimonials are all-or-nothing per location: they are inserted only when
// the location has none, so a partially deleted set is never repaired.
//
// The seeder assumes exclusive access to the store. It is meant to run once,
// before the HTTP listener starts.
package seed

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"officesite/internal/models"
	"officesite/internal/store"
)

// Store is the persistence the seeder needs.
type Store interface {
	LocationBySlug(ctx context.Context, slug string) (*models.Location, error)
	CreateLocations(ctx context.Context, locs []models.Location) error
	CountOffices(ctx context.Context, locationID uint) (int64, error)
	CreateOffices(ctx context.Context, locationID uint, offices []models.Office) error
	CountTestimonials(ctx context.Context, locationID uint) (int64, error)
	CreateTestimonials(ctx context.Context, locationID uint, testimonials []models.Testimonial) error
}

// Report describes what a run inserted.
type Report struct {
	LocationsCreated    int
	OfficesCreated      map[string]int
	TestimonialsCreated map[string]int
}

// Empty reports whether the run inserted nothing.
func (r *Report) Empty() bool {
	return r.LocationsCreated == 0 && len(r.OfficesCreated) == 0 && len(r.TestimonialsCreated) == 0
}

type Seeder struct {
	store   Store
	catalog Catalog
	logger  *zap.Logger
}

// New creates a seeder for the given catalog.
func New(s Store, catalog Catalog, logger *zap.Logger) *Seeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Seeder{store: s, catalog: catalog, logger: logger}
}

// Run inserts whatever part of the catalog is missing. It does not retry and
// returns the first store error, wrapped with the step that failed.
func (s *Seeder) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		OfficesCreated:      make(map[string]int),
		TestimonialsCreated: make(map[string]int),
	}

	created, err := s.seedLocations(ctx)
	if err != nil {
		return report, err
	}
	report.LocationsCreated = created

	for _, loc := range s.catalog.Locations {
		offices := s.catalog.Offices[loc.Slug]
		if len(offices) == 0 {
			continue
		}
		n, err := s.seedOffices(ctx, loc.Slug, offices)
		if err != nil {
			return report, err
		}
		if n > 0 {
			report.OfficesCreated[loc.Slug] = n
		}
	}

	for _, loc := range s.catalog.Locations {
		testimonials := s.catalog.Testimonials[loc.Slug]
		if len(testimonials) == 0 {
			continue
		}
		n, err := s.seedTestimonials(ctx, loc.Slug, testimonials)
		if err != nil {
			return report, err
		}
		if n > 0 {
			report.TestimonialsCreated[loc.Slug] = n
		}
	}

	s.logger.Info("seed completed",
		zap.Int("locations_created", report.LocationsCreated),
		zap.Any("offices_created", report.OfficesCreated),
		zap.Any("testimonials_created", report.TestimonialsCreated))
	return report, nil
}

func (s *Seeder) seedLocations(ctx context.Context) (int, error) {
	var missing []models.Location
	for _, loc := range s.catalog.Locations {
		_, err := s.store.LocationBySlug(ctx, loc.Slug)
		switch {
		case err == nil:
			continue
		case errors.Is(err, store.ErrNotFound):
			s.logger.Debug("staging location", zap.String("slug", loc.Slug))
			missing = append(missing, loc)
		default:
			return 0, fmt.Errorf("check location %q: %w", loc.Slug, err)
		}
	}

	if len(missing) == 0 {
		return 0, nil
	}
	if err := s.store.CreateLocations(ctx, missing); err != nil {
		return 0, fmt.Errorf("seed locations: %w", err)
	}
	return len(missing), nil
}

func (s *Seeder) seedOffices(ctx context.Context, slug string, offices []models.Office) (int, error) {
	loc, err := s.store.LocationBySlug(ctx, slug)
	if err != nil {
		return 0, fmt.Errorf("resolve location %q for offices: %w", slug, err)
	}
	count, err := s.store.CountOffices(ctx, loc.ID)
	if err != nil {
		return 0, fmt.Errorf("check offices for %q: %w", slug, err)
	}
	if count > 0 {
		s.logger.Debug("offices already present", zap.String("slug", slug), zap.Int64("count", count))
		return 0, nil
	}
	if err := s.store.CreateOffices(ctx, loc.ID, offices); err != nil {
		return 0, fmt.Errorf("seed offices for %q: %w", slug, err)
	}
	return len(offices), nil
}

func (s *Seeder) seedTestimonials(ctx context.Context, slug string, testimonials []models.Testimonial) (int, error) {
	loc, err := s.store.LocationBySlug(ctx, slug)
	if err != nil {
		return 0, fmt.Errorf("resolve location %q for testimonials: %w", slug, err)
	}
	count, err := s.store.CountTestimonials(ctx, loc.ID)
	if err != nil {
		return 0, fmt.Errorf("check testimonials for %q: %w", slug, err)
	}
	if count > 0 {
		s.logger.Debug("testimonials already present", zap.String("slug", slug), zap.Int64("count", count))
		return 0, nil
	}
	if err := s.store.CreateTestimonials(ctx, loc.ID, testimonials); err != nil {
		return 0, fmt.Errorf("seed testimonials for %q: %w", slug, err)
	}
	return len(testimonials), nil
}
