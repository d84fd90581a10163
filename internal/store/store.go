package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"officesite/internal/models"
)

// ErrNotFound is returned when no location matches the requested slug.
var ErrNotFound = errors.New("location not found")

// GormStore reads and writes locations, offices and testimonials through gorm.
type GormStore struct {
	db *gorm.DB
}

// New creates a GormStore on top of an open connection.
func New(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// LocationBySlug returns the location with the given slug or ErrNotFound.
func (s *GormStore) LocationBySlug(ctx context.Context, slug string) (*models.Location, error) {
	var loc models.Location
	if err := s.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&loc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find location %q: %w", slug, err)
	}
	return &loc, nil
}

// CreateLocations inserts all locations in a single batch.
func (s *GormStore) CreateLocations(ctx context.Context, locs []models.Location) error {
	if len(locs) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Create(&locs).Error; err != nil {
		return fmt.Errorf("insert %d locations: %w", len(locs), err)
	}
	return nil
}

// CountOffices returns how many offices reference the location.
func (s *GormStore) CountOffices(ctx context.Context, locationID uint) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.Office{}).
		Where("location_id = ?", locationID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count offices for location %d: %w", locationID, err)
	}
	return count, nil
}

// CreateOffices inserts offices, all attached to locationID.
func (s *GormStore) CreateOffices(ctx context.Context, locationID uint, offices []models.Office) error {
	if len(offices) == 0 {
		return nil
	}
	rows := make([]models.Office, len(offices))
	for i, o := range offices {
		o.LocationID = locationID
		rows[i] = o
	}
	if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("insert offices for location %d: %w", locationID, err)
	}
	return nil
}

// CountTestimonials returns how many testimonials reference the location.
func (s *GormStore) CountTestimonials(ctx context.Context, locationID uint) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.Testimonial{}).
		Where("location_id = ?", locationID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count testimonials for location %d: %w", locationID, err)
	}
	return count, nil
}

// CreateTestimonials inserts testimonials, all attached to locationID.
func (s *GormStore) CreateTestimonials(ctx context.Context, locationID uint, testimonials []models.Testimonial) error {
	if len(testimonials) == 0 {
		return nil
	}
	rows := make([]models.Testimonial, len(testimonials))
	for i, t := range testimonials {
		t.LocationID = locationID
		rows[i] = t
	}
	if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("insert testimonials for location %d: %w", locationID, err)
	}
	return nil
}

// ListLocations returns every location ordered by name, without associations.
func (s *GormStore) ListLocations(ctx context.Context) ([]models.Location, error) {
	var locs []models.Location
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&locs).Error; err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return locs, nil
}

// LocationDetail returns a location with its offices and testimonials loaded.
func (s *GormStore) LocationDetail(ctx context.Context, slug string) (*models.Location, error) {
	var loc models.Location
	err := s.db.WithContext(ctx).
		Preload("Offices", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Testimonials", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("slug = ?", slug).
		First(&loc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load location %q: %w", slug, err)
	}
	return &loc, nil
}
