package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"officesite/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func TestLocationBySlug(t *testing.T) {
	s := New(setupTestDB(t))
	ctx := context.Background()

	_, err := s.LocationBySlug(ctx, "pune")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.CreateLocations(ctx, []models.Location{
		{Name: "Pune", Slug: "pune"},
		{Name: "Mumbai", Slug: "mumbai"},
	}))

	loc, err := s.LocationBySlug(ctx, "pune")
	require.NoError(t, err)
	assert.Equal(t, "Pune", loc.Name)
	assert.NotZero(t, loc.ID)
}

func TestCreateLocations_EmptyIsNoop(t *testing.T) {
	s := New(setupTestDB(t))
	assert.NoError(t, s.CreateLocations(context.Background(), nil))
}

func TestCreateLocations_DuplicateSlug(t *testing.T) {
	s := New(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, s.CreateLocations(ctx, []models.Location{{Name: "Pune", Slug: "pune"}}))
	err := s.CreateLocations(ctx, []models.Location{{Name: "Pune again", Slug: "pune"}})
	assert.Error(t, err)
}

func TestOfficesAndTestimonials(t *testing.T) {
	s := New(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, s.CreateLocations(ctx, []models.Location{{Name: "Pune", Slug: "pune"}}))
	pune, err := s.LocationBySlug(ctx, "pune")
	require.NoError(t, err)

	n, err := s.CountOffices(ctx, pune.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, s.CreateOffices(ctx, pune.ID, []models.Office{
		{Name: "Baner", Features: []string{"Mail handling"}},
		{Name: "Hinjewadi", LocationID: 999},
	}))
	n, err = s.CountOffices(ctx, pune.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n, "location id is forced on every office")

	require.NoError(t, s.CreateTestimonials(ctx, pune.ID, []models.Testimonial{
		{Author: "Rohan", Content: "Great service", Rating: 5},
	}))
	n, err = s.CountTestimonials(ctx, pune.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	detail, err := s.LocationDetail(ctx, "pune")
	require.NoError(t, err)
	require.Len(t, detail.Offices, 2)
	assert.Equal(t, "Baner", detail.Offices[0].Name)
	assert.Equal(t, []string{"Mail handling"}, detail.Offices[0].Features)
	require.Len(t, detail.Testimonials, 1)
	assert.Equal(t, "Rohan", detail.Testimonials[0].Author)
}

func TestListLocations_OrderedByName(t *testing.T) {
	s := New(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, s.CreateLocations(ctx, []models.Location{
		{Name: "Pune", Slug: "pune"},
		{Name: "Delhi", Slug: "delhi"},
		{Name: "Mumbai", Slug: "mumbai"},
	}))

	locs, err := s.ListLocations(ctx)
	require.NoError(t, err)
	require.Len(t, locs, 3)
	assert.Equal(t, []string{"Delhi", "Mumbai", "Pune"}, []string{locs[0].Name, locs[1].Name, locs[2].Name})
}

func TestLocationDetail_NotFound(t *testing.T) {
	s := New(setupTestDB(t))
	_, err := s.LocationDetail(context.Background(), "nowhere")
	assert.ErrorIs(t, err, ErrNotFound)
}
