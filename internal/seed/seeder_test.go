package seed_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"officesite/internal/models"
	"officesite/internal/seed"
	"officesite/internal/store"
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

func countWhere(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	var n int64
	require.NoError(t, db.Model(model).Where(query, args...).Count(&n).Error)
	return n
}

func locationID(t *testing.T, db *gorm.DB, slug string) uint {
	var loc models.Location
	require.NoError(t, db.Where("slug = ?", slug).First(&loc).Error)
	return loc.ID
}

func TestRun_EmptyDatabase(t *testing.T) {
	db := setupTestDB(t)
	catalog := seed.DefaultCatalog()

	report, err := seed.New(store.New(db), catalog, nil).Run(context.Background())
	require.NoError(t, err)

	var total int64
	require.NoError(t, db.Model(&models.Location{}).Count(&total).Error)
	assert.Equal(t, int64(len(catalog.Locations)), total)
	assert.Equal(t, 9, len(catalog.Locations))
	assert.Equal(t, 9, report.LocationsCreated)

	pune := locationID(t, db, "pune")
	mumbai := locationID(t, db, "mumbai")

	assert.Equal(t, int64(3), countWhere(t, db, &models.Office{}, "location_id = ?", pune))
	assert.Equal(t, int64(3), countWhere(t, db, &models.Testimonial{}, "location_id = ?", pune))
	assert.Equal(t, int64(2), countWhere(t, db, &models.Office{}, "location_id = ?", mumbai))
	assert.Equal(t, int64(0), countWhere(t, db, &models.Testimonial{}, "location_id = ?", mumbai))

	assert.Equal(t, map[string]int{"pune": 3, "mumbai": 2}, report.OfficesCreated)
	assert.Equal(t, map[string]int{"pune": 3}, report.TestimonialsCreated)
}

func TestRun_SlugsResolveToExpectedNames(t *testing.T) {
	db := setupTestDB(t)

	_, err := seed.New(store.New(db), seed.DefaultCatalog(), nil).Run(context.Background())
	require.NoError(t, err)

	expected := map[string]string{
		"mumbai":    "Mumbai",
		"pune":      "Pune",
		"delhi":     "Delhi",
		"bangalore": "Bangalore",
		"hyderabad": "Hyderabad",
		"chennai":   "Chennai",
		"kolkata":   "Kolkata",
		"ahmedabad": "Ahmedabad",
		"gurgaon":   "Gurgaon",
	}
	for slug, name := range expected {
		var rows []models.Location
		require.NoError(t, db.Where("slug = ?", slug).Find(&rows).Error)
		require.Len(t, rows, 1, "slug %s", slug)
		assert.Equal(t, name, rows[0].Name)
	}
}

func TestRun_Twice_NoDuplicates(t *testing.T) {
	db := setupTestDB(t)
	s := seed.New(store.New(db), seed.DefaultCatalog(), nil)

	_, err := s.Run(context.Background())
	require.NoError(t, err)
	report, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Empty())

	var locations, offices, testimonials int64
	require.NoError(t, db.Model(&models.Location{}).Count(&locations).Error)
	require.NoError(t, db.Model(&models.Office{}).Count(&offices).Error)
	require.NoError(t, db.Model(&models.Testimonial{}).Count(&testimonials).Error)
	assert.Equal(t, int64(9), locations)
	assert.Equal(t, int64(5), offices)
	assert.Equal(t, int64(3), testimonials)
}

func TestRun_InsertsOnlyMissingLocations(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Location{Name: "Delhi NCR", Slug: "delhi"}).Error)

	report, err := seed.New(store.New(db), seed.DefaultCatalog(), nil).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, report.LocationsCreated)

	var delhi models.Location
	require.NoError(t, db.Where("slug = ?", "delhi").First(&delhi).Error)
	assert.Equal(t, "Delhi NCR", delhi.Name, "existing rows are never updated")
}

func TestRun_ExistingOfficesBlockFurtherInserts(t *testing.T) {
	db := setupTestDB(t)
	pune := models.Location{Name: "Pune", Slug: "pune"}
	require.NoError(t, db.Create(&pune).Error)
	require.NoError(t, db.Create(&models.Office{LocationID: pune.ID, Name: "Hand-made office"}).Error)

	report, err := seed.New(store.New(db), seed.DefaultCatalog(), nil).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), countWhere(t, db, &models.Office{}, "location_id = ?", pune.ID))
	assert.NotContains(t, report.OfficesCreated, "pune")
	assert.Equal(t, int64(3), countWhere(t, db, &models.Testimonial{}, "location_id = ?", pune.ID),
		"testimonials are checked independently of offices")
}

func TestRun_PartialOfficeSetIsNotRepaired(t *testing.T) {
	db := setupTestDB(t)
	s := seed.New(store.New(db), seed.DefaultCatalog(), nil)

	_, err := s.Run(context.Background())
	require.NoError(t, err)

	pune := locationID(t, db, "pune")
	var first models.Office
	require.NoError(t, db.Where("location_id = ?", pune).Order("id ASC").First(&first).Error)
	require.NoError(t, db.Unscoped().Delete(&first).Error)

	_, err = s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), countWhere(t, db, &models.Office{}, "location_id = ?", pune))
}

func TestRun_StoresOfficeFeatures(t *testing.T) {
	db := setupTestDB(t)

	_, err := seed.New(store.New(db), seed.DefaultCatalog(), nil).Run(context.Background())
	require.NoError(t, err)

	var office models.Office
	require.NoError(t, db.Where("name = ?", "Baner Business Centre").First(&office).Error)
	assert.Equal(t, []string{"GST registration address", "Mail handling", "Meeting room access"}, office.Features)
	assert.Equal(t, "Most Popular", office.BadgeLabel)
}

type failingStore struct {
	seed.Store
	err error
}

func (f *failingStore) LocationBySlug(ctx context.Context, slug string) (*models.Location, error) {
	return nil, f.err
}

func TestRun_PropagatesStoreErrors(t *testing.T) {
	boom := errors.New("connection refused")
	s := seed.New(&failingStore{err: boom}, seed.DefaultCatalog(), nil)

	report, err := s.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `check location "mumbai"`)
	assert.Equal(t, 0, report.LocationsCreated)
}

type createFailsStore struct {
	*store.GormStore
	err error
}

func (c *createFailsStore) CreateLocations(ctx context.Context, locs []models.Location) error {
	return c.err
}

func TestRun_BatchInsertFailure(t *testing.T) {
	db := setupTestDB(t)
	boom := errors.New("unique violation")

	_, err := seed.New(&createFailsStore{GormStore: store.New(db), err: boom}, seed.DefaultCatalog(), nil).
		Run(context.Background())
	assert.ErrorIs(t, err, boom)

	var total int64
	require.NoError(t, db.Model(&models.Office{}).Count(&total).Error)
	assert.Zero(t, total)
}
