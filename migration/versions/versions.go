// Package versions holds the schema migrations of the site. Importing it
// registers them with the migration registry.
package versions

import (
	"gorm.io/gorm"

	"officesite/internal/models"
	"officesite/migration"
)

func init() {
	for _, m := range All() {
		migration.RegisterMigration(m)
	}
}

// All returns the site's migrations in version order.
func All() []*migration.Migration {
	return []*migration.Migration{
		{
			Version: "20240601000001",
			Name:    "create_locations",
			Up: func(db *gorm.DB) error {
				return db.Migrator().CreateTable(&models.Location{})
			},
			Down: func(db *gorm.DB) error {
				return db.Migrator().DropTable(&models.Location{})
			},
		},
		{
			Version: "20240601000002",
			Name:    "create_offices",
			Up: func(db *gorm.DB) error {
				return db.Migrator().CreateTable(&models.Office{})
			},
			Down: func(db *gorm.DB) error {
				return db.Migrator().DropTable(&models.Office{})
			},
		},
		{
			Version: "20240601000003",
			Name:    "create_testimonials",
			Up: func(db *gorm.DB) error {
				return db.Migrator().CreateTable(&models.Testimonial{})
			},
			Down: func(db *gorm.DB) error {
				return db.Migrator().DropTable(&models.Testimonial{})
			},
		},
	}
}
