package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"officesite/internal/models"
)

func columnNames(t *Table) []string {
	names := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		names = append(names, c.ColumnName())
	}
	return names
}

func TestFromModel_Tables(t *testing.T) {
	tests := []struct {
		model interface{}
		table string
	}{
		{models.Location{}, "locations"},
		{models.Office{}, "offices"},
		{models.Testimonial{}, "testimonials"},
	}
	for _, tt := range tests {
		table, err := FromModel(tt.model)
		require.NoError(t, err)
		assert.Equal(t, tt.table, table.TableName())
	}
}

func TestFromModel_LocationColumns(t *testing.T) {
	table, err := FromModel(models.Location{})
	require.NoError(t, err)

	names := columnNames(table)
	assert.Contains(t, names, "slug")
	assert.Contains(t, names, "hero_image_url")
	assert.NotContains(t, names, "offices", "associations are not columns")

	for _, c := range table.Columns {
		if c.ColumnName() == "id" {
			assert.Equal(t, "primary key", c.Flags())
		}
	}
}

func TestFromModel_ForeignKeys(t *testing.T) {
	table, err := FromModel(models.Location{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"offices.location_id -> locations.id",
		"testimonials.location_id -> locations.id",
	}, table.ForeignKeys())
}

func TestFromModel_OfficeFeaturesSerialized(t *testing.T) {
	table, err := FromModel(models.Office{})
	require.NoError(t, err)

	for _, c := range table.Columns {
		if c.ColumnName() == "features" {
			assert.NotNil(t, c.Serializer)
			return
		}
	}
	t.Fatal("features column missing")
}
