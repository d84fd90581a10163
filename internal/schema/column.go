package schema

import (
	gormschema "gorm.io/gorm/schema"
)

// Column is a persisted field of a model.
type Column struct {
	*gormschema.Field
}

func (c *Column) Type() string {
	return string(c.DataType)
}

func (c *Column) ColumnName() string {
	return c.DBName
}

// Flags renders the constraints worth showing next to a column.
func (c *Column) Flags() string {
	switch {
	case c.PrimaryKey:
		return "primary key"
	case c.Unique:
		return "unique"
	case c.NotNull:
		return "not null"
	default:
		return ""
	}
}
