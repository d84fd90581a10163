// Package schema describes how the persisted models map onto database tables.
package schema

import (
	"fmt"
	"sort"
	"sync"

	gormschema "gorm.io/gorm/schema"
)

// Table is the parsed layout of one model.
type Table struct {
	*gormschema.Schema
	Columns []*Column
}

func (t *Table) TableName() string {
	return t.Table
}

// ForeignKeys lists "column -> table.column" for every belongs-to or
// has-many relation that points into this table.
func (t *Table) ForeignKeys() []string {
	var out []string
	for _, rel := range t.Relationships.Relations {
		for _, ref := range rel.References {
			if ref.OwnPrimaryKey && ref.PrimaryKey != nil {
				out = append(out, fmt.Sprintf("%s.%s -> %s.%s",
					rel.FieldSchema.Table, ref.ForeignKey.DBName, t.Table, ref.PrimaryKey.DBName))
			}
		}
	}
	sort.Strings(out)
	return out
}

var cache sync.Map

// FromModel parses a model value with gorm's default naming strategy.
func FromModel(model interface{}) (*Table, error) {
	modelSchema, err := gormschema.Parse(model, &cache, gormschema.NamingStrategy{})
	if err != nil {
		return nil, err
	}

	columns := make([]*Column, 0, len(modelSchema.Fields))
	for _, field := range modelSchema.Fields {
		if field.DBName == "" {
			continue
		}
		columns = append(columns, &Column{Field: field})
	}

	return &Table{Schema: modelSchema, Columns: columns}, nil
}
