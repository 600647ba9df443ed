package models

import (
	"database/sql/driver"
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// ImageList is an ordered list of image URLs stored as a JSON array column.
// An empty list is stored as [] and never as NULL.
type ImageList []string

// Value encodes the list through datatypes.JSONSlice, normalizing nil to []
func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageList{}
	}
	return datatypes.JSONSlice[string](l).Value()
}

// Scan decodes a JSON array column, treating NULL as an empty list
func (l *ImageList) Scan(value interface{}) error {
	if value == nil {
		*l = ImageList{}
		return nil
	}
	var slice datatypes.JSONSlice[string]
	if err := slice.Scan(value); err != nil {
		return err
	}
	if slice == nil {
		slice = datatypes.JSONSlice[string]{}
	}
	*l = ImageList(slice)
	return nil
}

// MarshalJSON always emits an array
func (l ImageList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// GormDBDataType ensures the correct data type is used for each database driver.
// MSSQL has no json type, so the array is kept as text there.
func (ImageList) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "JSON"
	case "postgres":
		return "JSONB"
	case "sqlserver", "mssql":
		return "NVARCHAR(MAX)"
	case "sqlite":
		return "JSON"
	}
	return "TEXT"
}

// GormDataType reports the generic data type used by migrations
func (ImageList) GormDataType() string {
	return "json"
}
