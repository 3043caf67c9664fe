package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// StringSlice is a JSON array column.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		// nil is stored as an empty array, never as NULL
		return "[]", nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	data, err := columnBytes("StringSlice", value)
	if err != nil {
		return err
	}
	if isEmptyJSON(data) {
		*s = StringSlice{}
		return nil
	}
	return json.Unmarshal(data, s)
}

// JSONMap is a JSON object column of string values.
type JSONMap map[string]string

// Value implements the driver.Valuer interface
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements the sql.Scanner interface
func (m *JSONMap) Scan(value interface{}) error {
	data, err := columnBytes("JSONMap", value)
	if err != nil {
		return err
	}
	if isEmptyJSON(data) {
		*m = JSONMap{}
		return nil
	}
	return json.Unmarshal(data, m)
}

// JSON is a nullable JSON column holding a T. Valid is false for NULL.
type JSON[T any] struct {
	V     T
	Valid bool
}

// NewJSON wraps v; a nil pointer becomes NULL.
func NewJSON[T any](v *T) JSON[T] {
	if v == nil {
		return JSON[T]{}
	}
	return JSON[T]{V: *v, Valid: true}
}

// Ptr returns nil for NULL.
func (j JSON[T]) Ptr() *T {
	if !j.Valid {
		return nil
	}
	v := j.V
	return &v
}

// Value implements the driver.Valuer interface
func (j JSON[T]) Value() (driver.Value, error) {
	if !j.Valid {
		return nil, nil
	}
	data, err := json.Marshal(j.V)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements the sql.Scanner interface
func (j *JSON[T]) Scan(value interface{}) error {
	var zero T
	if value == nil {
		j.V, j.Valid = zero, false
		return nil
	}
	data, err := columnBytes("JSON", value)
	if err != nil {
		return err
	}
	if isEmptyJSON(data) {
		j.V, j.Valid = zero, false
		return nil
	}
	if err := json.Unmarshal(data, &j.V); err != nil {
		return err
	}
	j.Valid = true
	return nil
}

func columnBytes(typeName string, value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.New(typeName + " Scan: unsupported type " + fmt.Sprintf("%T", value))
	}
}

func isEmptyJSON(data []byte) bool {
	return len(data) == 0 || string(data) == "null"
}
