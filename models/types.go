package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringList stores an ordered list of strings as a jsonb column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, l)
}
