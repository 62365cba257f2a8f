package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// StringList is stored as a single comma-separated column and rendered
// as a JSON array. Product images and sizes use it.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return strings.Join(l, ","), nil
}

func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
	case []byte:
		*l = splitList(string(v))
	case string:
		*l = splitList(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
	return nil
}

func splitList(s string) StringList {
	if s == "" {
		return nil
	}
	return StringList(strings.Split(s, ","))
}
