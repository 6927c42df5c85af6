package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ── PostgreSQL TEXT[] custom type ──

// StringArray maps the PostgreSQL TEXT[] type, implementing the GORM
// Scanner/Valuer interfaces.
type StringArray []string

// Scan parses the {a,b,c} text form returned by PostgreSQL. Elements may be
// double-quoted, so commas, quotes and backslashes inside a value survive
// the round trip.
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = nil
		return nil
	}
	var s string
	switch v := src.(type) {
	case []byte:
		s = string(v)
	case string:
		s = v
	default:
		return fmt.Errorf("StringArray.Scan: unsupported type %T", src)
	}
	if len(s) < 2 || s[0] != '{' || s[len(s)-1] != '}' {
		return fmt.Errorf("StringArray.Scan: malformed array literal %q", s)
	}
	body := s[1 : len(s)-1]
	if body == "" {
		*a = StringArray{}
		return nil
	}

	arr := make(StringArray, 0, 4)
	var elem strings.Builder
	inQuotes := false
	escaped := false
	for _, r := range body {
		switch {
		case escaped:
			elem.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			arr = append(arr, elem.String())
			elem.Reset()
		default:
			elem.WriteRune(r)
		}
	}
	arr = append(arr, elem.String())
	*a = arr
	return nil
}

// Value serialises to the PostgreSQL {a,b,c} text form with every element
// quoted and escaped.
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	parts := make([]string, len(a))
	for i, s := range a {
		e := strings.ReplaceAll(s, `\`, `\\`)
		e = strings.ReplaceAll(e, `"`, `\"`)
		parts[i] = `"` + e + `"`
	}
	return "{" + strings.Join(parts, ",") + "}", nil
}

// BaseModel common audit columns embedded by business models.
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	CreatedBy *string   `gorm:"type:uuid"                          json:"created_by,omitempty"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
	UpdatedBy *string   `gorm:"type:uuid"                          json:"updated_by,omitempty"`
}

// SoftDeleteModel audit columns with soft delete.
type SoftDeleteModel struct {
	BaseModel
	DeletedAt gorm.DeletedAt `gorm:"index"     json:"deleted_at,omitempty"`
	DeletedBy *string        `gorm:"type:uuid" json:"deleted_by,omitempty"`
}

// VersionedModel soft-delete model with optimistic locking.
type VersionedModel struct {
	SoftDeleteModel
	Version int `gorm:"not null;default:1" json:"version"`
}
