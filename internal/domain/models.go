package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a referenced id does not exist in the store.
var ErrNotFound = errors.New("record not found")

// Product status values.
const (
	StatusAvailable = "available"
	StatusPending   = "pending"
	StatusSold      = "sold"
)

func init() {
	// API clients expect plain JSON numbers for prices.
	decimal.MarshalJSONWithoutQuotes = true
}

// StringList is a []string persisted as a JSON text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		if v == "" {
			*l = StringList{}
			return nil
		}
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("cannot scan %T into StringList", src)
}

type Category struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	CreatedAt string `db:"created_at" json:"created_at"`
	UpdatedAt string `db:"updated_at" json:"updated_at,omitempty"`
}

type Product struct {
	ID     int64           `db:"id" json:"id"`
	Name   string          `db:"name" json:"name"`
	Price  decimal.Decimal `db:"price" json:"price"`
	Status string          `db:"status" json:"status"` // available | pending | sold
	Image  string          `db:"image" json:"image"`
	Types  StringList      `db:"types_json" json:"types"`
	Sizes  StringList      `db:"sizes_json" json:"sizes"`
	Rating float64         `db:"rating" json:"rating"`
	// CategoryID is a weak reference: no foreign key, used only as a list filter.
	CategoryID *int64 `db:"category_id" json:"category_id,omitempty"`
	CreatedAt  string `db:"created_at" json:"created_at"`
	UpdatedAt  string `db:"updated_at" json:"updated_at,omitempty"`
}
