package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Product is a remote-owned catalog record as served by the product API.
type Product struct {
	ID          int64     `json:"product_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock_quantity"`
	CreatedAt   Timestamp `json:"created_at"`
	UpdatedAt   Timestamp `json:"updated_at"`
}

// NewProduct is the creation payload accepted by POST /products/.
type NewProduct struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock_quantity"`
	Description string  `json:"description,omitempty"`
}

// ProductDraft holds the raw create-form fields exactly as the user typed
// them, so a rejected submission can be corrected and resubmitted.
type ProductDraft struct {
	Name        string
	Price       string
	Stock       string
	Description string
}

// IsZero reports whether the draft is in its empty default state.
func (d ProductDraft) IsZero() bool {
	return d.Name == "" && d.Price == "" && d.Stock == "" && d.Description == ""
}

// Parse converts the draft into a creation payload. Price and stock quantity
// must parse as numbers; everything else (including an empty name) is left
// for the server to validate.
func (d ProductDraft) Parse() (NewProduct, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(d.Price), 64)
	if err != nil {
		return NewProduct{}, fmt.Errorf("price %q is not a number", d.Price)
	}

	stock, err := strconv.Atoi(strings.TrimSpace(d.Stock))
	if err != nil {
		return NewProduct{}, fmt.Errorf("stock quantity %q is not a whole number", d.Stock)
	}

	return NewProduct{
		Name:        strings.TrimSpace(d.Name),
		Price:       price,
		Stock:       stock,
		Description: strings.TrimSpace(d.Description),
	}, nil
}

// zonelessLayout matches the backend's naive datetimes ("2025-08-25T10:30:00"
// with an optional fraction); values without an offset are taken as UTC.
const zonelessLayout = "2006-01-02T15:04:05.999999999"

// Timestamp is a time.Time that unmarshals both RFC 3339 timestamps and the
// zone-less form the original product service emits.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		t.Time = time.Time{}
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timestamp must be a JSON string: %w", err)
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		parsed, err = time.Parse(zonelessLayout, raw)
		if err != nil {
			return fmt.Errorf("unrecognized timestamp %q", raw)
		}
	}

	t.Time = parsed
	return nil
}

// MarshalJSON implements json.Marshaler, always emitting RFC 3339 UTC.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.UTC().Format(time.RFC3339Nano))
}
