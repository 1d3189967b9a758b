package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductDraftParse(t *testing.T) {
	draft := ProductDraft{Name: "  Widget ", Price: "9.50", Stock: "3", Description: " handy "}

	req, err := draft.Parse()
	require.NoError(t, err)
	assert.Equal(t, "Widget", req.Name)
	assert.Equal(t, 9.5, req.Price)
	assert.Equal(t, 3, req.Stock)
	assert.Equal(t, "handy", req.Description)
}

func TestProductDraftParseRejectsNonNumericPrice(t *testing.T) {
	_, err := ProductDraft{Name: "Widget", Price: "cheap", Stock: "3"}.Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `price "cheap" is not a number`)
}

func TestProductDraftParseRejectsFractionalStock(t *testing.T) {
	_, err := ProductDraft{Name: "Widget", Price: "1", Stock: "1.5"}.Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stock quantity")
}

func TestProductDraftParseLeavesEmptyNameToServer(t *testing.T) {
	req, err := ProductDraft{Name: "   ", Price: "1", Stock: "0"}.Parse()
	require.NoError(t, err)
	assert.Empty(t, req.Name)
}

func TestProductDraftIsZero(t *testing.T) {
	assert.True(t, ProductDraft{}.IsZero())
	assert.False(t, ProductDraft{Price: "2"}.IsZero())
}

func TestTimestampUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc3339", `"2025-08-25T10:30:00Z"`, time.Date(2025, 8, 25, 10, 30, 0, 0, time.UTC)},
		{"rfc3339 with offset", `"2025-08-25T10:30:00+02:00"`, time.Date(2025, 8, 25, 8, 30, 0, 0, time.UTC)},
		{"zoneless", `"2025-08-25T10:30:00.123456"`, time.Date(2025, 8, 25, 10, 30, 0, 123456000, time.UTC)},
		{"null", `null`, time.Time{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tc.input), &ts))
			assert.True(t, ts.Time.Equal(tc.want), "got %v, want %v", ts.Time, tc.want)
		})
	}
}

func TestTimestampUnmarshalRejectsGarbage(t *testing.T) {
	var ts Timestamp
	require.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
	require.Error(t, json.Unmarshal([]byte(`42`), &ts))
}

func TestProductUnmarshalToleratesMissingFields(t *testing.T) {
	payload := `{"product_id":7,"name":"Widget","price":9.5,"stock_quantity":3,"created_at":"2025-08-25T10:30:00","updated_at":null}`

	var p Product
	require.NoError(t, json.Unmarshal([]byte(payload), &p))
	assert.Equal(t, int64(7), p.ID)
	assert.Empty(t, p.Description)
	assert.Equal(t, 3, p.Stock)
	assert.False(t, p.CreatedAt.IsZero())
	assert.True(t, p.UpdatedAt.IsZero())
}

func TestNotificationExpired(t *testing.T) {
	now := time.Now()
	n := Notification{Kind: NotificationSuccess, VisibleUntil: now.Add(5 * time.Second)}

	assert.False(t, n.Expired(now))
	assert.False(t, n.Expired(now.Add(4*time.Second)))
	assert.True(t, n.Expired(now.Add(5*time.Second)))
	assert.True(t, n.Expired(now.Add(time.Minute)))
}
