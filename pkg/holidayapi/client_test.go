package holidayapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicHolidays(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/PublicHolidays/2025/DE", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"date":"2025-01-01","localName":"Neujahr","name":"New Year's Day","countryCode":"DE"},
			{"date":"2025-05-01","localName":"Tag der Arbeit","name":"Labour Day","countryCode":"DE"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	holidays, err := client.PublicHolidays(context.Background(), "DE", 2025)

	require.NoError(t, err)
	require.Len(t, holidays, 2)
	assert.Equal(t, "2025-01-01", holidays[0].Date)
	assert.Equal(t, "Neujahr", holidays[0].LocalName)
	assert.Equal(t, "Labour Day", holidays[1].Name)
}

func TestPublicHolidaysNon200Status(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.PublicHolidays(context.Background(), "XX", 2025)

	assert.Error(t, err)
}

func TestPublicHolidaysInvalidBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.PublicHolidays(context.Background(), "DE", 2025)

	assert.Error(t, err)
}
