package bankholiday

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedFixture = `{
	"england-and-wales": {
		"division": "england-and-wales",
		"events": [
			{"title": "Summer bank holiday", "date": "2026-08-31", "notes": "", "bunting": true},
			{"title": "Christmas Day", "date": "2026-12-25", "notes": "", "bunting": true}
		]
	},
	"scotland": {
		"division": "scotland",
		"events": [
			{"title": "2nd January", "date": "2026-01-02", "notes": "", "bunting": true}
		]
	}
}`

func TestClient_FetchRegion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(feedFixture))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	holidays, err := client.FetchRegion(context.Background(), "england-and-wales")
	require.NoError(t, err)
	require.Len(t, holidays, 2)
	assert.Equal(t, "Summer bank holiday", holidays[0].Title)
	assert.Equal(t, "2026-08-31", holidays[0].Date)
	assert.Equal(t, "england-and-wales", holidays[0].Region)
}

func TestClient_FetchRegion_UnknownDivision(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(feedFixture))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.FetchRegion(context.Background(), "atlantis")
	assert.Error(t, err)
}

func TestClient_FetchRegion_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.FetchRegion(context.Background(), "england-and-wales")
	assert.Error(t, err)
}
