package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndToEnd_SearchConnections(t *testing.T) {
	stub := NewStubUpstream()
	defer stub.Close()

	ts := NewTestServer(stub.URL())

	resp := ts.SearchRequest(DefaultSearchRequest())
	require.Equal(t, http.StatusOK, resp.Code)

	result, err := resp.ParseSearchResponse()
	require.NoError(t, err)

	assert.Equal(t, "Praha hl.n.", result.FromStation)
	assert.Equal(t, "Brno hl.n.", result.ToStation)
	assert.Equal(t, "it-h1", result.SearchHandle)
	assert.Contains(t, result.BookingURL, "fromName=Praha+hl.n.")

	require.Len(t, result.Connections, 2)

	first := result.Connections[0]
	assert.Equal(t, "c-1", first.ID)
	assert.Equal(t, 157, first.Duration.TotalMinutes)
	assert.Equal(t, "2h 37m", first.Duration.Formatted)
	assert.Equal(t, 0, first.Transfers)
	require.Len(t, first.Legs, 1)
	assert.Equal(t, "EC 75", first.Legs[0].Train)
	require.NotNil(t, first.Price)
	assert.Equal(t, 269.0, first.Price.Amount)
	assert.Equal(t, "269 Kč", first.Price.Formatted)

	second := result.Connections[1]
	assert.Equal(t, "c-2", second.ID)
	assert.Equal(t, 170, second.Duration.TotalMinutes)
	assert.Nil(t, second.Price, "a raw zero price must come back as unknown")
}

func TestEndToEnd_StationNotFound(t *testing.T) {
	stub := NewStubUpstream()
	defer stub.Close()

	ts := NewTestServer(stub.URL())

	req := DefaultSearchRequest()
	req.From = "Atlantis"
	resp := ts.SearchRequest(req)

	assert.Equal(t, http.StatusNotFound, resp.Code)

	errResp, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, "station_not_found", errResp["code"])
	assert.Contains(t, errResp["message"], "Atlantis")
}

func TestEndToEnd_PriceFailureDegrades(t *testing.T) {
	stub := NewStubUpstream()
	defer stub.Close()

	stub.Handle("/connections/price", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	})

	ts := NewTestServer(stub.URL())

	resp := ts.SearchRequest(DefaultSearchRequest())
	require.Equal(t, http.StatusOK, resp.Code, "a failing price call must not fail the search")

	result, err := resp.ParseSearchResponse()
	require.NoError(t, err)
	require.Len(t, result.Connections, 2)
	assert.Nil(t, result.Connections[0].Price)
	assert.Nil(t, result.Connections[1].Price)
}

func TestEndToEnd_UpstreamDown(t *testing.T) {
	stub := NewStubUpstream()
	defer stub.Close()

	stub.Handle("/connections/search", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "<html>stack trace</html>", http.StatusBadGateway)
	})

	ts := NewTestServer(stub.URL())

	resp := ts.SearchRequest(DefaultSearchRequest())
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
	assert.NotContains(t, string(resp.Body), "stack trace",
		"upstream response bodies must not leak to the client")
}

func TestEndToEnd_EmptyTimetable(t *testing.T) {
	stub := NewStubUpstream()
	defer stub.Close()

	stub.Handle("/connections/search", func(w http.ResponseWriter, r *http.Request) {
		respond(w, map[string]interface{}{"Handle": "it-h2", "Connections": []interface{}{}})
	})

	ts := NewTestServer(stub.URL())

	resp := ts.SearchRequest(DefaultSearchRequest())
	require.Equal(t, http.StatusOK, resp.Code)

	result, err := resp.ParseSearchResponse()
	require.NoError(t, err)
	assert.Empty(t, result.Connections)
	assert.Equal(t, "it-h2", result.SearchHandle)
}

func TestEndToEnd_SearchLocations(t *testing.T) {
	stub := NewStubUpstream()
	defer stub.Close()

	ts := NewTestServer(stub.URL())

	resp := ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/tools/search-locations",
		Body:   map[string]string{"query": "Praha"},
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var result struct {
		Locations []struct {
			Key  string `json:"key"`
			Name string `json:"name"`
			Type string `json:"type"`
		} `json:"locations"`
	}
	require.NoError(t, json.Unmarshal(resp.Body, &result))
	require.Len(t, result.Locations, 1)
	assert.Equal(t, "5457076", result.Locations[0].Key)
	assert.Equal(t, "Praha hl.n.", result.Locations[0].Name)
	assert.Equal(t, "station", result.Locations[0].Type)
}

func TestEndToEnd_PassengerTypes(t *testing.T) {
	stub := NewStubUpstream()
	defer stub.Close()

	ts := NewTestServer(stub.URL())

	resp := ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/tools/passenger-types",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, string(resp.Body), "ADULT")
}

func TestEndToEnd_ConnectionDetailsNotSupported(t *testing.T) {
	stub := NewStubUpstream()
	defer stub.Close()

	ts := NewTestServer(stub.URL())

	resp := ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/tools/connection-details",
		Body:   map[string]string{"searchHandle": "it-h1", "connectionId": "c-1"},
	})
	assert.Equal(t, http.StatusNotImplemented, resp.Code)

	errResp, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, "not_supported", errResp["code"])
}

func TestEndToEnd_Health(t *testing.T) {
	stub := NewStubUpstream()
	defer stub.Close()

	ts := NewTestServer(stub.URL())

	resp := ts.HealthRequest()
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, string(resp.Body), `"ok"`)
}

func TestEndToEnd_ValidationRejectedBeforeUpstream(t *testing.T) {
	stub := NewStubUpstream()
	defer stub.Close()

	called := false
	stub.Handle("/stations/match", func(w http.ResponseWriter, r *http.Request) {
		called = true
		respond(w, map[string]interface{}{"Objects": []interface{}{}})
	})

	ts := NewTestServer(stub.URL())

	req := DefaultSearchRequest()
	req.Departure = "not a timestamp"
	resp := ts.SearchRequest(req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.False(t, called, "invalid requests must not reach the upstream")
}
