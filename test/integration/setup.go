// Package integration provides helpers and integration tests for the
// connection search service. The tests drive the real HTTP handlers, use
// case and upstream client against a stubbed timetable upstream.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	toolhttp "github.com/JanProvaznik/cd-mcp/internal/adapter/http"
	"github.com/JanProvaznik/cd-mcp/internal/adapter/upstream/cdtt"
	"github.com/JanProvaznik/cd-mcp/internal/infrastructure/logger"
	"github.com/JanProvaznik/cd-mcp/internal/usecase"
	"github.com/JanProvaznik/cd-mcp/test/testutil"
)

// Scenario constants: two direct Praha -> Brno trains on 2025-12-15.
var (
	scenarioDeparture = time.Date(2025, 12, 15, 10, 0, 0, 0, time.UTC)

	trainOneDep = time.Date(2025, 12, 15, 10, 36, 0, 0, time.UTC)
	trainOneArr = time.Date(2025, 12, 15, 13, 13, 0, 0, time.UTC)
	trainTwoDep = time.Date(2025, 12, 15, 11, 0, 0, 0, time.UTC)
	trainTwoArr = time.Date(2025, 12, 15, 13, 50, 0, 0, time.UTC)
)

// StubUpstream is a fake timetable upstream speaking the vendor's
// enveloped JSON-POST protocol. Endpoints come preloaded with the
// Praha -> Brno scenario and can be overridden per test.
type StubUpstream struct {
	server   *httptest.Server
	handlers map[string]http.HandlerFunc
}

// NewStubUpstream starts a stub upstream with the default scenario.
func NewStubUpstream() *StubUpstream {
	s := &StubUpstream{
		handlers: make(map[string]http.HandlerFunc),
	}

	s.handlers["/session/create"] = func(w http.ResponseWriter, r *http.Request) {
		respond(w, map[string]interface{}{"SessionID": "it-session"})
	}

	s.handlers["/stations/match"] = func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Mask string `json:"Mask"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)

		switch req.Mask {
		case "Praha":
			respond(w, stationMatch(5457076, "Praha hl.n."))
		case "Brno":
			respond(w, stationMatch(5457598, "Brno hl.n."))
		default:
			respond(w, map[string]interface{}{"Objects": []interface{}{}})
		}
	}

	s.handlers["/connections/search"] = func(w http.ResponseWriter, r *http.Request) {
		respond(w, map[string]interface{}{
			"Handle": "it-h1",
			"Connections": []interface{}{
				scenarioConnection("c-1", trainOneDep, trainOneArr, "EC", "75"),
				scenarioConnection("c-2", trainTwoDep, trainTwoArr, "R", "883"),
			},
		})
	}

	s.handlers["/connections/price"] = func(w http.ResponseWriter, r *http.Request) {
		respond(w, map[string]interface{}{
			"Prices": []int64{testutil.MinorUnits(269), 0},
		})
	}

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := s.handlers[r.URL.Path]; ok {
			h(w, r)
			return
		}
		http.NotFound(w, r)
	}))
	return s
}

// Handle overrides one endpoint's behaviour.
func (s *StubUpstream) Handle(path string, fn http.HandlerFunc) {
	s.handlers[path] = fn
}

// URL returns the stub's base URL.
func (s *StubUpstream) URL() string {
	return s.server.URL
}

// Close shuts the stub down.
func (s *StubUpstream) Close() {
	s.server.Close()
}

// respond writes a payload in the vendor's single-field "d" envelope.
func respond(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"d": payload})
}

func stationMatch(id int64, name string) map[string]interface{} {
	return map[string]interface{}{
		"Objects": []interface{}{
			map[string]interface{}{
				"Item": map[string]interface{}{"ID": id, "Name": name, "Type": 1},
			},
		},
	}
}

func scenarioConnection(id string, dep, arr time.Time, trainType, trainNum string) map[string]interface{} {
	return map[string]interface{}{
		"ID": id,
		"Trains": []interface{}{
			map[string]interface{}{
				"From":      "Praha hl.n.",
				"To":        "Brno hl.n.",
				"DateTime1": testutil.DateWrapper(dep),
				"DateTime2": testutil.DateWrapper(arr),
				"Type":      trainType,
				"Num":       trainNum,
			},
		},
	}
}

// TestServer wraps an Echo instance wired through a real upstream client
// and provides helper methods for integration testing.
type TestServer struct {
	Echo *echo.Echo
}

// NewTestServer creates a test server whose upstream client points at the
// given stub.
func NewTestServer(upstreamURL string) *TestServer {
	log := logger.Nop()

	client := cdtt.NewClient(cdtt.Config{
		BaseURL:     upstreamURL,
		HTTPTimeout: 5 * time.Second,
		Logger:      log,
	})

	uc := usecase.NewConnectionSearchUseCase(client, client, client, &usecase.Config{
		SearchTimeout: 5 * time.Second,
		PriceTimeout:  2 * time.Second,
		MaxResults:    8,
		MaxLocations:  10,
		Logger:        log,
	})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := toolhttp.NewToolHandler(uc)
	toolhttp.RegisterRoutes(e, handler)

	return &TestServer{Echo: e}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	Body   interface{}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts a connection search with the given body.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/tools/search-connections",
		Body:   body,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSearchResponse parses the response body as a search response DTO.
func (r *Response) ParseSearchResponse() (*toolhttp.SearchConnectionsResponseDTO, error) {
	var resp toolhttp.SearchConnectionsResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Departure  string `json:"departure"`
	Passengers int    `json:"passengers,omitempty"`
}

// DefaultSearchRequest returns a valid search request body for the
// scenario data the stub serves.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		From:       "Praha",
		To:         "Brno",
		Departure:  scenarioDeparture.Format(time.RFC3339),
		Passengers: 1,
	}
}
