package cdtt

// Upstream endpoint paths. Every endpoint is an ASMX-style JSON POST whose
// response body is wrapped in a single-field "d" envelope.
const (
	endpointCreateSession     = "/session/create"
	endpointMatchStations     = "/stations/match"
	endpointSearchConnections = "/connections/search"
	endpointConnectionPrices  = "/connections/price"
)

// Fixed client identity sent with session creation. The values identify
// the calling app to the upstream; the notification flags are irrelevant
// to search results but required by the protocol.
const (
	clientAppID      = "cz.cd.cdmcp"
	clientDeviceDesc = "cd-mcp server"
)

// Vendor location type codes as returned by the station match endpoint.
const (
	stationTypeStation = 1
	stationTypeCity    = 2
)

// envelope is the single-field wrapper around every response body.
type envelope struct {
	D interface{} `json:"d"`
}

type createSessionRequest struct {
	App                  string `json:"App"`
	Device               string `json:"Device"`
	NotifyDelays         bool   `json:"NotifyDelays"`
	NotifyPlatformChange bool   `json:"NotifyPlatformChange"`
}

type createSessionResponse struct {
	SessionID string `json:"SessionID"`
}

type matchStationsRequest struct {
	SessionID string `json:"SessionID,omitempty"`
	Mask      string `json:"Mask"`
	MaxCount  int    `json:"MaxCount"`
	Type      int    `json:"Type,omitempty"`
}

type matchStationsResponse struct {
	Objects []stationObject `json:"Objects"`
}

// stationObject nests the actual item one level down, as the vendor does.
type stationObject struct {
	Item stationItem `json:"Item"`
}

type stationItem struct {
	ID   int64  `json:"ID"`
	Name string `json:"Name"`
	Type int    `json:"Type"`
}

type searchConnectionsRequest struct {
	SessionID  string   `json:"SessionID"`
	FromID     int64    `json:"FromID"`
	ToID       int64    `json:"ToID"`
	Departure  string   `json:"Departure"`
	Passengers []string `json:"Passengers"`
	MaxCount   int      `json:"MaxCount"`
}

type searchConnectionsResponse struct {
	Handle      string          `json:"Handle"`
	Connections []rawConnection `json:"Connections"`
}

// rawConnection is one journey offer as the vendor shapes it: an opaque
// ID plus the ordered train segments.
type rawConnection struct {
	ID     string     `json:"ID"`
	Trains []rawTrain `json:"Trains"`
}

// rawTrain is one vehicle segment. DateTime1/DateTime2 carry the
// departure and arrival instants in the vendor's /Date(ms)/ wrapper.
type rawTrain struct {
	From      string `json:"From"`
	To        string `json:"To"`
	DateTime1 string `json:"DateTime1"`
	DateTime2 string `json:"DateTime2"`
	Type      string `json:"Type"`
	Num       string `json:"Num"`
}

type connectionPricesRequest struct {
	SessionID     string   `json:"SessionID"`
	Handle        string   `json:"Handle"`
	ConnectionIDs []string `json:"ConnectionIDs"`
	Passengers    []string `json:"Passengers"`
}

type connectionPricesResponse struct {
	// Prices are totals in minor currency units (hundredths of CZK),
	// index-aligned with the requested connection IDs.
	Prices []int64 `json:"Prices"`
}
