package metadomain

const (
	ActionSourceWebsite = "website"
	CurrencyBRL         = "BRL"

	EventLead              = "Lead"
	EventContact           = "Contact"
	EventPurchase          = "Purchase"
	EventSubmitApplication = "SubmitApplication"
)

// EventsRequest é o corpo aceito por /{pixel_id}/events
type EventsRequest struct {
	Data          []ServerEvent `json:"data"`
	TestEventCode string        `json:"test_event_code,omitempty"`
}

type ServerEvent struct {
	EventName      string      `json:"event_name"`
	EventTime      int64       `json:"event_time"`
	EventID        string      `json:"event_id"`
	ActionSource   string      `json:"action_source"`
	EventSourceURL string      `json:"event_source_url,omitempty"`
	UserData       UserData    `json:"user_data"`
	CustomData     *CustomData `json:"custom_data,omitempty"`
}

// UserData carrega apenas identificadores já em hash SHA-256
type UserData struct {
	Emails          []string `json:"em,omitempty"`
	Phones          []string `json:"ph,omitempty"`
	ClickID         string   `json:"fbc,omitempty"`
	ClientIPAddress string   `json:"client_ip_address,omitempty"`
}

type CustomData struct {
	Currency string  `json:"currency"`
	Value    float64 `json:"value"`
}

type EventsResponse struct {
	EventsReceived int      `json:"events_received"`
	Messages       []string `json:"messages"`
	FBTraceID      string   `json:"fbtrace_id"`
}
