package googledomain

const (
	CurrencyBRL = "BRL"

	// DateTimeLayout é o formato exigido em conversionDateTime
	DateTimeLayout = "2006-01-02 15:04:05-07:00"
)

// UploadClickConversionsRequest é o corpo de customers/{id}:uploadClickConversions
type UploadClickConversionsRequest struct {
	Conversions    []ClickConversion `json:"conversions"`
	PartialFailure bool              `json:"partialFailure"`
}

type ClickConversion struct {
	ConversionAction   string           `json:"conversionAction"`
	GCLID              string           `json:"gclid"`
	ConversionDateTime string           `json:"conversionDateTime"`
	ConversionValue    float64          `json:"conversionValue"`
	CurrencyCode       string           `json:"currencyCode"`
	OrderID            string           `json:"orderId,omitempty"`
	UserIdentifiers    []UserIdentifier `json:"userIdentifiers,omitempty"`
}

// UserIdentifier carrega chaves alternativas já em hash SHA-256
type UserIdentifier struct {
	HashedEmail       string `json:"hashedEmail,omitempty"`
	HashedPhoneNumber string `json:"hashedPhoneNumber,omitempty"`
}

type UploadClickConversionsResponse struct {
	PartialFailureError *Status `json:"partialFailureError,omitempty"`
	Results             []any   `json:"results"`
}

type Status struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse representa a estrutura de erro da API do Google Ads
type ErrorResponse struct {
	Error Status `json:"error"`
}
