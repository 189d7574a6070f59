package metadomain

// ErrorResponse é o corpo de erro da Graph API
type ErrorResponse struct {
	Error struct {
		Message      string `json:"message"`
		Type         string `json:"type"`
		Code         int    `json:"code"`
		ErrorSubcode int    `json:"error_subcode,omitempty"`
		UserTitle    string `json:"error_user_title,omitempty"`
		FBTraceID    string `json:"fbtrace_id"`
	} `json:"error"`
}

type FailureKind int

const (
	FailureUnknown FailureKind = iota
	// token do pixel expirado ou revogado; reenvio não resolve
	FailureToken
	// limite de chamadas ou instabilidade; o reenvio agendado resolve
	FailureTransient
	// evento recusado por parâmetro inválido (ex.: user_data sem hash)
	FailureRejected
)

const (
	codeInvalidParameter = 100
	codeAccessToken      = 190
)

var tokenSubcodes = map[int]struct{}{460: {}, 463: {}, 467: {}}

func (e *ErrorResponse) Kind() FailureKind {
	switch e.Error.Code {
	case codeAccessToken:
		return FailureToken
	case 1, 2, 4, 17, 341:
		return FailureTransient
	case codeInvalidParameter:
		return FailureRejected
	}
	if _, ok := tokenSubcodes[e.Error.ErrorSubcode]; ok && e.Error.Type == "OAuthException" {
		return FailureToken
	}
	return FailureUnknown
}
