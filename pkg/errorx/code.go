package errorx

type Code int

var Unknown = Error{Code: 100000, Message: "Request failed"}

const (
	// Common codes
	BadRequest Code = 100001
	NotFound   Code = 100004
	Internal   Code = 100007

	// OAuth codes
	InvalidState        Code = 200001
	MissingCode         Code = 200002
	TokenExchangeFailed Code = 200003

	// Relay codes
	MissingFields Code = 300001
	NotAuthorized Code = 300002
	MissingConfig Code = 300003
	RemoteError   Code = 300004
)
