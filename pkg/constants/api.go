package constants

// HTTP and API constants
const (
	ContentTypeJSON = "application/json"

	HeaderContentType = "Content-Type"
	HeaderXRequestID  = "X-Request-ID"
	HeaderOrigin      = "Origin"

	ResponseError = "error"
	FieldMessage  = "message"
	ResponseData  = "data"
	ResponseCode  = "code"

	ContextKeyRequestID = "request_id"
)

// Query parameter constants
const (
	ParamCached = "cached"
)
