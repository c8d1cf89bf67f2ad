package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldAlias           = "alias"
	FieldChatID          = "chat-id"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldGame            = "game"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldLotID           = "lot-id"
	FieldOperatorID      = "operator-id"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldStack           = "stack"
	FieldStatus          = "status"
	FieldTraceID         = "trace-id"
	FieldUpdateKind      = "update-kind"
	FieldURL             = "url"
)
