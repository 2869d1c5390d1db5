package schema

type StoreErrorCode string

const (
	StoreUpstreamError   StoreErrorCode = "UPSTREAM_ERROR"
	StoreTimeoutError    StoreErrorCode = "TIMEOUT"
	StoreConnectionError StoreErrorCode = "CONNECTION_ERROR"
)

// StoreError is a classified failure from the external reservation store.
// Message is surfaced to the caller verbatim.
type StoreError struct {
	Code    StoreErrorCode `json:"code"`
	Message string         `json:"message"`
}

func (e *StoreError) Error() string {
	return e.Message
}

func NewUpstreamError(msg string) *StoreError {
	return &StoreError{Code: StoreUpstreamError, Message: msg}
}

func NewTimeoutError(msg string) *StoreError {
	return &StoreError{Code: StoreTimeoutError, Message: msg}
}

func NewConnectionError(msg string) *StoreError {
	return &StoreError{Code: StoreConnectionError, Message: msg}
}
