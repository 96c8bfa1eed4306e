package storefront

// ErrorKind mengelompokkan kegagalan di boundary client.
type ErrorKind string

const (
	// KindValidation: ditolak sebelum ada network call.
	KindValidation ErrorKind = "validation"
	// KindTransport: request tidak sampai atau response tidak terbaca.
	KindTransport ErrorKind = "transport"
	// KindService: server menjawab dengan error (non-2xx / success=false).
	KindService ErrorKind = "service"
)

// APIError adalah bentuk error ternormalisasi {kind, message}; pemakai
// tidak perlu menebak-nebak bentuk error mentah dari server.
type APIError struct {
	Kind    ErrorKind
	Message string
}

func (e *APIError) Error() string {
	return string(e.Kind) + ": " + e.Message
}

func validationError(message string) *APIError {
	return &APIError{Kind: KindValidation, Message: message}
}

func transportError(err error) *APIError {
	return &APIError{Kind: KindTransport, Message: err.Error()}
}

func serviceError(message string) *APIError {
	return &APIError{Kind: KindService, Message: message}
}
