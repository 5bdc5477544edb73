// Package response defines the uniform envelope every service operation
// returns. Expected outcomes (not found, already exists) are status codes,
// not errors; only the transport decides what to do with them.
package response

// StatusCode is the closed set of service outcomes.
type StatusCode int

const (
	Ok StatusCode = iota
	UserNotFound
	UserAlreadyExists
	MessageNotFound
	InternalServerError
)

func (c StatusCode) String() string {
	switch c {
	case Ok:
		return "Ok"
	case UserNotFound:
		return "UserNotFound"
	case UserAlreadyExists:
		return "UserAlreadyExists"
	case MessageNotFound:
		return "MessageNotFound"
	default:
		return "InternalServerError"
	}
}

// Response wraps a service outcome: a status code, a human-readable
// description and, on success, an optional payload.
type Response[T any] struct {
	StatusCode  StatusCode
	Description string
	Data        T
}

// IsOk reports whether the operation succeeded.
func (r Response[T]) IsOk() bool { return r.StatusCode == Ok }

func OkData[T any](data T, description string) Response[T] {
	return Response[T]{StatusCode: Ok, Description: description, Data: data}
}

func OkMessage[T any](description string) Response[T] {
	return Response[T]{StatusCode: Ok, Description: description}
}

func Fail[T any](code StatusCode, description string) Response[T] {
	return Response[T]{StatusCode: code, Description: description}
}

// Internal converts an unexpected failure (typically a storage fault) into
// an InternalServerError envelope, surfacing the fault text verbatim.
func Internal[T any](err error) Response[T] {
	return Response[T]{StatusCode: InternalServerError, Description: err.Error()}
}
