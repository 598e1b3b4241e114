package toast

import (
	"errors"

	"pot-portal/core/api"
)

// Describe returns the user-facing message for a failed call.
func Describe(err error) string {
	switch api.KindOf(err) {
	case api.KindUnauthorized:
		return "Your session has expired, please log in again"
	case api.KindForbidden:
		return "You do not have permission to do that"
	case api.KindNotFound:
		return "The requested resource was not found"
	case api.KindValidation:
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			return apiErr.Message
		}
		return "The request was rejected by the server"
	case api.KindServer:
		return "The server encountered an error, please try again later"
	case api.KindUnreachable:
		return "Unable to reach the server, check your connection"
	default:
		return "Something went wrong"
	}
}

// ReportError pushes an error toast describing err and returns its ID.
// Nothing is pushed for a nil error.
func ReportError(sink Sink, err error) int {
	if err == nil || sink == nil {
		return 0
	}
	return sink.Push(Describe(err), Options{Type: TypeError})
}
