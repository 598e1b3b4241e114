package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// Kind classifies a failed API call.
type Kind string

const (
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindValidation   Kind = "validation"
	KindServer       Kind = "server"
	KindUnreachable  Kind = "unreachable"
	KindUnknown      Kind = "unknown"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrServer       = errors.New("server error")
	ErrUnreachable  = errors.New("server unreachable")
	ErrUnknown      = errors.New("request failed")
)

var kindSentinels = map[Kind]error{
	KindUnauthorized: ErrUnauthorized,
	KindForbidden:    ErrForbidden,
	KindNotFound:     ErrNotFound,
	KindValidation:   ErrValidation,
	KindServer:       ErrServer,
	KindUnreachable:  ErrUnreachable,
	KindUnknown:      ErrUnknown,
}

// Error represents a failed call to the backend API.
type Error struct {
	// Method and URL identify the failed request.
	Method string
	URL    string

	// StatusCode is the HTTP status code, zero when no response was received.
	StatusCode int

	// Kind classifies the failure.
	Kind Kind

	// Message is the server-reported message, if any.
	Message string

	// Err is the underlying transport error for unreachable failures.
	Err error
}

// Error returns a formatted message including the status code and server message if available.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(e.sentinel().Error())
	if e.Method != "" {
		fmt.Fprintf(&b, " (%s %s)", e.Method, e.URL)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status code: %d)", e.StatusCode)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *Error) Unwrap() []error {
	errs := []error{e.sentinel()}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// sentinel returns the error matching e.Kind. Unset or unknown kinds map to ErrUnknown.
func (e *Error) sentinel() error {
	if s, ok := kindSentinels[e.Kind]; ok {
		return s
	}
	return ErrUnknown
}

// KindOf classifies any error returned by the client.
// Context cancellation is reported as KindUnknown; other errors without an *Error in
// their chain are considered transport failures.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	if errors.Is(err, context.Canceled) {
		return KindUnknown
	}
	return KindUnreachable
}

// classify maps an HTTP status code to a Kind.
func classify(status int) Kind {
	switch {
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusForbidden:
		return KindForbidden
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusBadRequest, status == http.StatusConflict, status == http.StatusUnprocessableEntity:
		return KindValidation
	case status >= 500:
		return KindServer
	default:
		return KindUnknown
	}
}

const maxPlainMessage = 200

// extractMessage pulls a human-readable message out of an error response body.
// It understands {"message": ...}, problem details ("errors", "detail", "title")
// and short plain-text bodies.
func extractMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	if !gjson.ValidBytes(body) {
		text := strings.TrimSpace(string(body))
		if len(text) > maxPlainMessage || strings.HasPrefix(text, "<") {
			return ""
		}
		return text
	}

	root := gjson.ParseBytes(body)
	if root.Type == gjson.String {
		return root.String()
	}

	if msg := root.Get("message"); msg.Type == gjson.String && msg.String() != "" {
		return msg.String()
	}

	if msg := firstValidationError(root.Get("errors")); msg != "" {
		return msg
	}

	for _, path := range []string{"detail", "title", "error"} {
		if msg := root.Get(path); msg.Type == gjson.String && msg.String() != "" {
			return msg.String()
		}
	}

	return ""
}

// firstValidationError returns the first message of an "errors" member, which is either
// a field -> messages object or an array of strings/objects.
func firstValidationError(errs gjson.Result) string {
	var msg string

	pick := func(v gjson.Result) string {
		switch {
		case v.IsArray():
			for _, el := range v.Array() {
				if s := describe(el); s != "" {
					return s
				}
			}
			return ""
		default:
			return describe(v)
		}
	}

	switch {
	case errs.IsObject():
		errs.ForEach(func(_, value gjson.Result) bool {
			msg = pick(value)
			return msg == ""
		})
	case errs.IsArray():
		msg = pick(errs)
	}

	return msg
}

func describe(v gjson.Result) string {
	if v.IsObject() {
		for _, path := range []string{"description", "message", "errorMessage"} {
			if s := v.Get(path).String(); s != "" {
				return s
			}
		}
		return ""
	}
	return v.String()
}
