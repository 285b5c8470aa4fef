package ioservice

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gnames/gn"
	"github.com/mavunowatch/mavuno/pkg/errcode"
)

// RequestError is returned when a call cannot be sent or the service
// does not answer.
func RequestError(url string, err error) error {
	msg := "Cannot reach <em>%s</em>: %s"
	vars := []any{url, cause(err)}
	return &gn.Error{
		Code: errcode.ServiceRequestError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("request to %s failed: %w", url, err),
	}
}

// EncodeError is returned when a request payload cannot be encoded.
func EncodeError(url string, err error) error {
	msg := "Cannot encode request to <em>%s</em>: %s"
	vars := []any{url, err.Error()}
	return &gn.Error{
		Code: errcode.ServiceEncodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot encode request to %s: %w", url, err),
	}
}

// DecodeError is returned when a reply is not valid JSON of the expected
// shape.
func DecodeError(url string, err error) error {
	msg := "Cannot read reply from <em>%s</em>: %s"
	vars := []any{url, err.Error()}
	return &gn.Error{
		Code: errcode.ServiceDecodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot decode reply from %s: %w", url, err),
	}
}

// StatusError is returned for a non-2xx reply that does not explain
// itself with an error field.
func StatusError(url string, code int) error {
	status := fmt.Sprintf("%d %s", code, http.StatusText(code))
	msg := "Service at <em>%s</em> replied %s"
	vars := []any{url, status}
	return &gn.Error{
		Code: errcode.ServiceStatusError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unexpected status from %s: %s", url, status),
	}
}

// cause strips the method and URL that net/http puts in front of
// transport errors, the URL is shown separately.
func cause(err error) string {
	var uErr *url.Error
	if errors.As(err, &uErr) {
		return uErr.Err.Error()
	}
	return err.Error()
}
