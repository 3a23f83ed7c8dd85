package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// MsgConnection is shown when the API could not be reached at all.
const MsgConnection = "Erreur de connexion au serveur"

// APIError is the normalised failure of a call to the CHARGILI API.
// Status is 0 when no response was received.
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func NewAPIError(status int, message string) *APIError {
	return &APIError{Status: status, Message: message}
}

// NetworkError wraps a transport failure.
func NetworkError(err error) *APIError {
	return &APIError{Status: 0, Message: MsgConnection, Err: err}
}

// DomainError is a console-side refusal, raised before any API call.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *DomainError) Error() string {
	return e.Message
}

// ValidationErrors maps a form field (JSON name) to its message.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, v[f])
	}
	return strings.Join(msgs, ", ")
}

func (v ValidationErrors) Add(field, message string) {
	if _, exists := v[field]; !exists {
		v[field] = message
	}
}

// OrNil returns nil when no field failed.
func (v ValidationErrors) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// AsAPIError extracts an *APIError from the chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func IsUnauthorized(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Status == http.StatusUnauthorized
}

// StatusOf picks the console response status for err.
func StatusOf(err error) int {
	var (
		domainErr *DomainError
		valErr    ValidationErrors
	)
	switch {
	case err == nil:
		return http.StatusOK
	case stderrors.As(err, &valErr):
		return http.StatusUnprocessableEntity
	case stderrors.As(err, &domainErr):
		if domainErr.Status != 0 {
			return domainErr.Status
		}
		return http.StatusBadRequest
	}
	if apiErr, ok := AsAPIError(err); ok {
		if apiErr.Status == 0 {
			return http.StatusBadGateway
		}
		return apiErr.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the user facing message of err.
func MessageOf(err error) string {
	var domainErr *DomainError
	if stderrors.As(err, &domainErr) {
		return domainErr.Message
	}
	if apiErr, ok := AsAPIError(err); ok {
		return apiErr.Message
	}
	var valErr ValidationErrors
	if stderrors.As(err, &valErr) {
		return valErr.Error()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
