package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-vault-tasks/internal/app"
	"github.com/MKhiriev/go-vault-tasks/internal/service"
	"github.com/MKhiriev/go-vault-tasks/internal/store"
)

// errorStatuses is ordered like errorMessages. Storage errors may wrap a
// context error or a domain error, so those come before the generic storage
// sentinels.
var errorStatuses = []struct {
	err    error
	status int
}{
	{context.DeadlineExceeded, http.StatusServiceUnavailable},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrValidationNoUserID, http.StatusBadRequest},
	{service.ErrValidationNoTasks, http.StatusBadRequest},
	{service.ErrValidationInvalidStatus, http.StatusBadRequest},
	{service.ErrIntegrityCheckFailed, http.StatusBadRequest},
	{service.ErrTokenIsExpired, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrMissingCapability, http.StatusForbidden},
	{service.ErrUnauthorizedAccessToDifferentUserData, http.StatusForbidden},

	{store.ErrVaultTaskNotFound, http.StatusNotFound},
	{store.ErrVaultTaskAlreadyExists, http.StatusConflict},
	{store.ErrVersionConflict, http.StatusConflict},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

// statusFromError returns the status of the first matching entry of
// errorStatuses, or 500.
func statusFromError(err error) int {
	for _, s := range errorStatuses {
		if errors.Is(err, s.err) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

// errorMessages is ordered from the most to the least specific error, since
// validation errors wrap both a specific cause and ErrInvalidDataProvided.
var errorMessages = []struct {
	err     error
	message string
}{
	{service.ErrValidationNoTasks, app.MsgNoTasksProvided},
	{service.ErrValidationInvalidStatus, app.MsgInvalidStatus},
	{service.ErrIntegrityCheckFailed, app.MsgIntegrityCheckFailed},
	{service.ErrInvalidDataProvided, app.MsgInvalidDataProvided},
	{service.ErrValidationNoUserID, app.MsgInvalidDataProvided},
	{service.ErrTokenIsExpired, app.MsgTokenIsExpired},
	{service.ErrTokenIsExpiredOrInvalid, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrMissingCapability, app.MsgMissingCapability},
	{service.ErrUnauthorizedAccessToDifferentUserData, app.MsgAccessDenied},
	{store.ErrVaultTaskNotFound, app.MsgTaskNotFound},
	{store.ErrVaultTaskAlreadyExists, app.MsgTaskAlreadyExists},
	{store.ErrVersionConflict, app.MsgVersionConflict},
}

// messageFromError returns the response body for err. Storage and unknown
// errors never leak their text to the caller.
func messageFromError(err error) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.err) {
			return m.message
		}
	}
	return app.MsgInternalServerError
}

// writeBodyError answers a request whose body could not be read or decoded.
// Bodies cut off by http.MaxBytesReader get 413, everything else 400.
func writeBodyError(w http.ResponseWriter, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		http.Error(w, app.MsgRequestBodyTooLarge, http.StatusRequestEntityTooLarge)
		return
	}

	http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
}
