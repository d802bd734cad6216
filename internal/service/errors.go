package service

import (
	"errors"

	"connectrpc.com/connect"
	"github.com/mmynk/giftdraw/internal/middleware"
	"github.com/mmynk/giftdraw/internal/storage"
	"github.com/mmynk/giftdraw/internal/validation"
)

// Failure reasons sent in the Giftdraw-Error-Reason error metadata.
const (
	ReasonValidation       = "validation"
	ReasonNotFound         = "not_found"
	ReasonInvalidHousehold = "invalid_household"
	ReasonNoParticipants   = "no_participants"
	ReasonInsufficient     = "insufficient_participants"
	ReasonGenerationFailed = "generation_failed"
	ReasonInvalidPairing   = "invalid_pairing"
	ReasonSaveFailed       = "save_failed"
	ReasonInternal         = "internal"
)

// newError builds a Connect error carrying reason in its metadata.
func newError(code connect.Code, reason string, err error) *connect.Error {
	connectErr := connect.NewError(code, err)
	connectErr.Meta().Set(middleware.ErrorReasonHeader, reason)
	return connectErr
}

// storageError maps a store failure: missing rows become NotFound, the rest Internal.
func storageError(err error) *connect.Error {
	if errors.Is(err, storage.ErrNotFound) {
		return newError(connect.CodeNotFound, ReasonNotFound, err)
	}
	return newError(connect.CodeInternal, ReasonInternal, err)
}

// validate checks msg against its struct tags.
func validate(msg any) error {
	if err := validation.Struct(msg); err != nil {
		return newError(connect.CodeInvalidArgument, ReasonValidation, err)
	}
	return nil
}

// ErrorReason returns the failure reason attached to a Connect error, if any.
func ErrorReason(err error) string {
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		return ""
	}
	return connectErr.Meta().Get(middleware.ErrorReasonHeader)
}
