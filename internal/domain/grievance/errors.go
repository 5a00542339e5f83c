package grievance

import "errors"

var (
	ErrGrievanceNotFound = errors.New("grievance not found")
	ErrNotOwner          = errors.New("grievance belongs to another user")
	ErrAlreadyClosed     = errors.New("grievance is already resolved or rejected")
	ErrInvalidStatus     = errors.New("invalid grievance status")
	ErrAttachmentTooBig  = errors.New("attachment exceeds the size limit")
)
