package leave

import "errors"

var (
	ErrLeaveTypeNotFound    = errors.New("leave type not found")
	ErrLeaveTypeCodeExists  = errors.New("leave type code already exists")
	ErrLeaveTypeNameExists  = errors.New("leave type name already exists")
	ErrLeaveTypeInUse       = errors.New("leave type is used in existing leave requests")
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrNoFieldsToUpdate     = errors.New("no fields to update")
	ErrUnauthorized         = errors.New("unauthorized access")
)
