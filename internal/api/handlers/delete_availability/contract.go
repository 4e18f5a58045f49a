package delete_availability

import "context"

type AvailabilityService interface {
	Deactivate(ctx context.Context, windowID int64, userID int64, isAdmin bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
