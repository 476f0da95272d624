package wipe_recycle_bin

import "context"

type RecycleBinService interface {
	Wipe(ctx context.Context) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
