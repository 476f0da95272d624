package booking

import "github.com/skyreach/OOH-BookingService/pkg/dbmetrics"

// DBExecutor query surface shared with the dbmetrics wrapper
type DBExecutor = dbmetrics.DBExecutor
