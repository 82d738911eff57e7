package consts

// Tables
const (
	DBHistory = "history"
)

// History
const (
	QHistID        = "id"
	QHistTarget    = "target"
	QHistStartedAt = "started_at"
)
