package domain

// Типы записей игрового журнала
const (
	LogInfo   = "INFO"
	LogCombat = "COMBAT"
	LogDig    = "DIG"
	LogLevel  = "LEVEL"
)

// LogEntry - запись в игровом журнале
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
}
