package engine

import (
	"fmt"
	"rlg327/internal/domain"
	"rlg327/pkg/logger"
	"time"

	"github.com/sirupsen/logrus"
)

// AddLog добавляет запись в игровой журнал и дублирует ее в лог процесса
func (s *Simulation) AddLog(text, logType string) {
	s.logs = append(s.logs, domain.LogEntry{
		ID:        fmt.Sprintf("%d_%d_%d", s.depth, s.tick, len(s.logs)),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
	logger.Log.WithFields(logrus.Fields{
		"depth":     s.depth,
		"tick":      s.tick,
		"component": "game_log",
		"log_type":  logType,
	}).Info(text)
}

// Logs возвращает журнал в порядке записи. Срез нельзя менять.
func (s *Simulation) Logs() []domain.LogEntry { return s.logs }
