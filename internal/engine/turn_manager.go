package engine

import (
	"fmt"
	"rlg327/internal/domain"
	"rlg327/pkg/logger"
	"rlg327/pkg/pqueue"

	"github.com/sirupsen/logrus"
)

// TurnManager - очередь ходов: у каждого живого актора ровно одна запись,
// приоритет - накопленное время следующего хода.
type TurnManager struct {
	queue *pqueue.Queue[domain.ActorID]
}

func NewTurnManager() *TurnManager {
	return &TurnManager{queue: pqueue.New[domain.ActorID](domain.DefaultMonsters + 1)}
}

// Add регистрирует актора. Двойная регистрация - ошибка программы.
func (tm *TurnManager) Add(id domain.ActorID, priority int) {
	if err := tm.queue.Insert(id, priority); err != nil {
		panic(fmt.Sprintf("engine: actor %d queued twice: %v", id, err))
	}
	logger.Log.WithFields(logrus.Fields{
		"actor":    id,
		"priority": priority,
	}).Debug("Actor added to TurnManager")
}

// Next снимает актора, чей ход следующий. Вызывающий обязан вернуть его через Reinsert
// (или Add, если ход прерван).
func (tm *TurnManager) Next() (domain.ActorID, int, bool) {
	return tm.queue.ExtractMin()
}

// Reinsert возвращает актора в очередь после хода: priority + 1000/speed.
func (tm *TurnManager) Reinsert(id domain.ActorID, oldPriority, speed int) int {
	next := oldPriority + domain.TurnCost(speed)
	tm.Add(id, next)
	return next
}

// Remove убирает актора из очереди (например, при смерти).
func (tm *TurnManager) Remove(id domain.ActorID) bool {
	return tm.queue.Remove(id)
}

func (tm *TurnManager) Contains(id domain.ActorID) bool {
	return tm.queue.Contains(id)
}

func (tm *TurnManager) Priority(id domain.ActorID) (int, bool) {
	return tm.queue.Priority(id)
}

func (tm *TurnManager) Len() int {
	return tm.queue.Len()
}

// DebugDump возвращает снимок очереди для отладки
func (tm *TurnManager) DebugDump() []map[string]interface{} {
	result := make([]map[string]interface{}, 0, tm.queue.Len())
	tm.queue.Each(func(id domain.ActorID, priority int) {
		result = append(result, map[string]interface{}{
			"id":       id,
			"priority": priority,
		})
	})
	return result
}
