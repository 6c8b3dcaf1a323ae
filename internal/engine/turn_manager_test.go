package engine

import (
	"rlg327/internal/domain"
	"testing"
)

func TestTurnManager(t *testing.T) {
	tm := NewTurnManager()
	tm.Add(domain.PlayerID, 100)
	tm.Add(1, 50)  // скорость 20
	tm.Add(2, 200) // скорость 5

	if tm.Len() != 3 {
		t.Errorf("Expected length 3, got %d", tm.Len())
	}

	// Первым ходит самый быстрый монстр
	id, prio, ok := tm.Next()
	if !ok || id != 1 || prio != 50 {
		t.Fatalf("Expected actor 1 at 50, got %d at %d", id, prio)
	}
	if next := tm.Reinsert(id, prio, 20); next != 100 {
		t.Errorf("Expected reinsert at 100, got %d", next)
	}

	// Игрок вставлен раньше монстра с тем же приоритетом
	id, prio, _ = tm.Next()
	if id != domain.PlayerID || prio != 100 {
		t.Errorf("Expected player at 100, got %d at %d", id, prio)
	}
	tm.Reinsert(id, prio, domain.PlayerSpeed)

	id, _, _ = tm.Next()
	if id != 1 {
		t.Errorf("Expected actor 1 (tick 100), got %d", id)
	}

	if !tm.Remove(2) {
		t.Error("Expected actor 2 to be removed")
	}
	if tm.Contains(2) {
		t.Error("Actor 2 still queued")
	}

	dump := tm.DebugDump()
	if len(dump) != 1 || dump[0]["id"] != domain.PlayerID {
		t.Errorf("Unexpected dump %v", dump)
	}
}

func TestTurnManager_FasterActsMoreOften(t *testing.T) {
	tm := NewTurnManager()
	speeds := map[domain.ActorID]int{domain.PlayerID: domain.PlayerSpeed, 1: 5, 2: 20}
	for id, speed := range speeds {
		tm.Add(id, domain.TurnCost(speed))
	}

	counts := map[domain.ActorID]int{}
	last := map[domain.ActorID]int{}
	for range 350 {
		id, prio, _ := tm.Next()
		if prio < last[id] {
			t.Fatalf("priority of %d went backwards: %d after %d", id, prio, last[id])
		}
		last[id] = prio
		counts[id]++
		tm.Reinsert(id, prio, speeds[id])
	}

	// 20:10:5 по скорости
	if counts[2] != 2*counts[domain.PlayerID] || counts[domain.PlayerID] != 2*counts[1] {
		t.Errorf("Unexpected turn distribution %v", counts)
	}
}
