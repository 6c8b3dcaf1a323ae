package domain

// Размеры доски
const (
	MapWidth  = 160
	MapHeight = 105
)

// Твердость породы
const (
	HardnessOpen      = 0
	HardnessImmutable = 255
	DigStrength       = 85 // сколько твердости снимает один удар туннельщика
)

// Параметры комнат
const (
	MinRoomWidth  = 7
	MaxRoomWidth  = 15
	MinRoomHeight = 5
	MaxRoomHeight = 10
)

// Ограничения конфигурации
const (
	MinRooms        = 10
	MaxRooms        = 50
	DefaultMonsters = 5
)

// Скорости и энергия
const (
	PlayerSpeed     = 10
	MinMonsterSpeed = 5
	MaxMonsterSpeed = 20
	EnergyPerTurn   = 1000
)

// TurnCost - сколько времени стоит один ход актора данной скорости.
func TurnCost(speed int) int {
	return EnergyPerTurn / speed
}
