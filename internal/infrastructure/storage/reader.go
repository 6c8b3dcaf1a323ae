package storage

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"rlg327/internal/domain"
	"rlg327/pkg/logger"

	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"
)

// Load читает уровень из каталога. Любая ошибка оборачивает domain.ErrLoadFailure.
func (s *LevelStore) Load() (*domain.Level, error) {
	path := s.Path()
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLoadFailure, err)
	}
	defer f.Close()

	level, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, err
	}
	logger.Log.WithFields(logrus.Fields{
		"component": "storage",
		"path":      path,
		"rooms":     len(level.Rooms),
	}).Info("Level loaded")
	return level, nil
}

// Decode читает уровень стандартного размера.
func Decode(r io.Reader) (*domain.Level, error) {
	return decode(r, domain.MapWidth, domain.MapHeight)
}

func decode(r io.Reader, width, height int) (*domain.Level, error) {
	// 1. Заголовок целиком
	var header FileHeader
	if err := binary.Read(r, binary.BigEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: header: %v", domain.ErrLoadFailure, err)
	}
	if string(header.Magic[:]) != MagicMarker {
		return nil, fmt.Errorf("%w: invalid magic %q", domain.ErrLoadFailure, header.Magic[:])
	}
	if header.Version != Version0 {
		return nil, fmt.Errorf("%w: unsupported version %d (expected %d)", domain.ErrLoadFailure, header.Version, Version0)
	}

	cells := width * height
	body := int(header.Size) - headerSize - cells
	if body < 0 || body%roomRecord != 0 {
		return nil, fmt.Errorf("%w: size %d does not match a %dx%d board", domain.ErrLoadFailure, header.Size, width, height)
	}

	// 2. Твердость построчно
	hardness := make([]byte, cells)
	if _, err := io.ReadFull(r, hardness); err != nil {
		return nil, fmt.Errorf("%w: hardness: %v", domain.ErrLoadFailure, err)
	}

	grid := domain.NewGrid(width, height)
	for y := range height {
		for x := range width {
			p := gridPoint(x, y)
			h := int(hardness[y*width+x])
			switch {
			case grid.IsBorder(p):
				if h != domain.HardnessImmutable {
					return nil, fmt.Errorf("%w: border cell %v has hardness %d", domain.ErrLoadFailure, p, h)
				}
			case h == domain.HardnessImmutable:
				return nil, fmt.Errorf("%w: interior cell %v is immutable", domain.ErrLoadFailure, p)
			case h == domain.HardnessOpen:
				grid.Carve(p, domain.Corridor)
			default:
				grid.SetRock(p, h)
			}
		}
	}

	// 3. Комнаты: сколько влезло в остаток файла
	records := make([]byte, body)
	if _, err := io.ReadFull(r, records); err != nil {
		return nil, fmt.Errorf("%w: rooms: %v", domain.ErrLoadFailure, err)
	}
	var one [1]byte
	if _, err := io.ReadFull(r, one[:]); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: data past declared size %d", domain.ErrLoadFailure, header.Size)
	}

	rooms := make([]domain.Room, 0, body/roomRecord)
	for i := 0; i < body; i += roomRecord {
		rec := records[i : i+roomRecord]
		room := domain.NewRoom(int(rec[0]), int(rec[1]), int(rec[2]), int(rec[3]))
		if err := applyRoom(grid, room); err != nil {
			return nil, fmt.Errorf("%w: room %d: %v", domain.ErrLoadFailure, len(rooms), err)
		}
		rooms = append(rooms, room)
	}

	return &domain.Level{Grid: grid, Rooms: rooms}, nil
}

// applyRoom помечает клетки комнаты как пол. Комната должна лежать внутри
// доски и целиком на открытых клетках.
func applyRoom(grid *domain.Grid, room domain.Room) error {
	if room.Width() < 1 || room.Height() < 1 {
		return fmt.Errorf("empty room %v", room)
	}
	if !grid.IsInterior(room.Start) || !grid.IsInterior(room.End) {
		return fmt.Errorf("room %v leaves the board interior", room)
	}
	for y := room.Start.Y; y <= room.End.Y; y++ {
		for x := room.Start.X; x <= room.End.X; x++ {
			p := gridPoint(x, y)
			if !grid.IsOpen(p) {
				return fmt.Errorf("room %v covers rock at %v", room, p)
			}
			grid.Carve(p, domain.Floor)
		}
	}
	return nil
}

func gridPoint(x, y int) gruid.Point { return gruid.Point{X: x, Y: y} }
