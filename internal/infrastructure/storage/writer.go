package storage

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"rlg327/internal/domain"
	"rlg327/pkg/logger"

	"github.com/sirupsen/logrus"
)

const (
	MagicMarker string = `RLG327-S2017` // 12 байт, без нуля в конце
	Version0    uint32 = 0

	// FileName - имя файла уровня внутри каталога сохранений
	FileName = "dungeon"

	headerSize = 20
	roomRecord = 4
)

// FileHeader - точное представление заголовка файла.
// binary.Write пишет его целиком: здесь только массивы и числа.
type FileHeader struct {
	Magic   [12]byte // 12 байт
	Version uint32   // 4 байта, big-endian
	Size    uint32   // 4 байта, полный размер файла
}

// LevelStore читает и пишет уровень в каталоге сохранений.
type LevelStore struct {
	Dir string
}

// NewLevelStore создает каталог, если его нет.
func NewLevelStore(dir string) (*LevelStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSaveFailure, err)
	}
	return &LevelStore{Dir: dir}, nil
}

// Path - полный путь к файлу уровня.
func (s *LevelStore) Path() string {
	return filepath.Join(s.Dir, FileName)
}

func (s *LevelStore) Save(level *domain.Level) error {
	path := s.Path()
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSaveFailure, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := Encode(bw, level); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSaveFailure, err)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "storage",
		"path":      path,
		"rooms":     len(level.Rooms),
	}).Info("Level saved")
	return nil
}

// Encode пишет уровень в формате RLG327: заголовок, твердость построчно, комнаты.
func Encode(w io.Writer, level *domain.Level) error {
	grid := level.Grid
	cells := grid.Width() * grid.Height()

	header := FileHeader{
		Version: Version0,
		Size:    uint32(headerSize + cells + roomRecord*len(level.Rooms)),
	}
	copy(header.Magic[:], MagicMarker)

	if err := binary.Write(w, binary.BigEndian, &header); err != nil {
		return fmt.Errorf("%w: header: %v", domain.ErrSaveFailure, err)
	}

	buf := make([]byte, 0, cells)
	for y := range grid.Height() {
		for x := range grid.Width() {
			buf = append(buf, byte(grid.Hardness(gridPoint(x, y))))
		}
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("%w: hardness: %v", domain.ErrSaveFailure, err)
	}

	buf = buf[:0]
	for i, r := range level.Rooms {
		if r.End.X > 255 || r.End.Y > 255 || r.Width() > 255 || r.Height() > 255 {
			return fmt.Errorf("%w: room %d %v does not fit a byte record", domain.ErrSaveFailure, i, r)
		}
		buf = append(buf, byte(r.Start.X), byte(r.Start.Y), byte(r.Width()), byte(r.Height()))
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("%w: rooms: %v", domain.ErrSaveFailure, err)
	}
	return nil
}
