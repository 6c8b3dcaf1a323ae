// Package version собирает баннер бинарника: коммит сборки и формат сохранений.
package version

import (
	"fmt"
	"rlg327/internal/domain"
	"rlg327/internal/infrastructure/storage"
)

// Commit задается при сборке:
// go build -ldflags "-X rlg327/internal/version.Commit=$(git rev-parse --short HEAD)"
var Commit string

// Info описывает, какие уровни умеет читать и писать бинарник.
type Info struct {
	Commit      string
	SaveMarker  string
	SaveVersion uint32
	MapWidth    int
	MapHeight   int
}

// Current возвращает сведения о текущей сборке.
func Current() Info {
	return Info{
		Commit:      Commit,
		SaveMarker:  storage.MagicMarker,
		SaveVersion: storage.Version0,
		MapWidth:    domain.MapWidth,
		MapHeight:   domain.MapHeight,
	}
}

func (i Info) String() string {
	commit := i.Commit
	if commit == "" {
		commit = "dev"
	}
	return fmt.Sprintf("rlg327 %s, save %s v%d, map %dx%d",
		commit, i.SaveMarker, i.SaveVersion, i.MapWidth, i.MapHeight)
}

// String - баннер для -v и стартовой записи в лог.
func String() string {
	return Current().String()
}
