// Package frames loads the game's text art.
//
// An art set is a directory tree:
//
//	rocket/      animation frames of the player craft, in file name order
//	garbage/     one file per kind of falling garbage
//	explosion/   explosion frames, in file name order
//	game_over.txt
//
// The default set is embedded in the binary; --frames points at a replacement.
package frames

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/vovakirdan/space-garbage/internal/core"
)

//go:embed assets
var embedded embed.FS

// ErrEmptyDir is returned when an art directory holds no frames.
var ErrEmptyDir = errors.New("no frames in directory")

// Named is a frame together with the file it came from.
type Named struct {
	Name  string
	Frame *core.Frame
}

// Set is the complete visual vocabulary of the game.
type Set struct {
	Rocket    []Named
	Garbage   []Named
	Explosion []Named
	GameOver  *core.Frame
}

// Open loads an art set from dir, or the embedded set when dir is empty.
func Open(dir string) (*Set, error) {
	if dir == "" {
		return Embedded()
	}
	return LoadSet(os.DirFS(dir))
}

// Embedded loads the art set compiled into the binary.
func Embedded() (*Set, error) {
	sub, err := fs.Sub(embedded, "assets")
	if err != nil {
		return nil, fmt.Errorf("frames: embedded assets: %w", err)
	}
	return LoadSet(sub)
}

// LoadSet loads every part of an art set from fsys.
func LoadSet(fsys fs.FS) (*Set, error) {
	var (
		set Set
		err error
	)

	if set.Rocket, err = LoadDir(fsys, "rocket"); err != nil {
		return nil, err
	}
	if set.Garbage, err = LoadDir(fsys, "garbage"); err != nil {
		return nil, err
	}
	if set.Explosion, err = LoadDir(fsys, "explosion"); err != nil {
		return nil, err
	}
	if set.GameOver, err = Load(fsys, "game_over.txt"); err != nil {
		return nil, err
	}
	return &set, nil
}

// Load reads a single frame file.
func Load(fsys fs.FS, name string) (*core.Frame, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("frames: cannot read %s: %w", name, err)
	}
	return core.ParseFrame(string(data)), nil
}

// LoadDir reads every .txt file in dir, sorted by file name.
func LoadDir(fsys fs.FS, dir string) ([]Named, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("frames: cannot list %s: %w", dir, err)
	}

	var out []Named
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		f, err := Load(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		out = append(out, Named{
			Name:  strings.TrimSuffix(e.Name(), ".txt"),
			Frame: f,
		})
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("frames: %s: %w", dir, ErrEmptyDir)
	}
	return out, nil
}

// Frames strips the names from a list of named frames.
func Frames(named []Named) []*core.Frame {
	out := make([]*core.Frame, len(named))
	for i, n := range named {
		out[i] = n.Frame
	}
	return out
}
