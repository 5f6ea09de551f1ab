package frames

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"
)

func TestEmbeddedSet(t *testing.T) {
	set, err := Embedded()
	if err != nil {
		t.Fatalf("Embedded: %v", err)
	}

	if len(set.Rocket) != 2 {
		t.Errorf("rocket frames = %d, expected 2", len(set.Rocket))
	}
	if len(set.Garbage) == 0 {
		t.Error("expected garbage frames")
	}
	if len(set.Explosion) != 4 {
		t.Errorf("explosion frames = %d, expected 4", len(set.Explosion))
	}
	if set.GameOver == nil || set.GameOver.Rows == 0 {
		t.Error("expected a game over banner")
	}

	// All rocket frames must share one extent, the engine clamps with the first
	rows, cols := set.Rocket[0].Frame.Size()
	for _, n := range set.Rocket {
		r, c := n.Frame.Size()
		if r != rows || c != cols {
			t.Errorf("rocket frame %s is %dx%d, expected %dx%d", n.Name, r, c, rows, cols)
		}
	}
}

func TestLoadDirSortedAndFiltered(t *testing.T) {
	fsys := fstest.MapFS{
		"garbage/b.txt":     {Data: []byte("bb\n")},
		"garbage/a.txt":     {Data: []byte("a\naaa\n")},
		"garbage/notes.md":  {Data: []byte("ignored")},
		"garbage/sub/c.txt": {Data: []byte("nested")},
	}

	named, err := LoadDir(fsys, "garbage")
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(named) != 2 {
		t.Fatalf("LoadDir returned %d frames, expected 2", len(named))
	}
	if named[0].Name != "a" || named[1].Name != "b" {
		t.Errorf("names = %s, %s; expected a, b", named[0].Name, named[1].Name)
	}
	if rows, cols := named[0].Frame.Size(); rows != 2 || cols != 3 {
		t.Errorf("a.txt size = (%d, %d), expected (2, 3)", rows, cols)
	}
	if len(Frames(named)) != 2 {
		t.Error("Frames should keep every frame")
	}
}

func TestLoadSetMissingPieces(t *testing.T) {
	full := fstest.MapFS{
		"rocket/r.txt":    {Data: []byte("^")},
		"garbage/g.txt":   {Data: []byte("#")},
		"explosion/e.txt": {Data: []byte("*")},
		"game_over.txt":   {Data: []byte("GAME OVER")},
	}
	if _, err := LoadSet(full); err != nil {
		t.Fatalf("LoadSet of a complete set: %v", err)
	}

	noBanner := fstest.MapFS{
		"rocket/r.txt":    {Data: []byte("^")},
		"garbage/g.txt":   {Data: []byte("#")},
		"explosion/e.txt": {Data: []byte("*")},
	}
	if _, err := LoadSet(noBanner); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing game_over.txt error = %v, expected fs.ErrNotExist", err)
	}

	emptyGarbage := fstest.MapFS{
		"rocket/r.txt":     {Data: []byte("^")},
		"garbage/readme":   {Data: []byte("-")},
		"explosion/e.txt":  {Data: []byte("*")},
		"game_over.txt":    {Data: []byte("GAME OVER")},
	}
	if _, err := LoadSet(emptyGarbage); !errors.Is(err, ErrEmptyDir) {
		t.Errorf("empty garbage dir error = %v, expected ErrEmptyDir", err)
	}
}

func TestOpenMissingDirectory(t *testing.T) {
	if _, err := Open(t.TempDir()); err == nil {
		t.Error("Open of an empty directory should fail")
	}
}
