package system

import (
	"image"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWorkersExplicitWins(t *testing.T) {
	if got := Workers(3, 1<<30); got != 3 {
		t.Errorf("Workers = %d, want 3", got)
	}
}

func TestWorkersAtLeastOne(t *testing.T) {
	// A frame so large that no machine fits even one forces the floor.
	if got := Workers(0, math.MaxUint64); got != 1 {
		t.Errorf("Workers = %d, want 1", got)
	}
}

func TestWorkersAutoIsPositive(t *testing.T) {
	if got := Workers(0, 0); got < 1 {
		t.Errorf("Workers = %d, want >= 1", got)
	}
}

func TestFindLatestProject(t *testing.T) {
	dir := t.TempDir()

	files := []string{"old.yaml", "mid.yml", "fresh.yaml"}
	for i, name := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("config: {}\n"), 0644); err != nil {
			t.Fatal(err)
		}
		modTime := time.Now().Add(time.Duration(i-len(files)) * time.Hour)
		if err := os.Chtimes(path, modTime, modTime); err != nil {
			t.Fatal(err)
		}
	}

	// Non-project files never win, no matter how fresh.
	stray := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(stray, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	latest, err := FindLatestProject(dir)
	if err != nil {
		t.Fatalf("FindLatestProject: %v", err)
	}
	if latest != filepath.Join(dir, "fresh.yaml") {
		t.Errorf("latest = %s, want fresh.yaml", latest)
	}
}

func TestFindLatestProjectEmptyDir(t *testing.T) {
	if _, err := FindLatestProject(t.TempDir()); err == nil {
		t.Error("expected an error for a dir without projects")
	}
}

func TestBufferPoolRoundTrip(t *testing.T) {
	pool := NewBufferPool()
	rect := image.Rect(0, 0, 64, 32)

	buf := pool.Get(rect)
	if buf == nil || buf.Bounds() != rect {
		t.Fatalf("Get returned %v", buf)
	}

	pool.Put(buf)

	again := pool.Get(rect)
	if again.Bounds() != rect {
		t.Errorf("bounds after reuse = %v", again.Bounds())
	}
}

func TestBufferPoolIgnoresStrays(t *testing.T) {
	pool := NewBufferPool()

	pool.Put(nil)
	pool.Put(image.NewRGBA(image.Rect(0, 0, 8, 8)))

	buf := pool.Get(image.Rect(0, 0, 16, 16))
	if buf.Bounds().Dx() != 16 {
		t.Errorf("got %v", buf.Bounds())
	}
}
