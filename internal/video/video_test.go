package video

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func testEncoder(dir string) *FFmpeg {
	return &FFmpeg{
		WorkDir:  dir,
		ScreenW:  1920,
		ScreenH:  1080,
		FPS:      60,
		Back:     "white",
		PxPerSec: 160,
	}
}

func TestStillArgs(t *testing.T) {
	f := testEncoder(t.TempDir())

	got := f.stillArgs("cover.png", "cover.mp4", 4)
	want := []string{
		"-loglevel", "warning",
		"-r", "1",
		"-loop", "1",
		"-i", "cover.png",
		"-filter_complex", "color=white:s=1920x1080:r=60[bg];[bg][0]overlay=shortest=1",
		"-preset", "fast",
		"-t", "4",
		"-y", "cover.mp4",
	}
	if !slices.Equal(got, want) {
		t.Errorf("stillArgs = %q, want %q", got, want)
	}
}

func TestScrollArgs(t *testing.T) {
	f := testEncoder(t.TempDir())

	got := f.scrollArgs("03.png", "03.mp4", 3200)
	want := []string{
		"-loglevel", "warning",
		"-r", "1",
		"-loop", "1",
		"-t", "21",
		"-i", "03.png",
		"-filter_complex", "color=white:s=1920x1080:r=60[bg];[bg][0]overlay=x=-t*160:shortest=1",
		"-preset", "fast",
		"-y", "03.mp4",
	}
	if !slices.Equal(got, want) {
		t.Errorf("scrollArgs = %q, want %q", got, want)
	}
}

func TestScrollRunTimeRoundsUp(t *testing.T) {
	f := testEncoder(t.TempDir())

	// 150 px at 160 px/s still gets a full extra second.
	args := f.scrollArgs("a.png", "a.mp4", 150)
	if args[7] != "1" {
		t.Errorf("run seconds = %s, want 1", args[7])
	}

	args = f.scrollArgs("a.png", "a.mp4", 320)
	if args[7] != "3" {
		t.Errorf("run seconds = %s, want 3", args[7])
	}
}

func TestWriteList(t *testing.T) {
	dir := t.TempDir()
	f := testEncoder(dir)

	listPath, err := f.writeList([]string{"cover.mp4", "00.mp4", "01.mp4", "ending.mp4"})
	if err != nil {
		t.Fatalf("writeList: %v", err)
	}
	if listPath != filepath.Join(dir, "list.txt") {
		t.Errorf("list written to %s", listPath)
	}

	data, err := os.ReadFile(listPath)
	if err != nil {
		t.Fatal(err)
	}
	want := "file cover.mp4\nfile 00.mp4\nfile 01.mp4\nfile ending.mp4\n"
	if string(data) != want {
		t.Errorf("list contents:\n%s\nwant:\n%s", data, want)
	}
}
