package video

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// Encoder produces video segments from pre-rendered strip images and glues
// them together. Picture and segment names are relative to the encoder's
// working directory.
type Encoder interface {
	// Still encodes a fixed frame shown for the given number of seconds.
	Still(ctx context.Context, pic, out string, seconds int) error
	// Scroll encodes a horizontal scroll across pic covering scrollWidth
	// pixels at the configured speed.
	Scroll(ctx context.Context, pic, out string, scrollWidth int) error
	// Concat joins the segments in order into savePath and removes the
	// intermediate files.
	Concat(ctx context.Context, segments []string, savePath string) error
}

// FFmpeg drives the ffmpeg binary. Every invocation runs inside WorkDir so
// segment names stay short and the concat list needs no path escaping.
type FFmpeg struct {
	WorkDir  string
	ScreenW  int
	ScreenH  int
	FPS      int
	Back     string
	PxPerSec int
}

func (f *FFmpeg) Still(ctx context.Context, pic, out string, seconds int) error {
	return f.run(ctx, f.stillArgs(pic, out, seconds))
}

func (f *FFmpeg) Scroll(ctx context.Context, pic, out string, scrollWidth int) error {
	return f.run(ctx, f.scrollArgs(pic, out, scrollWidth))
}

// stillArgs loops one picture over the background canvas for a fixed time.
func (f *FFmpeg) stillArgs(pic, out string, seconds int) []string {
	return []string{
		"-loglevel", "warning",
		"-r", "1",
		"-loop", "1",
		"-i", pic,
		"-filter_complex", fmt.Sprintf("color=%s:s=%dx%d:r=%d[bg];[bg][0]overlay=shortest=1",
			f.Back, f.ScreenW, f.ScreenH, f.FPS),
		"-preset", "fast",
		"-t", strconv.Itoa(seconds),
		"-y", out,
	}
}

// scrollArgs slides the picture leftward across the background canvas. The
// extra second keeps the overlap region on screen when the scroll distance
// is not a whole multiple of the speed.
func (f *FFmpeg) scrollArgs(pic, out string, scrollWidth int) []string {
	runSeconds := scrollWidth/f.PxPerSec + 1
	return []string{
		"-loglevel", "warning",
		"-r", "1",
		"-loop", "1",
		"-t", strconv.Itoa(runSeconds),
		"-i", pic,
		"-filter_complex", fmt.Sprintf("color=%s:s=%dx%d:r=%d[bg];[bg][0]overlay=x=-t*%d:shortest=1",
			f.Back, f.ScreenW, f.ScreenH, f.FPS, f.PxPerSec),
		"-preset", "fast",
		"-y", out,
	}
}

func (f *FFmpeg) Concat(ctx context.Context, segments []string, savePath string) error {
	listPath, err := f.writeList(segments)
	if err != nil {
		return err
	}

	args := []string{
		"-loglevel", "warning",
		"-f", "concat",
		"-i", filepath.Base(listPath),
		"-c", "copy",
		"-y", savePath,
	}
	if err := f.run(ctx, args); err != nil {
		return err
	}

	// Временные файлы больше не нужны: список, сегменты и их кадры.
	_ = os.Remove(listPath)
	for _, seg := range segments {
		_ = os.Remove(filepath.Join(f.WorkDir, seg))
		pic := strings.TrimSuffix(seg, filepath.Ext(seg)) + ".png"
		_ = os.Remove(filepath.Join(f.WorkDir, pic))
	}
	return nil
}

// writeList builds the concat demuxer input list, one segment per line.
func (f *FFmpeg) writeList(segments []string) (string, error) {
	var b strings.Builder
	for _, seg := range segments {
		fmt.Fprintf(&b, "file %s\n", seg)
	}

	listPath := filepath.Join(f.WorkDir, "list.txt")
	if err := os.WriteFile(listPath, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("video: write concat list: %w", err)
	}
	return listPath, nil
}

func (f *FFmpeg) run(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	cmd.Dir = f.WorkDir
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg error: %v, output: %s", err, string(out))
	}
	return nil
}
