// Package config describes a promo video project: screen and scroll
// geometry, encoder knobs, and the slide template the data rows are
// rendered through.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ivlev/slides2video/internal/palette"
)

// ErrInvalidConfig is returned by Validate for any constraint violation.
var ErrInvalidConfig = errors.New("config: invalid config")

// Config holds every project knob. The zero value is not usable; start
// from Default and override.
type Config struct {
	ScreenW int `yaml:"screen_width"`
	ScreenH int `yaml:"screen_height"`
	FPS     int `yaml:"fps"`

	// Back is the video background in ffmpeg color syntax ("white",
	// "0x112233").
	Back string `yaml:"back"`

	CoverSec  int `yaml:"cover_sec"`
	EndingSec int `yaml:"ending_sec"`

	// PxPerSec is the scroll speed of the slide strip.
	PxPerSec   int `yaml:"px_per_sec"`
	SlideWidth int `yaml:"slide_width"`

	// Step is the number of slides per chunk.
	Step int `yaml:"step"`

	WorkDir  string `yaml:"work_dir,omitempty"`
	SavePath string `yaml:"save_path,omitempty"`

	// FontPath names the TTF/OTF used for text elements. Empty means the
	// built-in face.
	FontPath string `yaml:"font,omitempty"`

	// Separator, when set, draws a vertical line along each slide's left
	// edge so adjacent slides read as separate cards.
	Separator *palette.Color `yaml:"separator,omitempty"`

	// Link, when set, is encoded as a QR code on the ending frame.
	Link string `yaml:"link,omitempty"`

	// Workers caps parallel chunk rendering. Zero means size by machine
	// resources.
	Workers int `yaml:"workers,omitempty"`
}

// Default returns the original tuning: FullHD at 60 fps on white, four
// second cover and ending, 160 px/s scroll over 480 px slides taken twenty
// at a time.
func Default() *Config {
	return &Config{
		ScreenW:    1920,
		ScreenH:    1080,
		FPS:        60,
		Back:       "white",
		CoverSec:   4,
		EndingSec:  4,
		PxPerSec:   160,
		SlideWidth: 480,
		Step:       20,
	}
}

// Overlap is the number of slides shared by consecutive chunks: how many
// whole slides fit on screen at once.
func (c *Config) Overlap() int {
	if c.SlideWidth <= 0 {
		return 0
	}
	return c.ScreenW / c.SlideWidth
}

// Validate checks the geometry constraints and resolves the path fields,
// creating the default work dir when none is given. It runs once, before
// any rendering starts.
func (c *Config) Validate() error {
	if c.ScreenW <= 0 || c.ScreenH <= 0 {
		return fmt.Errorf("%w: screen %dx%d", ErrInvalidConfig, c.ScreenW, c.ScreenH)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps %d", ErrInvalidConfig, c.FPS)
	}
	if c.PxPerSec <= 0 {
		return fmt.Errorf("%w: px_per_sec %d", ErrInvalidConfig, c.PxPerSec)
	}
	if c.CoverSec <= 0 || c.EndingSec <= 0 {
		return fmt.Errorf("%w: cover_sec %d, ending_sec %d", ErrInvalidConfig, c.CoverSec, c.EndingSec)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Workers)
	}
	if c.SlideWidth <= 0 {
		return fmt.Errorf("%w: slide_width %d", ErrInvalidConfig, c.SlideWidth)
	}
	if c.ScreenW%c.SlideWidth != 0 {
		return fmt.Errorf("%w: screen width must be a multiple of slide width, got %d %% %d = %d",
			ErrInvalidConfig, c.ScreenW, c.SlideWidth, c.ScreenW%c.SlideWidth)
	}
	if overlap := c.Overlap(); c.Step <= overlap {
		return fmt.Errorf("%w: step %d must exceed overlap %d", ErrInvalidConfig, c.Step, overlap)
	}

	if c.WorkDir == "" {
		c.WorkDir = "work"
		if err := os.MkdirAll(c.WorkDir, 0755); err != nil {
			return fmt.Errorf("work dir: %w", err)
		}
	} else if fi, err := os.Stat(c.WorkDir); err != nil {
		return fmt.Errorf("%w: work dir %s: %v", ErrInvalidConfig, c.WorkDir, err)
	} else if !fi.IsDir() {
		return fmt.Errorf("%w: work dir %s is not a directory", ErrInvalidConfig, c.WorkDir)
	}

	if c.FontPath != "" {
		if _, err := os.Stat(c.FontPath); err != nil {
			return fmt.Errorf("%w: font %s: %v", ErrInvalidConfig, c.FontPath, err)
		}
	}

	if c.SavePath == "" {
		c.SavePath = filepath.Join(c.WorkDir, "output.mp4")
	}
	// ffmpeg runs with the work dir as its working directory, so the save
	// path must not stay relative.
	abs, err := filepath.Abs(c.SavePath)
	if err != nil {
		return fmt.Errorf("save path: %w", err)
	}
	c.SavePath = abs

	return nil
}
