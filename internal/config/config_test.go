package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ivlev/slides2video/internal/palette"
	"github.com/ivlev/slides2video/internal/slide"
)

func TestDefaultPassesValidation(t *testing.T) {
	cfg := Default()
	cfg.WorkDir = t.TempDir()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if got := cfg.Overlap(); got != 4 {
		t.Errorf("Overlap = %d, want 4", got)
	}
	if !filepath.IsAbs(cfg.SavePath) {
		t.Errorf("SavePath not absolute: %s", cfg.SavePath)
	}
	if filepath.Base(cfg.SavePath) != "output.mp4" {
		t.Errorf("SavePath = %s, want .../output.mp4", cfg.SavePath)
	}
}

func TestValidateCreatesDefaultWorkDir(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	fi, err := os.Stat("work")
	if err != nil || !fi.IsDir() {
		t.Errorf("default work dir not created: %v", err)
	}
	if cfg.WorkDir != "work" {
		t.Errorf("WorkDir = %s, want work", cfg.WorkDir)
	}
}

func TestValidateRejectsIndivisibleSlideWidth(t *testing.T) {
	cfg := Default()
	cfg.WorkDir = t.TempDir()
	cfg.SlideWidth = 481

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
	if !strings.Contains(err.Error(), "1920 % 481") {
		t.Errorf("error does not carry the division: %v", err)
	}
}

func TestValidateRejectsStepNotAboveOverlap(t *testing.T) {
	for _, step := range []int{4, 3, 0} {
		cfg := Default()
		cfg.WorkDir = t.TempDir()
		cfg.Step = step

		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("step %d: err = %v, want ErrInvalidConfig", step, err)
		}
	}
}

func TestValidateRejectsMissingWorkDir(t *testing.T) {
	cfg := Default()
	cfg.WorkDir = filepath.Join(t.TempDir(), "absent")

	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestValidateRejectsMissingFont(t *testing.T) {
	cfg := Default()
	cfg.WorkDir = t.TempDir()
	cfg.FontPath = filepath.Join(t.TempDir(), "absent.ttf")

	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestProjectRoundTrip(t *testing.T) {
	dir := t.TempDir()
	sep := palette.RGB(23, 23, 23)

	p := &Project{
		Config: *Default(),
		Operations: []slide.Operation{
			{Kind: slide.KindImage, Position: slide.At(1, 0, 520), Z: 0},
			{Kind: slide.KindText, MaxScale: 120, Color: palette.RGB(0, 0, 0), Position: slide.At(1, 520, 214), Z: 2},
			{Kind: slide.KindColor, Color: palette.RGB(0xE8, 0xF6, 0xFD), Position: slide.At(1, 734, 346), Z: 1},
		},
		Data: "data.json",
	}
	p.Config.Separator = &sep
	p.Config.Link = "https://example.com/catalog"

	path := filepath.Join(dir, "project.yaml")
	if err := p.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := LoadProject(path)
	if err != nil {
		t.Fatalf("LoadProject: %v", err)
	}

	if got.Config.ScreenW != 1920 || got.Config.Step != 20 {
		t.Errorf("config did not survive: %+v", got.Config)
	}
	if got.Config.Separator == nil || *got.Config.Separator != sep {
		t.Errorf("separator = %v, want %v", got.Config.Separator, sep)
	}
	if got.Config.Link != p.Config.Link {
		t.Errorf("link = %q", got.Config.Link)
	}
	if len(got.Operations) != 3 {
		t.Fatalf("operations = %d, want 3", len(got.Operations))
	}
	if got.Operations[2].Color != palette.RGB(0xE8, 0xF6, 0xFD) {
		t.Errorf("color block = %v", got.Operations[2].Color)
	}
	if got.Operations[1].MaxScale != 120 {
		t.Errorf("max scale = %v", got.Operations[1].MaxScale)
	}
	if got.Data != filepath.Join(dir, "data.json") {
		t.Errorf("data path = %s, want it resolved against the project dir", got.Data)
	}
}

func TestLoadProjectAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project.yaml")

	doc := `config:
  step: 30
operations:
  - kind: color
    color: snow
    position: {left: 1, top: 0, height: 1080}
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadProject(path)
	if err != nil {
		t.Fatalf("LoadProject: %v", err)
	}

	if p.Config.Step != 30 {
		t.Errorf("Step = %d, want 30", p.Config.Step)
	}
	if p.Config.ScreenW != 1920 || p.Config.FPS != 60 || p.Config.Back != "white" {
		t.Errorf("defaults not applied: %+v", p.Config)
	}
	if len(p.Operations) != 1 || p.Operations[0].Kind != slide.KindColor {
		t.Errorf("operations = %+v", p.Operations)
	}
}

func TestLoadProjectRejectsBadColor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project.yaml")

	doc := `operations:
  - kind: color
    color: "#ZZZZZZ"
    position: {left: 1, top: 0, height: 1080}
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadProject(path); !errors.Is(err, palette.ErrInvalidColor) {
		t.Errorf("err = %v, want ErrInvalidColor", err)
	}
}

func TestLoadData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")

	raw := `[["art.png", "Big Sale"], ["other.png", "Second"]]`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	rows, err := LoadData(path)
	if err != nil {
		t.Fatalf("LoadData: %v", err)
	}
	if len(rows) != 2 || rows[0][1] != "Big Sale" {
		t.Errorf("rows = %v", rows)
	}
}

func TestLoadDataMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")

	if err := os.WriteFile(path, []byte("{oops"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadData(path); err == nil {
		t.Error("expected an error for malformed JSON")
	}
}
