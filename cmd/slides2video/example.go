package main

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/ivlev/slides2video/internal/config"
	"github.com/ivlev/slides2video/internal/geom"
	"github.com/ivlev/slides2video/internal/palette"
	"github.com/ivlev/slides2video/internal/raster"
	"github.com/ivlev/slides2video/internal/slide"
)

const (
	exampleArtW = 480
	exampleArtH = 520
)

// writeExample собирает демонстрационный проект: три картинки-заглушки,
// данные на шесть слайдов и project.yaml с трёхблочной раскладкой.
func writeExample(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	arts := []func(*image.RGBA) error{artCircles, artRibbon, artDiamond}
	for i, art := range arts {
		img := image.NewRGBA(image.Rect(0, 0, exampleArtW, exampleArtH))
		raster.FilledRect(img, geom.RectAt(0, 0, exampleArtW, exampleArtH), palette.Snow.RGBA())
		if err := art(img); err != nil {
			return err
		}
		if err := savePNG(filepath.Join(dir, fmt.Sprintf("art%d.png", i)), img); err != nil {
			return err
		}
	}

	rows := [][]string{
		{"art0.png", "Весенняя коллекция", "от 990 руб."},
		{"art1.png", "Новые поступления", "каждую неделю"},
		{"art2.png", "Хиты продаж", "выбор покупателей"},
		{"art0.png", "Скидки недели", "до 40%"},
		{"art1.png", "Только онлайн", "бесплатная доставка"},
		{"art2.png", "Бестселлеры", "успейте купить"},
	}
	raw, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "data.json"), raw, 0644); err != nil {
		return err
	}

	ops := []slide.Operation{
		{Kind: slide.KindImage, Position: slide.LayoutTriple[0], Z: 0},
		{Kind: slide.KindColor, Color: palette.Trio[1], Position: slide.LayoutTriple[1], Z: 1},
		{Kind: slide.KindColor, Color: palette.Trio[2], Position: slide.LayoutTriple[2], Z: 2},
		{Kind: slide.KindText, MaxScale: 120, Color: palette.Black, Position: slide.LayoutTriple[1], Z: 3},
		{Kind: slide.KindText, MaxScale: 72, Color: palette.Black, Position: slide.LayoutTriple[2], Z: 4},
	}

	sep := palette.Silver
	cfg := config.Default()
	cfg.Separator = &sep
	cfg.Link = "https://example.com/catalog"

	p := &config.Project{Config: *cfg, Operations: ops, Data: "data.json"}
	return p.Save(filepath.Join(dir, "project.yaml"))
}

// Мишень с двойным кольцом и диагональю.
func artCircles(img *image.RGBA) error {
	accent := palette.Trio[0].RGBA()
	soft := palette.Trio[2].RGBA()

	raster.FilledCircle(img, geom.Pt(240, 260), 150, soft)
	raster.FilledCircle(img, geom.Pt(240, 260), 95, accent)
	raster.HollowCircle(img, geom.Pt(240, 260), 190, accent)
	raster.HollowCircle(img, geom.Pt(240, 260), 196, accent)
	raster.AntialiasedLine(img, geom.Pt(30, 470), geom.Pt(450, 50), palette.Gray.RGBA(), raster.Interpolate)
	return nil
}

// Карточка со скруглёнными углами и тройной лентой.
func artRibbon(img *image.RGBA) error {
	raster.FilledRoundedRect(img, geom.RectAt(60, 90, 360, 340), 24, palette.Trio[1].RGBA())

	ink := palette.Trio[0].RGBA()
	for i := 0; i < 3; i++ {
		off := float64(36 * i)
		raster.CubicBezier(img,
			geom.Pt(40.0, 420.0-off),
			geom.Pt(440.0, 380.0-off),
			geom.Pt(180.0, 260.0-off),
			geom.Pt(320.0, 540.0-off),
			ink)
	}
	return nil
}

// Ромб с эллипсом и метками по углам.
func artDiamond(img *image.RGBA) error {
	diamond := []geom.Point[int]{
		{X: 240, Y: 90},
		{X: 400, Y: 260},
		{X: 240, Y: 430},
		{X: 80, Y: 260},
	}
	if err := raster.Polygon(img, diamond, palette.Trio[0].RGBA()); err != nil {
		return err
	}

	raster.FilledEllipse(img, geom.Pt(240, 260), 80, 40, palette.Trio[1].RGBA())

	mark := palette.Gray.RGBA()
	raster.Cross(img, mark, 40, 40)
	raster.Cross(img, mark, 440, 40)
	raster.Cross(img, mark, 40, 480)
	raster.Cross(img, mark, 440, 480)
	return nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
