package engine

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"time"

	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/sync/errgroup"

	"github.com/ivlev/slides2video/internal/config"
	"github.com/ivlev/slides2video/internal/slide"
	"github.com/ivlev/slides2video/internal/system"
	"github.com/ivlev/slides2video/internal/video"
)

const (
	endingQRSize   = 180
	endingQRMargin = 40
)

type Project struct {
	Config   *config.Config
	Encoder  video.Encoder
	Renderer *slide.Renderer
	Slides   []*slide.Slide

	pool *system.BufferPool
}

func NewProject(cfg *config.Config, enc video.Encoder, r *slide.Renderer, slides []*slide.Slide) *Project {
	return &Project{
		Config:   cfg,
		Encoder:  enc,
		Renderer: r,
		Slides:   slides,
		pool:     system.NewBufferPool(),
	}
}

func (p *Project) Run(ctx context.Context) error {
	start := time.Now()
	cfg := p.Config

	windows, err := video.Windows(len(p.Slides), cfg.Step, cfg.Overlap())
	if err != nil {
		return err
	}

	// Размер полосы целого фрагмента — ориентир для подбора параллельности.
	frameBytes := uint64(cfg.Step) * uint64(cfg.SlideWidth) * uint64(cfg.ScreenH) * 4
	workers := system.Workers(cfg.Workers, frameBytes)

	fmt.Printf("[*] Слайдов: %d, фрагментов: %d, потоков: %d\n", len(p.Slides), len(windows), workers)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, win := range windows {
		g.Go(func() error {
			return p.renderChunk(ctx, i, win, len(windows))
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	// Финальная склейка: обложка, прокрутка по фрагментам, концовка.
	parts := make([]string, 0, len(windows)+2)
	parts = append(parts, "cover.mp4")
	for i := range windows {
		parts = append(parts, fmt.Sprintf("%02d.mp4", i))
	}
	parts = append(parts, "ending.mp4")

	if err := p.Encoder.Concat(ctx, parts, cfg.SavePath); err != nil {
		return err
	}

	fmt.Printf("[+] Видео сохранено: %s (%.1fs)\n", cfg.SavePath, time.Since(start).Seconds())
	return nil
}

func (p *Project) renderChunk(ctx context.Context, idx int, win video.Span, total int) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	cfg := p.Config
	stripW := win.Len() * cfg.SlideWidth
	strip := p.pool.Get(image.Rect(0, 0, stripW, cfg.ScreenH))
	defer p.pool.Put(strip)

	// Слайды фрагмента укладываются в одну широкую полосу.
	for j, s := range p.Slides[win.From:win.To] {
		img, err := p.Renderer.Render(s)
		if err != nil {
			return fmt.Errorf("слайд %d: %w", win.From+j, err)
		}
		band := image.Rect(j*cfg.SlideWidth, 0, (j+1)*cfg.SlideWidth, cfg.ScreenH)
		draw.Draw(strip, band, img, img.Bounds().Min, draw.Src)
	}

	name := fmt.Sprintf("%02d", idx)
	if err := p.savePNG(name+".png", strip); err != nil {
		return err
	}

	// Обложка: первый экран первого фрагмента.
	if idx == 0 {
		cover := strip.SubImage(image.Rect(0, 0, cfg.ScreenW, cfg.ScreenH))
		if err := p.savePNG("cover.png", cover); err != nil {
			return err
		}
		if err := p.Encoder.Still(ctx, "cover.png", "cover.mp4", cfg.CoverSec); err != nil {
			return err
		}
	}

	// Концовка: последний экран последнего фрагмента, плюс QR-код ссылки.
	if idx == total-1 {
		crop := image.Rect(stripW-cfg.ScreenW, 0, stripW, cfg.ScreenH)
		if cfg.Link != "" {
			if err := overlayQR(strip, crop, cfg.Link); err != nil {
				return err
			}
		}
		if err := p.savePNG("ending.png", strip.SubImage(crop)); err != nil {
			return err
		}
		if err := p.Encoder.Still(ctx, "ending.png", "ending.mp4", cfg.EndingSec); err != nil {
			return err
		}
	}

	scroll := (win.Len() - cfg.Overlap()) * cfg.SlideWidth
	if err := p.Encoder.Scroll(ctx, name+".png", name+".mp4", scroll); err != nil {
		return err
	}

	fmt.Printf("[*] %d/%d: фрагмент %s готов\n", idx+1, total, name)
	return nil
}

func (p *Project) savePNG(name string, img image.Image) error {
	f, err := os.Create(filepath.Join(p.Config.WorkDir, name))
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// overlayQR впечатывает QR-код ссылки в правый нижний угол кадра.
func overlayQR(img draw.Image, frame image.Rectangle, link string) error {
	qr, err := qrcode.New(link, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("qr: %w", err)
	}

	code := qr.Image(endingQRSize)
	at := image.Pt(frame.Max.X-endingQRSize-endingQRMargin, frame.Max.Y-endingQRSize-endingQRMargin)
	draw.Draw(img, image.Rectangle{Min: at, Max: at.Add(code.Bounds().Size())}, code, code.Bounds().Min, draw.Over)
	return nil
}
