package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/ivlev/slides2video/internal/config"
	"github.com/ivlev/slides2video/internal/engine"
	"github.com/ivlev/slides2video/internal/slide"
	"github.com/ivlev/slides2video/internal/source"
	"github.com/ivlev/slides2video/internal/system"
	"github.com/ivlev/slides2video/internal/text"
	"github.com/ivlev/slides2video/internal/video"
)

func main() {
	// Увеличиваем лимиты системы (для macOS/Linux)
	system.InitLimits()

	projectPtr := flag.String("project", "", "Путь к YAML-проекту (по умолчанию: самый свежий в projects/ или project.yaml)")
	dataPtr := flag.String("data", "", "Путь к JSON с данными слайдов (переопределяет data из проекта)")
	outputPtr := flag.String("o", "", "Путь к итоговому видео (переопределяет save_path)")
	workersPtr := flag.Int("workers", 0, "Потоки рендеринга (0 - по ресурсам машины)")
	examplePtr := flag.Bool("example", false, "Создать пример проекта в example/ и выйти")
	dryRunPtr := flag.Bool("dry-run", false, "Проверить проект и показать план без рендеринга")

	flag.Parse()

	if *examplePtr {
		if err := writeExample("example"); err != nil {
			log.Fatalf("[-] Ошибка создания примера: %v", err)
		}
		fmt.Println("[+++] Пример создан: example/project.yaml")
		return
	}

	start := time.Now()

	projectPath := *projectPtr
	if projectPath == "" {
		if latest, err := system.FindLatestProject("projects"); err == nil {
			projectPath = latest
		} else if _, statErr := os.Stat("project.yaml"); statErr == nil {
			projectPath = "project.yaml"
		} else {
			log.Fatalf("[-] Не найден файл проекта: %v. Укажите -project или создайте пример через -example", err)
		}
		fmt.Printf("[*] Выбран проект: %s\n", projectPath)
	}

	proj, err := config.LoadProject(projectPath)
	if err != nil {
		log.Fatalf("[-] Ошибка чтения проекта: %v", err)
	}

	cfg := &proj.Config
	if *outputPtr != "" {
		cfg.SavePath = *outputPtr
	}
	if *workersPtr > 0 {
		cfg.Workers = *workersPtr
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[-] Некорректная конфигурация: %v", err)
	}

	if len(proj.Operations) == 0 {
		log.Fatalf("[-] В проекте нет операций")
	}

	dataPath := proj.Data
	if *dataPtr != "" {
		dataPath = *dataPtr
	}
	if dataPath == "" {
		log.Fatalf("[-] В проекте не указан файл данных (data)")
	}

	rows, err := config.LoadData(dataPath)
	if err != nil {
		log.Fatalf("[-] Ошибка чтения данных: %v", err)
	}

	// Операции упорядочиваются по z один раз, данные каждой строки
	// расходуются уже в этом порядке.
	slide.SortByZ(proj.Operations)

	slides := make([]*slide.Slide, 0, len(rows))
	for i, row := range rows {
		s, err := slide.Generate(proj.Operations, row)
		if err != nil {
			log.Fatalf("[-] Строка данных %d: %v", i, err)
		}
		slides = append(slides, s)
	}

	if *dryRunPtr {
		reportPlan(cfg, len(slides))
		return
	}

	face, err := loadFont(cfg.FontPath)
	if err != nil {
		log.Fatalf("[-] Ошибка загрузки шрифта: %v", err)
	}

	src := source.NewFiles(filepath.Dir(projectPath))
	defer src.Close()

	renderer := &slide.Renderer{
		Width:     cfg.SlideWidth,
		Height:    cfg.ScreenH,
		Font:      face,
		Source:    src,
		Separator: cfg.Separator,
	}

	enc := &video.FFmpeg{
		WorkDir:  cfg.WorkDir,
		ScreenW:  cfg.ScreenW,
		ScreenH:  cfg.ScreenH,
		FPS:      cfg.FPS,
		Back:     cfg.Back,
		PxPerSec: cfg.PxPerSec,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	project := engine.NewProject(cfg, enc, renderer, slides)
	if err := project.Run(ctx); err != nil {
		log.Fatalf("[-] Ошибка проекта: %v", err)
	}

	elapsed := time.Since(start)
	fmt.Printf("[+++] Успех! cost %ds %dms\n", int(elapsed.Seconds()), elapsed.Milliseconds()%1000)
}

// loadFont берёт шрифт проекта или встроенный Go Regular.
func loadFont(path string) (*text.Font, error) {
	if path == "" {
		return text.New(goregular.TTF)
	}
	return text.Load(path)
}

func reportPlan(cfg *config.Config, count int) {
	windows, err := video.Windows(count, cfg.Step, cfg.Overlap())
	if err != nil {
		log.Fatalf("[-] План не строится: %v", err)
	}

	fmt.Printf("[*] Слайдов: %d, фрагментов: %d, перекрытие: %d\n", count, len(windows), cfg.Overlap())
	for i, win := range windows {
		kind := "прокрутка"
		switch {
		case len(windows) == 1:
			kind = "обложка и концовка"
		case i == 0:
			kind = "обложка"
		case i == len(windows)-1:
			kind = "концовка"
		}
		fmt.Printf("[*] %02d: слайды [%d, %d), %s\n", i, win.From, win.To, kind)
	}
	fmt.Printf("[*] Результат: %s\n", cfg.SavePath)
}
