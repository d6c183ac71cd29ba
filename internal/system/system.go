package system

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

func InitLimits() {
	var rLimit syscall.Rlimit
	err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		log.Printf("[!] Не удалось получить лимит файлов: %v", err)
		return
	}

	rLimit.Cur = 2048
	if rLimit.Cur > rLimit.Max {
		rLimit.Cur = rLimit.Max
	}

	err = syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		log.Printf("[!] Не удалось установить лимит файлов: %v", err)
	} else {
		fmt.Printf("[*] Системный лимит открытых файлов увеличен до %d\n", rLimit.Cur)
	}
}

// Workers подбирает число параллельных потоков рендеринга: явное значение
// имеет приоритет, иначе берём число логических ядер и ограничиваем его
// так, чтобы буферы по frameBytes байт помещались в свободную память.
func Workers(explicit int, frameBytes uint64) int {
	if explicit > 0 {
		return explicit
	}

	workers, err := cpu.Counts(true)
	if err != nil || workers < 1 {
		workers = runtime.NumCPU()
	}

	if frameBytes > 0 {
		if vm, err := mem.VirtualMemory(); err == nil {
			byMem := int(vm.Available / frameBytes)
			if byMem < 1 {
				byMem = 1
			}
			if byMem < workers {
				log.Printf("[!] Свободная память ограничивает параллельность: %d вместо %d", byMem, workers)
				workers = byMem
			}
		}
	}

	if workers < 1 {
		workers = 1
	}

	return workers
}

func FindLatestProject(dir string) (string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var latestFile string
	var latestTime time.Time

	for _, f := range files {
		if f.IsDir() {
			continue
		}
		name := strings.ToLower(f.Name())
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(latestTime) {
			latestTime = info.ModTime()
			latestFile = filepath.Join(dir, f.Name())
		}
	}

	if latestFile == "" {
		return "", fmt.Errorf("в папке %s не найдено файлов проекта", dir)
	}

	return latestFile, nil
}
