package system

import (
	"image"
	"sync"
)

// BufferPool переиспользует кадровые буферы *image.RGBA, чтобы снизить
// нагрузку на Garbage Collector при параллельном рендеринге широких полос.
type BufferPool struct {
	pools map[string]*sync.Pool
	mu    sync.RWMutex
}

func NewBufferPool() *BufferPool {
	return &BufferPool{pools: make(map[string]*sync.Pool)}
}

// Get возвращает буфер с указанными границами. Содержимое не очищается:
// вызывающая сторона обязана перезаписать каждый пиксель.
func (p *BufferPool) Get(rect image.Rectangle) *image.RGBA {
	key := rect.String()
	p.mu.RLock()
	pool, exists := p.pools[key]
	p.mu.RUnlock()

	if !exists {
		p.mu.Lock()
		// Double check
		pool, exists = p.pools[key]
		if !exists {
			pool = &sync.Pool{
				New: func() any {
					return image.NewRGBA(rect)
				},
			}
			p.pools[key] = pool
		}
		p.mu.Unlock()
	}

	return pool.Get().(*image.RGBA)
}

// Put возвращает буфер в пул для повторного использования.
func (p *BufferPool) Put(img *image.RGBA) {
	if img == nil {
		return
	}
	key := img.Rect.String()
	p.mu.RLock()
	pool, exists := p.pools[key]
	p.mu.RUnlock()

	if exists {
		pool.Put(img)
	}
}
