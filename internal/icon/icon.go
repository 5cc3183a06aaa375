// Package icon рисует иконки приложения для системного трея.
package icon

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"sync"
)

const size = 64

var (
	idleOnce sync.Once
	idlePNG  []byte

	activeOnce sync.Once
	activePNG  []byte
)

// Idle - иконка в состоянии ожидания (серая).
func Idle() []byte {
	idleOnce.Do(func() {
		idlePNG = render(color.RGBA{128, 128, 128, 255})
	})
	return idlePNG
}

// Active - иконка при открытом окне сниппетов (синяя).
func Active() []byte {
	activeOnce.Do(func() {
		activePNG = render(color.RGBA{70, 130, 220, 255})
	})
	return activePNG
}

func render(c color.RGBA) []byte {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	// Лист со сниппетом
	for y := 8; y < 56; y++ {
		for x := 14; x < 50; x++ {
			img.Set(x, y, c)
		}
	}

	// Строки текста прорезаем прозрачным, последняя короче
	lines := []struct{ y, x1 int }{
		{18, 44},
		{28, 44},
		{38, 36},
	}
	for _, line := range lines {
		for y := line.y; y < line.y+4; y++ {
			for x := 20; x < line.x1; x++ {
				img.Set(x, y, color.RGBA{})
			}
		}
	}

	// Запись в bytes.Buffer не возвращает ошибок
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}
