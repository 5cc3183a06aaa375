//go:build linux

package tap

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// inputEvent — событие ядра из /dev/input на 64-битных системах:
// timeval (16 байт), тип, код, значение.
type inputEvent struct {
	Sec   int64
	Usec  int64
	Type  uint16
	Code  uint16
	Value int32
}

const (
	evKey         = 0x01
	keyLeftShift  = 42
	keyRightShift = 54
	valueKeyPress = 1
)

// keyboardDevices возвращает пути клавиатурных устройств ввода.
// Ссылки из by-path и by-id резолвятся, дубликаты отбрасываются.
func keyboardDevices() []string {
	patterns := []string{
		"/dev/input/by-path/*-event-kbd",
		"/dev/input/by-id/*-event-kbd",
	}

	seen := make(map[string]bool)
	var devices []string
	for _, pattern := range patterns {
		matches, _ := filepath.Glob(pattern)
		for _, match := range matches {
			resolved, err := filepath.EvalSymlinks(match)
			if err != nil {
				continue
			}
			if !seen[resolved] {
				seen[resolved] = true
				devices = append(devices, resolved)
			}
		}
	}
	return devices
}

// listen читает нажатия Shift напрямую из /dev/input: работает и под X11,
// и под Wayland. Требует членства в группе input.
func (m *Monitor) listen(stop <-chan struct{}, done chan<- struct{}) error {
	devices := keyboardDevices()
	if len(devices) == 0 {
		return errors.New("клавиатуры в /dev/input не найдены")
	}

	var files []*os.File
	for _, device := range devices {
		f, err := os.Open(device)
		if err != nil {
			continue
		}
		files = append(files, f)
	}
	if len(files) == 0 {
		return errors.New("нет доступа к /dev/input: добавьте пользователя в группу input")
	}

	var wg sync.WaitGroup
	for _, f := range files {
		wg.Add(1)
		go m.readDevice(f, &wg)
	}

	// Закрытие файлов выводит readDevice из блокирующего чтения
	go func() {
		<-stop
		for _, f := range files {
			f.Close()
		}
	}()
	go func() {
		wg.Wait()
		close(done)
	}()

	return nil
}

func (m *Monitor) readDevice(f *os.File, wg *sync.WaitGroup) {
	defer wg.Done()

	var ev inputEvent
	for {
		if err := binary.Read(f, binary.LittleEndian, &ev); err != nil {
			return
		}
		if ev.Type != evKey || ev.Value != valueKeyPress {
			continue
		}
		if ev.Code == keyLeftShift || ev.Code == keyRightShift {
			m.press(time.Now())
		}
	}
}
