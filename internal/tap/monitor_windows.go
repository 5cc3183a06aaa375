//go:build windows

package tap

import (
	"syscall"
	"time"
)

var (
	user32               = syscall.NewLazyDLL("user32.dll")
	procGetAsyncKeyState = user32.NewProc("GetAsyncKeyState")
)

const (
	vkLShift   = 0xA0
	vkRShift   = 0xA1
	keyDownBit = 0x8000

	pollInterval = 10 * time.Millisecond
)

// listen опрашивает состояние клавиш Shift через GetAsyncKeyState.
// Нажатием считается переход из отпущенного состояния в нажатое.
func (m *Monitor) listen(stop <-chan struct{}, done chan<- struct{}) error {
	go func() {
		defer close(done)

		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()

		var wasDown bool
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				left, _, _ := procGetAsyncKeyState.Call(uintptr(vkLShift))
				right, _, _ := procGetAsyncKeyState.Call(uintptr(vkRShift))
				isDown := left&keyDownBit != 0 || right&keyDownBit != 0
				if isDown && !wasDown {
					m.press(time.Now())
				}
				wasDown = isDown
			}
		}
	}()
	return nil
}
