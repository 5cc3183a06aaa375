//go:build darwin

package tap

/*
#cgo LDFLAGS: -framework ApplicationServices
#include <ApplicationServices/ApplicationServices.h>

// 56 и 60 — виртуальные коды левого и правого Shift
static int shiftIsDown() {
    return CGEventSourceKeyState(kCGEventSourceStateCombinedSessionState, 56) ||
           CGEventSourceKeyState(kCGEventSourceStateCombinedSessionState, 60);
}
*/
import "C"

import "time"

const pollInterval = 10 * time.Millisecond

// listen опрашивает состояние клавиш Shift через CGEventSourceKeyState.
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
				isDown := C.shiftIsDown() != 0
				if isDown && !wasDown {
					m.press(time.Now())
				}
				wasDown = isDown
			}
		}
	}()
	return nil
}
