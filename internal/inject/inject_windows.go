//go:build windows

package inject

import (
	"syscall"
	"unsafe"

	"shtamp/internal/clip"
)

var (
	user32        = syscall.NewLazyDLL("user32.dll")
	procSendInput = user32.NewProc("SendInput")
)

const (
	inputKeyboard  = 1
	keyEventFKeyUp = 0x0002

	vkControl = 0x11
	vkV       = 0x56
)

type keyboardInput struct {
	wVk         uint16
	wScan       uint16
	dwFlags     uint32
	time        uint32
	dwExtraInfo uintptr
}

type input struct {
	inputType uint32
	ki        keyboardInput
	padding   uint64
}

type windowsInjector struct {
	clipboard clip.Writer
}

func newInjector(w clip.Writer) Injector {
	return &windowsInjector{clipboard: w}
}

func (i *windowsInjector) Inject(text string) error {
	if err := i.clipboard.Set(text); err != nil {
		return &Error{Tool: i.clipboard.Name(), Err: err}
	}

	// Ctrl+V: нажатия и отпускания в обратном порядке
	inputs := []input{
		{inputType: inputKeyboard, ki: keyboardInput{wVk: vkControl}},
		{inputType: inputKeyboard, ki: keyboardInput{wVk: vkV}},
		{inputType: inputKeyboard, ki: keyboardInput{wVk: vkV, dwFlags: keyEventFKeyUp}},
		{inputType: inputKeyboard, ki: keyboardInput{wVk: vkControl, dwFlags: keyEventFKeyUp}},
	}

	sent, _, err := procSendInput.Call(
		uintptr(len(inputs)),
		uintptr(unsafe.Pointer(&inputs[0])),
		uintptr(unsafe.Sizeof(inputs[0])),
	)
	if sent != uintptr(len(inputs)) {
		return &Error{Tool: "SendInput", Err: err}
	}
	return nil
}
