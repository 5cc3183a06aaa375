//go:build darwin

package inject

/*
#cgo LDFLAGS: -framework ApplicationServices
#include <ApplicationServices/ApplicationServices.h>

// 9 — виртуальный код клавиши V
static void pasteKeystroke() {
    CGEventRef keyDown = CGEventCreateKeyboardEvent(NULL, 9, true);
    CGEventRef keyUp = CGEventCreateKeyboardEvent(NULL, 9, false);

    CGEventSetFlags(keyDown, kCGEventFlagMaskCommand);
    CGEventSetFlags(keyUp, kCGEventFlagMaskCommand);

    CGEventPost(kCGHIDEventTap, keyDown);
    CGEventPost(kCGHIDEventTap, keyUp);

    CFRelease(keyDown);
    CFRelease(keyUp);
}
*/
import "C"

import "shtamp/internal/clip"

type darwinInjector struct {
	clipboard clip.Writer
}

func newInjector(w clip.Writer) Injector {
	return &darwinInjector{clipboard: w}
}

func (i *darwinInjector) Inject(text string) error {
	if err := i.clipboard.Set(text); err != nil {
		return &Error{Tool: i.clipboard.Name(), Err: err}
	}
	C.pasteKeystroke()
	return nil
}
