//go:build linux

package inject

import (
	"os"
	"os/exec"

	"shtamp/internal/clip"
)

type linuxInjector struct {
	clipboard  clip.Writer
	useWayland bool
}

func newInjector(w clip.Writer) Injector {
	return &linuxInjector{
		clipboard:  w,
		useWayland: os.Getenv("WAYLAND_DISPLAY") != "",
	}
}

func (i *linuxInjector) Inject(text string) error {
	if err := i.clipboard.Set(text); err != nil {
		return &Error{Tool: i.clipboard.Name(), Err: err}
	}
	if i.useWayland {
		// wtype вставляет через shift+insert
		return i.paste("wtype", "-M", "shift", "-P", "insert", "-m", "shift")
	}
	return i.paste("xdotool", "key", "--clearmodifiers", "ctrl+v")
}

func (i *linuxInjector) paste(tool string, args ...string) error {
	if err := exec.Command(tool, args...).Run(); err != nil {
		return &Error{Tool: tool, Err: err}
	}
	return nil
}
