//go:build linux

package clip

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"

	"golang.design/x/clipboard"
)

// linuxWriter кладёт текст через утилиту сессии: wl-copy под Wayland,
// xclip под X11. Так содержимое буфера переживает выход процесса-владельца.
// Когда утилиты нет, используется golang.design/x/clipboard.
type linuxWriter struct {
	useWayland bool
	fallback   bool
}

func newWriter() Writer {
	w := &linuxWriter{useWayland: os.Getenv("WAYLAND_DISPLAY") != ""}
	// Запасной механизм, если утилита сессии не установлена
	w.fallback = clipboard.Init() == nil
	return w
}

func (w *linuxWriter) Name() string {
	if w.useWayland {
		return "wl-copy"
	}
	return "xclip"
}

func (w *linuxWriter) Set(text string) error {
	var cmd *exec.Cmd
	if w.useWayland {
		cmd = exec.Command("wl-copy")
	} else {
		cmd = exec.Command("xclip", "-selection", "clipboard")
	}
	cmd.Stdin = bytes.NewBufferString(text)

	err := cmd.Run()
	if err == nil {
		return nil
	}
	if w.fallback {
		clipboard.Write(clipboard.FmtText, []byte(text))
		return nil
	}
	return fmt.Errorf("%s: %w", w.Name(), err)
}
