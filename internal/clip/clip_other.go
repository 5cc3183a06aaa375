//go:build windows || darwin

package clip

import (
	"errors"

	"golang.design/x/clipboard"
)

// systemWriter кладёт текст через golang.design/x/clipboard: на Windows и
// macOS буфером владеет система, содержимое переживает выход процесса.
type systemWriter struct {
	ready bool
}

func newWriter() Writer {
	return &systemWriter{ready: clipboard.Init() == nil}
}

func (w *systemWriter) Name() string { return "clipboard" }

func (w *systemWriter) Set(text string) error {
	if !w.ready {
		return errors.New("буфер обмена недоступен")
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
