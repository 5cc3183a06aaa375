package inject

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{ err error }

func (w *failingWriter) Set(string) error { return w.err }
func (w *failingWriter) Name() string     { return "test-clipboard" }

func TestInjector_ClipboardFailure(t *testing.T) {
	cause := errors.New("нет дисплея")
	inj := newInjector(&failingWriter{err: cause})

	err := inj.Inject("hello")
	require.Error(t, err)

	var ierr *Error
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, "test-clipboard", ierr.Tool)
	assert.ErrorIs(t, err, cause)
}

func TestError_Message(t *testing.T) {
	err := &Error{Tool: "xdotool", Err: errors.New("exit status 1")}

	assert.Equal(t, "вставка через xdotool: exit status 1", err.Error())
}
