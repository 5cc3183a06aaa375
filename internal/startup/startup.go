// Package startup управляет автозапуском приложения при входе в систему.
package startup

// Enabled сообщает, включён ли автозапуск.
func Enabled() bool {
	return enabled()
}

// SetEnabled включает или выключает автозапуск.
func SetEnabled(on bool) error {
	if on {
		return enable()
	}
	return disable()
}

// Toggle переключает автозапуск и возвращает новое состояние.
func Toggle() (bool, error) {
	next := !enabled()
	if err := SetEnabled(next); err != nil {
		return enabled(), err
	}
	return next, nil
}
