//go:build linux

package startup

import (
	"fmt"
	"os"
	"path/filepath"
)

// Запись в ~/.config/autostart по спецификации XDG.
const desktopEntry = `[Desktop Entry]
Type=Application
Name=Shtamp
Comment=Snippet launcher
Exec=%s
Terminal=false
X-GNOME-Autostart-enabled=true
`

func entryPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("определение каталога конфигурации: %w", err)
	}
	return filepath.Join(dir, "autostart", "shtamp.desktop"), nil
}

func enabled() bool {
	path, err := entryPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

func enable() error {
	path, err := entryPath()
	if err != nil {
		return err
	}
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("определение пути к программе: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("создание каталога автозапуска: %w", err)
	}
	entry := fmt.Sprintf(desktopEntry, exe)
	if err := os.WriteFile(path, []byte(entry), 0644); err != nil {
		return fmt.Errorf("запись файла автозапуска: %w", err)
	}
	return nil
}

func disable() error {
	path, err := entryPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("удаление файла автозапуска: %w", err)
	}
	return nil
}
