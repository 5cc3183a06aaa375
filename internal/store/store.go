package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Store владеет файлом сниппетов на диске: читает, мигрирует и сохраняет
// документ целиком.
type Store struct {
	path string
}

// New создаёт хранилище над указанным файлом.
func New(path string) *Store {
	return &Store{path: path}
}

// Path возвращает путь к файлу сниппетов.
func (s *Store) Path() string {
	return s.path
}

// Load читает документ с диска. Если файла ещё нет, создаёт документ по
// умолчанию и сразу сохраняет его. Ошибки чтения и разбора не фатальны:
// вызывающий показывает их пользователю и продолжает работу с пустым
// документом.
func (s *Store) Load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		doc := Default()
		if err := s.Save(doc); err != nil {
			return doc, err
		}
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("чтение файла сниппетов: %w", err)
	}

	doc, err := decode(data)
	if err != nil {
		return nil, &FormatError{Path: s.path, Err: err}
	}
	return doc, nil
}

// Save сериализует документ и атомарно заменяет файл на диске: сначала
// запись во временный файл рядом, затем переименование. При ошибке записи
// документ в памяти остаётся нетронутым.
func (s *Store) Save(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("сериализация документа: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("создание каталога настроек: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("запись файла сниппетов: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("замена файла сниппетов: %w", err)
	}
	return nil
}
