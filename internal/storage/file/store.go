// Package file сохраняет и читает таблицы спавна в именованных файлах каталога данных.
package file

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/renameio/v2"

	"github.com/iudanet/spawnsync/internal/codec"
	"github.com/iudanet/spawnsync/internal/models"
	"github.com/iudanet/spawnsync/internal/validation"
)

// timestampLayout формат метки времени в имени файла (yyyyMMdd_HHmmss)
const timestampLayout = "20060102_150405"

var (
	// ErrEmptyTable is returned when saving a table without spawner records
	ErrEmptyTable = errors.New("spawn table is empty")

	// ErrFileNotFound is returned when the named file does not exist
	ErrFileNotFound = errors.New("spawn data file not found")
)

// Store файловое хранилище данных спавна
type Store struct {
	codec  *codec.Codec
	logger *slog.Logger
	dir    string
}

// New создает хранилище в каталоге dir; каталог создается при первой записи
func New(dir string, c *codec.Codec, logger *slog.Logger) *Store {
	return &Store{
		dir:    dir,
		codec:  c,
		logger: logger,
	}
}

// Dir возвращает каталог хранилища
func (s *Store) Dir() string {
	return s.dir
}

// TimestampedName формирует имя <map>_spawn_data_<yyyyMMdd_HHmmss>.json
func TimestampedName(mapName string, at time.Time) string {
	return fmt.Sprintf("%s_spawn_data_%s.json", mapName, at.Format(timestampLayout))
}

// Save кодирует таблицу и атомарно записывает ее в файл name.
// Пустую таблицу не сохраняет.
func (s *Store) Save(name string, table *models.SpawnTable) (string, error) {
	if err := validation.ValidateFileName(name); err != nil {
		return "", fmt.Errorf("invalid file name: %w", err)
	}
	if table.IsEmpty() {
		s.logger.Warn("No spawn data to save")
		return "", ErrEmptyTable
	}

	data, err := s.codec.EncodeIndent(table)
	if err != nil {
		return "", fmt.Errorf("failed to encode spawn table: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	path := filepath.Join(s.dir, name)
	if err := renameio.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write spawn data: %w", err)
	}

	s.logger.Info("Saved spawn data",
		"path", path,
		"spawners", table.Len(),
		"items", table.ItemCount())

	return path, nil
}

// SaveTimestamped сохраняет таблицу под именем с меткой времени для карты
func (s *Store) SaveTimestamped(mapName string, table *models.SpawnTable, at time.Time) (string, error) {
	if err := validation.ValidateMapName(mapName); err != nil {
		return "", fmt.Errorf("invalid map name: %w", err)
	}
	return s.Save(TimestampedName(mapName, at), table)
}

// Read возвращает закодированное содержимое файла name
func (s *Store) Read(name string) ([]byte, error) {
	if err := validation.ValidateFileName(name); err != nil {
		return nil, fmt.Errorf("invalid file name: %w", err)
	}

	path := filepath.Join(s.dir, name)
	// #nosec G304 -- имя проверено, каталог задан конфигурацией
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Error("Spawn data file not found", "path", path)
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read spawn data: %w", err)
	}

	return data, nil
}

// Load читает и декодирует таблицу из файла name
func (s *Store) Load(name string) (*models.SpawnTable, error) {
	data, err := s.Read(name)
	if err != nil {
		return nil, err
	}

	table, err := s.codec.Decode(data)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Loaded spawn data",
		"file", name,
		"spawners", table.Len(),
		"items", table.ItemCount())

	return table, nil
}

// List возвращает имена json-файлов каталога в порядке сортировки
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list data directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	return names, nil
}
