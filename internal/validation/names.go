package validation

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// MapNamePattern определяет допустимый формат имени карты
// Только латинские буквы (a-z, A-Z), цифры (0-9), нижнее подчеркивание (_) и дефис (-)
// Длина: 1-64 символа
var MapNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// FileNamePattern допустимые символы имени файла данных спавна
var FileNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

const (
	// MaxMapNameLen максимальная длина имени карты
	MaxMapNameLen = 64
	// MaxFileNameLen максимальная длина имени файла
	MaxFileNameLen = 128
)

// ValidateMapName проверяет имя карты, под которым хранятся снимки
func ValidateMapName(name string) error {
	if name == "" {
		return fmt.Errorf("map name cannot be empty")
	}

	if len(name) > MaxMapNameLen {
		return fmt.Errorf("map name must not exceed %d characters", MaxMapNameLen)
	}

	if !MapNamePattern.MatchString(name) {
		return fmt.Errorf("map name can only contain letters (a-z, A-Z), numbers (0-9), underscores (_) and hyphens (-)")
	}

	return nil
}

// ValidateFileName проверяет имя файла данных спавна.
// Допускается только имя без каталога: путь разрешает слой хранения.
func ValidateFileName(name string) error {
	if name == "" {
		return fmt.Errorf("file name cannot be empty")
	}

	if len(name) > MaxFileNameLen {
		return fmt.Errorf("file name must not exceed %d characters", MaxFileNameLen)
	}

	if filepath.Base(name) != name || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("file name must not contain a directory")
	}

	if strings.HasPrefix(name, ".") {
		return fmt.Errorf("file name must not start with a dot")
	}

	if !FileNamePattern.MatchString(name) {
		return fmt.Errorf("file name can only contain letters, numbers, dots, underscores and hyphens")
	}

	return nil
}
