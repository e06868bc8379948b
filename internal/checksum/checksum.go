// Package checksum считает контрольные суммы закодированных таблиц спавна.
package checksum

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Size длина суммы в hex-символах (BLAKE2b-256)
const Size = blake2b.Size256 * 2

var (
	// ErrEmptyData is returned when there is nothing to checksum
	ErrEmptyData = errors.New("data cannot be empty")

	// ErrMismatch is returned when the data does not match the expected checksum
	ErrMismatch = errors.New("checksum mismatch")
)

// Sum возвращает hex-encoded BLAKE2b-256 от данных
func Sum(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyData
	}

	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Verify проверяет, что данные соответствуют ожидаемой сумме
func Verify(data []byte, expected string) error {
	if expected == "" {
		return fmt.Errorf("expected checksum cannot be empty")
	}

	computed, err := Sum(data)
	if err != nil {
		return fmt.Errorf("failed to compute checksum: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(computed), []byte(expected)) != 1 {
		return ErrMismatch
	}

	return nil
}
