package session

import (
	"context"
	"fmt"
)

// EncodedSnapshot кодирует текущую таблицу для передачи клиентам
func (s *Session) EncodedSnapshot() ([]byte, error) {
	table := s.Table()
	if table == nil {
		return nil, ErrNoTable
	}

	data, err := s.codec.Encode(table)
	if err != nil {
		return nil, fmt.Errorf("failed to encode spawn table: %w", err)
	}
	return data, nil
}

// ApplyEncodedSnapshot декодирует таблицу и устанавливает ее через Load.
// Ошибка декодирования возвращается как *codec.DecodeError, состояние не меняется.
func (s *Session) ApplyEncodedSnapshot(ctx context.Context, data []byte, lockAfter bool) error {
	table, err := s.codec.Decode(data)
	if err != nil {
		s.logger.Error("Failed to decode spawn snapshot", "error", err)
		return err
	}
	return s.Load(ctx, table, lockAfter)
}
