package codec

import "fmt"

// DecodeError сообщает, что закодированная таблица не может быть разобрана целиком.
// Ошибка не фатальна: вызывающий может повторить попытку с другими данными.
type DecodeError struct {
	Err    error
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode spawn table: %s: %v", e.Reason, e.Err)
	}
	return "decode spawn table: " + e.Reason
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
