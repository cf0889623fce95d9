package errors

import "errors"

var (
	ErrNetwork   = errors.New("network error")
	ErrParse     = errors.New("parse error")
	ErrRowLength = errors.New("row length does not match headers")
)

// NetworkError - ошибка транспорта: DNS, отказ соединения, TLS, таймаут, не-2xx ответ.
// Error() отдаёт исходное сообщение транспорта без префиксов.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return e.Err.Error() }

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

// ParseError - тело ответа не JSON или в нём нет нужной монеты/поля.
type ParseError struct {
	Msg string
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// Cause - самая внутренняя ошибка нашей таксономии (NetworkError/ParseError),
// если она есть в цепочке; иначе сама err. Нужна для вывода "Error: <message>".
func Cause(err error) error {
	var nErr *NetworkError
	if errors.As(err, &nErr) {
		return nErr
	}
	var pErr *ParseError
	if errors.As(err, &pErr) {
		return pErr
	}
	return err
}
