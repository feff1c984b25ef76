// Package apperrors описывает словарь пользовательских ошибок API.
// Каждая ошибка несет машинный код (Kind) и человекочитаемое сообщение;
// код попадает в extensions GraphQL-ответа.
package apperrors

import "errors"

// Kind — машинный код ошибки, который видит клиент API.
type Kind string

const (
	KindDuplicateCredential Kind = "DUPLICATE_CREDENTIAL"
	KindValidationFailure   Kind = "VALIDATION_FAILED"
	KindNotFound            Kind = "NOT_FOUND"
	KindUnauthorized        Kind = "UNAUTHORIZED"
)

// Error — пользовательская ошибка API.
// Сообщение возвращается клиенту как есть, без внутренних деталей.
type Error struct {
	Kind    Kind
	Message string
	err     error // исходная ошибка, только для логов и errors.Is/As
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.err
}

// Extensions отдает код ошибки в формате расширений GraphQL-ответа.
func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code": string(e.Kind),
	}
}

// New создает ошибку с заданным кодом и сообщением.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap создает ошибку с заданным кодом и сообщением, сохраняя исходную причину.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, err: err}
}

// DuplicateCredential — нарушение уникальности email/username при регистрации.
func DuplicateCredential(err error) *Error {
	return Wrap(KindDuplicateCredential, "A user with that email address or username already exists", err)
}

// ValidationFailure — прочая ошибка валидации на уровне хранилища.
// Сообщение берется из исходной ошибки напрямую, без разбора текста.
func ValidationFailure(err error) *Error {
	return Wrap(KindValidationFailure, err.Error(), err)
}

// NotFound — запрошенная запись отсутствует.
func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// Unauthorized — нет сессии или неверные учетные данные.
func Unauthorized(message string) *Error {
	return New(KindUnauthorized, message)
}

// KindOf возвращает код ошибки или пустую строку, если ошибка не из нашего словаря.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}
