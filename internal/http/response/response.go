// Package response содержит вспомогательные типы и функции для формирования
// JSON-ответов в формате, который ожидает фронтенд каталога:
// успешные тела с ret:"ok", тело ошибки дублирования имени группы
// и общее тело ошибки {success, status, message, stack}.
package response

import "fmt"

// OK возвращает тело успешного ответа: {"ret":"ok", ...data}.
// Ключи data поднимаются на верхний уровень тела.
func OK(data map[string]any) map[string]any {
	body := map[string]any{"ret": "ok"}
	for k, v := range data {
		body[k] = v
	}
	return body
}

// DuplicateError — тело ответа при попытке создать группу
// с уже занятым именем.
type DuplicateError struct {
	Ret     string `json:"ret" example:"error"`
	Message string `json:"message"`
}

// Duplicate возвращает DuplicateError с переданным сообщением.
func Duplicate(message string) DuplicateError {
	return DuplicateError{
		Ret:     "error",
		Message: message,
	}
}

// Failure — общее тело ошибки. Stack заполняется только вне продакшна.
type Failure struct {
	Success bool   `json:"success" example:"false"`
	Status  int    `json:"status"`
	Message string `json:"message"`
	Stack   string `json:"stack"`
}

// Fail возвращает Failure с заданным статусом и сообщением.
// Если dev истинен и err не nil, в Stack попадает цепочка ошибки.
func Fail(status int, message string, err error, dev bool) Failure {
	f := Failure{
		Success: false,
		Status:  status,
		Message: message,
	}
	if dev && err != nil {
		f.Stack = fmt.Sprintf("%+v", err)
	}
	return f
}
