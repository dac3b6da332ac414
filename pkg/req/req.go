package req

import (
	"errors"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Decode читает JSON тело запроса в T. Пустое тело дает нулевое значение
func Decode[T any](body io.Reader) (T, error) {
	var v T
	if body == nil {
		return v, nil
	}

	err := json.NewDecoder(body).Decode(&v)
	if err != nil && !errors.Is(err, io.EOF) {
		return v, err
	}

	return v, nil
}
