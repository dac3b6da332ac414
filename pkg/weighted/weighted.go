package weighted

import (
	"errors"

	"pixel_casino/pkg/rng"
)

var ErrEmptyTable = errors.New("weighted table has no positive weights")

// Entry - значение таблицы с весом
type Entry[T any] struct {
	Value  T
	Weight int
}

// Total - сумма положительных весов
func Total[T any](table []Entry[T]) int {
	total := 0
	for _, e := range table {
		if e.Weight > 0 {
			total += e.Weight
		}
	}
	return total
}

// Draw выбирает значение с вероятностью weight/total.
// Равномерное число масштабируется на сумму весов, из него вычитаются веса,
// пока остаток не станет неположительным
func Draw[T any](src rng.Source, table []Entry[T]) (T, error) {
	idx, err := DrawIndex(src, table)
	if err != nil {
		var zero T
		return zero, err
	}
	return table[idx].Value, nil
}

// DrawIndex то же, что Draw, но возвращает индекс записи
func DrawIndex[T any](src rng.Source, table []Entry[T]) (int, error) {
	total := Total(table)
	if total <= 0 {
		return -1, ErrEmptyTable
	}

	r := src.Float64() * float64(total)
	last := -1
	for i, e := range table {
		if e.Weight <= 0 {
			continue
		}
		last = i
		r -= float64(e.Weight)
		if r <= 0 {
			return i, nil
		}
	}

	// Погрешность float: отдаем последнюю запись с весом
	return last, nil
}
