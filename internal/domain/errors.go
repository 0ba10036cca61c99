package domain

import "errors"

var (
	// ErrInvalidQuery - запрос не прошел валидацию (цифры, длина)
	ErrInvalidQuery = errors.New("invalid query")

	// ErrLocationNotFound - геокодер не смог определить координаты
	ErrLocationNotFound = errors.New("location not found")

	// ErrCatalogInvalid - объект справочника нарушает инварианты
	ErrCatalogInvalid = errors.New("invalid catalog entry")
)
