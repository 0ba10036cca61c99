// Package docs Property Locator API.
//
// Сервис поиска объектов размещения по названию места.
// Запрос проходит исправление опечаток и прямое совпадение с городом объекта;
// если совпадения нет, место геокодируется и возвращаются объекты в радиусе 50 км.
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
