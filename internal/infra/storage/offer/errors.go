package offer

import "errors"

var (
	// ErrOfferNotFound возвращается, когда акция не найдена
	ErrOfferNotFound = errors.New("offer.repository: offer not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("offer.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("offer.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("offer.repository: failed to scan row")
)
