package booking

import (
	"github.com/rakshdevstudio/JCB/pkg/txmanager"
)

// Переиспользуем интерфейс исполнителя запросов из txmanager:
// один и тот же метод репозитория работает и в транзакции, и без неё.
type DBExecutor = txmanager.Executor
