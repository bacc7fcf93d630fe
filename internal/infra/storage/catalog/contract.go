package catalog

import (
	"github.com/rakshdevstudio/JCB/pkg/txmanager"
)

type DBExecutor = txmanager.Executor
