package stylist

import (
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
// Реализуется *sql.DB и оберткой *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
