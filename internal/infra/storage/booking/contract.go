package booking

import (
	"github.com/dungeon-app/booking-service/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interfaces so repositories accept both
// *sql.DB and the instrumented wrapper, transparently joining any
// transaction stored in the context.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
