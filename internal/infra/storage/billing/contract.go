package billing

import (
	"github.com/dungeon-app/booking-service/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor
