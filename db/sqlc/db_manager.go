package sqlc

import (
	"context"
	"time"
)

const (
	QuerierCtxTimeout = time.Second * 10
)

type DbManager struct {
	Analytics *AnalyticsManager
}

func NewDbManager(queries Querier) DbManager {
	return DbManager{
		Analytics: NewAnalyticsManager(queries),
	}
}

// Every query gets its own bounded context so a slow database
// never holds up the game loop for long.
func QuerierCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), QuerierCtxTimeout)
}
