package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"

	mb "github.com/saeidalz13/seabattle/models/battleship"
)

type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

func (a *AnalyticsManager) RecordGameCreated(ctx context.Context, hostIpNet pqtype.Inet) error {
	return a.queries.IncrementGamesCreatedCount(ctx, hostIpNet)
}

// RecordOutcome bumps exactly one counter: exits, human wins or AI wins.
// An outcome with neither a winner nor an exit records nothing.
func (a *AnalyticsManager) RecordOutcome(ctx context.Context, hostIpNet pqtype.Inet, outcome mb.Outcome) error {
	switch {
	case outcome.Exited:
		return a.queries.IncrementGamesExitedCount(ctx, hostIpNet)
	case !outcome.HasWinner():
		return nil
	case outcome.WinnerSide == mb.SideHuman:
		return a.queries.IncrementHumanWinsCount(ctx, hostIpNet)
	default:
		return a.queries.IncrementAiWinsCount(ctx, hostIpNet)
	}
}

func (a *AnalyticsManager) GetGamesCreatedCount(ctx context.Context, hostIpNet pqtype.Inet) (int64, error) {
	return a.queries.GetGamesCreatedCount(ctx, hostIpNet)
}

func (a *AnalyticsManager) GetGameAnalytics(ctx context.Context, hostIpNet pqtype.Inet) (GameAnalytic, error) {
	return a.queries.GetGameAnalytics(ctx, hostIpNet)
}
