package sqlc

import (
	"os"
	"strings"
	"testing"
)

// The query constants must stay what sqlc generates from query/analytics.sql.
func TestQueriesMatchSource(t *testing.T) {
	source, err := os.ReadFile("query/analytics.sql")
	if err != nil {
		t.Fatal(err)
	}

	fromSource := make(map[string]string)
	for _, block := range strings.Split(string(source), "-- name: ")[1:] {
		name := strings.Fields(block)[0]
		fromSource[name] = "-- name: " + strings.TrimSuffix(strings.TrimSpace(block), ";") + "\n"
	}

	tests := []struct {
		name  string
		query string
	}{
		{name: "GetGameAnalytics", query: getGameAnalytics},
		{name: "GetGamesCreatedCount", query: getGamesCreatedCount},
		{name: "IncrementAiWinsCount", query: incrementAiWinsCount},
		{name: "IncrementGamesCreatedCount", query: incrementGamesCreatedCount},
		{name: "IncrementGamesExitedCount", query: incrementGamesExitedCount},
		{name: "IncrementHumanWinsCount", query: incrementHumanWinsCount},
	}

	if len(fromSource) != len(tests) {
		t.Fatalf("expected %d queries in query/analytics.sql, got %d", len(tests), len(fromSource))
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			want, ok := fromSource[test.name]
			if !ok {
				t.Fatalf("%s is missing from query/analytics.sql", test.name)
			}
			if test.query != want {
				t.Fatalf("generated query is stale\nexpected: %q\ngot: %q", want, test.query)
			}
		})
	}
}
