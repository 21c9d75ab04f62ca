package main

import (
	"database/sql"
	"log"
	"math/rand"
	"os"

	"github.com/sqlc-dev/pqtype"

	"github.com/saeidalz13/seabattle/api"
	"github.com/saeidalz13/seabattle/db"
	"github.com/saeidalz13/seabattle/db/sqlc"
	"github.com/saeidalz13/seabattle/internal"
	"github.com/saeidalz13/seabattle/internal/config"
	mb "github.com/saeidalz13/seabattle/models/battleship"
	mc "github.com/saeidalz13/seabattle/models/connection"
)

type analytics struct {
	manager *sqlc.AnalyticsManager
	hostIp  pqtype.Inet
	conn    *sql.DB
}

// Analytics are best effort: any failure here is logged
// and the game goes on without them.
func setupAnalytics(cfg config.Config) *analytics {
	if !cfg.AnalyticsEnabled() {
		return nil
	}

	conn, err := db.ConnectToDb(cfg.DatabaseUrl)
	if err != nil {
		log.Println("analytics disabled:", err)
		return nil
	}

	hostIp, err := internal.HostInet()
	if err != nil {
		log.Println("analytics disabled:", err)
		conn.Close()
		return nil
	}

	return &analytics{
		manager: sqlc.NewDbManager(sqlc.New(conn)).Analytics,
		hostIp:  hostIp,
		conn:    conn,
	}
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalln(err)
	}
	log.Printf("stage: %s\tseed: %d\n", cfg.Stage, cfg.Seed)
	rng := rand.New(rand.NewSource(cfg.Seed))

	opts := []mb.GameOption{mb.WithObserver(api.NewConsoleRenderer(os.Stdout, cfg.FogOfWar))}

	if cfg.FeedEnabled() {
		feed, err := api.NewFeedServer(mc.NewFeedSessionManager(), api.WithPort(cfg.FeedPort), api.WithStage(cfg.Stage))
		if err != nil {
			log.Fatalln(err)
		}
		go func() {
			if err := feed.ListenAndServe(); err != nil {
				log.Println(err)
			}
		}()
		opts = append(opts, mb.WithObserver(feed))
	}

	game, err := mb.NewGame(rng, api.NewConsoleMoveSource(os.Stdin, os.Stdout), opts...)
	if err != nil {
		log.Fatalln(err)
	}

	stats := setupAnalytics(cfg)
	if stats != nil {
		defer stats.conn.Close()

		ctx, cancel := sqlc.QuerierCtx()
		if err := stats.manager.RecordGameCreated(ctx, stats.hostIp); err != nil {
			log.Println(err)
		}
		cancel()
	}

	outcome, err := game.Run()
	if err != nil {
		log.Fatalln(err)
	}
	log.Printf("game %s finished after %d turns\twinner: %q\texited: %t\n", outcome.GameUuid, outcome.Turns, outcome.Winner, outcome.Exited)

	if stats != nil {
		ctx, cancel := sqlc.QuerierCtx()
		if err := stats.manager.RecordOutcome(ctx, stats.hostIp, outcome); err != nil {
			log.Println(err)
		}
		cancel()
	}
}
