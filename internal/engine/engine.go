// Package engine bootstraps the client half of the system from
// configuration: the API façade, the local swipe ledger and the
// compatibility scorer wired to it.
package engine

import (
	"fmt"

	"github.com/buildrs/match-engine/internal/client"
	"github.com/buildrs/match-engine/internal/config"
	redisClient "github.com/buildrs/match-engine/internal/datastore/redis"
	"github.com/buildrs/match-engine/internal/ledger"
	"github.com/buildrs/match-engine/internal/matching"
)

type Engine struct {
	Client *client.Client
	Ledger *ledger.Ledger
	Scorer *matching.Scorer
}

// New reads API_BASE_URL, CLIENT_ID, LEDGER_BACKEND and LEDGER_PATH (or
// REDIS_HOST/REDIS_PORT for the redis backend) and assembles the engine.
// The scorer consults the ledger so decided cards never resurface.
func New(cfg config.IConfig) (*Engine, error) {
	var store ledger.Store

	switch backend := cfg.Get("LEDGER_BACKEND"); backend {
	case "redis":
		rdb, err := redisClient.New(cfg.Get("REDIS_HOST"), cfg.Get("REDIS_PORT"))
		if err != nil {
			return nil, fmt.Errorf("connect ledger redis: %w", err)
		}
		store = ledger.NewRedisStore(rdb, "buildrs:")
	case "", "file":
		fileStore, err := ledger.NewFileStore(cfg.Get("LEDGER_PATH"))
		if err != nil {
			return nil, fmt.Errorf("open ledger directory: %w", err)
		}
		store = fileStore
	default:
		return nil, fmt.Errorf("unknown ledger backend %q", backend)
	}

	led := ledger.New(store)

	return &Engine{
		Client: client.New(cfg.Get("API_BASE_URL"), cfg.Get("CLIENT_ID"), nil, nil),
		Ledger: led,
		Scorer: matching.NewScorer(led),
	}, nil
}
