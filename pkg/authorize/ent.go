package authorize

import (
	"context"
	"log/slog"
	"sync/atomic"

	psqlwatcher "github.com/IguteChung/casbin-psql-watcher"
	casbin "github.com/casbin/casbin/v2"
	entadapter "github.com/casbin/ent-adapter"
)

// policyHealthy flips to false when a watcher-triggered policy reload
// fails, so the readiness probe can surface it.
var policyHealthy atomic.Bool

func init() {
	policyHealthy.Store(true)
}

// IsPolicyHealthy reports whether the last policy reload succeeded.
func IsPolicyHealthy() bool {
	return policyHealthy.Load()
}

type CleanupFunc func(ctx context.Context)

// NewEnforcer builds a DistributedEnforcer backed by the policy database.
// With sync enabled it attaches a Postgres LISTEN/NOTIFY watcher so policy
// changes made by one instance propagate to the others without polling.
// The returned cleanup must run on shutdown.
func NewEnforcer(modelPath string, dsn string, sync bool) (*casbin.DistributedEnforcer, CleanupFunc, error) {
	adapter, err := entadapter.NewAdapter("postgres", dsn)
	if err != nil {
		return nil, nil, err
	}

	enf, err := casbin.NewDistributedEnforcer(modelPath, adapter)
	if err != nil {
		return nil, nil, err
	}

	enf.EnableAutoSave(true)
	enf.EnableEnforce(true)

	if !sync {
		return enf, func(ctx context.Context) {}, nil
	}

	watcher, err := psqlwatcher.NewWatcherWithConnString(context.Background(), dsn, psqlwatcher.Option{
		Channel: "casbin_policy_update",
	})
	if err != nil {
		return nil, nil, err
	}

	err = watcher.SetUpdateCallback(func(msg string) {
		slog.Debug("casbin policy update received", "message", msg)
		if err := enf.LoadPolicy(); err != nil {
			slog.Error("reload policy after watcher notification", "error", err)
			policyHealthy.Store(false)
			return
		}
		policyHealthy.Store(true)
	})
	if err != nil {
		return nil, nil, err
	}

	if err := enf.SetWatcher(watcher); err != nil {
		return nil, nil, err
	}

	cleanup := func(ctx context.Context) {
		slog.Info("closing casbin policy watcher")
		watcher.Close()
		enf.StopAutoLoadPolicy()
	}

	return enf, cleanup, nil
}
