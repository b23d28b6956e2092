package app

import (
	"context"
	"sync"
	"time"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// Application runs handlers against a committed store. Calls are serialized,
// each of them is a single unit of work.
type Application struct {
	mu sync.Mutex

	store   vault.CommitKVStore
	handler vault.Handler
	queries vault.QueryRouter
	init    vault.Initializer
	sink    EventSink
	logger  log.Logger
	now     func() time.Time

	// chainID is loaded from db in initialization
	// saved once in InitChain
	chainID string
}

// NewApplication loads the latest version of given store and returns an
// application that dispatches all calls to given handler.
func NewApplication(store vault.CommitKVStore, handler vault.Handler, queries vault.QueryRouter) (*Application, error) {
	if err := store.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(err, "load latest version")
	}
	// Reads go through a cache, the commit store only provides Get.
	cache := store.CacheWrap()
	chainID, err := loadChainID(cache)
	cache.Discard()
	if err != nil {
		return nil, err
	}
	return &Application{
		store:   store,
		handler: handler,
		queries: queries,
		sink:    EventSinkFunc(func(vault.Context, []vault.Event) {}),
		logger:  log.NewNopLogger(),
		now:     time.Now,
		chainID: chainID,
	}, nil
}

// WithInit is used to set the genesis initializer.
func (a *Application) WithInit(init vault.Initializer) *Application {
	a.init = init
	return a
}

// WithEventSink sets the destination of events of committed calls.
func (a *Application) WithEventSink(sink EventSink) *Application {
	a.sink = sink
	return a
}

// WithLogger sets the logger used by all calls.
func (a *Application) WithLogger(logger log.Logger) *Application {
	a.logger = logger
	return a
}

// WithClock sets the time source. The time is read once per call and is
// constant during the whole unit of work.
func (a *Application) WithClock(now func() time.Time) *Application {
	a.now = now
	return a
}

// ChainID returns the chain id loaded from the store or set by InitChain.
func (a *Application) ChainID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.chainID
}

// InitChain loads the genesis state. It can be called only once for a given
// store.
func (a *Application) InitChain(gen Genesis) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.chainID != "" {
		return errors.Wrapf(errors.ErrState, "genesis already loaded for chain %s", a.chainID)
	}

	cache := a.store.CacheWrap()
	if err := saveChainID(cache, gen.ChainID); err != nil {
		cache.Discard()
		return err
	}
	if a.init != nil {
		if err := a.init.FromGenesis(gen.AppState, cache); err != nil {
			cache.Discard()
			return errors.Wrap(err, "initialize from genesis")
		}
	}
	if err := a.commit(cache); err != nil {
		return err
	}
	a.chainID = gen.ChainID
	a.logger.Info("genesis loaded", "chain_id", gen.ChainID)
	return nil
}

// Check runs the handler against the current state and discards all changes.
func (a *Application) Check(tx vault.Tx) (*vault.CheckResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ctx, err := a.context("check", tx)
	if err != nil {
		return nil, err
	}
	cache := a.store.CacheWrap()
	defer cache.Discard()
	return a.handler.Check(ctx, cache, tx)
}

// Deliver runs the handler and commits its changes if it succeeds. Returned
// events are published after the commit.
func (a *Application) Deliver(tx vault.Tx) (*vault.DeliverResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ctx, err := a.context("deliver", tx)
	if err != nil {
		return nil, err
	}
	cache := a.store.CacheWrap()
	res, err := a.handler.Deliver(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := a.commit(cache); err != nil {
		return nil, err
	}
	if len(res.Events) > 0 {
		a.sink.Publish(ctx, res.Events)
	}
	return res, nil
}

// Query reads the committed state using the handler registered for given
// path.
func (a *Application) Query(path string, data []byte) (interface{}, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	h, err := a.queries.Handler(path)
	if err != nil {
		return nil, err
	}
	// Queries are read only, so the cache is always dropped.
	cache := a.store.CacheWrap()
	defer cache.Discard()
	return h.Query(cache, data)
}

// LatestVersion returns info on the latest committed version.
func (a *Application) LatestVersion() (vault.CommitID, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.LatestVersion()
}

func (a *Application) commit(cache vault.KVCacheWrap) error {
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "write cache")
	}
	id, err := a.store.Commit()
	if err != nil {
		return errors.Wrap(err, "commit")
	}
	a.logger.Debug("committed", "version", id.Version)
	return nil
}

func (a *Application) context(call string, tx vault.Tx) (vault.Context, error) {
	if a.chainID == "" {
		return nil, errors.Wrap(errors.ErrState, "genesis not loaded")
	}
	ctx := context.Background()
	ctx = vault.WithChainID(ctx, a.chainID)
	ctx = vault.WithBlockTime(ctx, a.now())
	ctx = vault.WithLogger(ctx, a.logger)
	ctx = vault.WithLogInfo(ctx, "call", call, "path", vault.GetPath(tx))
	return ctx, nil
}
