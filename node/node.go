package node

import (
	"io"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/app"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/x/access"
	"github.com/iov-one/vault/x/cash"
	"github.com/iov-one/vault/x/gate"
	"github.com/iov-one/vault/x/plan"
	"github.com/iov-one/vault/x/reentry"
	"github.com/iov-one/vault/x/sigs"
	"github.com/iov-one/vault/x/treasury"
	"github.com/iov-one/vault/x/utils"
	"github.com/tendermint/tendermint/libs/log"
)

// Node is a running vault application.
type Node struct {
	*app.Application

	// Cash moves value between wallets. Receivers can be registered
	// before the first call.
	Cash *cash.Controller

	// Handler is the full handler stack, the same one the application
	// dispatches to. Receivers calling back into the application must use
	// it with the store they were given.
	Handler vault.Handler
}

// Handler returns the full handler stack using given value transfer
// controller and reentry lock.
func Handler(control *cash.Controller, lock reentry.Lock) vault.Handler {
	auth := sigs.Authenticate{}

	r := app.NewRouter()
	cash.RegisterRoutes(r, auth, control)
	access.RegisterRoutes(r, auth)
	gate.RegisterRoutes(r, auth)
	treasury.RegisterRoutes(r, auth)
	plan.RegisterRoutes(r, auth, control, lock)

	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewMetrics(),
		utils.NewRecovery(),
		utils.NewSavepoint().OnCheck().OnDeliver(),
		sigs.NewDecorator(),
	).WithHandler(r)
}

// QueryRouter returns the router of all read only queries.
func QueryRouter(control *cash.Controller) vault.QueryRouter {
	qr := vault.NewQueryRouter()
	cash.RegisterQuery(qr, control)
	access.RegisterQuery(qr)
	gate.RegisterQuery(qr)
	treasury.RegisterQuery(qr)
	plan.RegisterQuery(qr)
	return qr
}

// Initializers returns the genesis loader of all extensions.
func Initializers(control *cash.Controller) vault.Initializer {
	return app.ChainInitializers(
		access.Initializer{},
		gate.Initializer{},
		treasury.Initializer{},
		cash.Initializer{Control: control},
	)
}

// New returns a node using given store. Events are written to the logger.
func New(db vault.CommitKVStore, logger log.Logger) (*Node, error) {
	control := cash.NewController()
	plan.RegisterCustody(control)
	plan.RegisterMetrics()

	h := Handler(control, reentry.NewLock())
	a, err := app.NewApplication(db, h, QueryRouter(control))
	if err != nil {
		return nil, err
	}
	a.WithInit(Initializers(control)).
		WithLogger(logger).
		WithEventSink(app.LogSink{})

	return &Node{Application: a, Cash: control, Handler: h}, nil
}

// FromConfig opens the store described by cfg and returns a node logging to
// w. The genesis file is loaded if the store is empty. Call the returned
// function to release the store.
func FromConfig(cfg app.Config, w io.Writer) (*Node, func(), error) {
	logger, err := cfg.Logger(w)
	if err != nil {
		return nil, nil, err
	}
	db, err := cfg.OpenStore()
	if err != nil {
		return nil, nil, err
	}
	n, err := New(db, logger)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	if n.ChainID() == "" {
		gen, err := cfg.Genesis()
		if err != nil {
			db.Close()
			return nil, nil, errors.Wrap(err, "genesis")
		}
		if err := n.InitChain(gen); err != nil {
			db.Close()
			return nil, nil, err
		}
	}
	return n, db.Close, nil
}
