package app

import (
	"io/ioutil"
	"os"
	"testing"
	"time"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store/iavl"
	"github.com/iov-one/vault/vaulttest"
	"github.com/stretchr/testify/require"
)

type testEvent string

func (e testEvent) EventType() string { return string(e) }

// eventHandler writes a key and returns a single event.
type eventHandler struct {
	vaulttest.WriteHandler
	event testEvent
	now   time.Time
}

func (h *eventHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	now, err := vault.BlockTime(ctx)
	if err != nil {
		return nil, err
	}
	h.now = now
	if _, err := h.WriteHandler.Deliver(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vault.DeliverResult{Events: []vault.Event{h.event}}, nil
}

type genesisWriter struct {
	key []byte
}

func (g genesisWriter) FromGenesis(opts vault.Options, db vault.KVStore) error {
	var value string
	if err := opts.ReadOptions("test", &value); err != nil {
		return err
	}
	return db.Set(g.key, []byte(value))
}

func newTestApp(t *testing.T, h vault.Handler) (*Application, *iavl.CommitStore) {
	t.Helper()
	db := iavl.NewMemCommitStore()
	queries := vault.NewQueryRouter()
	queries.Register("/raw", vault.QueryFunc(func(db vault.ReadOnlyKVStore, key []byte) (interface{}, error) {
		return db.Get(key)
	}))
	a, err := NewApplication(db, h, queries)
	require.NoError(t, err)
	return a, db
}

func TestApplicationRequiresGenesis(t *testing.T) {
	a, _ := newTestApp(t, &vaulttest.Handler{})
	_, err := a.Deliver(&vaulttest.Tx{})
	require.True(t, errors.ErrState.Is(err), "%+v", err)
	_, err = a.Check(&vaulttest.Tx{})
	require.True(t, errors.ErrState.Is(err), "%+v", err)
}

func TestApplicationInitChain(t *testing.T) {
	a, _ := newTestApp(t, &vaulttest.Handler{})
	a.WithInit(ChainInitializers(genesisWriter{key: []byte("g")}))

	gen := Genesis{
		ChainID:  "test-chain",
		AppState: vault.Options{"test": []byte(`"hello"`)},
	}
	require.NoError(t, a.InitChain(gen))
	require.Equal(t, "test-chain", a.ChainID())

	got, err := a.Query("/raw", []byte("g"))
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), got)

	err = a.InitChain(gen)
	require.True(t, errors.ErrState.Is(err), "%+v", err)

	v, err := a.LatestVersion()
	require.NoError(t, err)
	require.Equal(t, int64(1), v.Version)
}

func TestApplicationInitChainFailure(t *testing.T) {
	a, _ := newTestApp(t, &vaulttest.Handler{})
	a.WithInit(genesisWriter{key: []byte("g")})

	// invalid app state for the initializer
	err := a.InitChain(Genesis{ChainID: "test-chain", AppState: vault.Options{"test": []byte(`{`)}})
	require.Error(t, err)
	require.Equal(t, "", a.ChainID())

	got, err := a.Query("/raw", []byte(chainIDKey))
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestApplicationDeliverCommitsAndPublishes(t *testing.T) {
	h := &eventHandler{
		WriteHandler: vaulttest.WriteHandler{Key: []byte("k"), Value: []byte("v")},
		event:        "test/written",
	}
	a, db := newTestApp(t, h)
	require.NoError(t, a.InitChain(Genesis{ChainID: "test-chain"}))

	blockTime := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	a.WithClock(func() time.Time { return blockTime })

	var published []vault.Event
	a.WithEventSink(EventSinkFunc(func(ctx vault.Context, events []vault.Event) {
		// events are published only when the state is already committed
		val, err := db.Get([]byte("k"))
		require.NoError(t, err)
		require.Equal(t, []byte("v"), val)
		published = append(published, events...)
	}))

	res, err := a.Deliver(&vaulttest.Tx{Msg: &vaulttest.Msg{RoutePath: "test/write"}})
	require.NoError(t, err)
	require.Len(t, res.Events, 1)
	require.Equal(t, []vault.Event{testEvent("test/written")}, published)
	require.Equal(t, blockTime, h.now)
}

func TestApplicationFailedDeliverLeavesNoTrace(t *testing.T) {
	h := &vaulttest.WriteHandler{
		Key:   []byte("k"),
		Value: []byte("v"),
		Err:   errors.ErrUnauthorized,
	}
	a, db := newTestApp(t, h)
	require.NoError(t, a.InitChain(Genesis{ChainID: "test-chain"}))

	var calls int
	a.WithEventSink(EventSinkFunc(func(vault.Context, []vault.Event) { calls++ }))

	before, err := a.LatestVersion()
	require.NoError(t, err)

	_, err = a.Deliver(&vaulttest.Tx{})
	require.True(t, errors.ErrUnauthorized.Is(err))

	val, err := db.Get([]byte("k"))
	require.NoError(t, err)
	require.Nil(t, val)
	require.Equal(t, 0, calls)

	after, err := a.LatestVersion()
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestApplicationCheckNeverWrites(t *testing.T) {
	h := &vaulttest.WriteHandler{Key: []byte("k"), Value: []byte("v")}
	a, db := newTestApp(t, h)
	require.NoError(t, a.InitChain(Genesis{ChainID: "test-chain"}))

	_, err := a.Check(&vaulttest.Tx{})
	require.NoError(t, err)

	val, err := db.Get([]byte("k"))
	require.NoError(t, err)
	require.Nil(t, val)
}

func TestApplicationUnknownQuery(t *testing.T) {
	a, _ := newTestApp(t, &vaulttest.Handler{})
	_, err := a.Query("/missing", nil)
	require.True(t, errors.ErrNotFound.Is(err))
}

func TestApplicationReload(t *testing.T) {
	dir, err := ioutil.TempDir("", "app")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	h := &vaulttest.WriteHandler{Key: []byte("k"), Value: []byte("v")}

	db, err := iavl.NewCommitStore(dir, "test")
	require.NoError(t, err)
	a, err := NewApplication(db, h, vault.NewQueryRouter())
	require.NoError(t, err)
	require.NoError(t, a.InitChain(Genesis{ChainID: "test-chain"}))
	_, err = a.Deliver(&vaulttest.Tx{})
	require.NoError(t, err)
	want, err := a.LatestVersion()
	require.NoError(t, err)
	db.Close()

	db, err = iavl.NewCommitStore(dir, "test")
	require.NoError(t, err)
	defer db.Close()
	a, err = NewApplication(db, h, vault.NewQueryRouter())
	require.NoError(t, err)

	require.Equal(t, "test-chain", a.ChainID())
	got, err := a.LatestVersion()
	require.NoError(t, err)
	require.Equal(t, want, got)

	val, err := db.Get([]byte("k"))
	require.NoError(t, err)
	require.Equal(t, []byte("v"), val)
}

func TestNewApplicationLoadsChainID(t *testing.T) {
	a, db := newTestApp(t, &vaulttest.Handler{})
	require.Equal(t, "", a.ChainID())
	require.NoError(t, a.InitChain(Genesis{ChainID: "test-chain"}))

	reopened, err := NewApplication(db, &vaulttest.Handler{}, vault.NewQueryRouter())
	require.NoError(t, err)
	require.Equal(t, "test-chain", reopened.ChainID())
	_, err = reopened.Check(&vaulttest.Tx{})
	require.NoError(t, err)
}
