package iavl

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store"
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"
)

// DefaultCacheSize is the number of iavl nodes kept in memory.
const DefaultCacheSize = 10000

// CommitStore manages a iavl committed state
type CommitStore struct {
	db   dbm.DB
	tree *iavl.MutableTree
}

var _ vault.CommitKVStore = (*CommitStore)(nil)

// NewCommitStore creates a new store with a goleveldb backing, kept in
// dir/name.db
func NewCommitStore(dir, name string) (*CommitStore, error) {
	db, err := dbm.NewGoLevelDB(name, dir)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "open %s/%s: %s", dir, name, err)
	}
	return NewCommitStoreFromDB(db), nil
}

// NewMemCommitStore creates a new store that keeps all versions in memory.
func NewMemCommitStore() *CommitStore {
	return NewCommitStoreFromDB(dbm.NewMemDB())
}

// NewCommitStoreFromDB creates a new store on top of any tendermint database.
func NewCommitStoreFromDB(db dbm.DB) *CommitStore {
	return &CommitStore{
		db:   db,
		tree: iavl.NewMutableTree(db, DefaultCacheSize),
	}
}

// Close releases the underlying database.
func (s *CommitStore) Close() {
	s.db.Close()
}

// Get returns the value at last committed state
// returns nil iff key doesn't exist.
func (s *CommitStore) Get(key []byte) ([]byte, error) {
	_, val := s.tree.GetVersioned(key, s.tree.Version())
	return val, nil
}

// Commit the next version to disk, and returns info
func (s *CommitStore) Commit() (vault.CommitID, error) {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return vault.CommitID{}, errors.Wrapf(errors.ErrDatabase, "save version: %s", err)
	}
	return vault.CommitID{
		Version: version,
		Hash:    hash,
	}, nil
}

// LoadLatestVersion loads the latest persisted version.
// If there was a crash during the last commit, it is guaranteed
// to return a stable state, even if older.
func (s *CommitStore) LoadLatestVersion() error {
	if _, err := s.tree.Load(); err != nil {
		return errors.Wrapf(errors.ErrDatabase, "load: %s", err)
	}
	return nil
}

// LatestVersion returns info on the latest version saved to disk
func (s *CommitStore) LatestVersion() (vault.CommitID, error) {
	return vault.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}, nil
}

// CacheWrap gives us a savepoint to perform actions. Written data lands in
// the working tree and becomes durable with the next Commit call.
func (s *CommitStore) CacheWrap() vault.KVCacheWrap {
	working := &treeAdapter{tree: s.tree}
	return store.NewBTreeCacheWrap(working, store.NewNonAtomicBatch(working), nil)
}

// treeAdapter exposes the working (uncommitted) version of the tree as a
// KVStore.
type treeAdapter struct {
	tree *iavl.MutableTree
}

var _ vault.KVStore = (*treeAdapter)(nil)

func (a *treeAdapter) Get(key []byte) ([]byte, error) {
	_, val := a.tree.Get(key)
	return val, nil
}

func (a *treeAdapter) Has(key []byte) (bool, error) {
	return a.tree.Has(key), nil
}

func (a *treeAdapter) Set(key, value []byte) error {
	a.tree.Set(key, value)
	return nil
}

func (a *treeAdapter) Delete(key []byte) error {
	a.tree.Remove(key)
	return nil
}
