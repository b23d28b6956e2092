package store

import (
	"bytes"

	"github.com/google/btree"
)

// degree of every btree used as a cache
const degree = 2

// BTreeCacheable adds a btree cache wrap to a KVStore.
type BTreeCacheable struct {
	KVStore
}

var _ CacheableKVStore = BTreeCacheable{}

// CacheWrap returns a staging area over the store. Nothing reaches the store
// before Write is called.
func (b BTreeCacheable) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b.KVStore, NewNonAtomicBatch(b.KVStore), nil)
}

// MemStore returns a store that keeps all data in memory. Writing it is a
// noop, so it is meant for tests only.
func MemStore() CacheableKVStore {
	e := EmptyKVStore{}
	return NewBTreeCacheWrap(e, NewNonAtomicBatch(e), nil)
}

// BTreeCacheWrap stages changes in a btree over a read only parent. All
// changes are collected in a batch that Write applies to the parent.
type BTreeCacheWrap struct {
	bt     *btree.BTree
	free   *btree.FreeList
	parent ReadOnlyKVStore
	batch  Batch
}

var _ KVCacheWrap = BTreeCacheWrap{}

// NewBTreeCacheWrap returns a cache wrap reading from parent and writing
// through batch. The free list is shared by nested caches and may be nil.
func NewBTreeCacheWrap(parent ReadOnlyKVStore, batch Batch, free *btree.FreeList) BTreeCacheWrap {
	if free == nil {
		free = btree.NewFreeList(btree.DefaultFreeListSize)
	}
	return BTreeCacheWrap{
		bt:     btree.NewWithFreeList(degree, free),
		free:   free,
		parent: parent,
		batch:  batch,
	}
}

// CacheWrap stages changes on top of the staged changes of b.
func (b BTreeCacheWrap) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b, NewNonAtomicBatch(b), b.free)
}

// Write applies all staged changes to the parent and empties the cache.
func (b BTreeCacheWrap) Write() error {
	err := b.batch.Write()
	b.Discard()
	return err
}

// Discard drops all staged changes.
func (b BTreeCacheWrap) Discard() {
	for b.bt.DeleteMin() != nil {
	}
	if r, ok := b.batch.(resetter); ok {
		r.Reset()
	}
}

type resetter interface {
	Reset()
}

// Set stages a write. The value is copied.
func (b BTreeCacheWrap) Set(key, value []byte) error {
	it := entry{key: key, value: append([]byte{}, value...)}
	b.bt.ReplaceOrInsert(it)
	return b.batch.Set(key, it.value)
}

// Delete stages a removal.
func (b BTreeCacheWrap) Delete(key []byte) error {
	b.bt.ReplaceOrInsert(entry{key: key, deleted: true})
	return b.batch.Delete(key)
}

// Get returns the staged value, falling back to the parent.
func (b BTreeCacheWrap) Get(key []byte) ([]byte, error) {
	if it, ok := b.staged(key); ok {
		if it.deleted {
			return nil, nil
		}
		return it.value, nil
	}
	return b.parent.Get(key)
}

// Has checks the staged changes, falling back to the parent.
func (b BTreeCacheWrap) Has(key []byte) (bool, error) {
	if it, ok := b.staged(key); ok {
		return !it.deleted, nil
	}
	return b.parent.Has(key)
}

func (b BTreeCacheWrap) staged(key []byte) (entry, bool) {
	res := b.bt.Get(entry{key: key})
	if res == nil {
		return entry{}, false
	}
	return res.(entry), true
}

// entry is a staged write or, if deleted is set, a staged removal.
type entry struct {
	key     []byte
	value   []byte
	deleted bool
}

var _ btree.Item = entry{}

func (e entry) Less(than btree.Item) bool {
	return bytes.Compare(e.key, than.(entry).key) < 0
}
