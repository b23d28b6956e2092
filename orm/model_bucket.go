package orm

import (
	"regexp"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// ModelBucket is implemented by buckets that operates on Models.
type ModelBucket interface {
	// One query the database for a single model instance. Lookup is done
	// by the primary key. Result is loaded into given destination model.
	// This method returns ErrNotFound if the entity does not exist in the
	// database.
	One(db vault.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns nil if an entity with given primary key exists. It
	// returns ErrNotFound otherwise.
	Has(db vault.ReadOnlyKVStore, key []byte) error

	// Put saves given model in the database.
	Put(db vault.KVStore, key []byte, m Model) error

	// Delete removes an entity with given primary key from the database.
	// It returns ErrNotFound if an entity with given key does not exist.
	Delete(db vault.KVStore, key []byte) error
}

// NewModelBucket returns a ModelBucket instance storing all entities under
// given name prefix.
//
// Name must be a lowercase, 3 to 10 characters long string. It is used as
// the key prefix and must be unique within the application.
func NewModelBucket(name string) ModelBucket {
	if !isBucketName(name) {
		panic("illegal bucket name: " + name)
	}
	return &modelBucket{
		prefix: []byte(name + ":"),
	}
}

type modelBucket struct {
	prefix []byte
}

var _ ModelBucket = (*modelBucket)(nil)

func (mb *modelBucket) dbKey(key []byte) []byte {
	if len(key) == 0 {
		panic("empty key")
	}
	return append(append([]byte{}, mb.prefix...), key...)
}

func (mb *modelBucket) One(db vault.ReadOnlyKVStore, key []byte, dest Model) error {
	raw, err := db.Get(mb.dbKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot get from the database")
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	return Unmarshal(raw, dest)
}

func (mb *modelBucket) Has(db vault.ReadOnlyKVStore, key []byte) error {
	ok, err := db.Has(mb.dbKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot query the database")
	}
	if !ok {
		return errors.ErrNotFound
	}
	return nil
}

func (mb *modelBucket) Put(db vault.KVStore, key []byte, m Model) error {
	raw, err := Marshal(m)
	if err != nil {
		return err
	}
	if err := db.Set(mb.dbKey(key), raw); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

func (mb *modelBucket) Delete(db vault.KVStore, key []byte) error {
	if err := mb.Has(db, key); err != nil {
		return err
	}
	return db.Delete(mb.dbKey(key))
}
