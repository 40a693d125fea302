package docstore

import (
	"context"

	"github.com/boltdb/bolt"
)

var (
	boltBucket = []byte("barber_mvp")
	boltKey    = []byte("document")
)

// BoltBlob guarda o documento em um arquivo local, num único bucket com
// uma única chave. É o backend padrão: o análogo mais próximo da chave
// única de localStorage do app original.
type BoltBlob struct {
	db *bolt.DB
}

func NewBoltBlob(path string) (*BoltBlob, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	return &BoltBlob{db: db}, nil
}

// Close libera o lock do arquivo.
func (b *BoltBlob) Close() error {
	return b.db.Close()
}

func (b *BoltBlob) Load(_ context.Context) ([]byte, error) {
	var out []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(boltBucket)
		if bucket == nil {
			return ErrNotFound
		}
		value := bucket.Get(boltKey)
		if value == nil {
			return ErrNotFound
		}
		out = append([]byte(nil), value...)
		return nil
	})
	return out, err
}

func (b *BoltBlob) Save(_ context.Context, data []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(boltBucket)
		if err != nil {
			return err
		}
		return bucket.Put(boltKey, data)
	})
}

func (b *BoltBlob) Delete(_ context.Context) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(boltBucket)
		if bucket == nil {
			return nil
		}
		return bucket.Delete(boltKey)
	})
}
