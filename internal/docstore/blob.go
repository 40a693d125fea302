package docstore

import (
	"context"
	"errors"
)

// ErrNotFound indica que nenhum documento foi persistido ainda.
var ErrNotFound = errors.New("docstore: documento não encontrado")

// Blob é a porta de persistência: um único valor serializado, lido e
// escrito por inteiro. As implementações (bolt, redis, postgres, memória)
// são intercambiáveis via injeção no Store.
type Blob interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Delete(ctx context.Context) error
}
