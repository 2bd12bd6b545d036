package repository

import (
	"context"
	"errors"

	"github.com/Guimesquita15/projeto-para-a-pap/internal/model"
)

// ErrProdutorNaoEncontrado is returned by lookups that match no record.
var ErrProdutorNaoEncontrado = errors.New("produtor não encontrado")

// ProdutorRepository is the single storage abstraction. Exactly one
// implementation is chosen at startup (SQLite rows or Firestore documents)
// and injected everywhere; handlers never branch on the active backend.
type ProdutorRepository interface {
	// Create persists a new record and assigns p.ID. The caller guarantees
	// latitude/longitude were resolved beforehand.
	Create(ctx context.Context, p *model.Produtor) error
	// List returns every producer in insertion order.
	List(ctx context.Context) ([]model.Produtor, error)
	FindByID(ctx context.Context, id string) (*model.Produtor, error)
	FindByEmail(ctx context.Context, email string) (*model.Produtor, error)
	// Update overwrites the stored record in full (last writer wins).
	Update(ctx context.Context, p *model.Produtor) error
	// Kind identifies the active backend for logs and the health endpoint.
	Kind() string
}
