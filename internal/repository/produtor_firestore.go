package repository

import (
	"context"
	"sort"
	"time"

	"github.com/Guimesquita15/projeto-para-a-pap/internal/model"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// produtoDoc mirrors model.ProdutoVenda with firestore tags.
type produtoDoc struct {
	Nome    string `firestore:"nome"`
	FotoURL string `firestore:"foto_url"`
}

// produtorDoc is the document shape of a producer. Products stay structured,
// so this backend can carry per-product photo URLs.
type produtorDoc struct {
	Nome       string       `firestore:"nome"`
	Morada     string       `firestore:"morada"`
	Telefone   string       `firestore:"telefone"`
	Latitude   float64      `firestore:"latitude"`
	Longitude  float64      `firestore:"longitude"`
	Produtos   []produtoDoc `firestore:"produtos"`
	Email      string       `firestore:"email,omitempty"`
	Password   string       `firestore:"password,omitempty"`
	Disponivel bool         `firestore:"disponivel"`
	Foto       string       `firestore:"foto,omitempty"`
	CreatedAt  time.Time    `firestore:"created_at"`
}

type firestoreProdutorRepo struct {
	cli *firestore.Client
	col string
}

// NewFirestoreProdutorRepository returns the document-oriented store.
func NewFirestoreProdutorRepository(cli *firestore.Client, collection string) ProdutorRepository {
	return &firestoreProdutorRepo{cli: cli, col: collection}
}

func (r *firestoreProdutorRepo) Kind() string { return "firestore" }

func (r *firestoreProdutorRepo) Create(ctx context.Context, p *model.Produtor) error {
	ref := r.cli.Collection(r.col).NewDoc()
	if _, err := ref.Set(ctx, modelToDoc(p, time.Now())); err != nil {
		return err
	}
	p.ID = ref.ID
	return nil
}

func (r *firestoreProdutorRepo) List(ctx context.Context) ([]model.Produtor, error) {
	// No orderBy in the query: Firestore excludes documents that lack the
	// ordered field, which would hide producers written before created_at
	// existed. Ordering happens in memory instead.
	iter := r.cli.Collection(r.col).Documents(ctx)
	defer iter.Stop()

	var docs []produtorDocID
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var doc produtorDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}
		docs = append(docs, produtorDocID{id: snap.Ref.ID, doc: doc})
	}
	ordenarPorCriacao(docs)

	produtores := make([]model.Produtor, len(docs))
	for i, d := range docs {
		produtores[i] = *docToModel(d.id, &d.doc)
	}
	return produtores, nil
}

// produtorDocID pairs a document with its key for ordering.
type produtorDocID struct {
	id  string
	doc produtorDoc
}

// ordenarPorCriacao sorts oldest first. Documents without created_at were
// written before the field existed, carry the zero time and therefore come
// first; ties break by document ID so the order is stable across calls.
func ordenarPorCriacao(docs []produtorDocID) {
	sort.SliceStable(docs, func(i, j int) bool {
		a, b := docs[i].doc.CreatedAt, docs[j].doc.CreatedAt
		if !a.Equal(b) {
			return a.Before(b)
		}
		return docs[i].id < docs[j].id
	})
}

func (r *firestoreProdutorRepo) FindByID(ctx context.Context, id string) (*model.Produtor, error) {
	snap, err := r.cli.Collection(r.col).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrProdutorNaoEncontrado
		}
		return nil, err
	}
	return snapToModel(snap)
}

func (r *firestoreProdutorRepo) FindByEmail(ctx context.Context, email string) (*model.Produtor, error) {
	iter := r.cli.Collection(r.col).Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrProdutorNaoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return snapToModel(snap)
}

func (r *firestoreProdutorRepo) Update(ctx context.Context, p *model.Produtor) error {
	ref := r.cli.Collection(r.col).Doc(p.ID)
	snap, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrProdutorNaoEncontrado
		}
		return err
	}
	// Preserve the original creation timestamp across full overwrites.
	var atual produtorDoc
	if err := snap.DataTo(&atual); err != nil {
		return err
	}
	_, err = ref.Set(ctx, modelToDoc(p, atual.CreatedAt))
	return err
}

// ── Document ↔ model conversion ──────────────────────────────────────────────

func modelToDoc(p *model.Produtor, createdAt time.Time) *produtorDoc {
	produtos := make([]produtoDoc, len(p.Produtos))
	for i, prod := range p.Produtos {
		produtos[i] = produtoDoc{Nome: prod.Nome, FotoURL: prod.FotoURL}
	}
	return &produtorDoc{
		Nome:       p.Nome,
		Morada:     p.Morada,
		Telefone:   p.Telefone,
		Latitude:   p.Latitude,
		Longitude:  p.Longitude,
		Produtos:   produtos,
		Email:      p.Email,
		Password:   p.Password,
		Disponivel: p.Disponivel,
		Foto:       p.Foto,
		CreatedAt:  createdAt,
	}
}

func snapToModel(snap *firestore.DocumentSnapshot) (*model.Produtor, error) {
	var doc produtorDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, err
	}
	return docToModel(snap.Ref.ID, &doc), nil
}

func docToModel(id string, doc *produtorDoc) *model.Produtor {
	produtos := make([]model.ProdutoVenda, len(doc.Produtos))
	for i, prod := range doc.Produtos {
		produtos[i] = model.ProdutoVenda{Nome: prod.Nome, FotoURL: prod.FotoURL}
	}
	return &model.Produtor{
		ID:         id,
		Nome:       doc.Nome,
		Morada:     doc.Morada,
		Telefone:   doc.Telefone,
		Latitude:   doc.Latitude,
		Longitude:  doc.Longitude,
		Produtos:   produtos,
		Email:      doc.Email,
		Password:   doc.Password,
		Disponivel: doc.Disponivel,
		Foto:       doc.Foto,
	}
}
