package repository

import (
	"context"
	"testing"

	"github.com/Guimesquita15/projeto-para-a-pap/internal/model"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func novaBDTeste(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&produtorRow{}))
	return db
}

func TestSQLite_RoundTripProdutos(t *testing.T) {
	repo := NewSQLiteProdutorRepository(novaBDTeste(t))

	p := &model.Produtor{
		Nome: "Pomar do Lima", Morada: "Ponte de Lima", Telefone: "258777666",
		Latitude: 41.7672, Longitude: -8.5836,
		Produtos: []model.ProdutoVenda{{Nome: "Maçãs"}, {Nome: "Peras"}},
	}
	require.NoError(t, repo.Create(context.Background(), p))
	assert.NotEmpty(t, p.ID)

	lista, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, lista, 1)

	// A coluna de texto volta como entradas estruturadas com foto vazia,
	// pela ordem original
	assert.Equal(t, []model.ProdutoVenda{
		{Nome: "Maçãs", FotoURL: ""},
		{Nome: "Peras", FotoURL: ""},
	}, lista[0].Produtos)
	assert.Equal(t, 41.7672, lista[0].Latitude)
	assert.Equal(t, -8.5836, lista[0].Longitude)
}

func TestSQLite_FotosSaoDescartadas(t *testing.T) {
	repo := NewSQLiteProdutorRepository(novaBDTeste(t))

	p := &model.Produtor{
		Nome: "Quinta", Morada: "Braga", Telefone: "1",
		Latitude: 1, Longitude: 1,
		Produtos: []model.ProdutoVenda{{Nome: "Mel", FotoURL: "https://exemplo/mel.jpg"}},
	}
	require.NoError(t, repo.Create(context.Background(), p))

	obtido, err := repo.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	// Representação em linha não guarda fotos por produto
	assert.Equal(t, []model.ProdutoVenda{{Nome: "Mel"}}, obtido.Produtos)
}

func TestSQLite_FindByID_NaoExiste(t *testing.T) {
	repo := NewSQLiteProdutorRepository(novaBDTeste(t))

	_, err := repo.FindByID(context.Background(), "42")
	assert.ErrorIs(t, err, ErrProdutorNaoEncontrado)

	_, err = repo.FindByID(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrProdutorNaoEncontrado)
}

func TestSQLite_FindByEmail(t *testing.T) {
	repo := NewSQLiteProdutorRepository(novaBDTeste(t))

	p := &model.Produtor{
		Nome: "Maria", Morada: "Braga", Telefone: "1",
		Latitude: 1, Longitude: 1,
		Produtos: []model.ProdutoVenda{{Nome: "Ovos"}},
		Email:    "maria@exemplo.pt", Password: "segredo",
	}
	require.NoError(t, repo.Create(context.Background(), p))

	obtido, err := repo.FindByEmail(context.Background(), "maria@exemplo.pt")
	require.NoError(t, err)
	assert.Equal(t, p.ID, obtido.ID)
	assert.Equal(t, "segredo", obtido.Password)

	_, err = repo.FindByEmail(context.Background(), "ninguem@exemplo.pt")
	assert.ErrorIs(t, err, ErrProdutorNaoEncontrado)
}

func TestSQLite_Update(t *testing.T) {
	repo := NewSQLiteProdutorRepository(novaBDTeste(t))

	p := &model.Produtor{
		Nome: "Antes", Morada: "Braga", Telefone: "1",
		Latitude: 1, Longitude: 1,
		Produtos: []model.ProdutoVenda{{Nome: "Couve"}},
	}
	require.NoError(t, repo.Create(context.Background(), p))

	p.Nome = "Depois"
	p.Produtos = []model.ProdutoVenda{{Nome: "Tomate"}, {Nome: "Cebola"}}
	require.NoError(t, repo.Update(context.Background(), p))

	obtido, err := repo.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Depois", obtido.Nome)
	assert.Equal(t, []model.ProdutoVenda{{Nome: "Tomate"}, {Nome: "Cebola"}}, obtido.Produtos)
}

func TestSQLite_Update_NaoExiste(t *testing.T) {
	repo := NewSQLiteProdutorRepository(novaBDTeste(t))

	err := repo.Update(context.Background(), &model.Produtor{
		ID: "42", Nome: "Fantasma", Morada: "Nenhures", Telefone: "1",
		Latitude: 1, Longitude: 1,
	})
	assert.ErrorIs(t, err, ErrProdutorNaoEncontrado)

	// Um update de um id inexistente nunca pode inserir uma linha
	lista, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, lista)
}

// ── Conversão texto ↔ estrutura ──────────────────────────────────────────────

func TestSplitProdutos(t *testing.T) {
	assert.Empty(t, splitProdutos(""))
	assert.Empty(t, splitProdutos("   "))
	assert.Equal(t,
		[]model.ProdutoVenda{{Nome: "Alface"}, {Nome: "Tomate"}},
		splitProdutos("Alface, Tomate"))
	// Espaços irregulares e vírgulas soltas são tolerados
	assert.Equal(t,
		[]model.ProdutoVenda{{Nome: "Mel"}, {Nome: "Queijo"}},
		splitProdutos(" Mel ,, Queijo "))
}

func TestJoinProdutos(t *testing.T) {
	assert.Equal(t, "", joinProdutos(nil))
	assert.Equal(t, "Alface, Tomate",
		joinProdutos([]model.ProdutoVenda{{Nome: "Alface"}, {Nome: "Tomate", FotoURL: "ignorada"}}))
}
