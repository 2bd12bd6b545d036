package service_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"testing"

	"github.com/Guimesquita15/projeto-para-a-pap/internal/dto"
	"github.com/Guimesquita15/projeto-para-a-pap/internal/infra"
	"github.com/Guimesquita15/projeto-para-a-pap/internal/model"
	"github.com/Guimesquita15/projeto-para-a-pap/internal/repository"
	"github.com/Guimesquita15/projeto-para-a-pap/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── In-memory ProdutorRepository stub ────────────────────────────────────────

type stubProdutorRepo struct {
	produtores []*model.Produtor
	proximoID  int
}

func newStubProdutorRepo() *stubProdutorRepo {
	return &stubProdutorRepo{proximoID: 1}
}

func (r *stubProdutorRepo) Create(_ context.Context, p *model.Produtor) error {
	p.ID = strconv.Itoa(r.proximoID)
	r.proximoID++
	copia := *p
	r.produtores = append(r.produtores, &copia)
	return nil
}

func (r *stubProdutorRepo) List(_ context.Context) ([]model.Produtor, error) {
	result := make([]model.Produtor, len(r.produtores))
	for i, p := range r.produtores {
		result[i] = *p
	}
	return result, nil
}

func (r *stubProdutorRepo) FindByID(_ context.Context, id string) (*model.Produtor, error) {
	for _, p := range r.produtores {
		if p.ID == id {
			copia := *p
			return &copia, nil
		}
	}
	return nil, repository.ErrProdutorNaoEncontrado
}

func (r *stubProdutorRepo) FindByEmail(_ context.Context, email string) (*model.Produtor, error) {
	for _, p := range r.produtores {
		if p.Email == email {
			copia := *p
			return &copia, nil
		}
	}
	return nil, repository.ErrProdutorNaoEncontrado
}

func (r *stubProdutorRepo) Update(_ context.Context, p *model.Produtor) error {
	for i, existente := range r.produtores {
		if existente.ID == p.ID {
			copia := *p
			r.produtores[i] = &copia
			return nil
		}
	}
	return repository.ErrProdutorNaoEncontrado
}

func (r *stubProdutorRepo) Kind() string { return "stub" }

var _ repository.ProdutorRepository = (*stubProdutorRepo)(nil)

// ── Geocoder / uploader stubs ────────────────────────────────────────────────

type stubGeocoder struct {
	lat, lng float64
	err      error
	chamadas int
}

func (g *stubGeocoder) Geocode(_ context.Context, _ string) (float64, float64, error) {
	g.chamadas++
	if g.err != nil {
		return 0, 0, g.err
	}
	return g.lat, g.lng, nil
}

type stubUploader struct {
	err      error
	enviados int
}

func (u *stubUploader) Upload(_ context.Context, nome, _ string, _ io.Reader) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	u.enviados++
	return "https://storage.googleapis.com/fotos-teste/" + nome, nil
}

func pedidoRegisto() dto.RegistarProdutorRequest {
	return dto.RegistarProdutorRequest{
		Nome:     "Quinta da Guilhermina",
		Morada:   "Rua das Flores 10, Viana do Castelo",
		Telefone: "258123456",
		Produtos: []string{"Maçãs", "Peras"},
	}
}

// ── Registar ─────────────────────────────────────────────────────────────────

func TestRegistarProdutor(t *testing.T) {
	repo := newStubProdutorRepo()
	geo := &stubGeocoder{lat: 41.6946, lng: -8.8362}
	svc := service.NewProdutorService(repo, geo, nil)

	resp, err := svc.Registar(context.Background(), pedidoRegisto(), nil)

	require.NoError(t, err)
	assert.Equal(t, "sucesso", resp.Status)
	assert.Equal(t, 41.6946, resp.Latitude)
	assert.Equal(t, -8.8362, resp.Longitude)

	require.Len(t, repo.produtores, 1)
	guardado := repo.produtores[0]
	assert.Equal(t, 41.6946, guardado.Latitude)
	assert.Equal(t, -8.8362, guardado.Longitude)
	assert.True(t, guardado.Disponivel)
	// Ordem dos produtos preservada, sem fotos neste backend
	require.Len(t, guardado.Produtos, 2)
	assert.Equal(t, model.ProdutoVenda{Nome: "Maçãs"}, guardado.Produtos[0])
	assert.Equal(t, model.ProdutoVenda{Nome: "Peras"}, guardado.Produtos[1])
}

func TestRegistarProdutor_MoradaNaoEncontrada(t *testing.T) {
	repo := newStubProdutorRepo()
	geo := &stubGeocoder{err: infra.ErrMoradaNaoEncontrada}
	svc := service.NewProdutorService(repo, geo, nil)

	_, err := svc.Registar(context.Background(), pedidoRegisto(), nil)

	assert.ErrorIs(t, err, infra.ErrMoradaNaoEncontrada)
	assert.Empty(t, repo.produtores, "nenhum registo pode ser criado sem coordenadas")
}

func TestRegistarProdutor_ServicoIndisponivel(t *testing.T) {
	repo := newStubProdutorRepo()
	geo := &stubGeocoder{err: fmt.Errorf("%w: timeout", infra.ErrServicoIndisponivel)}
	svc := service.NewProdutorService(repo, geo, nil)

	_, err := svc.Registar(context.Background(), pedidoRegisto(), nil)

	assert.ErrorIs(t, err, infra.ErrServicoIndisponivel)
	assert.Empty(t, repo.produtores)
}

func TestRegistarProdutor_ComFotos(t *testing.T) {
	repo := newStubProdutorRepo()
	geo := &stubGeocoder{lat: 41.0, lng: -8.0}
	up := &stubUploader{}
	svc := service.NewProdutorService(repo, geo, up)

	fotos := []dto.FotoUpload{
		{Indice: 1, Nome: "peras.jpg", ContentType: "image/jpeg", Conteudo: bytes.NewReader([]byte("jpg"))},
	}
	_, err := svc.Registar(context.Background(), pedidoRegisto(), fotos)

	require.NoError(t, err)
	require.Len(t, repo.produtores, 1)
	produtos := repo.produtores[0].Produtos
	require.Len(t, produtos, 2)
	assert.Empty(t, produtos[0].FotoURL, "produto sem ficheiro fica sem foto")
	assert.NotEmpty(t, produtos[1].FotoURL)
	assert.Equal(t, "Peras", produtos[1].Nome)
	assert.Equal(t, 1, up.enviados)
}

func TestRegistarProdutor_UploadFalha(t *testing.T) {
	repo := newStubProdutorRepo()
	geo := &stubGeocoder{lat: 41.0, lng: -8.0}
	up := &stubUploader{err: errors.New("bucket indisponível")}
	svc := service.NewProdutorService(repo, geo, up)

	fotos := []dto.FotoUpload{
		{Indice: 0, Nome: "macas.jpg", ContentType: "image/jpeg", Conteudo: bytes.NewReader([]byte("jpg"))},
	}
	_, err := svc.Registar(context.Background(), pedidoRegisto(), fotos)

	// Falha no upload não aborta o registo — a entrada fica sem URL
	require.NoError(t, err)
	require.Len(t, repo.produtores, 1)
	assert.Empty(t, repo.produtores[0].Produtos[0].FotoURL)
}

// ── ListarLocalizacoes ───────────────────────────────────────────────────────

func TestListarLocalizacoes(t *testing.T) {
	repo := newStubProdutorRepo()
	repo.Create(context.Background(), &model.Produtor{
		Nome: "Horta do Rio", Morada: "Ponte de Lima", Telefone: "258999888",
		Latitude: 41.7672, Longitude: -8.5836,
		Produtos: []model.ProdutoVenda{{Nome: "Couve"}, {Nome: "Mel", FotoURL: "https://exemplo/mel.jpg"}},
	})
	svc := service.NewProdutorService(repo, &stubGeocoder{}, nil)

	marcadores, err := svc.ListarLocalizacoes(context.Background())

	require.NoError(t, err)
	require.Len(t, marcadores, 1)
	m := marcadores[0]
	assert.Equal(t, "1", m.ID)
	assert.Equal(t, "Horta do Rio", m.Nome)
	assert.Equal(t, 41.7672, m.Lat)
	assert.Equal(t, -8.5836, m.Lng)
	require.Len(t, m.Produtos, 2)
	assert.Equal(t, dto.ProdutoEntry{Nome: "Couve", FotoURL: ""}, m.Produtos[0])
	assert.Equal(t, dto.ProdutoEntry{Nome: "Mel", FotoURL: "https://exemplo/mel.jpg"}, m.Produtos[1])
}

func TestListarLocalizacoes_Idempotente(t *testing.T) {
	repo := newStubProdutorRepo()
	repo.Create(context.Background(), &model.Produtor{Nome: "A", Produtos: []model.ProdutoVenda{{Nome: "Ovos"}}})
	repo.Create(context.Background(), &model.Produtor{Nome: "B", Produtos: []model.ProdutoVenda{{Nome: "Pão"}}})
	svc := service.NewProdutorService(repo, &stubGeocoder{}, nil)

	primeira, err := svc.ListarLocalizacoes(context.Background())
	require.NoError(t, err)
	segunda, err := svc.ListarLocalizacoes(context.Background())
	require.NoError(t, err)

	assert.Equal(t, primeira, segunda)
}
