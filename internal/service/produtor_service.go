package service

import (
	"context"
	"io"

	"github.com/Guimesquita15/projeto-para-a-pap/internal/dto"
	"github.com/Guimesquita15/projeto-para-a-pap/internal/metrics"
	"github.com/Guimesquita15/projeto-para-a-pap/internal/model"
	"github.com/Guimesquita15/projeto-para-a-pap/internal/repository"

	"github.com/rs/zerolog/log"
)

// Geocoder resolves a morada to decimal-degree coordinates.
// Implemented by infra.NominatimClient.
type Geocoder interface {
	Geocode(ctx context.Context, morada string) (lat, lng float64, err error)
}

// FotoUploader stores one product photo and returns its public URL.
// Implemented by infra.StorageUploader; nil when no blob store is configured.
type FotoUploader interface {
	Upload(ctx context.Context, nomeFicheiro, contentType string, conteudo io.Reader) (string, error)
}

type ProdutorService interface {
	Registar(ctx context.Context, req dto.RegistarProdutorRequest, fotos []dto.FotoUpload) (*dto.RegistoResponse, error)
	ListarLocalizacoes(ctx context.Context) ([]dto.ProdutorLocalizacao, error)
}

type produtorService struct {
	repo  repository.ProdutorRepository
	geo   Geocoder
	fotos FotoUploader
}

func NewProdutorService(repo repository.ProdutorRepository, geo Geocoder, fotos FotoUploader) ProdutorService {
	return &produtorService{repo: repo, geo: geo, fotos: fotos}
}

// Registar runs the registration pipeline: resolve the morada, assemble the
// record, persist it. Validation happened at the handler; no store or resolver
// call is made for invalid payloads. A record is never written without
// resolved coordinates.
func (s *produtorService) Registar(ctx context.Context, req dto.RegistarProdutorRequest, fotos []dto.FotoUpload) (*dto.RegistoResponse, error) {
	lat, lng, err := s.geo.Geocode(ctx, req.Morada)
	if err != nil {
		metrics.RegistoResult("geocode_falhou")
		return nil, err
	}

	produtor := &model.Produtor{
		Nome:       req.Nome,
		Morada:     req.Morada,
		Telefone:   req.Telefone,
		Latitude:   lat,
		Longitude:  lng,
		Produtos:   s.montarProdutos(ctx, req.Produtos, fotos),
		Email:      req.Email,
		Password:   req.Password,
		Disponivel: true,
	}

	if err := s.repo.Create(ctx, produtor); err != nil {
		metrics.RegistoResult("erro_armazenamento")
		return nil, err
	}

	metrics.RegistoResult("sucesso")
	log.Info().
		Str("id", produtor.ID).
		Str("backend", s.repo.Kind()).
		Float64("lat", lat).
		Float64("lng", lng).
		Msg("produtor registado")

	return &dto.RegistoResponse{
		Status:    "sucesso",
		Mensagem:  "Produtor registado e adicionado ao mapa!",
		Latitude:  lat,
		Longitude: lng,
	}, nil
}

// montarProdutos pairs product names with their uploaded photos, preserving
// input order. Photo uploads are best-effort: a failed upload keeps the entry
// with an empty URL instead of aborting the registration, and already-uploaded
// photos are not rolled back.
func (s *produtorService) montarProdutos(ctx context.Context, nomes []string, fotos []dto.FotoUpload) []model.ProdutoVenda {
	porIndice := make(map[int]dto.FotoUpload, len(fotos))
	for _, f := range fotos {
		porIndice[f.Indice] = f
	}

	produtos := make([]model.ProdutoVenda, len(nomes))
	for i, nome := range nomes {
		produtos[i] = model.ProdutoVenda{Nome: nome}

		foto, ok := porIndice[i]
		if !ok || s.fotos == nil {
			continue
		}
		url, err := s.fotos.Upload(ctx, foto.Nome, foto.ContentType, foto.Conteudo)
		if err != nil {
			log.Warn().Err(err).Str("produto", nome).Msg("upload de foto falhou, entrada fica sem foto")
			continue
		}
		produtos[i].FotoURL = url
	}
	return produtos
}

// ListarLocalizacoes returns all producers as map markers. The row backend
// already normalizes its text column into structured entries, so both
// representations come out with the same shape.
func (s *produtorService) ListarLocalizacoes(ctx context.Context) ([]dto.ProdutorLocalizacao, error) {
	produtores, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	marcadores := make([]dto.ProdutorLocalizacao, len(produtores))
	for i, p := range produtores {
		marcadores[i] = dto.ProdutorLocalizacao{
			ID:       p.ID,
			Nome:     p.Nome,
			Lat:      p.Latitude,
			Lng:      p.Longitude,
			Produtos: paraEntries(p.Produtos),
			Morada:   p.Morada,
			Telefone: p.Telefone,
		}
	}
	return marcadores, nil
}

func paraEntries(produtos []model.ProdutoVenda) []dto.ProdutoEntry {
	entries := make([]dto.ProdutoEntry, len(produtos))
	for i, p := range produtos {
		entries[i] = dto.ProdutoEntry{Nome: p.Nome, FotoURL: p.FotoURL}
	}
	return entries
}
