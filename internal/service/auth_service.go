package service

import (
	"context"
	"errors"

	"github.com/Guimesquita15/projeto-para-a-pap/internal/dto"
	"github.com/Guimesquita15/projeto-para-a-pap/internal/model"
	"github.com/Guimesquita15/projeto-para-a-pap/internal/repository"
)

// ErrCredenciaisInvalidas is the single login failure: unknown email and wrong
// password are deliberately indistinguishable at the API.
var ErrCredenciaisInvalidas = errors.New("credenciais inválidas")

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	ObterPerfil(ctx context.Context, id string) (*dto.PerfilResponse, error)
	AtualizarPerfil(ctx context.Context, req dto.AtualizarPerfilRequest) error
}

type authService struct {
	repo repository.ProdutorRepository
}

func NewAuthService(repo repository.ProdutorRepository) AuthService {
	return &authService{repo: repo}
}

// Login compares credentials by exact match. The frontend stores and sends
// plaintext passwords; hashing would break every existing account, so the
// lenient contract is preserved on purpose.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	produtor, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrProdutorNaoEncontrado) {
			return nil, ErrCredenciaisInvalidas
		}
		return nil, err
	}
	if produtor.Password != req.Password {
		return nil, ErrCredenciaisInvalidas
	}
	return &dto.LoginResponse{Status: "sucesso", ID: produtor.ID, Nome: produtor.Nome}, nil
}

func (s *authService) ObterPerfil(ctx context.Context, id string) (*dto.PerfilResponse, error) {
	produtor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.PerfilResponse{
		ID:         produtor.ID,
		Nome:       produtor.Nome,
		Morada:     produtor.Morada,
		Telefone:   produtor.Telefone,
		Email:      produtor.Email,
		Latitude:   produtor.Latitude,
		Longitude:  produtor.Longitude,
		Produtos:   paraEntries(produtor.Produtos),
		Disponivel: produtor.Disponivel,
		Foto:       produtor.Foto,
	}, nil
}

// AtualizarPerfil overwrites the mutable fields in full. No optimistic
// concurrency control, last writer wins. Product names sent here carry no
// photos; existing photo associations are replaced by empty ones.
func (s *authService) AtualizarPerfil(ctx context.Context, req dto.AtualizarPerfilRequest) error {
	produtor, err := s.repo.FindByID(ctx, req.ID)
	if err != nil {
		return err
	}

	produtos := make([]model.ProdutoVenda, len(req.Produtos))
	for i, nome := range req.Produtos {
		produtos[i] = model.ProdutoVenda{Nome: nome}
	}

	produtor.Nome = req.Nome
	produtor.Telefone = req.Telefone
	produtor.Produtos = produtos
	produtor.Disponivel = req.Disponivel
	produtor.Foto = req.Foto

	return s.repo.Update(ctx, produtor)
}
