package handler

import (
	"errors"
	"net/http"

	"github.com/Guimesquita15/projeto-para-a-pap/internal/apierror"
	"github.com/Guimesquita15/projeto-para-a-pap/internal/dto"
	"github.com/Guimesquita15/projeto-para-a-pap/internal/repository"
	"github.com/Guimesquita15/projeto-para-a-pap/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login handles POST /api/produtores/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	switch {
	case errors.Is(err, service.ErrCredenciaisInvalidas):
		c.JSON(http.StatusUnauthorized, apierror.New("Email ou password incorretos."))
	case err != nil:
		log.Error().Err(err).Msg("login falhou")
		c.JSON(http.StatusInternalServerError, apierror.New("Erro interno do servidor."))
	default:
		c.JSON(http.StatusOK, resp)
	}
}

// MeusDados handles GET /api/produtores/meus_dados/:id.
func (h *AuthHandler) MeusDados(c *gin.Context) {
	resp, err := h.svc.ObterPerfil(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, repository.ErrProdutorNaoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New("Produtor não encontrado."))
	case err != nil:
		log.Error().Err(err).Msg("consulta de perfil falhou")
		c.JSON(http.StatusInternalServerError, apierror.New("Erro interno do servidor."))
	default:
		c.JSON(http.StatusOK, resp)
	}
}

// AtualizarPerfil handles POST /api/produtores/atualizar_perfil.
func (h *AuthHandler) AtualizarPerfil(c *gin.Context) {
	var req dto.AtualizarPerfilRequest
	if !bindAndValidate(c, &req) {
		return
	}

	err := h.svc.AtualizarPerfil(c.Request.Context(), req)
	switch {
	case errors.Is(err, repository.ErrProdutorNaoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New("Produtor não encontrado."))
	case err != nil:
		log.Error().Err(err).Msg("atualização de perfil falhou")
		c.JSON(http.StatusInternalServerError, apierror.New("Erro interno do servidor."))
	default:
		c.JSON(http.StatusOK, dto.StatusResponse{Status: "sucesso"})
	}
}
