package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Guimesquita15/projeto-para-a-pap/internal/apierror"
	"github.com/Guimesquita15/projeto-para-a-pap/internal/dto"
	"github.com/Guimesquita15/projeto-para-a-pap/internal/infra"
	"github.com/Guimesquita15/projeto-para-a-pap/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ProdutoresHandler struct{ svc service.ProdutorService }

func NewProdutoresHandler(svc service.ProdutorService) *ProdutoresHandler {
	return &ProdutoresHandler{svc: svc}
}

// Registar handles POST /api/produtores/registar. The body is either plain
// JSON or, for the photo-capable form, multipart with a nomes_produtos JSON
// array and indexed file fields file_0…file_n.
func (h *ProdutoresHandler) Registar(c *gin.Context) {
	var (
		req   dto.RegistarProdutorRequest
		fotos []dto.FotoUpload
		ok    bool
	)

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		req, fotos, ok = h.lerFormulario(c)
	} else {
		ok = bindAndValidate(c, &req)
	}
	if !ok {
		return
	}

	resp, err := h.svc.Registar(c.Request.Context(), req, fotos)
	switch {
	case errors.Is(err, infra.ErrMoradaNaoEncontrada):
		c.JSON(http.StatusBadRequest, apierror.New("Morada não encontrada. Tente um endereço mais específico e inclua a localidade."))
	case errors.Is(err, infra.ErrServicoIndisponivel):
		c.JSON(http.StatusInternalServerError, apierror.New("Erro no serviço de mapas (geocodificação). Tente mais tarde."))
	case err != nil:
		log.Error().Err(err).Msg("registo de produtor falhou")
		c.JSON(http.StatusInternalServerError, apierror.New("Erro interno do servidor."))
	default:
		c.JSON(http.StatusCreated, resp)
	}
}

// lerFormulario extracts the registration payload from a multipart form.
// Files are read into memory up front; product photos are small.
func (h *ProdutoresHandler) lerFormulario(c *gin.Context) (dto.RegistarProdutorRequest, []dto.FotoUpload, bool) {
	req := dto.RegistarProdutorRequest{
		Nome:     c.PostForm("nome"),
		Morada:   c.PostForm("morada"),
		Telefone: c.PostForm("telefone"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	}

	if nomes := c.PostForm("nomes_produtos"); nomes != "" {
		if err := json.Unmarshal([]byte(nomes), &req.Produtos); err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Campo nomes_produtos inválido."))
			return req, nil, false
		}
	}
	if !validateStruct(c, &req) {
		return req, nil, false
	}

	var fotos []dto.FotoUpload
	for i := range req.Produtos {
		fh, err := c.FormFile(fmt.Sprintf("file_%d", i))
		if err != nil {
			continue // no photo for this product
		}
		f, err := fh.Open()
		if err != nil {
			continue
		}
		conteudo, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			continue
		}
		fotos = append(fotos, dto.FotoUpload{
			Indice:      i,
			Nome:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Conteudo:    bytes.NewReader(conteudo),
		})
	}
	return req, fotos, true
}

// Localizacao handles GET /api/produtores/localizacao, all map markers.
func (h *ProdutoresHandler) Localizacao(c *gin.Context) {
	marcadores, err := h.svc.ListarLocalizacoes(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("listagem de produtores falhou")
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar produtores."))
		return
	}
	c.JSON(http.StatusOK, marcadores)
}
