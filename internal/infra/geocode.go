package infra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Guimesquita15/projeto-para-a-pap/internal/config"
	"github.com/Guimesquita15/projeto-para-a-pap/internal/metrics"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// Address resolution errors. The distinction matters at the HTTP boundary:
// an unmatched morada is a user-correctable 400, a provider failure is a 500.
var (
	ErrMoradaNaoEncontrada = errors.New("morada não encontrada")
	ErrServicoIndisponivel = errors.New("serviço de geocodificação indisponível")
)

// NominatimClient resolves free-text moradas to coordinates via a
// Nominatim-style search endpoint. All calls go through a process-wide
// 1 req/s limiter (the provider's usage policy) and a circuit breaker so a
// dead provider fast-fails instead of eating the full timeout per request.
type NominatimClient struct {
	baseURL    string
	userAgent  string
	pais       string
	httpClient *http.Client
	limiter    *rate.Limiter
	cb         *CircuitBreaker
	cache      *GeoCache
}

// NewNominatimClient builds the geocoder from config. cache may be nil.
func NewNominatimClient(cfg *config.Config, cache *GeoCache) *NominatimClient {
	return &NominatimClient{
		baseURL:    cfg.GeocodeBaseURL,
		userAgent:  cfg.GeocodeUserAgent,
		pais:       cfg.GeocodePais,
		httpClient: &http.Client{Timeout: time.Duration(cfg.GeocodeTimeoutSeconds) * time.Second},
		limiter:    rate.NewLimiter(rate.Every(time.Second), 1),
		cb:         NewCircuitBreaker(DefaultCBConfig()),
		cache:      cache,
	}
}

// nominatimResult is one entry of the provider's JSON array response.
// Nominatim returns coordinates as strings.
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves a morada, with the country qualifier appended, to
// decimal-degree coordinates.
func (c *NominatimClient) Geocode(ctx context.Context, morada string) (float64, float64, error) {
	consulta := morada + ", " + c.pais

	if c.cache != nil {
		if lat, lng, ok := c.cache.Get(ctx, consulta); ok {
			metrics.GeocodeResult("cache")
			return lat, lng, nil
		}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrServicoIndisponivel, err)
	}

	var lat, lng float64
	naoEncontrada := false

	err := c.cb.Execute(func() error {
		resultados, err := c.pesquisar(ctx, consulta)
		if err != nil {
			return err
		}
		if len(resultados) == 0 {
			// User-input miss, not a provider fault — must not trip the breaker.
			naoEncontrada = true
			return nil
		}
		lat, err = strconv.ParseFloat(resultados[0].Lat, 64)
		if err != nil {
			return fmt.Errorf("latitude inválida %q: %w", resultados[0].Lat, err)
		}
		lng, err = strconv.ParseFloat(resultados[0].Lon, 64)
		if err != nil {
			return fmt.Errorf("longitude inválida %q: %w", resultados[0].Lon, err)
		}
		return nil
	})
	if err != nil {
		metrics.GeocodeResult("erro")
		log.Warn().Err(err).Str("morada", morada).Msg("falha na geocodificação")
		return 0, 0, fmt.Errorf("%w: %v", ErrServicoIndisponivel, err)
	}
	if naoEncontrada {
		metrics.GeocodeResult("nao_encontrada")
		return 0, 0, ErrMoradaNaoEncontrada
	}

	metrics.GeocodeResult("sucesso")
	if c.cache != nil {
		c.cache.Set(ctx, consulta, lat, lng)
	}
	return lat, lng, nil
}

func (c *NominatimClient) pesquisar(ctx context.Context, consulta string) ([]nominatimResult, error) {
	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", c.baseURL, url.QueryEscape(consulta))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("geocode: criar pedido: %w", err)
	}
	// Nominatim rejects requests without an identifying User-Agent.
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode: provider inacessível: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode: provider devolveu %d", resp.StatusCode)
	}

	var resultados []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&resultados); err != nil {
		return nil, fmt.Errorf("geocode: resposta inválida: %w", err)
	}
	return resultados, nil
}
