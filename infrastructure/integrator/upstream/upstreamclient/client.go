// Package upstreamclient implementa o acesso HTTP à API remota do painel
// (coleções de vendas, clientes e checkouts, mais as duas mutações).
package upstreamclient

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"path"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pauloenterprise/sales-dashboard-api/internal/config"
	"github.com/pauloenterprise/sales-dashboard-api/internal/domain"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetSales(ctx context.Context, page, limit int) ([]domain.Sale, error)
	GetClients(ctx context.Context, page, limit int) ([]domain.Client, error)
	GetCheckouts(ctx context.Context) ([]domain.Checkout, error)
	UpdateCheckout(ctx context.Context, myCheckout, offer string) bool
	ToggleOfferUseTax(ctx context.Context, offerID string, useTax bool) bool
}

type UpstreamClient struct {
	httpClient *http.Client
	cfg        config.Upstream
}

func NewClient(cfg config.Upstream) Client {
	return &UpstreamClient{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout(),
		},
		cfg: cfg,
	}
}

// collectionURL monta a URL de um endpoint de coleção com paginação opcional.
func (c *UpstreamClient) collectionURL(resource string, page, limit int) (string, error) {
	endpoint, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return "", errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, resource)

	if page > 0 {
		query := endpoint.Query()
		query.Set("page", strconv.Itoa(page))
		query.Set("limit", strconv.Itoa(limit))
		endpoint.RawQuery = query.Encode()
	}

	return endpoint.String(), nil
}

// getCollection executa um GET e devolve o corpo bruto da coleção, já
// desembrulhado de um eventual envelope {data: [...], pagination: {...}}.
func (c *UpstreamClient) getCollection(ctx context.Context, resource string, page, limit int) ([]byte, error) {
	endpoint, err := c.collectionURL(resource, page, limit)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao executar a requisição para %s", resource)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("requisição para %s falhou com status: %s", resource, resp.Status)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, errors.Wrap(err, "erro ao ler o corpo da resposta")
	}

	return unwrapCollection(buf.Bytes())
}

// unwrapCollection aceita tanto {data: [...]} quanto um array puro; as duas
// formas ocorrem na API upstream dependendo do endpoint.
func unwrapCollection(body []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, errors.New("resposta vazia da API upstream")
	}

	if trimmed[0] == '[' {
		return trimmed, nil
	}

	var envelope struct {
		Data jsoniter.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar o envelope da resposta")
	}
	if len(envelope.Data) == 0 {
		return nil, errors.New("resposta sem campo data e sem array")
	}

	return envelope.Data, nil
}

// postJSON envia uma mutação e informa apenas sucesso/falha (2xx). O erro
// subjacente é responsabilidade do chamador logar; nunca é propagado como
// exceção para a camada de cima.
func (c *UpstreamClient) postJSON(ctx context.Context, resource string, payload any) (int, error) {
	endpoint, err := c.collectionURL(resource, 0, 0)
	if err != nil {
		return 0, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao serializar o corpo da requisição")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, errors.Wrapf(err, "erro ao executar a requisição para %s", resource)
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}
