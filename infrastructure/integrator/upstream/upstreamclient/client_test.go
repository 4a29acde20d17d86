package upstreamclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pauloenterprise/sales-dashboard-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) config.Upstream {
	return config.Upstream{
		BaseURL:               baseURL,
		RequestTimeoutSeconds: 5,
		SalesPageLimit:        100,
		ClientsPageLimit:      50,
	}
}

func TestGetSales_EnvelopedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sales", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "100", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": [
				{"id": "s1", "productName": "Bracelete Dourado", "amount": 5000, "approved": true, "createdAt": "2025-06-01T10:00:00Z"}
			],
			"pagination": {"page": 2, "limit": 100, "total": 101}
		}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	sales, err := client.GetSales(context.Background(), 2, 100)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "s1", sales[0].ID)
	assert.Equal(t, int64(5000), sales[0].Amount)
	assert.True(t, sales[0].Visible, "visible ausente deve valer true")
}

func TestGetSales_BareArrayResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": "s1", "amount": 100}, {"id": "s2", "amount": 200}]`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	sales, err := client.GetSales(context.Background(), 1, 100)
	require.NoError(t, err)
	assert.Len(t, sales, 2)
}

func TestGetSales_FailSoftOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	sales, err := client.GetSales(context.Background(), 1, 100)
	assert.Error(t, err)
	assert.NotNil(t, sales)
	assert.Empty(t, sales, "falha deve devolver página vazia, nunca abortar a carga")
}

func TestCoerceVisible(t *testing.T) {
	tests := []struct {
		name     string
		raw      any
		expected bool
	}{
		{"ausente (nil)", nil, true},
		{"bool true", true, true},
		{"bool false", false, false},
		{"string false minúscula", "false", false},
		{"string False mista", "False", false},
		{"string FALSE maiúscula", "FALSE", false},
		{"string true", "true", true},
		{"string qualquer", "yes", true},
		{"número (passa como visível)", float64(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, coerceVisible(tt.raw))
		})
	}
}

func TestNormalizeSale_BurgerLabRule(t *testing.T) {
	// Produto BurgerLab destinado ao cliente: valor multiplicado por 100
	sale := normalizeSale(saleRecord{
		ID:          "s1",
		ProductName: "Combo BurgerLab Duplo",
		ToClient:    true,
		Amount:      250,
	})
	assert.Equal(t, int64(25000), sale.Amount)

	// Caixa alta também conta
	sale = normalizeSale(saleRecord{
		ProductName: "COMBO BURGERLAB",
		ToClient:    true,
		Amount:      10,
	})
	assert.Equal(t, int64(1000), sale.Amount)

	// Mesmo produto destinado ao operador: valor intacto
	sale = normalizeSale(saleRecord{
		ProductName: "Combo BurgerLab Duplo",
		ToClient:    false,
		Amount:      250,
	})
	assert.Equal(t, int64(250), sale.Amount)

	// Produto qualquer destinado ao cliente: valor intacto
	sale = normalizeSale(saleRecord{
		ProductName: "Bracelete",
		ToClient:    true,
		Amount:      250,
	})
	assert.Equal(t, int64(250), sale.Amount)
}

func TestUpdateCheckout(t *testing.T) {
	var received map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/checkout/update", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	ok := client.UpdateCheckout(context.Background(), "https://pay.example/novo", "Oferta X")
	assert.True(t, ok)
	assert.Equal(t, "https://pay.example/novo", received["checkout"])
	assert.Equal(t, "Oferta X", received["offer"])
}

func TestToggleOfferUseTax_FailureReturnsFalse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	assert.False(t, client.ToggleOfferUseTax(context.Background(), "offer-1", true))
}
