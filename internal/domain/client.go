package domain

import "time"

// Offer é uma variante de produto vendável pertencente a um Client. UseTax
// indica se a apuração de comissão/imposto está ativa para a oferta; é a única
// mutação iniciada pelo painel contra essa entidade.
type Offer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UseTax    bool      `json:"useTax"`
	ClientID  string    `json:"clientId"`
	Sales     []Sale    `json:"sales"`
	CreatedAt time.Time `json:"createdAt"`
}

// Client é uma conta de revendedor/indicador. Sales é uma visão denormalizada
// agregando as vendas de todas as ofertas; Token é exibido apenas truncado.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Token     string    `json:"token"`
	Offers    []Offer   `json:"offers"`
	Sales     []Sale    `json:"sales"`
	CreatedAt time.Time `json:"createdAt"`
}
