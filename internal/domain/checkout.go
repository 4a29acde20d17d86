package domain

import "time"

// Checkout é a configuração de link de checkout por oferta. MyCheckout é o
// único campo que o painel pode alterar; LastClientCheckout é somente leitura.
type Checkout struct {
	ID                 string    `json:"id"`
	Offer              string    `json:"offer"`
	MyCheckout         string    `json:"myCheckout"`
	LastClientCheckout string    `json:"lastClientCheckout"`
	OfferID            string    `json:"offerId"`
	ClientID           string    `json:"clientId"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
