// Package managing implementa as operações de escrita do painel contra o
// upstream: alternância da flag useTax das ofertas e atualização dos links de
// checkout. São as únicas mutações do sistema; todo o resto é leitura.
package managing

import (
	"context"
	"sync"

	"github.com/pauloenterprise/sales-dashboard-api/infrastructure/integrator/upstream/upstreamclient"
	"github.com/pauloenterprise/sales-dashboard-api/internal/domain"
	"github.com/pauloenterprise/sales-dashboard-api/pkg/log"
)

// OfferService mantém a camada otimista sobre a flag useTax. O valor desejado
// entra no overlay antes da chamada ao upstream e só é revertido se ela
// falhar; leituras consultam o overlay antes do valor vindo do dataset.
type OfferService struct {
	client upstreamclient.Client

	mu        sync.RWMutex
	overrides map[string]bool
}

func NewOfferService(client upstreamclient.Client) *OfferService {
	return &OfferService{
		client:    client,
		overrides: make(map[string]bool),
	}
}

// ToggleUseTax grava o novo valor da flag no upstream com atualização
// otimista. Devolve o sucesso da operação; em caso de falha o overlay volta ao
// estado anterior e a leitura segue refletindo o dataset.
func (s *OfferService) ToggleUseTax(ctx context.Context, offerID string, useTax bool) bool {
	s.mu.Lock()
	previous, hadPrevious := s.overrides[offerID]
	s.overrides[offerID] = useTax
	s.mu.Unlock()

	if s.client.ToggleOfferUseTax(ctx, offerID, useTax) {
		return true
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"offer_id": offerID,
		"use_tax":  useTax,
	}).Warn("alternância de useTax rejeitada pelo upstream, revertendo overlay")

	s.mu.Lock()
	if hadPrevious {
		s.overrides[offerID] = previous
	} else {
		delete(s.overrides, offerID)
	}
	s.mu.Unlock()

	return false
}

// UseTax resolve o valor efetivo da flag para uma oferta: o overlay otimista
// vence o valor carregado do upstream.
func (s *OfferService) UseTax(offer domain.Offer) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if value, ok := s.overrides[offer.ID]; ok {
		return value
	}
	return offer.UseTax
}
