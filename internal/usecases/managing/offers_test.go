package managing

import (
	"context"
	"testing"

	"github.com/pauloenterprise/sales-dashboard-api/infrastructure/integrator/upstream/mocks"
	"github.com/pauloenterprise/sales-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestToggleUseTax_SuccessKeepsOverlay(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().
		ToggleOfferUseTax(gomock.Any(), "o1", true).
		Return(true)

	service := NewOfferService(client)
	offer := domain.Offer{ID: "o1", UseTax: false}

	assert.True(t, service.ToggleUseTax(context.Background(), "o1", true))
	assert.True(t, service.UseTax(offer), "overlay vence o valor do dataset")
}

func TestToggleUseTax_FailureRevertsOverlay(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().
		ToggleOfferUseTax(gomock.Any(), "o1", true).
		Return(false)

	service := NewOfferService(client)
	offer := domain.Offer{ID: "o1", UseTax: false}

	assert.False(t, service.ToggleUseTax(context.Background(), "o1", true))
	assert.False(t, service.UseTax(offer), "falha reverte ao valor do dataset")
}

func TestToggleUseTax_FailureRestoresPreviousOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	gomock.InOrder(
		client.EXPECT().ToggleOfferUseTax(gomock.Any(), "o1", true).Return(true),
		client.EXPECT().ToggleOfferUseTax(gomock.Any(), "o1", false).Return(false),
	)

	service := NewOfferService(client)
	offer := domain.Offer{ID: "o1", UseTax: false}

	assert.True(t, service.ToggleUseTax(context.Background(), "o1", true))
	assert.False(t, service.ToggleUseTax(context.Background(), "o1", false))
	assert.True(t, service.UseTax(offer), "reversão volta ao overlay anterior, não ao dataset")
}

func TestUseTax_NoOverlayReadsOffer(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewOfferService(mocks.NewMockClient(ctrl))

	assert.True(t, service.UseTax(domain.Offer{ID: "o9", UseTax: true}))
	assert.False(t, service.UseTax(domain.Offer{ID: "o8", UseTax: false}))
}

func TestCheckoutUpdate_DelegatesToUpstream(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().
		UpdateCheckout(gomock.Any(), "https://pay.example/novo", "Oferta X").
		Return(true)

	service := NewCheckoutService(client)
	assert.True(t, service.Update(context.Background(), "https://pay.example/novo", "Oferta X"))
}
