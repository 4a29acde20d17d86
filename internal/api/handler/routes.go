package handler

import (
	"net/http"

	"github.com/pauloenterprise/sales-dashboard-api/internal/api/handler/router"
	"github.com/pauloenterprise/sales-dashboard-api/internal/usecases/analyzing"
	"github.com/pauloenterprise/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/pauloenterprise/sales-dashboard-api/internal/usecases/managing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Dashboard(service *analyzing.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/summary",
			Method:  http.MethodGet,
			Handler: GetDashboardSummary(service),
		},
	}
}

func Analytics(service *analyzing.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analytics/categories",
			Method:  http.MethodGet,
			Handler: GetCategoryBreakdown(service),
		},
		{
			Path:    "/v1/analytics/rankings/clients",
			Method:  http.MethodGet,
			Handler: GetClientRanking(service),
		},
		{
			Path:    "/v1/analytics/rankings/offers",
			Method:  http.MethodGet,
			Handler: GetOfferRanking(service),
		},
		{
			Path:    "/v1/analytics/rollups",
			Method:  http.MethodGet,
			Handler: GetRevenueRollup(service),
		},
	}
}

func Sales(service *analyzing.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: GetSales(service),
		},
	}
}

func Clients(service *analyzing.Service, useTax analyzing.UseTaxResolver) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/clients",
			Method:  http.MethodGet,
			Handler: GetClients(service, useTax),
		},
	}
}

func Checkouts(service *managing.CheckoutService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/checkouts",
			Method:  http.MethodGet,
			Handler: GetCheckouts(service),
		},
		{
			Path:    "/v1/checkouts/update",
			Method:  http.MethodPost,
			Handler: UpdateCheckout(service),
		},
	}
}

func Offers(service *managing.OfferService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/offers/:id/use-tax",
			Method:  http.MethodPost,
			Handler: ToggleOfferUseTax(service),
		},
	}
}

func Datasets(datasets []Dataset) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/datasets/status",
			Method:  http.MethodGet,
			Handler: GetDatasetStatus(datasets),
		},
		{
			Path:    "/v1/datasets/:resource/refetch",
			Method:  http.MethodPost,
			Handler: RefetchDataset(datasets),
		},
		{
			Path:    "/v1/datasets/events",
			Method:  http.MethodGet,
			Handler: StreamDatasetEvents(datasets),
		},
	}
}
