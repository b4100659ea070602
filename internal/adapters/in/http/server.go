package http

import (
	"errors"
	"net/http"
	"time"

	"quoting/internal/core/application/usecases/commands"
	"quoting/internal/core/application/usecases/queries"
	"quoting/internal/core/domain/model/carrier"
	"quoting/internal/core/domain/model/kernel"
	"quoting/internal/core/domain/model/pricing"
	"quoting/internal/core/domain/model/quote"
	"quoting/internal/core/domain/model/route"
	"quoting/internal/core/ports"
	"quoting/internal/generated/servers"
	"quoting/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCarrierHandler       commands.CreateCarrierCommandHandler
	approveCarrierHandler      commands.ApproveCarrierCommandHandler
	rejectCarrierHandler       commands.RejectCarrierCommandHandler
	updatePricingConfigHandler commands.UpdatePricingConfigCommandHandler

	// Query handlers
	getDeliveryOptionsHandler  queries.GetDeliveryOptionsQueryHandler
	getApprovedCarriersHandler queries.GetApprovedCarriersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCarrierHandler commands.CreateCarrierCommandHandler,
	approveCarrierHandler commands.ApproveCarrierCommandHandler,
	rejectCarrierHandler commands.RejectCarrierCommandHandler,
	updatePricingConfigHandler commands.UpdatePricingConfigCommandHandler,
	getDeliveryOptionsHandler queries.GetDeliveryOptionsQueryHandler,
	getApprovedCarriersHandler queries.GetApprovedCarriersQueryHandler,
) *Server {
	return &Server{
		createCarrierHandler:       createCarrierHandler,
		approveCarrierHandler:      approveCarrierHandler,
		rejectCarrierHandler:       rejectCarrierHandler,
		updatePricingConfigHandler: updatePricingConfigHandler,
		getDeliveryOptionsHandler:  getDeliveryOptionsHandler,
		getApprovedCarriersHandler: getApprovedCarriersHandler,
	}
}

// GetQuotes handles GET /api/v1/quotes - prices delivery options for a shipment.
func (s *Server) GetQuotes(ctx echo.Context, params servers.GetQuotesParams) error {
	weightKg := decimal.Zero
	if params.WeightKg != nil {
		weightKg = decimal.NewFromFloat32(*params.WeightKg)
	}

	requestedTypes := make([]quote.DeliveryType, 0)
	if params.Types != nil {
		for _, raw := range *params.Types {
			deliveryType, err := quote.DeliveryTypeFromString(string(raw))
			if err != nil {
				return badRequest(ctx, "Invalid delivery type: "+string(raw))
			}
			requestedTypes = append(requestedTypes, deliveryType)
		}
	}

	query, err := queries.NewGetDeliveryOptionsQuery(
		params.Pickup, params.Dropoff, weightKg, requestedTypes, time.Time{},
	)
	if err != nil {
		return badRequest(ctx, "Invalid quote request: "+err.Error())
	}

	options, err := s.getDeliveryOptionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrAddressIncomplete),
			errors.Is(err, queries.ErrWeightExceedsLimit):
			return badRequest(ctx, err.Error())
		case errors.Is(err, ports.ErrRouteNotFound):
			return ctx.JSON(http.StatusUnprocessableEntity, servers.Error{
				Code:    http.StatusUnprocessableEntity,
				Message: "Route cannot be quoted: " + err.Error(),
			})
		default:
			return ctx.JSON(http.StatusInternalServerError, servers.Error{
				Code:    http.StatusInternalServerError,
				Message: "Failed to price delivery options",
			})
		}
	}

	return ctx.JSON(http.StatusOK, toQuoteResponse(options))
}

// CreateCarrier handles POST /api/v1/carriers - registers a carrier for review.
func (s *Server) CreateCarrier(ctx echo.Context) error {
	var newCarrier servers.NewCarrier
	if err := ctx.Bind(&newCarrier); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	rateCard, err := toRateCard(newCarrier.RateCard)
	if err != nil {
		return badRequest(ctx, "Invalid rate card: "+err.Error())
	}

	var serviceAreas []string
	if newCarrier.ServiceAreas != nil {
		serviceAreas = *newCarrier.ServiceAreas
	}

	var routes []carrier.DeclaredRoute
	if newCarrier.Routes != nil {
		routes = make([]carrier.DeclaredRoute, 0, len(*newCarrier.Routes))
		for _, r := range *newCarrier.Routes {
			declared, routeErr := toDeclaredRoute(r)
			if routeErr != nil {
				return badRequest(ctx, "Invalid route: "+routeErr.Error())
			}
			routes = append(routes, declared)
		}
	}

	cmd, err := commands.NewCreateCarrierCommand(newCarrier.Name, serviceAreas, routes, rateCard)
	if err != nil {
		return badRequest(ctx, "Invalid carrier data: "+err.Error())
	}

	if handleErr := s.createCarrierHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return badRequest(ctx, "Failed to register carrier: "+handleErr.Error())
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetCarriers handles GET /api/v1/carriers - lists approved carriers.
func (s *Server) GetCarriers(ctx echo.Context) error {
	query := queries.NewGetApprovedCarriersQuery()

	carriers, err := s.getApprovedCarriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve carriers",
		})
	}

	response := make([]servers.CarrierSummary, len(carriers))
	for i, c := range carriers {
		response[i] = servers.CarrierSummary{
			Id:           c.ID.Bytes(),
			Name:         c.Name,
			Rating:       float32(c.Rating),
			ServiceAreas: c.ServiceAreas,
			Routes:       c.Routes,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ApproveCarrier handles POST /api/v1/carriers/{carrierId}/approve.
func (s *Server) ApproveCarrier(ctx echo.Context, carrierId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(carrierId[:])
	if err != nil {
		return badRequest(ctx, "Invalid carrier id")
	}

	cmd, err := commands.NewApproveCarrierCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid carrier id: "+err.Error())
	}

	if handleErr := s.approveCarrierHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return carrierReviewError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectCarrier handles POST /api/v1/carriers/{carrierId}/reject.
func (s *Server) RejectCarrier(ctx echo.Context, carrierId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(carrierId[:])
	if err != nil {
		return badRequest(ctx, "Invalid carrier id")
	}

	cmd, err := commands.NewRejectCarrierCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid carrier id: "+err.Error())
	}

	if handleErr := s.rejectCarrierHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return carrierReviewError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdatePricingConfig handles PUT /api/v1/pricing-config.
func (s *Server) UpdatePricingConfig(ctx echo.Context) error {
	var body servers.PricingConfig
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cfg, err := toPricingConfig(body)
	if err != nil {
		return badRequest(ctx, "Invalid configuration: "+err.Error())
	}

	cmd, err := commands.NewUpdatePricingConfigCommand(cfg)
	if err != nil {
		return badRequest(ctx, "Invalid configuration: "+err.Error())
	}

	if handleErr := s.updatePricingConfigHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to update pricing configuration",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// carrierReviewError maps approve/reject failures onto HTTP status codes:
// unknown carrier is 404, a disallowed status transition is 409.
func carrierReviewError(ctx echo.Context, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "Carrier not found",
		})
	}

	return ctx.JSON(http.StatusConflict, servers.Error{
		Code:    http.StatusConflict,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// toQuoteResponse renders the priced option set for the API. Route context
// is shared by every option, so it is read from the first one.
func toQuoteResponse(options quote.OptionSet) servers.QuoteResponse {
	response := servers.QuoteResponse{
		Options: make([]servers.DeliveryOption, 0, options.Len()),
	}

	for i, option := range options.Options() {
		if i == 0 {
			r := option.Route()
			response.Category = servers.QuoteResponseCategory(r.Category().String())
			response.DistanceKm = toFloat32(option.Distance().Km())
			if r.LowConfidence() {
				lowConfidence := true
				response.LowConfidence = &lowConfidence
			}
		}

		response.Options = append(response.Options, toDeliveryOption(option))
	}

	return response
}

func toDeliveryOption(option quote.DeliveryOption) servers.DeliveryOption {
	partner := option.Partner()
	eta := option.ETA()
	breakdown := option.Breakdown()

	partnerRating := float32(partner.Rating())
	estimatedDays := eta.EstimatedDays()
	timeMultiplier := toFloat32(breakdown.TimeMultiplier())
	zoneMultiplier := toFloat32(breakdown.ZoneMultiplier())

	return servers.DeliveryOption{
		PartnerId:     partner.ID(),
		PartnerName:   partner.Name(),
		PartnerRating: &partnerRating,
		DeliveryType:  servers.DeliveryOptionDeliveryType(option.DeliveryType().String()),
		Fee:           toFloat32(option.DeliveryFee()),
		EtaHours:      eta.Hours(),
		EtaLabel:      eta.Label(),
		EstimatedDays: &estimatedDays,
		Breakdown: &servers.QuoteBreakdown{
			BaseFare:               toFloat32(breakdown.BaseFare()),
			DistanceFee:            toFloat32(breakdown.DistanceFee()),
			WeightFee:              toFloat32(breakdown.WeightFee()),
			DeliveryTypeMultiplier: toFloat32(breakdown.DeliveryTypeMultiplier()),
			TimeMultiplier:         &timeMultiplier,
			ZoneMultiplier:         &zoneMultiplier,
		},
	}
}

func toRateCard(body servers.RateCard) (carrier.RateCard, error) {
	return carrier.NewRateCard(
		decimal.NewFromFloat32(body.BaseFare),
		decimal.NewFromFloat32(body.RatePerKm),
		decimal.NewFromFloat32(body.RatePerKg),
		decimal.NewFromFloat32(body.IntercityRatePerKm),
		decimal.NewFromFloat32(body.ExpressMultiplier),
	)
}

func toDeclaredRoute(body servers.DeclaredRoute) (carrier.DeclaredRoute, error) {
	category, err := route.CategoryFromString(string(body.Category))
	if err != nil {
		return carrier.DeclaredRoute{}, err
	}
	return carrier.NewDeclaredRoute(category, body.From, body.To)
}

func toPricingConfig(body servers.PricingConfig) (pricing.Config, error) {
	rates, err := toRateCard(body.DefaultRates)
	if err != nil {
		return pricing.Config{}, err
	}

	bounds := make(map[route.Category]pricing.Bounds, 3)
	for _, mapping := range []struct {
		category route.Category
		body     servers.FeeBounds
	}{
		{route.Intracity, body.Bounds.Intracity},
		{route.Intercity, body.Bounds.Intercity},
		{route.International, body.Bounds.International},
	} {
		var b pricing.Bounds
		if mapping.body.MaxFee != nil {
			b, err = pricing.NewBounds(
				decimal.NewFromFloat32(mapping.body.MinFee),
				decimal.NewFromFloat32(*mapping.body.MaxFee),
			)
		} else {
			b, err = pricing.NewMinOnlyBounds(decimal.NewFromFloat32(mapping.body.MinFee))
		}
		if err != nil {
			return pricing.Config{}, err
		}
		bounds[mapping.category] = b
	}

	return pricing.NewConfig(rates, decimal.NewFromFloat32(body.MaxWeightKg), bounds)
}

func toFloat32(d decimal.Decimal) float32 {
	value, _ := d.Float64()
	return float32(value)
}
