package queries

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"quoting/internal/core/domain/model/address"
	"quoting/internal/core/domain/model/carrier"
	"quoting/internal/core/domain/model/pricing"
	"quoting/internal/core/domain/model/quote"
	"quoting/internal/core/domain/model/route"
	"quoting/internal/core/domain/services"
	"quoting/internal/core/ports"
)

// Quoting failures surfaced to callers.
var (
	// ErrAddressIncomplete is returned when either address lacks the
	// minimal fields (a street plus at least a city or region). The engine
	// refuses to run rather than guess.
	ErrAddressIncomplete = errors.New("address is incomplete")
	// ErrWeightExceedsLimit is returned when the parcel is heavier than the
	// configured platform maximum.
	ErrWeightExceedsLimit = errors.New("weight exceeds the platform limit")
)

// GetDeliveryOptionsQueryHandler is the quoting aggregate: it normalizes
// both addresses, categorizes the route, resolves the distance, matches
// carriers, and prices every (candidate, service level) pair concurrently.
//
// Failure semantics:
//   - An unresolvable distance fails the whole operation; no quote is
//     fabricated from an assumed distance
//   - A single malformed carrier record is dropped from the result set and
//     logged; the rest of the batch proceeds
//   - Zero matching carriers is not a failure: the platform default
//     candidate guarantees at least one quote whenever distance resolved
type GetDeliveryOptionsQueryHandler struct {
	normalizer     address.Normalizer
	categorizer    services.RouteCategorizer
	matcher        services.PartnerMatcher
	pricingEngine  services.PricingEngine
	carrierRepo    ports.CarrierRepository
	distances      ports.DistanceResolver
	configProvider ports.PricingConfigProvider
	logger         *slog.Logger
}

// NewGetDeliveryOptionsQueryHandler creates the quoting handler.
func NewGetDeliveryOptionsQueryHandler(
	normalizer address.Normalizer,
	carrierRepo ports.CarrierRepository,
	distances ports.DistanceResolver,
	configProvider ports.PricingConfigProvider,
	logger *slog.Logger,
) (GetDeliveryOptionsQueryHandler, error) {
	if err := normalizer.Validate(); err != nil {
		return GetDeliveryOptionsQueryHandler{}, err
	}
	if carrierRepo == nil || distances == nil || configProvider == nil {
		return GetDeliveryOptionsQueryHandler{}, errors.New("all dependencies are required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return GetDeliveryOptionsQueryHandler{
		normalizer:     normalizer,
		categorizer:    services.NewRouteCategorizer(),
		matcher:        services.NewPartnerMatcher(),
		pricingEngine:  services.NewPricingEngine(),
		carrierRepo:    carrierRepo,
		distances:      distances,
		configProvider: configProvider,
		logger:         logger.With("component", "delivery_options"),
	}, nil
}

// Handle executes one quoting operation and returns the priced options,
// cheapest first.
func (h GetDeliveryOptionsQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryOptionsQuery,
) (quote.OptionSet, error) {
	if err := query.Validate(); err != nil {
		return quote.OptionSet{}, err
	}

	pickup := h.normalizer.NormalizeFreeForm(query.Pickup())
	dropoff := h.normalizer.NormalizeFreeForm(query.Dropoff())
	if !pickup.IsComplete() || !dropoff.IsComplete() {
		return quote.OptionSet{}, ErrAddressIncomplete
	}

	cfg, err := h.configProvider.Config(ctx)
	if err != nil {
		return quote.OptionSet{}, err
	}

	if query.WeightKg().GreaterThan(cfg.MaxWeightKg()) {
		return quote.OptionSet{}, fmt.Errorf("%w: %s kg, max %s kg",
			ErrWeightExceedsLimit, query.WeightKg(), cfg.MaxWeightKg())
	}

	r, err := h.categorizer.Categorize(pickup, dropoff)
	if err != nil {
		return quote.OptionSet{}, err
	}

	distance, err := h.distances.ResolveDistance(ctx, pickup, dropoff)
	if err != nil {
		return quote.OptionSet{}, fmt.Errorf("resolve distance: %w", err)
	}

	candidates, err := h.collectCandidates(ctx, r, pickup, dropoff, cfg)
	if err != nil {
		return quote.OptionSet{}, err
	}

	options := h.priceAll(ctx, candidates, r, distance, query, cfg)
	return quote.NewOptionSet(options), nil
}

// collectCandidates matches carriers for the route and substitutes the
// platform default candidate when nothing matches.
func (h GetDeliveryOptionsQueryHandler) collectCandidates(
	ctx context.Context,
	r route.Route,
	pickup, dropoff address.Address,
	cfg pricing.Config,
) ([]services.Candidate, error) {
	carriers, err := h.fetchCarriers(ctx, r, dropoff)
	if err != nil {
		return nil, err
	}

	matched := h.matcher.Match(r, pickup, dropoff, carriers)

	candidates := make([]services.Candidate, 0, len(matched))
	for _, c := range matched {
		candidate, candErr := services.NewCarrierCandidate(c)
		if candErr != nil {
			h.logger.Warn("excluding malformed carrier",
				"carrier_id", c.ID().String(), "error", candErr)
			continue
		}
		candidates = append(candidates, candidate)
	}

	if len(candidates) == 0 {
		platform, platErr := services.NewPlatformCandidate(cfg)
		if platErr != nil {
			return nil, platErr
		}
		candidates = append(candidates, platform)
	}

	return candidates, nil
}

func (h GetDeliveryOptionsQueryHandler) fetchCarriers(
	ctx context.Context, r route.Route, dropoff address.Address,
) ([]*carrier.Carrier, error) {
	if r.Category() == route.Intracity {
		return h.carrierRepo.GetAllApprovedByServiceArea(ctx, dropoff.CityKey())
	}
	return h.carrierRepo.GetAllApprovedWithRoutes(ctx)
}

// priceAll fans pricing out across all (candidate, type) pairs. Pricing is
// pure computation, so the group never returns an error: a candidate whose
// data fails pricing is dropped and logged, and the rest proceed.
func (h GetDeliveryOptionsQueryHandler) priceAll(
	ctx context.Context,
	candidates []services.Candidate,
	r route.Route,
	distance route.Distance,
	query GetDeliveryOptionsQuery,
	cfg pricing.Config,
) []quote.DeliveryOption {
	type pair struct {
		candidate    services.Candidate
		deliveryType quote.DeliveryType
	}

	pairs := make([]pair, 0, len(candidates)*len(query.RequestedTypes()))
	for _, candidate := range candidates {
		for _, deliveryType := range query.RequestedTypes() {
			pairs = append(pairs, pair{candidate: candidate, deliveryType: deliveryType})
		}
	}

	results := make([]*quote.DeliveryOption, len(pairs))

	g, _ := errgroup.WithContext(ctx)
	for i, p := range pairs {
		g.Go(func() error {
			option, priceErr := h.pricingEngine.Price(
				p.candidate, r, distance, query.WeightKg(), p.deliveryType, query.Timestamp(), cfg)
			if priceErr != nil {
				h.logger.Warn("excluding candidate from quote",
					"partner_id", p.candidate.Partner().ID(), "error", priceErr)
				return nil
			}
			results[i] = &option
			return nil
		})
	}
	_ = g.Wait()

	options := make([]quote.DeliveryOption, 0, len(results))
	for _, option := range results {
		if option != nil {
			options = append(options, *option)
		}
	}
	return options
}
