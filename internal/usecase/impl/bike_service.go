package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"

	"bikeshare/config"
	deliverycontext "bikeshare/internal/delivery/context"
	"bikeshare/internal/domain/entity"
	"bikeshare/internal/domain/repository"
	"bikeshare/internal/usecase"
	"bikeshare/internal/util"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

// bikeService implements the BikeUsecase interface.
type bikeService struct {
	fleet    *fleetLoader
	catalog  repository.CatalogRepository
	identity repository.IdentityRepository
	limit    int
	logger   *slog.Logger
}

// NewBikeService is the constructor for bikeService.
func NewBikeService(
	catalog repository.CatalogRepository,
	booking repository.BookingRepository,
	identity repository.IdentityRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.BikeUsecase {
	limit := fanOutLimit(cfg)

	return &bikeService{
		fleet:    &fleetLoader{catalog: catalog, booking: booking, fanOutLimit: limit},
		catalog:  catalog,
		identity: identity,
		limit:    limit,
		logger:   logger,
	}
}

func (srv *bikeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListOwnerBikes returns the owner's bikes in catalog order.
func (srv *bikeService) ListOwnerBikes(ctx context.Context, session entity.Session) ([]*entity.Bike, error) {
	bikes, err := srv.catalog.ListBikes(ctx, repository.BikeFilter{OwnerID: session.UserID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owner bikes")
	}

	return bikes, nil
}

// CreateBike lists a new bike for the owner. New bikes start AVAILABLE.
func (srv *bikeService) CreateBike(ctx context.Context, session entity.Session, input *usecase.BikeInput) (*entity.Bike, error) {
	bike, err := srv.catalog.CreateBike(ctx, toRepositoryBike(session.UserID, input))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create bike")
	}

	srv.log(ctx).Info("Bike created", slog.Int64("bike_id", bike.ID), slog.Int64("owner_id", session.UserID))

	return bike, nil
}

// UpdateBike rewrites one of the owner's bikes. An update puts the bike back to AVAILABLE.
func (srv *bikeService) UpdateBike(
	ctx context.Context,
	session entity.Session,
	bikeID int64,
	input *usecase.BikeInput,
) (*entity.Bike, error) {
	if _, err := srv.fleet.ownedBike(ctx, session.UserID, bikeID); err != nil {
		return nil, err
	}

	bike, err := srv.catalog.UpdateBike(ctx, bikeID, toRepositoryBike(session.UserID, input))
	if err != nil {
		return nil, translateBikeError(err)
	}

	return bike, nil
}

// DeleteBike removes one of the owner's bikes from the catalog.
func (srv *bikeService) DeleteBike(ctx context.Context, session entity.Session, bikeID int64) error {
	if _, err := srv.fleet.ownedBike(ctx, session.UserID, bikeID); err != nil {
		return err
	}

	if err := srv.catalog.DeleteBike(ctx, bikeID); err != nil {
		return translateBikeError(err)
	}

	srv.log(ctx).Info("Bike deleted", slog.Int64("bike_id", bikeID), slog.Int64("owner_id", session.UserID))

	return nil
}

// BrowseAvailable lists available bikes with owner details for the renter map.
func (srv *bikeService) BrowseAvailable(ctx context.Context, query *usecase.MapQuery) (*usecase.BikeMap, error) {
	available, err := srv.catalog.ListBikes(ctx, repository.BikeFilter{Status: entity.BikeStatusAvailable})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list available bikes")
	}

	if query == nil {
		query = &usecase.MapQuery{}
	}

	matching := make([]*entity.Bike, 0, len(available))
	for _, bike := range available {
		if matchesQuery(query, bike) {
			matching = append(matching, bike)
		}
	}

	origin, hasOrigin := queryOrigin(query)
	owners := newLookup("profile", srv.identity.GetProfile, newPassLimiter(srv.limit), srv.log(ctx))

	views := settledMap(ctx, srv.limit, matching, func(ctx context.Context, bike *entity.Bike) usecase.MapBikeView {
		owner := owners.Resolve(ctx, bike.OwnerID)

		view := usecase.MapBikeView{
			ID:            bike.ID,
			OwnerID:       bike.OwnerID,
			OwnerName:     displayName(owner, fallbackOwnerName),
			OwnerPhoto:    avatarOf(owner),
			Model:         bike.Model,
			Type:          bike.Type,
			CostPerMinute: bike.CostPerMinute,
			ImageURL:      bikeImage(bike),
			Latitude:      bike.Position.Lat(),
			Longitude:     bike.Position.Lon(),
		}

		if hasOrigin && bike.Located() {
			km := geo.DistanceHaversine(origin, bike.Position) / 1000
			view.DistanceKm = &km
			view.Distance = util.FormatDistanceKm(km)
		}

		return view
	})

	if hasOrigin {
		// Nearest first; bikes without a position go last.
		slices.SortStableFunc(views, func(a, b usecase.MapBikeView) int {
			switch {
			case a.DistanceKm == nil && b.DistanceKm == nil:
				return 0
			case a.DistanceKm == nil:
				return 1
			case b.DistanceKm == nil:
				return -1
			default:
				return cmp.Compare(*a.DistanceKm, *b.DistanceKm)
			}
		})
	}

	return &usecase.BikeMap{
		Bikes: views,
		Types: bikeTypes(available),
	}, nil
}

// bikeTypes returns the distinct non-empty types in first-seen order.
func bikeTypes(bikes []*entity.Bike) []string {
	types := make([]string, 0)
	for _, bike := range bikes {
		if bike.Type != "" && !slices.Contains(types, bike.Type) {
			types = append(types, bike.Type)
		}
	}

	return types
}

func toRepositoryBike(ownerID int64, input *usecase.BikeInput) *repository.BikeInput {
	return &repository.BikeInput{
		OwnerID:       ownerID,
		Model:         strings.TrimSpace(input.Model),
		Type:          strings.TrimSpace(input.Type),
		CostPerMinute: input.CostPerMinute,
		ImageURL:      strings.TrimSpace(input.ImageURL),
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		Status:        entity.BikeStatusAvailable,
	}
}

// matchesQuery applies the type and price filters. The price range includes its minimum and excludes its maximum.
func matchesQuery(query *usecase.MapQuery, bike *entity.Bike) bool {
	if query.Type != "" && !strings.EqualFold(query.Type, bike.Type) {
		return false
	}
	if query.MinPrice != nil && bike.CostPerMinute < *query.MinPrice {
		return false
	}
	if query.MaxPrice != nil && bike.CostPerMinute >= *query.MaxPrice {
		return false
	}

	return true
}

// queryOrigin returns the renter position when both coordinates are given.
func queryOrigin(query *usecase.MapQuery) (orb.Point, bool) {
	if query.Latitude == nil || query.Longitude == nil {
		return orb.Point{}, false
	}

	return orb.Point{*query.Longitude, *query.Latitude}, true
}
