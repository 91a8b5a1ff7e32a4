package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	"bikeshare/config"
	deliverycontext "bikeshare/internal/delivery/context"
	"bikeshare/internal/domain/entity"
	domainerrors "bikeshare/internal/domain/errors"
	"bikeshare/internal/domain/repository"
	"bikeshare/internal/domain/service"
	"bikeshare/internal/usecase"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	pendingPreviewSize  = 3
	topBikesSize        = 4
	recentRentalsSize   = 3
	recommendationsSize = 3
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	fleet    *fleetLoader
	catalog  repository.CatalogRepository
	booking  repository.BookingRepository
	identity repository.IdentityRepository
	reviews  repository.ReviewRepository
	views    service.DashboardViewStore
	limit    int
	logger   *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(
	catalog repository.CatalogRepository,
	booking repository.BookingRepository,
	identity repository.IdentityRepository,
	reviews repository.ReviewRepository,
	views service.DashboardViewStore,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.DashboardUsecase {
	limit := fanOutLimit(cfg)

	return &dashboardService{
		fleet:    &fleetLoader{catalog: catalog, booking: booking, fanOutLimit: limit},
		catalog:  catalog,
		booking:  booking,
		identity: identity,
		reviews:  reviews,
		views:    views,
		limit:    limit,
		logger:   logger,
	}
}

// fanOutLimit reads the per-pass concurrency cap from configuration.
func fanOutLimit(cfg *config.Config) int {
	if cfg == nil || cfg.Dashboard == nil {
		return 1
	}

	return concurrencyLimit(cfg.Dashboard.FanOutLimit)
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BuildOwnerDashboard aggregates the owner's fleet and reviews into the owner home view.
func (srv *dashboardService) BuildOwnerDashboard(ctx context.Context, session entity.Session) (*usecase.OwnerDashboard, error) {
	ownerID := session.UserID
	srv.log(ctx).Debug("Building owner dashboard", slog.Int64("owner_id", ownerID))

	ticket := srv.views.Begin(ownerID)

	// Primary fetches: the fleet (bikes, then reservations per bike) and the reviews run side by side.
	var (
		fleet   *ownerFleet
		reviews []*entity.Review
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		fleet, err = srv.fleet.load(gctx, ownerID)

		return err
	})
	g.Go(func() error {
		var err error
		reviews, err = srv.reviews.ListReviews(gctx, repository.ReviewFilter{OwnerID: ownerID})

		return errors.Wrap(err, "failed to list owner reviews")
	})
	if err := g.Wait(); err != nil {
		srv.log(ctx).Error("Owner dashboard aborted", slog.Int64("owner_id", ownerID), slog.Any("error", err))

		return nil, domainerrors.NewPipelineError("owner", err)
	}

	// Every lookup of the pass draws from one limiter, so the cap holds across the parallel steps below.
	profiles := newLookup("profile", srv.identity.GetProfile, newPassLimiter(srv.limit), srv.log(ctx))

	// Every remaining step is a secondary enrichment: it cannot fail, only fall back.
	var (
		pending  []usecase.ReservationView
		activity []entity.ActivityEntry
	)
	var enrich errgroup.Group
	enrich.Go(func() error {
		pending = srv.pendingPreview(ctx, profiles, fleet)

		return nil
	})
	enrich.Go(func() error {
		activity = srv.ownerActivity(ctx, profiles, fleet, reviews)

		return nil
	})
	_ = enrich.Wait()

	dashboard := &usecase.OwnerDashboard{
		Stats:               ownerStats(fleet.bikes, fleet.reservations, reviews),
		PendingReservations: pending,
		RecentActivity:      activity,
		TopBikes:            bikeSummaries(firstN(fleet.bikes, topBikesSize)),
	}

	if !srv.views.Publish(ownerID, ticket, activity) {
		dashboard.Superseded = true
		srv.log(ctx).Debug("Owner dashboard superseded by a newer pass", slog.Int64("owner_id", ownerID))
	}

	return dashboard, nil
}

// pendingPreview enriches the first pending reservations, in fetch order.
func (srv *dashboardService) pendingPreview(ctx context.Context, profiles *lookup[*entity.Profile], fleet *ownerFleet) []usecase.ReservationView {
	pending := firstN(entity.FilterReservations(fleet.reservations, entity.ReservationPending), pendingPreviewSize)

	return settledMap(ctx, srv.limit, pending, func(ctx context.Context, r *entity.Reservation) usecase.ReservationView {
		return reservationView(r, profiles.Resolve(ctx, r.RenterID), bikeName(fleet.index, r.BikeID, fallbackFleetBikeName))
	})
}

// ownerActivity projects every reservation and review into the feed and keeps the newest entries.
func (srv *dashboardService) ownerActivity(
	ctx context.Context,
	profiles *lookup[*entity.Profile],
	fleet *ownerFleet,
	reviews []*entity.Review,
) []entity.ActivityEntry {
	var reservationActs, reviewActs []entity.ActivityEntry

	var g errgroup.Group
	g.Go(func() error {
		reservationActs = settledMap(ctx, srv.limit, fleet.reservations, func(ctx context.Context, r *entity.Reservation) entity.ActivityEntry {
			person := displayName(profiles.Resolve(ctx, r.RenterID), fallbackPersonName)

			return reservationActivity(r, person, bikeName(fleet.index, r.BikeID, fallbackFleetBikeName))
		})

		return nil
	})
	g.Go(func() error {
		reviewActs = settledMap(ctx, srv.limit, reviews, func(ctx context.Context, r *entity.Review) entity.ActivityEntry {
			return reviewActivity(r, displayName(profiles.Resolve(ctx, r.ReviewerID), fallbackPersonName))
		})

		return nil
	})
	_ = g.Wait()

	return MergeActivity(reservationActs, reviewActs, activityFeedSize)
}

// BuildRenterDashboard aggregates the renter's reservations and the available bikes into the renter home view.
func (srv *dashboardService) BuildRenterDashboard(ctx context.Context, session entity.Session) (*usecase.RenterDashboard, error) {
	renterID := session.UserID
	srv.log(ctx).Debug("Building renter dashboard", slog.Int64("renter_id", renterID))

	var (
		reservations []*entity.Reservation
		available    []*entity.Bike
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reservations, err = srv.booking.ListReservations(gctx, repository.ReservationFilter{RenterID: renterID})

		return errors.Wrap(err, "failed to list renter reservations")
	})
	g.Go(func() error {
		var err error
		available, err = srv.catalog.ListBikes(gctx, repository.BikeFilter{Status: entity.BikeStatusAvailable})

		return errors.Wrap(err, "failed to list available bikes")
	})
	if err := g.Wait(); err != nil {
		srv.log(ctx).Error("Renter dashboard aborted", slog.Int64("renter_id", renterID), slog.Any("error", err))

		return nil, domainerrors.NewPipelineError("renter", err)
	}

	upcoming, history := partitionRenterReservations(reservations)

	limiter := newPassLimiter(srv.limit)
	bikes := newLookup("bike", srv.catalog.GetBike, limiter, srv.log(ctx))
	profiles := newLookup("profile", srv.identity.GetProfile, limiter, srv.log(ctx))

	var (
		next   *usecase.UpcomingReservationView
		recent []usecase.RentalHistoryView
	)
	var enrich errgroup.Group
	if len(upcoming) > 0 {
		enrich.Go(func() error {
			next = upcomingView(ctx, upcoming[0], bikes, profiles)

			return nil
		})
	}
	enrich.Go(func() error {
		recent = settledMap(ctx, srv.limit, firstN(history, recentRentalsSize), func(ctx context.Context, r *entity.Reservation) usecase.RentalHistoryView {
			name := fallbackRentedBike
			if bike := bikes.Resolve(ctx, r.BikeID); bike.OK() && bike.Value() != nil && bike.Value().Model != "" {
				name = bike.Value().Model
			}

			return usecase.RentalHistoryView{
				ID:        r.ID,
				BikeName:  name,
				StartDate: r.StartDate,
				Status:    r.Status,
			}
		})

		return nil
	})
	_ = enrich.Wait()

	return &usecase.RenterDashboard{
		Stats:               renterStats(history),
		UpcomingReservation: next,
		RecentRentals:       recent,
		Recommendations:     recommendations(firstN(available, recommendationsSize)),
	}, nil
}

// partitionRenterReservations splits reservations into upcoming (soonest first) and history (latest first).
func partitionRenterReservations(reservations []*entity.Reservation) (upcoming, history []*entity.Reservation) {
	for _, r := range reservations {
		switch {
		case r.IsUpcoming():
			upcoming = append(upcoming, r)
		case r.IsHistory():
			history = append(history, r)
		}
	}

	slices.SortStableFunc(upcoming, func(a, b *entity.Reservation) int {
		return a.StartDate.Compare(b.StartDate)
	})
	slices.SortStableFunc(history, func(a, b *entity.Reservation) int {
		return b.StartDate.Compare(a.StartDate)
	})

	return upcoming, history
}

// upcomingView enriches the next reservation with its bike, then with the bike's owner.
func upcomingView(
	ctx context.Context,
	r *entity.Reservation,
	bikes *lookup[*entity.Bike],
	profiles *lookup[*entity.Profile],
) *usecase.UpcomingReservationView {
	view := &usecase.UpcomingReservationView{
		ID:         r.ID,
		BikeID:     r.BikeID,
		BikeName:   fallbackRentedBike,
		BikeImage:  fallbackBikeImage,
		OwnerName:  fallbackOwnerName,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Status:     r.Status,
		TotalPrice: r.TotalPrice,
	}

	resolved := bikes.Resolve(ctx, r.BikeID)
	if !resolved.OK() || resolved.Value() == nil {
		return view
	}

	bike := resolved.Value()
	view.BikeName = cmp.Or(bike.Model, fallbackRentedBike)
	view.BikeImage = bikeImage(bike)
	view.Latitude = bike.Position.Lat()
	view.Longitude = bike.Position.Lon()
	view.OwnerName = displayName(profiles.Resolve(ctx, bike.OwnerID), fallbackOwnerName)

	return view
}

func reservationView(r *entity.Reservation, renter Resolved[*entity.Profile], bike string) usecase.ReservationView {
	return usecase.ReservationView{
		ID:           r.ID,
		BikeID:       r.BikeID,
		BikeName:     bike,
		RenterID:     r.RenterID,
		RenterName:   displayName(renter, fallbackPersonName),
		RenterAvatar: avatarOf(renter),
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Status:       r.Status,
		TotalPrice:   r.TotalPrice,
	}
}

func bikeSummaries(bikes []*entity.Bike) []usecase.BikeSummary {
	summaries := make([]usecase.BikeSummary, 0, len(bikes))
	for _, b := range bikes {
		summaries = append(summaries, usecase.BikeSummary{
			ID:            b.ID,
			Model:         b.Model,
			Type:          b.Type,
			CostPerMinute: b.CostPerMinute,
			ImageURL:      bikeImage(b),
			Status:        b.Status,
			Latitude:      b.Position.Lat(),
			Longitude:     b.Position.Lon(),
		})
	}

	return summaries
}

func recommendations(bikes []*entity.Bike) []usecase.RecommendationView {
	views := make([]usecase.RecommendationView, 0, len(bikes))
	for _, b := range bikes {
		views = append(views, usecase.RecommendationView{
			ID:             b.ID,
			BikeName:       b.Model,
			PricePerMinute: b.CostPerMinute,
			ImageURL:       bikeImage(b),
		})
	}

	return views
}
