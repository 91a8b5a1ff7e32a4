package impl

import (
	"context"
	"log/slog"
	"unicode/utf8"

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

// minReviewComment is the shortest accepted review comment, in characters.
const minReviewComment = 5

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	catalog   repository.CatalogRepository
	booking   repository.BookingRepository
	identity  repository.IdentityRepository
	reviews   repository.ReviewRepository
	sanitizer service.TextSanitizer
	limit     int
	logger    *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	catalog repository.CatalogRepository,
	booking repository.BookingRepository,
	identity repository.IdentityRepository,
	reviews repository.ReviewRepository,
	sanitizer service.TextSanitizer,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		catalog:   catalog,
		booking:   booking,
		identity:  identity,
		reviews:   reviews,
		sanitizer: sanitizer,
		limit:     fanOutLimit(cfg),
		logger:    logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListReceived returns the reviews written about the owner with the reviewers' names.
func (srv *reviewService) ListReceived(ctx context.Context, session entity.Session) (*usecase.ReceivedReviews, error) {
	reviews, err := srv.reviews.ListReviews(ctx, repository.ReviewFilter{OwnerID: session.UserID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list received reviews")
	}

	views := srv.reviewViews(ctx, reviews, func(r *entity.Review) int64 { return r.ReviewerID }, fallbackReviewerName)

	return &usecase.ReceivedReviews{
		Reviews:       views,
		AverageRating: entity.AverageRating(reviews),
	}, nil
}

// ListWritten returns the renter's reviews with the reviewed owners' names.
func (srv *reviewService) ListWritten(ctx context.Context, session entity.Session) ([]usecase.ReviewView, error) {
	reviews, err := srv.reviews.ListReviews(ctx, repository.ReviewFilter{RenterID: session.UserID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list written reviews")
	}

	return srv.reviewViews(ctx, reviews, func(r *entity.Review) int64 { return r.OwnerID }, fallbackOwnerName), nil
}

// reviewViews resolves the counterpart of every review, picked by person.
func (srv *reviewService) reviewViews(
	ctx context.Context,
	reviews []*entity.Review,
	person func(*entity.Review) int64,
	fallback string,
) []usecase.ReviewView {
	profiles := newLookup("profile", srv.identity.GetProfile, newPassLimiter(srv.limit), srv.log(ctx))

	return settledMap(ctx, srv.limit, reviews, func(ctx context.Context, r *entity.Review) usecase.ReviewView {
		profile := profiles.Resolve(ctx, person(r))

		return usecase.ReviewView{
			ID:            r.ID,
			ReservationID: r.ReservationID,
			PersonName:    displayName(profile, fallback),
			PersonImage:   avatarOf(profile),
			Rating:        r.Rating,
			Comment:       r.Comment,
			CreatedAt:     r.CreatedAt,
		}
	})
}

// ListReviewable returns the renter's completed reservations that have no review yet.
func (srv *reviewService) ListReviewable(ctx context.Context, session entity.Session) ([]usecase.ReviewableView, error) {
	var (
		reservations []*entity.Reservation
		written      []*entity.Review
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reservations, err = srv.booking.ListReservations(gctx, repository.ReservationFilter{RenterID: session.UserID})

		return errors.Wrap(err, "failed to list renter reservations")
	})
	g.Go(func() error {
		var err error
		written, err = srv.reviews.ListReviews(gctx, repository.ReviewFilter{RenterID: session.UserID})

		return errors.Wrap(err, "failed to list written reviews")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	reviewed := make(map[int64]bool, len(written))
	for _, review := range written {
		reviewed[review.ReservationID] = true
	}

	pending := make([]*entity.Reservation, 0)
	for _, r := range entity.FilterReservations(reservations, entity.ReservationCompleted) {
		if !reviewed[r.ID] {
			pending = append(pending, r)
		}
	}

	limiter := newPassLimiter(srv.limit)
	bikes := newLookup("bike", srv.catalog.GetBike, limiter, srv.log(ctx))
	profiles := newLookup("profile", srv.identity.GetProfile, limiter, srv.log(ctx))

	return settledMap(ctx, srv.limit, pending, func(ctx context.Context, r *entity.Reservation) usecase.ReviewableView {
		view := usecase.ReviewableView{
			ReservationID: r.ID,
			BikeName:      fallbackRentedBike,
			OwnerName:     fallbackOwnerName,
			StartDate:     r.StartDate,
		}

		bike := bikes.Resolve(ctx, r.BikeID)
		if !bike.OK() || bike.Value() == nil {
			return view
		}
		if bike.Value().Model != "" {
			view.BikeName = bike.Value().Model
		}
		view.OwnerName = displayName(profiles.Resolve(ctx, bike.Value().OwnerID), fallbackOwnerName)

		return view
	}), nil
}

// CreateReview rates a completed rental of the renter.
func (srv *reviewService) CreateReview(ctx context.Context, session entity.Session, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if input.Rating <= entity.MinRating || !entity.ValidRating(input.Rating) {
		return nil, errors.WithStack(domainerrors.ErrInvalidRating)
	}

	comment := srv.sanitizer.Sanitize(input.Comment)
	if utf8.RuneCountInString(comment) < minReviewComment {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("comment must have at least 5 characters"))
	}

	reservation, err := srv.booking.GetReservation(ctx, input.ReservationID)
	if err != nil {
		return nil, translateReservationError(err)
	}

	if reservation.RenterID != session.UserID || reservation.Status != entity.ReservationCompleted {
		return nil, errors.Wrapf(domainerrors.ErrNotReviewable, "reservation %d", input.ReservationID)
	}

	review, err := srv.reviews.CreateReview(ctx, &repository.ReviewInput{
		ReservationID: reservation.ID,
		Rating:        input.Rating,
		Comment:       comment,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.log(ctx).Info("Review created",
		slog.Int64("review_id", review.ID),
		slog.Int64("reservation_id", reservation.ID),
	)

	return review, nil
}
