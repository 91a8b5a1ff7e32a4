package impl

import (
	domainerrors "bikeshare/internal/domain/errors"
	"bikeshare/internal/domain/repository"

	"github.com/pkg/errors"
)

// Repository sentinels are mapped to domain errors here; anything else is passed on with context.

func translateBikeError(err error) error {
	if errors.Is(err, repository.ErrBikeNotFound) {
		return errors.Wrap(domainerrors.ErrBikeNotFound, "bike not found")
	}

	return errors.Wrap(err, "failed to fetch bike")
}

func translateReservationError(err error) error {
	if errors.Is(err, repository.ErrReservationNotFound) {
		return errors.Wrap(domainerrors.ErrReservationNotFound, "reservation not found")
	}

	return errors.Wrap(err, "failed to fetch reservation")
}

func translateProfileError(err error) error {
	if errors.Is(err, repository.ErrProfileNotFound) {
		return errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
	}

	return errors.Wrap(err, "failed to fetch profile")
}

func translateCredentialsError(err error) error {
	if errors.Is(err, repository.ErrInvalidCredentials) {
		return errors.Wrap(domainerrors.ErrInvalidCredentials, "credentials rejected")
	}

	return errors.WithStack(err)
}
