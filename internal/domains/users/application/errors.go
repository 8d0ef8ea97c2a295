package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/storefront-api/internal/domains/users/domain"
	"github.com/Apurer/storefront-api/internal/shared/resource"
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, resource.ErrInvalidInput) {
		return err
	}
	if errors.Is(err, domain.ErrEmptyName) ||
		errors.Is(err, domain.ErrInvalidEmail) ||
		errors.Is(err, domain.ErrInvalidRole) ||
		errors.Is(err, domain.ErrInvalidTheme) {
		return fmt.Errorf("%w: %w", resource.ErrInvalidInput, err)
	}
	return err
}
