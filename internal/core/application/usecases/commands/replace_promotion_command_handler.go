package commands

import (
	"context"
	"errors"
	"fmt"

	"placeorder/internal/core/ports"
)

// ErrProductIsNotInCatalog rejects an override for a product that has no
// standard price.
var ErrProductIsNotInCatalog = errors.New("product is not in the catalog")

// ReplacePromotionCommandHandler rewrites a promotion inside one transaction,
// so a concurrent catalog refresh sees either the old overrides or the new
// ones.
type ReplacePromotionCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewReplacePromotionCommandHandler(uowFactory ports.UnitOfWorkFactory) ReplacePromotionCommandHandler {
	return ReplacePromotionCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ReplacePromotionCommandHandler) Handle(ctx context.Context, cmd ReplacePromotionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CatalogRepository()
	if err := repo.DeletePromotion(ctx, cmd.Promotion()); err != nil {
		return err
	}

	for _, override := range cmd.Overrides() {
		exists, err := repo.ProductExists(ctx, override.ProductCode)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: %s", ErrProductIsNotInCatalog, override.ProductCode.Value())
		}

		if err = repo.SavePromotionPrice(ctx, cmd.Promotion(), override.ProductCode, override.Price); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
