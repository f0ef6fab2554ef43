package commands

import (
	"context"

	"placeorder/internal/core/ports"
)

type SetProductPriceCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewSetProductPriceCommandHandler(uowFactory ports.UnitOfWorkFactory) SetProductPriceCommandHandler {
	return SetProductPriceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle upserts the product. The new price is used by orders placed after the
// next catalog refresh.
func (h SetProductPriceCommandHandler) Handle(ctx context.Context, cmd SetProductPriceCommand) error {
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

	if err := uow.CatalogRepository().SaveProduct(ctx, cmd.Code(), cmd.Price()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
