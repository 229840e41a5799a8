package usecase

import (
	"context"
	"errors"
	"strings"

	"maintenance_contracts/internal/domain/entities"
	"maintenance_contracts/internal/infrastructure/logger"
	"maintenance_contracts/internal/usecase/interfaces"
)

var (
	ErrInvalidItemCode = errors.New("invalid item code")
)

// ServiceItemDetails is the lookup result used to fill a service item row.
// Description and UOM are only set when Valid.
type ServiceItemDetails struct {
	Valid       bool
	Description string
	UOM         string
}

//go:generate mockgen -source=service_item_usecase.go -destination=../adapter/http/handlers/mocks/mock_service_item_usecase.go -package=mocks

// IServiceItemUseCase exposes the item catalog to contract editing.
type IServiceItemUseCase interface {
	GetServiceItemDetails(ctx context.Context, itemCode string) (ServiceItemDetails, error)
	ListSelectable(ctx context.Context) ([]entities.Item, error)
	UpsertItem(ctx context.Context, item entities.Item) (entities.Item, error)
}

type ServiceItemUseCase struct {
	repo  interfaces.IItemRepository
	cache interfaces.IItemCache
	log   *logger.Logger
}

var _ IServiceItemUseCase = (*ServiceItemUseCase)(nil)

// NewServiceItemUseCase wires the catalog. cache may be nil.
func NewServiceItemUseCase(repo interfaces.IItemRepository, cache interfaces.IItemCache, log *logger.Logger) *ServiceItemUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ServiceItemUseCase{repo: repo, cache: cache, log: log.With("usecase", "service_item")}
}

// GetServiceItemDetails never fails on unknown or stock items; those are
// reported as not valid. Only storage errors are returned.
func (u *ServiceItemUseCase) GetServiceItemDetails(ctx context.Context, itemCode string) (ServiceItemDetails, error) {
	itemCode = strings.TrimSpace(itemCode)
	if itemCode == "" {
		return ServiceItemDetails{Valid: false}, nil
	}

	item, err := u.lookup(ctx, itemCode)
	if err != nil {
		return ServiceItemDetails{}, err
	}
	if item.ItemCode == "" || item.IsStockItem {
		return ServiceItemDetails{Valid: false}, nil
	}

	return ServiceItemDetails{
		Valid:       true,
		Description: item.DisplayDescription(),
		UOM:         item.ServiceUOM(),
	}, nil
}

func (u *ServiceItemUseCase) lookup(ctx context.Context, code string) (entities.Item, error) {
	if u.cache != nil {
		item, ok, err := u.cache.Get(ctx, code)
		if err != nil {
			u.log.Warn("item cache read failed", "item_code", code, "error", err)
		} else if ok {
			return item, nil
		}
	}

	item, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return entities.Item{}, err
	}
	if item.ItemCode != "" && u.cache != nil {
		if err := u.cache.Set(ctx, item); err != nil {
			u.log.Warn("item cache write failed", "item_code", code, "error", err)
		}
	}
	return item, nil
}

func (u *ServiceItemUseCase) ListSelectable(ctx context.Context) ([]entities.Item, error) {
	return u.repo.ListServiceItems(ctx)
}

func (u *ServiceItemUseCase) UpsertItem(ctx context.Context, item entities.Item) (entities.Item, error) {
	item.ItemCode = strings.TrimSpace(item.ItemCode)
	if item.ItemCode == "" {
		return entities.Item{}, ErrInvalidItemCode
	}

	saved, err := u.repo.Put(ctx, item)
	if err != nil {
		return entities.Item{}, err
	}
	if u.cache != nil {
		if err := u.cache.Delete(ctx, item.ItemCode); err != nil {
			u.log.Warn("item cache invalidation failed", "item_code", item.ItemCode, "error", err)
		}
	}
	u.log.Info("item saved", "item_code", saved.ItemCode)
	return saved, nil
}
