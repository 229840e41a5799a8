package interfaces

import (
	"context"
	"maintenance_contracts/internal/domain/entities"
)

//go:generate mockgen -source=item_repository_interface.go -destination=mocks/mock_item_repository.go -package=mock_interfaces

// IItemRepository abstracts the item catalog. GetByCode returns a zero Item
// (empty ItemCode) when the code is unknown.
type IItemRepository interface {
	GetByCode(ctx context.Context, code string) (entities.Item, error)
	Put(ctx context.Context, item entities.Item) (entities.Item, error)
	ListServiceItems(ctx context.Context) ([]entities.Item, error)
}

// IItemCache is a read-through cache in front of IItemRepository.
type IItemCache interface {
	Get(ctx context.Context, code string) (entities.Item, bool, error)
	Set(ctx context.Context, item entities.Item) error
	Delete(ctx context.Context, code string) error
}
