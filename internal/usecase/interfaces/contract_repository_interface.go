package interfaces

import (
	"context"
	"errors"
	"maintenance_contracts/internal/domain/entities"
)

// ErrVersionConflict is returned by Save when the stored contract changed
// since it was loaded.
var ErrVersionConflict = errors.New("contract version conflict")

//go:generate mockgen -source=contract_repository_interface.go -destination=mocks/mock_contract_repository.go -package=mock_interfaces

// IContractRepository abstracts persistence of the contract aggregate.
//
// Rows are stored with their parent, so a contract is always read and written
// as a whole. GetByID returns a zero Contract (empty ID) when nothing is stored.
type IContractRepository interface {
	Create(ctx context.Context, c entities.Contract) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	// Save overwrites the stored contract when its version still equals
	// c.Version and returns the contract with the incremented version.
	Save(ctx context.Context, c entities.Contract) (entities.Contract, error)
	List(ctx context.Context, filter entities.ContractReportFilter) ([]entities.Contract, error)
}
