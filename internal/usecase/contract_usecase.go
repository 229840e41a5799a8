package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"maintenance_contracts/internal/domain/entities"
	"maintenance_contracts/internal/domain/totals"
	"maintenance_contracts/internal/infrastructure/logger"
	"maintenance_contracts/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidContractID      = errors.New("invalid contract id")
	ErrContractNotFound       = errors.New("contract not found")
	ErrContractConflict       = errors.New("contract was modified by another request")
	ErrContractNotEditable    = errors.New("only draft contracts can be edited")
	ErrContractCancelled      = errors.New("cancelled contracts cannot be changed")
	ErrContractNotSubmitted   = errors.New("contract is not submitted")
	ErrInvalidContractType    = errors.New("invalid contract type")
	ErrInvalidDateRange       = errors.New("contract end date cannot be before start date")
	ErrInvalidStatus          = errors.New("invalid status, only 'Completed' or 'Terminated' allowed")
	ErrSubmissionNotConfirmed = errors.New("action cancelled by user")
	ErrNegativeFactor         = errors.New("estimated hours and rate per hour cannot be negative")
	ErrServiceItemNotFound    = errors.New("service item not found")
	ErrBillingEntryNotFound   = errors.New("billing entry not found")
	ErrInvalidInvoiceStatus   = errors.New("invalid invoice status")
	ErrInvalidInvoiceAmount   = errors.New("invoice amount is required")
	ErrValueOutOfRange        = errors.New("hours, rates and amounts must be finite and at most 1e12")
)

// Checks run before a contract is submitted, in this order.
var (
	ErrZeroEstimatedHours             = errors.New("total estimated hours cannot be zero")
	ErrZeroContractValue              = errors.New("total contract value cannot be zero")
	ErrInvoicedExceedsValue           = errors.New("invoiced amount cannot exceed total contract value")
	ErrCustomerNameRequired           = errors.New("customer name is required before submission")
	ErrContractTypeRequired           = errors.New("contract type is required before submission")
	ErrServiceItemsRequired           = errors.New("at least one service item is required")
	ErrServiceItemDescriptionRequired = errors.New("each service item must have a description")
)

const defaultCreatedBy = "Guest"

// SubmissionPreview is the confirmation shown before a contract is submitted.
type SubmissionPreview struct {
	Title                string
	Action               string
	Question             string
	ContractTitle        string
	ContractType         entities.ContractType
	TotalEstimatedHours  float64
	TotalContractValue   float64
	PrimaryActionLabel   string
	SecondaryActionLabel string
}

// ContractActions lists the workflow actions offered on a stored contract.
type ContractActions struct {
	UpdateStatus        bool
	GenerateNextInvoice bool
}

// SelectServiceItemResult is the row after an item was picked. Message is
// set when the item was rejected and the row's item cleared.
type SelectServiceItemResult struct {
	Contract entities.Contract
	Valid    bool
	Message  string
}

//go:generate mockgen -source=contract_usecase.go -destination=../adapter/http/handlers/mocks/mock_contract_usecase.go -package=mocks

// IContractUseCase covers the contract lifecycle and the row edits of the
// contract form. Every row edit recomputes the contract totals before saving.
type IContractUseCase interface {
	Create(ctx context.Context, in ContractInput) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	Update(ctx context.Context, id string, in ContractInput) (entities.Contract, error)
	Cancel(ctx context.Context, id string) (entities.Contract, error)
	SubmissionPreview(ctx context.Context, id string) (SubmissionPreview, error)
	Submit(ctx context.Context, id string, confirmed bool) (entities.Contract, error)
	AvailableActions(ctx context.Context, id string) (ContractActions, error)
	UpdateStatus(ctx context.Context, id string, status entities.ContractStatus) (string, error)

	AddServiceItem(ctx context.Context, id string, in ServiceItemInput) (entities.Contract, error)
	UpdateServiceItem(ctx context.Context, id, rowID string, patch ServiceItemPatch) (entities.Contract, error)
	RemoveServiceItem(ctx context.Context, id, rowID string) (entities.Contract, error)
	SelectServiceItem(ctx context.Context, id, rowID, itemCode string) (SelectServiceItemResult, error)

	AddBillingEntry(ctx context.Context, id string, in BillingEntryInput) (entities.Contract, error)
	UpdateBillingEntry(ctx context.Context, id, rowID string, patch BillingEntryPatch) (entities.Contract, error)
	RemoveBillingEntry(ctx context.Context, id, rowID string) (entities.Contract, error)
}

type ContractUseCase struct {
	repo  interfaces.IContractRepository
	items IServiceItemUseCase
	log   *logger.Logger
	now   func() time.Time
	newID func() string
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(repo interfaces.IContractRepository, items IServiceItemUseCase, log *logger.Logger) *ContractUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ContractUseCase{
		repo:  repo,
		items: items,
		log:   log.With("usecase", "contract"),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (u *ContractUseCase) Create(ctx context.Context, in ContractInput) (entities.Contract, error) {
	now := u.now().UTC()
	c := entities.Contract{
		ID:        u.newID(),
		Status:    entities.ContractStatusDraft,
		DocStatus: entities.DocStatusDraft,
		CreatedBy: strings.TrimSpace(in.CreatedBy),
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyHeader(&c, in)

	for _, row := range in.ServiceItems {
		c.ServiceItems = append(c.ServiceItems, u.newServiceItem(&c, row))
	}
	for _, row := range in.BillingSchedule {
		entry, err := u.newBillingEntry(&c, row)
		if err != nil {
			return entities.Contract{}, err
		}
		c.BillingSchedule = append(c.BillingSchedule, entry)
	}

	if err := u.validate(&c); err != nil {
		return entities.Contract{}, err
	}

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		u.log.Error("create failed", "contract_id", c.ID, "error", err)
		return entities.Contract{}, err
	}
	u.log.Info("contract created", "contract_id", created.ID, "total_contract_value", created.TotalContractValue)
	return created, nil
}

func (u *ContractUseCase) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	return loadContract(ctx, u.repo, id)
}

// Update replaces the header fields of a draft contract. Rows are edited
// through the row operations.
func (u *ContractUseCase) Update(ctx context.Context, id string, in ContractInput) (entities.Contract, error) {
	return u.mutate(ctx, id, func(c *entities.Contract) error {
		if !c.IsDraft() {
			return ErrContractNotEditable
		}
		applyHeader(c, in)
		return u.validate(c)
	})
}

func (u *ContractUseCase) Cancel(ctx context.Context, id string) (entities.Contract, error) {
	return u.mutate(ctx, id, func(c *entities.Contract) error {
		if !c.IsSubmitted() {
			return ErrContractNotSubmitted
		}
		c.DocStatus = entities.DocStatusCancelled
		return nil
	})
}

func (u *ContractUseCase) SubmissionPreview(ctx context.Context, id string) (SubmissionPreview, error) {
	c, err := loadContract(ctx, u.repo, id)
	if err != nil {
		return SubmissionPreview{}, err
	}
	if !c.IsDraft() {
		return SubmissionPreview{}, ErrContractNotEditable
	}
	return SubmissionPreview{
		Title:                "Confirm Submission",
		Action:               "Submit",
		Question:             "Are you sure you want to Submit?",
		ContractTitle:        c.ContractTitle,
		ContractType:         c.ContractType,
		TotalEstimatedHours:  c.TotalEstimatedHours,
		TotalContractValue:   c.TotalContractValue,
		PrimaryActionLabel:   "Confirm",
		SecondaryActionLabel: "Back",
	}, nil
}

// Submit moves a draft to Active. The caller must pass confirmed=true, which
// stands for the primary action of the submission preview.
func (u *ContractUseCase) Submit(ctx context.Context, id string, confirmed bool) (entities.Contract, error) {
	if strings.TrimSpace(id) == "" {
		return entities.Contract{}, ErrInvalidContractID
	}
	if !confirmed {
		return entities.Contract{}, ErrSubmissionNotConfirmed
	}

	submitted, err := u.mutate(ctx, id, func(c *entities.Contract) error {
		if !c.IsDraft() {
			return ErrContractNotEditable
		}
		if err := validateBeforeSubmit(c); err != nil {
			return err
		}
		c.Status = entities.ContractStatusActive
		c.DocStatus = entities.DocStatusSubmitted
		return nil
	})
	if err != nil {
		return entities.Contract{}, err
	}
	u.log.Info("contract submitted", "contract_id", submitted.ID)
	return submitted, nil
}

func (u *ContractUseCase) AvailableActions(ctx context.Context, id string) (ContractActions, error) {
	c, err := loadContract(ctx, u.repo, id)
	if err != nil {
		return ContractActions{}, err
	}
	return ActionsFor(c), nil
}

// ActionsFor mirrors the buttons the contract form offers.
func ActionsFor(c entities.Contract) ContractActions {
	if !c.IsSubmitted() {
		return ContractActions{}
	}
	status := c.Status
	return ContractActions{
		UpdateStatus: true,
		GenerateNextInvoice: c.PendingBalance > 0 &&
			c.TotalContractValue > 0 &&
			status == entities.ContractStatusActive &&
			(status != entities.ContractStatusCompleted && status != entities.ContractStatusTerminated),
	}
}

func (u *ContractUseCase) UpdateStatus(ctx context.Context, id string, status entities.ContractStatus) (string, error) {
	if status != entities.ContractStatusCompleted && status != entities.ContractStatusTerminated {
		return "", ErrInvalidStatus
	}

	updated, err := u.mutate(ctx, id, func(c *entities.Contract) error {
		c.Status = status
		return nil
	})
	if err != nil {
		return "", err
	}
	u.log.Info("contract status updated", "contract_id", updated.ID, "status", status)
	return fmt.Sprintf("Contract status updated to %s", status), nil
}

// validate runs on every header save: duration, date order, row costs and
// totals, created fields.
func (u *ContractUseCase) validate(c *entities.Contract) error {
	if c.ContractType != "" && !c.ContractType.Valid() {
		return ErrInvalidContractType
	}
	if !c.ContractStartDate.IsZero() && !c.ContractEndDate.IsZero() {
		if c.ContractEndDate.Before(c.ContractStartDate) {
			return ErrInvalidDateRange
		}
		c.DurationInDays = entities.DaysBetween(c.ContractStartDate, c.ContractEndDate)
	}
	for _, row := range c.ServiceItems {
		if outOfRange(row.EstimatedHours) || outOfRange(row.RatePerHour) {
			return ErrValueOutOfRange
		}
		if row.Hours() < 0 || row.Rate() < 0 {
			return ErrNegativeFactor
		}
	}
	for _, entry := range c.BillingSchedule {
		if outOfRange(entry.InvoiceAmount) {
			return ErrValueOutOfRange
		}
	}
	totals.RecomputeAll(c)

	if c.CreatedBy == "" {
		c.CreatedBy = defaultCreatedBy
	}
	if c.CreatedOn.IsZero() {
		c.CreatedOn = today(u.now())
	}
	return nil
}

func validateBeforeSubmit(c *entities.Contract) error {
	switch {
	case c.TotalEstimatedHours == 0:
		return ErrZeroEstimatedHours
	case c.TotalContractValue == 0:
		return ErrZeroContractValue
	case c.TotalInvoicedAmount > c.TotalContractValue:
		return ErrInvoicedExceedsValue
	case strings.TrimSpace(c.CustomerName) == "":
		return ErrCustomerNameRequired
	case c.ContractType == "":
		return ErrContractTypeRequired
	case len(c.ServiceItems) == 0:
		return ErrServiceItemsRequired
	}
	for _, row := range c.ServiceItems {
		if strings.TrimSpace(row.Description) == "" {
			return ErrServiceItemDescriptionRequired
		}
	}
	return nil
}

func applyHeader(c *entities.Contract, in ContractInput) {
	c.ContractTitle = strings.TrimSpace(in.ContractTitle)
	c.CustomerName = strings.TrimSpace(in.CustomerName)
	c.CustomerEmail = strings.TrimSpace(in.CustomerEmail)
	c.CustomerContactNumber = strings.TrimSpace(in.CustomerContactNumber)
	c.ContractType = in.ContractType
	c.Supervisor = strings.TrimSpace(in.Supervisor)
	c.ContractStartDate = in.ContractStartDate
	c.ContractEndDate = in.ContractEndDate
	if c.ContractStartDate.IsZero() || c.ContractEndDate.IsZero() {
		c.DurationInDays = 0
	}
}

// mutate loads a contract, applies fn and saves it. fn errors abort the save.
func (u *ContractUseCase) mutate(ctx context.Context, id string, fn func(c *entities.Contract) error) (entities.Contract, error) {
	c, err := loadContract(ctx, u.repo, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if err := fn(&c); err != nil {
		return entities.Contract{}, err
	}
	return saveContract(ctx, u.repo, c)
}

func loadContract(ctx context.Context, repo interfaces.IContractRepository, id string) (entities.Contract, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contract{}, ErrInvalidContractID
	}
	c, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	return c, nil
}

func saveContract(ctx context.Context, repo interfaces.IContractRepository, c entities.Contract) (entities.Contract, error) {
	saved, err := repo.Save(ctx, c)
	if errors.Is(err, interfaces.ErrVersionConflict) {
		return entities.Contract{}, ErrContractConflict
	}
	if err != nil {
		return entities.Contract{}, err
	}
	return saved, nil
}

func today(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
