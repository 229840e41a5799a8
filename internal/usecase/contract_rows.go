package usecase

import (
	"context"
	"math"
	"strings"

	"maintenance_contracts/internal/domain/entities"
	"maintenance_contracts/internal/domain/totals"
)

const invalidServiceItemMessage = "Please select a valid service item."

func (u *ContractUseCase) newServiceItem(c *entities.Contract, in ServiceItemInput) entities.ServiceItem {
	uom := strings.TrimSpace(in.UOM)
	if uom == "" {
		uom = entities.DefaultServiceUOM
	}
	return entities.ServiceItem{
		ID:             u.newID(),
		Idx:            c.NextServiceItemIdx(),
		ServiceItem:    strings.TrimSpace(in.ServiceItem),
		Description:    strings.TrimSpace(in.Description),
		UOM:            uom,
		EstimatedHours: in.EstimatedHours,
		RatePerHour:    in.RatePerHour,
	}
}

func (u *ContractUseCase) newBillingEntry(c *entities.Contract, in BillingEntryInput) (entities.BillingScheduleEntry, error) {
	status := in.InvoiceStatus
	if status == "" {
		status = entities.InvoiceStatusDraft
	}
	if !status.Valid() {
		return entities.BillingScheduleEntry{}, ErrInvalidInvoiceStatus
	}
	if outOfRange(in.InvoiceAmount) {
		return entities.BillingScheduleEntry{}, ErrValueOutOfRange
	}
	return entities.BillingScheduleEntry{
		ID:            u.newID(),
		Idx:           c.NextBillingEntryIdx(),
		InvoiceDate:   in.InvoiceDate,
		InvoiceAmount: in.InvoiceAmount,
		InvoiceStatus: status,
		Remarks:       strings.TrimSpace(in.Remarks),
	}, nil
}

func (u *ContractUseCase) AddServiceItem(ctx context.Context, id string, in ServiceItemInput) (entities.Contract, error) {
	if outOfRange(in.EstimatedHours) || outOfRange(in.RatePerHour) {
		return entities.Contract{}, ErrValueOutOfRange
	}
	if negative(in.EstimatedHours) || negative(in.RatePerHour) {
		return entities.Contract{}, ErrNegativeFactor
	}
	return u.mutate(ctx, id, func(c *entities.Contract) error {
		if !c.IsDraft() {
			return ErrContractNotEditable
		}
		c.ServiceItems = append(c.ServiceItems, u.newServiceItem(c, in))
		totals.OnServiceItemFactorChanged(c, len(c.ServiceItems)-1)
		return nil
	})
}

func (u *ContractUseCase) UpdateServiceItem(ctx context.Context, id, rowID string, patch ServiceItemPatch) (entities.Contract, error) {
	if outOfRange(patch.EstimatedHours) || outOfRange(patch.RatePerHour) {
		return entities.Contract{}, ErrValueOutOfRange
	}
	if negative(patch.EstimatedHours) || negative(patch.RatePerHour) {
		return entities.Contract{}, ErrNegativeFactor
	}
	return u.mutate(ctx, id, func(c *entities.Contract) error {
		if !c.IsDraft() {
			return ErrContractNotEditable
		}
		i := c.ServiceItemIndex(rowID)
		if i < 0 {
			return ErrServiceItemNotFound
		}
		row := &c.ServiceItems[i]
		if patch.ServiceItem != nil {
			row.ServiceItem = strings.TrimSpace(*patch.ServiceItem)
		}
		if patch.Description != nil {
			row.Description = strings.TrimSpace(*patch.Description)
		}
		if patch.UOM != nil {
			row.UOM = strings.TrimSpace(*patch.UOM)
		}
		if patch.EstimatedHours != nil {
			row.EstimatedHours = patch.EstimatedHours
		}
		if patch.RatePerHour != nil {
			row.RatePerHour = patch.RatePerHour
		}
		if patch.changesFactor() {
			totals.OnServiceItemFactorChanged(c, i)
		}
		return nil
	})
}

func (u *ContractUseCase) RemoveServiceItem(ctx context.Context, id, rowID string) (entities.Contract, error) {
	return u.mutate(ctx, id, func(c *entities.Contract) error {
		if !c.IsDraft() {
			return ErrContractNotEditable
		}
		i := c.ServiceItemIndex(rowID)
		if i < 0 {
			return ErrServiceItemNotFound
		}
		c.ServiceItems = append(c.ServiceItems[:i], c.ServiceItems[i+1:]...)
		totals.OnServiceItemRemoved(c)
		return nil
	})
}

// SelectServiceItem sets the item of a row and fills its description and unit
// from the catalog. An unknown or stock item clears the row's item instead.
func (u *ContractUseCase) SelectServiceItem(ctx context.Context, id, rowID, itemCode string) (SelectServiceItemResult, error) {
	itemCode = strings.TrimSpace(itemCode)

	var details ServiceItemDetails
	if itemCode != "" {
		var err error
		details, err = u.items.GetServiceItemDetails(ctx, itemCode)
		if err != nil {
			return SelectServiceItemResult{}, err
		}
	}

	c, err := u.mutate(ctx, id, func(c *entities.Contract) error {
		if !c.IsDraft() {
			return ErrContractNotEditable
		}
		i := c.ServiceItemIndex(rowID)
		if i < 0 {
			return ErrServiceItemNotFound
		}
		row := &c.ServiceItems[i]
		if itemCode == "" || !details.Valid {
			row.ServiceItem = ""
			return nil
		}
		row.ServiceItem = itemCode
		row.Description = details.Description
		row.UOM = details.UOM
		return nil
	})
	if err != nil {
		return SelectServiceItemResult{}, err
	}

	res := SelectServiceItemResult{Contract: c, Valid: itemCode == "" || details.Valid}
	if itemCode != "" && !details.Valid {
		res.Message = invalidServiceItemMessage
	}
	return res, nil
}

func (u *ContractUseCase) AddBillingEntry(ctx context.Context, id string, in BillingEntryInput) (entities.Contract, error) {
	return u.mutate(ctx, id, func(c *entities.Contract) error {
		if c.IsCancelled() {
			return ErrContractCancelled
		}
		entry, err := u.newBillingEntry(c, in)
		if err != nil {
			return err
		}
		c.BillingSchedule = append(c.BillingSchedule, entry)
		totals.OnBillingEntryFieldChanged(c)
		return nil
	})
}

func (u *ContractUseCase) UpdateBillingEntry(ctx context.Context, id, rowID string, patch BillingEntryPatch) (entities.Contract, error) {
	if patch.InvoiceStatus != nil && !patch.InvoiceStatus.Valid() {
		return entities.Contract{}, ErrInvalidInvoiceStatus
	}
	if outOfRange(patch.InvoiceAmount) {
		return entities.Contract{}, ErrValueOutOfRange
	}
	return u.mutate(ctx, id, func(c *entities.Contract) error {
		if c.IsCancelled() {
			return ErrContractCancelled
		}
		i := c.BillingEntryIndex(rowID)
		if i < 0 {
			return ErrBillingEntryNotFound
		}
		entry := &c.BillingSchedule[i]
		if patch.InvoiceDate != nil {
			entry.InvoiceDate = *patch.InvoiceDate
		}
		if patch.InvoiceAmount != nil {
			entry.InvoiceAmount = patch.InvoiceAmount
		}
		if patch.InvoiceStatus != nil {
			entry.InvoiceStatus = *patch.InvoiceStatus
		}
		if patch.Remarks != nil {
			entry.Remarks = strings.TrimSpace(*patch.Remarks)
		}
		totals.OnBillingEntryFieldChanged(c)
		return nil
	})
}

func (u *ContractUseCase) RemoveBillingEntry(ctx context.Context, id, rowID string) (entities.Contract, error) {
	return u.mutate(ctx, id, func(c *entities.Contract) error {
		if c.IsCancelled() {
			return ErrContractCancelled
		}
		i := c.BillingEntryIndex(rowID)
		if i < 0 {
			return ErrBillingEntryNotFound
		}
		c.BillingSchedule = append(c.BillingSchedule[:i], c.BillingSchedule[i+1:]...)
		totals.OnBillingEntryRemoved(c)
		return nil
	})
}

func negative(v *float64) bool {
	return v != nil && *v < 0
}

// maxInputValue bounds hours, rates and amounts accepted from callers.
const maxInputValue = 1e12

func outOfRange(v *float64) bool {
	if v == nil {
		return false
	}
	return math.IsNaN(*v) || math.IsInf(*v, 0) || math.Abs(*v) > maxInputValue
}
