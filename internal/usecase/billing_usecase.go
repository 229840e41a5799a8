package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"maintenance_contracts/internal/domain/entities"
	"maintenance_contracts/internal/domain/totals"
	"maintenance_contracts/internal/infrastructure/logger"
	"maintenance_contracts/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvoiceAmountExceedsRemaining = errors.New("invoice amount exceeds remaining contract balance")
	ErrBillingEntryAlreadyPaid       = errors.New("billing entry is already paid")
	ErrInvalidPaymentPayload         = errors.New("payment payload must be a JSON object")
	ErrPaymentGatewayUnavailable     = errors.New("payment gateway not configured")
)

const (
	manualInvoiceRemarks = "Manual invoice entry"
	billingEntryCreated  = "Billing entry created successfully"
	displayDateLayout    = "02-01-2006"
	markPaidAttempts     = 3
	providerStatusOK     = "approved"
)

// InvoiceResult reports the outcome of invoice generation. Expected failures
// are carried in Message with Success false.
type InvoiceResult struct {
	Success bool
	Message string
}

// PaymentResult is returned after the provider answered. Paid is false when
// the provider did not approve the payment; the entry is left unchanged then.
type PaymentResult struct {
	Contract          entities.Contract
	EntryID           string
	ProviderPaymentID string
	ProviderStatus    string
	ProviderResponse  json.RawMessage
	Paid              bool
}

//go:generate mockgen -source=billing_usecase.go -destination=../adapter/http/handlers/mocks/mock_billing_usecase.go -package=mocks

// IBillingUseCase drives the billing schedule of submitted contracts.
type IBillingUseCase interface {
	CreateBillingEntry(ctx context.Context, id string, in BillingEntryInput) (string, error)
	GenerateNextInvoice(ctx context.Context, id string) (InvoiceResult, error)
	PayBillingEntry(ctx context.Context, id, rowID string, payload json.RawMessage) (PaymentResult, error)
}

type BillingUseCase struct {
	repo    interfaces.IContractRepository
	gateway interfaces.IPaymentGateway
	log     *logger.Logger
	now     func() time.Time
	newID   func() string
}

var _ IBillingUseCase = (*BillingUseCase)(nil)

// NewBillingUseCase wires billing. gateway may be nil, in which case payments
// are rejected.
func NewBillingUseCase(repo interfaces.IContractRepository, gateway interfaces.IPaymentGateway, log *logger.Logger) *BillingUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &BillingUseCase{
		repo:    repo,
		gateway: gateway,
		log:     log.With("usecase", "billing"),
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// CreateBillingEntry appends a manual entry to a submitted contract.
func (u *BillingUseCase) CreateBillingEntry(ctx context.Context, id string, in BillingEntryInput) (string, error) {
	if in.InvoiceAmount == nil {
		return "", ErrInvalidInvoiceAmount
	}
	if outOfRange(in.InvoiceAmount) {
		return "", ErrValueOutOfRange
	}
	status := in.InvoiceStatus
	if status == "" {
		status = entities.InvoiceStatusDraft
	}
	if !status.Valid() {
		return "", ErrInvalidInvoiceStatus
	}
	remarks := strings.TrimSpace(in.Remarks)
	if remarks == "" {
		remarks = manualInvoiceRemarks
	}

	c, err := loadContract(ctx, u.repo, id)
	if err != nil {
		return "", err
	}
	if !c.IsSubmitted() {
		return "", ErrContractNotSubmitted
	}
	if *in.InvoiceAmount > c.RemainingBalance() {
		return "", ErrInvoiceAmountExceedsRemaining
	}

	c.BillingSchedule = append(c.BillingSchedule, entities.BillingScheduleEntry{
		ID:            u.newID(),
		Idx:           c.NextBillingEntryIdx(),
		InvoiceDate:   in.InvoiceDate,
		InvoiceAmount: in.InvoiceAmount,
		InvoiceStatus: status,
		Remarks:       remarks,
	})
	totals.OnBillingEntryFieldChanged(&c)

	if _, err := saveContract(ctx, u.repo, c); err != nil {
		return "", err
	}
	u.log.Info("billing entry created", "contract_id", c.ID, "amount", *in.InvoiceAmount, "status", status)
	return billingEntryCreated, nil
}

// GenerateNextInvoice appends the next Pending installment. The date follows
// the latest scheduled invoice (today when no entry is dated) by one billing
// interval, or the contract start when the schedule is empty; the amount is one installment of the contract
// value, capped at the remaining balance.
func (u *BillingUseCase) GenerateNextInvoice(ctx context.Context, id string) (InvoiceResult, error) {
	c, err := loadContract(ctx, u.repo, id)
	if err != nil {
		return InvoiceResult{}, err
	}

	if !c.IsSubmitted() {
		return failed("Invoice can only be generated for submitted contracts."), nil
	}
	remaining := decimal.NewFromFloat(c.TotalContractValue).Sub(decimal.NewFromFloat(c.TotalInvoicedAmount))
	if !remaining.IsPositive() {
		return failed("No remaining balance to invoice. Contract billing is completed."), nil
	}
	if c.ContractType == "" {
		return failed("Contract Type is required to generate invoices."), nil
	}
	installments, ok := c.ContractType.InstallmentsPerYear()
	if !ok {
		return failed(fmt.Sprintf("Invalid contract type: %s", c.ContractType)), nil
	}

	var next time.Time
	if latest, found := c.LatestBillingEntry(); found {
		base := latest.InvoiceDate
		if base.IsZero() {
			base = today(u.now())
		}
		next, _ = c.ContractType.NextBillingDate(base)
	} else if !c.ContractStartDate.IsZero() {
		next = c.ContractStartDate
	} else {
		next = today(u.now())
	}

	amount := decimal.NewFromFloat(c.TotalContractValue).
		Div(decimal.NewFromInt(int64(installments))).
		Round(2)
	if amount.GreaterThan(remaining) {
		amount = remaining
	}
	value := amount.InexactFloat64()

	c.BillingSchedule = append(c.BillingSchedule, entities.BillingScheduleEntry{
		ID:            u.newID(),
		Idx:           c.NextBillingEntryIdx(),
		InvoiceDate:   next,
		InvoiceAmount: &value,
		InvoiceStatus: entities.InvoiceStatusPending,
		Remarks:       fmt.Sprintf("Auto-generated %s invoice", strings.ToLower(string(c.ContractType))),
	})
	totals.OnBillingEntryFieldChanged(&c)

	if _, err := saveContract(ctx, u.repo, c); err != nil {
		u.log.Error("next invoice generation failed", "contract_id", c.ID, "error", err)
		return failed(fmt.Sprintf("Error generating invoice: %s", err.Error())), nil
	}

	u.log.Info("next invoice generated", "contract_id", c.ID, "amount", amount.StringFixed(2), "invoice_date", next.Format(entities.DateLayout))
	return InvoiceResult{
		Success: true,
		Message: fmt.Sprintf("Next invoice generated successfully for %s due on %s", amount.StringFixed(2), next.Format(displayDateLayout)),
	}, nil
}

// PayBillingEntry charges one schedule entry through the payment gateway and,
// once approved, marks it Paid. The caller's payload is passed to the provider
// with the amount and reference set from the entry.
func (u *BillingUseCase) PayBillingEntry(ctx context.Context, id, rowID string, payload json.RawMessage) (PaymentResult, error) {
	if u.gateway == nil {
		return PaymentResult{}, ErrPaymentGatewayUnavailable
	}

	c, err := loadContract(ctx, u.repo, id)
	if err != nil {
		return PaymentResult{}, err
	}
	if !c.IsSubmitted() {
		return PaymentResult{}, ErrContractNotSubmitted
	}
	i := c.BillingEntryIndex(rowID)
	if i < 0 {
		return PaymentResult{}, ErrBillingEntryNotFound
	}
	entry := c.BillingSchedule[i]
	if entry.IsPaid() {
		return PaymentResult{}, ErrBillingEntryAlreadyPaid
	}
	if entry.Amount() <= 0 {
		return PaymentResult{}, ErrInvalidInvoiceAmount
	}

	request, err := buildPaymentRequest(payload, c, entry)
	if err != nil {
		return PaymentResult{}, err
	}

	paymentID, status, raw, err := u.gateway.CreatePayment(ctx, request)
	if err != nil {
		u.log.Error("payment create failed", "contract_id", c.ID, "entry_id", entry.ID, "error", err)
		return PaymentResult{}, err
	}

	res := PaymentResult{
		Contract:          c,
		EntryID:           entry.ID,
		ProviderPaymentID: paymentID,
		ProviderStatus:    status,
		ProviderResponse:  raw,
	}
	if !strings.EqualFold(status, providerStatusOK) {
		u.log.Warn("payment not approved", "contract_id", c.ID, "entry_id", entry.ID, "provider_status", status)
		return res, nil
	}

	paid, err := u.markPaid(ctx, c.ID, entry.ID, paymentID)
	if err != nil {
		u.log.Error("mark paid failed", "contract_id", c.ID, "entry_id", entry.ID, "provider_payment_id", paymentID, "error", err)
		return PaymentResult{}, err
	}
	res.Contract = paid
	res.Paid = true
	u.log.Info("billing entry paid", "contract_id", c.ID, "entry_id", entry.ID, "provider_payment_id", paymentID)
	return res, nil
}

// markPaid reloads the contract on every attempt so a concurrent edit does not
// lose the payment. An entry settled meanwhile by another payment is left
// untouched and the new provider payment is logged as unlinked.
func (u *BillingUseCase) markPaid(ctx context.Context, id, rowID, paymentID string) (entities.Contract, error) {
	var lastErr error
	for attempt := 0; attempt < markPaidAttempts; attempt++ {
		c, err := loadContract(ctx, u.repo, id)
		if err != nil {
			return entities.Contract{}, err
		}
		if !c.IsSubmitted() {
			u.log.Error("payment approved for a contract no longer submitted", "contract_id", id, "entry_id", rowID, "provider_payment_id", paymentID, "docstatus", c.DocStatus)
			return entities.Contract{}, ErrContractNotSubmitted
		}
		i := c.BillingEntryIndex(rowID)
		if i < 0 {
			u.log.Error("payment approved for a removed billing entry", "contract_id", id, "entry_id", rowID, "provider_payment_id", paymentID)
			return entities.Contract{}, ErrBillingEntryNotFound
		}
		entry := &c.BillingSchedule[i]
		if entry.IsPaid() && entry.PaymentReference != paymentID {
			u.log.Error("billing entry already paid, provider payment left unlinked", "contract_id", id, "entry_id", rowID,
				"provider_payment_id", paymentID, "payment_reference", entry.PaymentReference)
			return entities.Contract{}, ErrBillingEntryAlreadyPaid
		}

		paidOn := u.now().UTC()
		entry.InvoiceStatus = entities.InvoiceStatusPaid
		entry.PaymentReference = paymentID
		entry.PaidOn = &paidOn
		totals.OnBillingEntryFieldChanged(&c)

		saved, err := saveContract(ctx, u.repo, c)
		if errors.Is(err, ErrContractConflict) {
			lastErr = err
			continue
		}
		return saved, err
	}
	return entities.Contract{}, lastErr
}

func buildPaymentRequest(payload json.RawMessage, c entities.Contract, entry entities.BillingScheduleEntry) (json.RawMessage, error) {
	body := map[string]any{}
	if len(payload) > 0 && string(payload) != "null" {
		if err := json.Unmarshal(payload, &body); err != nil {
			return nil, ErrInvalidPaymentPayload
		}
	}

	body["transaction_amount"] = decimal.NewFromFloat(entry.Amount()).Round(2).InexactFloat64()
	body["external_reference"] = c.ID + ":" + entry.ID
	if _, ok := body["description"]; !ok {
		body["description"] = fmt.Sprintf("%s - invoice %d", c.ContractTitle, entry.Idx)
	}
	return json.Marshal(body)
}

func failed(msg string) InvoiceResult {
	return InvoiceResult{Success: false, Message: msg}
}
