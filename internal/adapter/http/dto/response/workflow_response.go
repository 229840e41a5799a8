package response

import (
	"encoding/json"

	"maintenance_contracts/internal/usecase"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type InvoiceResultResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ActionsResponse struct {
	UpdateStatus        bool `json:"update_status"`
	GenerateNextInvoice bool `json:"generate_next_invoice"`
}

type SubmissionPreviewResponse struct {
	Title                string  `json:"title"`
	Action               string  `json:"action"`
	Question             string  `json:"question"`
	ContractTitle        string  `json:"contract_title"`
	ContractType         string  `json:"contract_type"`
	TotalEstimatedHours  float64 `json:"total_estimated_hours"`
	TotalContractValue   float64 `json:"total_contract_value"`
	PrimaryActionLabel   string  `json:"primary_action_label"`
	SecondaryActionLabel string  `json:"secondary_action_label"`
}

type SelectServiceItemResponse struct {
	Valid    bool             `json:"valid"`
	Message  string           `json:"message,omitempty"`
	Contract ContractResponse `json:"contract"`
}

type PaymentResponse struct {
	EntryID           string           `json:"entry_id"`
	Paid              bool             `json:"paid"`
	ProviderPaymentID string           `json:"provider_payment_id"`
	ProviderStatus    string           `json:"provider_status"`
	ProviderResponse  json.RawMessage  `json:"provider_response,omitempty"`
	Contract          ContractResponse `json:"contract"`
}

func FromInvoiceResult(r usecase.InvoiceResult) InvoiceResultResponse {
	return InvoiceResultResponse{Success: r.Success, Message: r.Message}
}

func FromActions(a usecase.ContractActions) ActionsResponse {
	return ActionsResponse{UpdateStatus: a.UpdateStatus, GenerateNextInvoice: a.GenerateNextInvoice}
}

func FromSubmissionPreview(p usecase.SubmissionPreview) SubmissionPreviewResponse {
	return SubmissionPreviewResponse{
		Title:                p.Title,
		Action:               p.Action,
		Question:             p.Question,
		ContractTitle:        p.ContractTitle,
		ContractType:         string(p.ContractType),
		TotalEstimatedHours:  p.TotalEstimatedHours,
		TotalContractValue:   p.TotalContractValue,
		PrimaryActionLabel:   p.PrimaryActionLabel,
		SecondaryActionLabel: p.SecondaryActionLabel,
	}
}

func FromSelectServiceItem(r usecase.SelectServiceItemResult) SelectServiceItemResponse {
	return SelectServiceItemResponse{Valid: r.Valid, Message: r.Message, Contract: FromContract(r.Contract)}
}

func FromPayment(r usecase.PaymentResult) PaymentResponse {
	res := PaymentResponse{
		EntryID:           r.EntryID,
		Paid:              r.Paid,
		ProviderPaymentID: r.ProviderPaymentID,
		ProviderStatus:    r.ProviderStatus,
		Contract:          FromContract(r.Contract),
	}
	if len(r.ProviderResponse) > 0 && json.Valid(r.ProviderResponse) {
		res.ProviderResponse = r.ProviderResponse
	}
	return res
}
