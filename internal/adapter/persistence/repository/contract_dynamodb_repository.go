package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"maintenance_contracts/internal/domain/entities"
	"maintenance_contracts/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type serviceItemRow struct {
	ID             string   `dynamodbav:"id"`
	Idx            int      `dynamodbav:"idx"`
	ServiceItem    string   `dynamodbav:"service_item"`
	Description    string   `dynamodbav:"description"`
	UOM            string   `dynamodbav:"uom"`
	EstimatedHours *float64 `dynamodbav:"estimated_hours,omitempty"`
	RatePerHour    *float64 `dynamodbav:"rate_per_hour,omitempty"`
	TotalCost      float64  `dynamodbav:"total_cost"`
}

type billingRow struct {
	ID               string   `dynamodbav:"id"`
	Idx              int      `dynamodbav:"idx"`
	InvoiceDate      string   `dynamodbav:"invoice_date"`
	InvoiceAmount    *float64 `dynamodbav:"invoice_amount,omitempty"`
	InvoiceStatus    string   `dynamodbav:"invoice_status"`
	Remarks          string   `dynamodbav:"remarks"`
	PaymentReference string   `dynamodbav:"payment_reference,omitempty"`
	PaidOn           string   `dynamodbav:"paid_on,omitempty"`
}

type contractItem struct {
	ID                    string `dynamodbav:"id"`
	ContractTitle         string `dynamodbav:"contract_title"`
	CustomerName          string `dynamodbav:"customer_name"`
	CustomerEmail         string `dynamodbav:"customer_email"`
	CustomerContactNumber string `dynamodbav:"customer_contact_number"`
	ContractType          string `dynamodbav:"contract_type"`
	Supervisor            string `dynamodbav:"supervisor"`
	ContractStartDate     string `dynamodbav:"contract_start_date"`
	ContractEndDate       string `dynamodbav:"contract_end_date"`
	DurationInDays        int    `dynamodbav:"duration_in_days"`
	Status                string `dynamodbav:"status"`
	DocStatus             int    `dynamodbav:"docstatus"`

	ServiceItems    []serviceItemRow `dynamodbav:"service_items"`
	BillingSchedule []billingRow     `dynamodbav:"billing_schedule"`

	TotalEstimatedHours float64 `dynamodbav:"total_estimated_hours"`
	TotalContractValue  float64 `dynamodbav:"total_contract_value"`
	TotalInvoicedAmount float64 `dynamodbav:"total_invoiced_amount"`
	PendingBalance      float64 `dynamodbav:"pending_balance"`

	CreatedBy string `dynamodbav:"created_by"`
	CreatedOn string `dynamodbav:"created_on"`
	Version   int64  `dynamodbav:"version"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ContractDynamoRepository persists contracts in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Service items and billing schedule rows are stored as lists on the contract
// item, so every write replaces the whole aggregate. Writes are guarded by the
// version attribute.
type ContractDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	now       func() time.Time
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb *dynamodb.Client, tableName string) *ContractDynamoRepository {
	return &ContractDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *ContractDynamoRepository) Create(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	c.Version = 1
	av, err := attributevalue.MarshalMap(toContractItem(c))
	if err != nil {
		return entities.Contract{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *ContractDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Contract{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contract{}, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

func (r *ContractDynamoRepository) Save(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	expected := c.Version
	c.Version = expected + 1
	c.UpdatedAt = r.now().UTC()

	av, err := attributevalue.MarshalMap(toContractItem(c))
	if err != nil {
		return entities.Contract{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Contract{}, interfaces.ErrVersionConflict
		}
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *ContractDynamoRepository) List(ctx context.Context, filter entities.ContractReportFilter) ([]entities.Contract, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if expr, names, values := buildReportFilter(filter); expr != "" {
		input.FilterExpression = aws.String(expr)
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	var out []entities.Contract
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []contractItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromContractItem(it))
		}
	}
	return out, nil
}

// buildReportFilter translates the report filter into a scan filter
// expression. Dates are stored as YYYY-MM-DD strings, so string comparison
// orders them correctly.
func buildReportFilter(f entities.ContractReportFilter) (string, map[string]string, map[string]types.AttributeValue) {
	var conds []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}

	if f.ContractType != "" {
		conds = append(conds, "#contract_type = :contract_type")
		names["#contract_type"] = "contract_type"
		values[":contract_type"] = &types.AttributeValueMemberS{Value: string(f.ContractType)}
	}
	if f.StartDate != nil {
		conds = append(conds, "#contract_start_date >= :start_date")
		names["#contract_start_date"] = "contract_start_date"
		values[":start_date"] = &types.AttributeValueMemberS{Value: f.StartDate.Format(entities.DateLayout)}
	}
	if f.EndDate != nil {
		conds = append(conds, "#contract_start_date <= :end_date")
		names["#contract_start_date"] = "contract_start_date"
		values[":end_date"] = &types.AttributeValueMemberS{Value: f.EndDate.Format(entities.DateLayout)}
	}
	if len(f.Statuses) > 0 {
		placeholders := make([]string, 0, len(f.Statuses))
		for i, s := range f.Statuses {
			key := fmt.Sprintf(":status%d", i)
			placeholders = append(placeholders, key)
			values[key] = &types.AttributeValueMemberS{Value: string(s)}
		}
		conds = append(conds, "#status IN ("+strings.Join(placeholders, ", ")+")")
		names["#status"] = "status"
	}

	if len(conds) == 0 {
		return "", nil, nil
	}
	return strings.Join(conds, " AND "), names, values
}

func toContractItem(c entities.Contract) contractItem {
	it := contractItem{
		ID:                    c.ID,
		ContractTitle:         c.ContractTitle,
		CustomerName:          c.CustomerName,
		CustomerEmail:         c.CustomerEmail,
		CustomerContactNumber: c.CustomerContactNumber,
		ContractType:          string(c.ContractType),
		Supervisor:            c.Supervisor,
		ContractStartDate:     formatDate(c.ContractStartDate),
		ContractEndDate:       formatDate(c.ContractEndDate),
		DurationInDays:        c.DurationInDays,
		Status:                string(c.Status),
		DocStatus:             int(c.DocStatus),
		TotalEstimatedHours:   c.TotalEstimatedHours,
		TotalContractValue:    c.TotalContractValue,
		TotalInvoicedAmount:   c.TotalInvoicedAmount,
		PendingBalance:        c.PendingBalance,
		CreatedBy:             c.CreatedBy,
		CreatedOn:             formatDate(c.CreatedOn),
		Version:               c.Version,
		CreatedAt:             formatTimestamp(c.CreatedAt),
		UpdatedAt:             formatTimestamp(c.UpdatedAt),
	}
	for _, row := range c.ServiceItems {
		it.ServiceItems = append(it.ServiceItems, serviceItemRow{
			ID:             row.ID,
			Idx:            row.Idx,
			ServiceItem:    row.ServiceItem,
			Description:    row.Description,
			UOM:            row.UOM,
			EstimatedHours: row.EstimatedHours,
			RatePerHour:    row.RatePerHour,
			TotalCost:      row.TotalCost,
		})
	}
	for _, row := range c.BillingSchedule {
		br := billingRow{
			ID:               row.ID,
			Idx:              row.Idx,
			InvoiceDate:      formatDate(row.InvoiceDate),
			InvoiceAmount:    row.InvoiceAmount,
			InvoiceStatus:    string(row.InvoiceStatus),
			Remarks:          row.Remarks,
			PaymentReference: row.PaymentReference,
		}
		if row.PaidOn != nil {
			br.PaidOn = formatTimestamp(*row.PaidOn)
		}
		it.BillingSchedule = append(it.BillingSchedule, br)
	}
	return it
}

func fromContractItem(it contractItem) entities.Contract {
	c := entities.Contract{
		ID:                    it.ID,
		ContractTitle:         it.ContractTitle,
		CustomerName:          it.CustomerName,
		CustomerEmail:         it.CustomerEmail,
		CustomerContactNumber: it.CustomerContactNumber,
		ContractType:          entities.ContractType(it.ContractType),
		Supervisor:            it.Supervisor,
		ContractStartDate:     parseDate(it.ContractStartDate),
		ContractEndDate:       parseDate(it.ContractEndDate),
		DurationInDays:        it.DurationInDays,
		Status:                entities.ContractStatus(it.Status),
		DocStatus:             entities.DocStatus(it.DocStatus),
		TotalEstimatedHours:   it.TotalEstimatedHours,
		TotalContractValue:    it.TotalContractValue,
		TotalInvoicedAmount:   it.TotalInvoicedAmount,
		PendingBalance:        it.PendingBalance,
		CreatedBy:             it.CreatedBy,
		CreatedOn:             parseDate(it.CreatedOn),
		Version:               it.Version,
		CreatedAt:             parseTimestamp(it.CreatedAt),
		UpdatedAt:             parseTimestamp(it.UpdatedAt),
	}
	for _, row := range it.ServiceItems {
		c.ServiceItems = append(c.ServiceItems, entities.ServiceItem{
			ID:             row.ID,
			Idx:            row.Idx,
			ServiceItem:    row.ServiceItem,
			Description:    row.Description,
			UOM:            row.UOM,
			EstimatedHours: row.EstimatedHours,
			RatePerHour:    row.RatePerHour,
			TotalCost:      row.TotalCost,
		})
	}
	for _, row := range it.BillingSchedule {
		entry := entities.BillingScheduleEntry{
			ID:               row.ID,
			Idx:              row.Idx,
			InvoiceDate:      parseDate(row.InvoiceDate),
			InvoiceAmount:    row.InvoiceAmount,
			InvoiceStatus:    entities.InvoiceStatus(row.InvoiceStatus),
			Remarks:          row.Remarks,
			PaymentReference: row.PaymentReference,
		}
		if row.PaidOn != "" {
			paidOn := parseTimestamp(row.PaidOn)
			entry.PaidOn = &paidOn
		}
		c.BillingSchedule = append(c.BillingSchedule, entry)
	}
	return c
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(entities.DateLayout)
}

func parseDate(s string) time.Time {
	t, _ := time.Parse(entities.DateLayout, s)
	return t
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTimestamp(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
