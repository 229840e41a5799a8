package repository

import (
	"context"

	"maintenance_contracts/internal/domain/entities"
	"maintenance_contracts/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type catalogItem struct {
	ItemCode    string `dynamodbav:"item_code"`
	ItemName    string `dynamodbav:"item_name"`
	Description string `dynamodbav:"description"`
	StockUOM    string `dynamodbav:"stock_uom"`
	IsStockItem bool   `dynamodbav:"is_stock_item"`
	Disabled    bool   `dynamodbav:"disabled"`
	HasVariants bool   `dynamodbav:"has_variants"`
}

// ItemDynamoRepository persists the item catalog.
//
// Table requirements:
//   - PK: item_code (string)
type ItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IItemRepository = (*ItemDynamoRepository)(nil)

func NewItemDynamoRepository(ddb *dynamodb.Client, tableName string) *ItemDynamoRepository {
	return &ItemDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ItemDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Item, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"item_code": &types.AttributeValueMemberS{Value: code},
		},
	})
	if err != nil {
		return entities.Item{}, err
	}
	if len(out.Item) == 0 {
		return entities.Item{}, nil
	}

	var it catalogItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Item{}, err
	}
	return entities.Item(it), nil
}

func (r *ItemDynamoRepository) Put(ctx context.Context, item entities.Item) (entities.Item, error) {
	av, err := attributevalue.MarshalMap(catalogItem(item))
	if err != nil {
		return entities.Item{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Item{}, err
	}
	return item, nil
}

// ListServiceItems returns the items a service item row may reference:
// not stocked, enabled, and not a variant template.
func (r *ItemDynamoRepository) ListServiceItems(ctx context.Context) ([]entities.Item, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#is_stock_item = :false AND #disabled = :false AND #has_variants = :false"),
		ExpressionAttributeNames: map[string]string{
			"#is_stock_item": "is_stock_item",
			"#disabled":      "disabled",
			"#has_variants":  "has_variants",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":false": &types.AttributeValueMemberBOOL{Value: false},
		},
	}

	var out []entities.Item
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []catalogItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, entities.Item(it))
		}
	}
	return out, nil
}
