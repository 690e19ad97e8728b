package repository

import (
	"context"
	"time"

	"gestao_reparos/internal/domain/entities"
	"gestao_reparos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type quoteItem struct {
	ID          string `dynamodbav:"id"`
	ClientName  string `dynamodbav:"client_name"`
	Address     string `dynamodbav:"address"`
	ServiceType string `dynamodbav:"service_type"`
	Value       string `dynamodbav:"value"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Status transitions use a conditional UpdateItem on the current status, so
// two concurrent decisions on the same quote cannot both succeed.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client, tableName string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toQuoteItem(q)); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	var it quoteItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

// List scans the whole table. Newest-first ordering is applied in memory
// since a scan has no order.
func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	var items []quoteItem
	if err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)}, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Quote, 0, len(items))
	for _, it := range items {
		out = append(out, fromQuoteItem(it))
	}
	sortNewestFirst(out, func(q entities.Quote) time.Time { return q.CreatedAt })
	return out, nil
}

func (r *QuoteDynamoRepository) TransitionStatus(ctx context.Context, id string, from, to entities.QuoteStatus, at time.Time) (entities.Quote, bool, error) {
	attrs, ok, err := transitionStatus(ctx, r.ddb, r.tableName, id, string(from), string(to), &setClause{
		expr: "#updated_at = :updated_at",
		values: map[string]types.AttributeValue{
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(at)},
		},
		names: map[string]string{"#updated_at": "updated_at"},
	})
	if err != nil || len(attrs) == 0 {
		return entities.Quote{}, false, err
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.Quote{}, false, err
	}
	return fromQuoteItem(it), ok, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:          q.ID,
		ClientName:  q.ClientName,
		Address:     q.Address,
		ServiceType: string(q.ServiceType),
		Value:       floatToString(q.Value),
		Status:      string(q.Status),
		CreatedAt:   formatTime(q.CreatedAt),
		UpdatedAt:   formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	return entities.Quote{
		ID:          it.ID,
		ClientName:  it.ClientName,
		Address:     it.Address,
		ServiceType: entities.ServiceType(it.ServiceType),
		Value:       parseFloat(it.Value),
		Status:      entities.QuoteStatus(it.Status),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
