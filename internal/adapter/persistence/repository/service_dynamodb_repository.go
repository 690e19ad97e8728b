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

const defaultServicesTableName = "services"

type serviceItem struct {
	ID          string `dynamodbav:"id"`
	QuoteID     string `dynamodbav:"quote_id"`
	ClientName  string `dynamodbav:"client_name"`
	Address     string `dynamodbav:"address"`
	ServiceType string `dynamodbav:"service_type"`
	Value       string `dynamodbav:"value"`
	Status      string `dynamodbav:"status"`
	StartedAt   string `dynamodbav:"started_at"`
	Deadline    string `dynamodbav:"deadline"`
}

// ServiceDynamoRepository persists in-progress services in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb *dynamodb.Client, tableName string) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultServicesTableName),
	}
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toServiceItem(s)); err != nil {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	var it serviceItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func (r *ServiceDynamoRepository) ListByStatus(ctx context.Context, status entities.ServiceStatus) ([]entities.Service, error) {
	var items []serviceItem
	err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	}, &items)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Service, 0, len(items))
	for _, it := range items {
		out = append(out, fromServiceItem(it))
	}
	sortNewestFirst(out, func(s entities.Service) time.Time { return s.StartedAt })
	return out, nil
}

func (r *ServiceDynamoRepository) TransitionStatus(ctx context.Context, id string, from, to entities.ServiceStatus) (entities.Service, bool, error) {
	attrs, ok, err := transitionStatus(ctx, r.ddb, r.tableName, id, string(from), string(to), nil)
	if err != nil || len(attrs) == 0 {
		return entities.Service{}, false, err
	}
	var it serviceItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.Service{}, false, err
	}
	return fromServiceItem(it), ok, nil
}

func toServiceItem(s entities.Service) serviceItem {
	return serviceItem{
		ID:          s.ID,
		QuoteID:     s.QuoteID,
		ClientName:  s.ClientName,
		Address:     s.Address,
		ServiceType: string(s.ServiceType),
		Value:       floatToString(s.Value),
		Status:      string(s.Status),
		StartedAt:   formatTime(s.StartedAt),
		Deadline:    formatTime(s.Deadline),
	}
}

func fromServiceItem(it serviceItem) entities.Service {
	return entities.Service{
		ID:          it.ID,
		QuoteID:     it.QuoteID,
		ClientName:  it.ClientName,
		Address:     it.Address,
		ServiceType: entities.ServiceType(it.ServiceType),
		Value:       parseFloat(it.Value),
		Status:      entities.ServiceStatus(it.Status),
		StartedAt:   parseTime(it.StartedAt),
		Deadline:    parseTime(it.Deadline),
	}
}
