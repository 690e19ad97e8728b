package repository

import (
	"context"
	"time"

	"gestao_reparos/internal/domain/entities"
	"gestao_reparos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	defaultFinishedServicesTableName = "finished_services"
	defaultExpensesTableName         = "expenses"
)

type finishedServiceItem struct {
	ID          string `dynamodbav:"id"`
	ServiceID   string `dynamodbav:"service_id,omitempty"`
	ClientName  string `dynamodbav:"client_name"`
	ServiceType string `dynamodbav:"service_type"`
	Value       string `dynamodbav:"value"`
	FinishedAt  string `dynamodbav:"finished_at"`
}

type expenseItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	Value       string `dynamodbav:"value"`
	RecordedAt  string `dynamodbav:"recorded_at"`
}

// FinishedServiceDynamoRepository persists revenue facts. Rows are
// write-once: there is no update path.
type FinishedServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFinishedServiceRepository = (*FinishedServiceDynamoRepository)(nil)

func NewFinishedServiceDynamoRepository(ddb *dynamodb.Client, tableName string) *FinishedServiceDynamoRepository {
	return &FinishedServiceDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultFinishedServicesTableName),
	}
}

func (r *FinishedServiceDynamoRepository) Create(ctx context.Context, f entities.FinishedService) (entities.FinishedService, error) {
	it := finishedServiceItem{
		ID:          f.ID,
		ServiceID:   f.ServiceID,
		ClientName:  f.ClientName,
		ServiceType: string(f.ServiceType),
		Value:       floatToString(f.Value),
		FinishedAt:  formatTime(f.FinishedAt),
	}
	if err := putNew(ctx, r.ddb, r.tableName, it); err != nil {
		return entities.FinishedService{}, err
	}
	return f, nil
}

func (r *FinishedServiceDynamoRepository) List(ctx context.Context) ([]entities.FinishedService, error) {
	var items []finishedServiceItem
	if err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)}, &items); err != nil {
		return nil, err
	}
	out := make([]entities.FinishedService, 0, len(items))
	for _, it := range items {
		out = append(out, entities.FinishedService{
			ID:          it.ID,
			ServiceID:   it.ServiceID,
			ClientName:  it.ClientName,
			ServiceType: entities.ServiceType(it.ServiceType),
			Value:       parseFloat(it.Value),
			FinishedAt:  parseTime(it.FinishedAt),
		})
	}
	sortNewestFirst(out, func(f entities.FinishedService) time.Time { return f.FinishedAt })
	return out, nil
}

// ExpenseDynamoRepository persists expenses. Rows are write-once.
type ExpenseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IExpenseRepository = (*ExpenseDynamoRepository)(nil)

func NewExpenseDynamoRepository(ddb *dynamodb.Client, tableName string) *ExpenseDynamoRepository {
	return &ExpenseDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultExpensesTableName),
	}
}

func (r *ExpenseDynamoRepository) Create(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	it := expenseItem{
		ID:          e.ID,
		Description: e.Description,
		Value:       floatToString(e.Value),
		RecordedAt:  formatTime(e.RecordedAt),
	}
	if err := putNew(ctx, r.ddb, r.tableName, it); err != nil {
		return entities.Expense{}, err
	}
	return e, nil
}

func (r *ExpenseDynamoRepository) List(ctx context.Context) ([]entities.Expense, error) {
	var items []expenseItem
	if err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)}, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Expense, 0, len(items))
	for _, it := range items {
		out = append(out, entities.Expense{
			ID:          it.ID,
			Description: it.Description,
			Value:       parseFloat(it.Value),
			RecordedAt:  parseTime(it.RecordedAt),
		})
	}
	sortNewestFirst(out, func(e entities.Expense) time.Time { return e.RecordedAt })
	return out, nil
}
