package repository

import (
	"context"
	"errors"
	"time"

	"cartas_marketplace/internal/domain/entities"
	"cartas_marketplace/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultWebhookEventsTableName = "escrow_webhook_events"
	defaultWebhookEventRetention  = 90 * 24 * time.Hour
)

// DynamoAPI is the part of *dynamodb.Client the journal uses.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

type webhookEventItem struct {
	ID               string `dynamodbav:"id"`
	Provider         string `dynamodbav:"provider"`
	ProviderEventID  string `dynamodbav:"provider_event_id"`
	ProviderIntentID string `dynamodbav:"provider_intent_id,omitempty"`
	ProviderStatus   string `dynamodbav:"provider_status,omitempty"`
	Payload          string `dynamodbav:"payload,omitempty"`
	Outcome          string `dynamodbav:"outcome"`
	Detail           string `dynamodbav:"detail,omitempty"`
	ReceivedAt       string `dynamodbav:"received_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
	ExpiresAt        int64  `dynamodbav:"expires_at"`
}

// WebhookEventDynamoRepository journals escrow provider deliveries in DynamoDB.
//
// Table requirements:
//   - PK: id (string), "<provider>:<event id>"
//   - TTL attribute: expires_at (epoch seconds)
type WebhookEventDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	retention time.Duration
}

var _ interfaces.IWebhookEventRepository = (*WebhookEventDynamoRepository)(nil)

func NewWebhookEventDynamoRepository(ddb DynamoAPI, tableName string) *WebhookEventDynamoRepository {
	if tableName == "" {
		tableName = DefaultWebhookEventsTableName
	}
	return &WebhookEventDynamoRepository{ddb: ddb, tableName: tableName, retention: defaultWebhookEventRetention}
}

// Append stores e unless an event with the same id exists. It reports whether
// this was the first delivery.
func (r *WebhookEventDynamoRepository) Append(ctx context.Context, e entities.WebhookEvent) (bool, error) {
	av, err := attributevalue.MarshalMap(toWebhookEventItem(e, r.retention))
	if err != nil {
		return false, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *WebhookEventDynamoRepository) UpdateOutcome(ctx context.Context, id string, outcome entities.WebhookOutcome, detail string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #outcome = :outcome, #detail = :detail, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#outcome":    "outcome",
			"#detail":     "detail",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":outcome":    &types.AttributeValueMemberS{Value: string(outcome)},
			":detail":     &types.AttributeValueMemberS{Value: detail},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

func (r *WebhookEventDynamoRepository) GetByID(ctx context.Context, id string) (entities.WebhookEvent, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WebhookEvent{}, err
	}
	if len(out.Item) == 0 {
		return entities.WebhookEvent{}, nil
	}

	var it webhookEventItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WebhookEvent{}, err
	}
	return fromWebhookEventItem(it), nil
}

func toWebhookEventItem(e entities.WebhookEvent, retention time.Duration) webhookEventItem {
	return webhookEventItem{
		ID:               e.ID,
		Provider:         e.Provider,
		ProviderEventID:  e.ProviderEventID,
		ProviderIntentID: e.ProviderIntentID,
		ProviderStatus:   e.ProviderStatus,
		Payload:          string(e.Payload),
		Outcome:          string(e.Outcome),
		Detail:           e.Detail,
		ReceivedAt:       e.ReceivedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        e.UpdatedAt.UTC().Format(time.RFC3339Nano),
		ExpiresAt:        e.ReceivedAt.Add(retention).Unix(),
	}
}

func fromWebhookEventItem(it webhookEventItem) entities.WebhookEvent {
	received, _ := time.Parse(time.RFC3339Nano, it.ReceivedAt)
	updated, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.WebhookEvent{
		ID:               it.ID,
		Provider:         it.Provider,
		ProviderEventID:  it.ProviderEventID,
		ProviderIntentID: it.ProviderIntentID,
		ProviderStatus:   it.ProviderStatus,
		Payload:          []byte(it.Payload),
		Outcome:          entities.WebhookOutcome(it.Outcome),
		Detail:           it.Detail,
		ReceivedAt:       received,
		UpdatedAt:        updated,
	}
}
