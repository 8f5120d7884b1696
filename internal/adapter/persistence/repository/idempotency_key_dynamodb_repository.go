package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultIdempotencyTableName = "payment_idempotency_keys"

type idempotencyKeyItem struct {
	OrderID        string `dynamodbav:"order_id"`
	IdempotenceKey string `dynamodbav:"idempotence_key"`
	CreatedAt      string `dynamodbav:"created_at"`
	ExpiresAt      int64  `dynamodbav:"expires_at"`
}

// dynamoKV is the subset of *dynamodb.Client the repository needs.
type dynamoKV interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// IdempotencyKeyDynamoRepository keeps one idempotence key per order in DynamoDB.
//
// Table requirements:
//   - PK: order_id (string)
//   - TTL attribute: expires_at (epoch seconds)
//
// DynamoDB deletes expired items lazily, so the condition also treats an item whose
// expires_at has passed as absent.
type IdempotencyKeyDynamoRepository struct {
	ddb       dynamoKV
	tableName string
	now       func() time.Time
}

var _ interfaces.IIdempotencyKeyRepository = (*IdempotencyKeyDynamoRepository)(nil)

func NewIdempotencyKeyDynamoRepository(ddb dynamoKV, tableName string) *IdempotencyKeyDynamoRepository {
	if tableName == "" {
		tableName = defaultIdempotencyTableName
	}
	return &IdempotencyKeyDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *IdempotencyKeyDynamoRepository) GetOrCreate(ctx context.Context, orderID, candidate string, ttl time.Duration) (string, error) {
	now := r.now().UTC()
	it := idempotencyKeyItem{
		OrderID:        orderID,
		IdempotenceKey: candidate,
		CreatedAt:      now.Format(time.RFC3339Nano),
		ExpiresAt:      now.Add(ttlOrDefault(ttl)).Unix(),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return "", err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id) OR #expires_at < :now"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "order_id",
			"#expires_at": "expires_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":now": &types.AttributeValueMemberN{Value: unixString(now)},
		},
	})
	if err == nil {
		return candidate, nil
	}
	var cfe *types.ConditionalCheckFailedException
	if !errors.As(err, &cfe) {
		return "", fmt.Errorf("failed to store idempotence key: %w", err)
	}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("failed to read idempotence key: %w", err)
	}
	if len(out.Item) == 0 {
		return candidate, nil
	}

	var stored idempotencyKeyItem
	if err := attributevalue.UnmarshalMap(out.Item, &stored); err != nil {
		return "", err
	}
	return stored.IdempotenceKey, nil
}
