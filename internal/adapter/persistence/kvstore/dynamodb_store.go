package kvstore

import (
	"context"
	"time"

	"joinerypro/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultKVTableName = "joinerypro_kv"

type kvItem struct {
	Key       string `dynamodbav:"key"`
	Value     string `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DynamoDBAPI is the subset of *dynamodb.Client used by DynamoStore.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// DynamoStore persists each collection as one DynamoDB item.
//
// Table requirements:
//   - PK: key (string)
//
// Items are capped at 400KB by DynamoDB, which bounds the size of a single
// collection on this backend.
type DynamoStore struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IKeyValueStore = (*DynamoStore)(nil)

// NewDynamoStore targets table, or joinerypro_kv when table is empty.
func NewDynamoStore(ddb DynamoDBAPI, table string) *DynamoStore {
	if table == "" {
		table = defaultKVTableName
	}
	return &DynamoStore{ddb: ddb, tableName: table}
}

func (s *DynamoStore) Load(ctx context.Context, key string) ([]byte, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it kvItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return []byte(it.Value), nil
}

func (s *DynamoStore) Save(ctx context.Context, key string, value []byte) error {
	av, err := attributevalue.MarshalMap(kvItem{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}
