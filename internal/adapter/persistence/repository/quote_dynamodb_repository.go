package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gerador_orcamentos/internal/domain/entities"
	"gerador_orcamentos/internal/infrastructure/database"
	"gerador_orcamentos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type quoteItem struct {
	ID       string `dynamodbav:"id"`
	OwnerID  string `dynamodbav:"owner_id"`
	Document string `dynamodbav:"document"`
	Subtotal string `dynamodbav:"subtotal"`
	Discount string `dynamodbav:"discount"`
	Total    string `dynamodbav:"total"`
	Status   string `dynamodbav:"status"`
	// ClientName is denormalized for listings and console queries.
	ClientName string `dynamodbav:"client_name"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists QuoteRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_id-index (PK: owner_id)
//
// The document is stored as its JSON encoding so decimal values keep their exact
// representation.
type QuoteDynamoRepository struct {
	ddb       database.API
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb database.API, tableName string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.QuoteRecord) (entities.QuoteRecord, error) {
	it, err := toQuoteItem(q)
	if err != nil {
		return entities.QuoteRecord{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.QuoteRecord{}, err
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
		return entities.QuoteRecord{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.QuoteRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuoteRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuoteRecord{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuoteRecord{}, err
	}
	return fromQuoteItem(it)
}

func (r *QuoteDynamoRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]entities.QuoteRecord, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ownerIDIndex),
		KeyConditionExpression: aws.String("owner_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: ownerID},
		},
	}

	quotes := make([]entities.QuoteRecord, 0)
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it quoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			q, err := fromQuoteItem(it)
			if err != nil {
				return nil, err
			}
			quotes = append(quotes, q)
		}
		if len(out.LastEvaluatedKey) == 0 {
			return quotes, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.QuoteStatus) (entities.QuoteRecord, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#status": "status", "#updated_at": "updated_at"},
			map[string]string{"#id": "id"},
		),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.QuoteRecord{}, nil
		}
		return entities.QuoteRecord{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.QuoteRecord{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.QuoteRecord{}, err
	}
	return fromQuoteItem(it)
}

func toQuoteItem(q entities.QuoteRecord) (quoteItem, error) {
	doc, err := json.Marshal(q.Document)
	if err != nil {
		return quoteItem{}, err
	}
	return quoteItem{
		ID:         q.ID,
		OwnerID:    q.OwnerID,
		Document:   string(doc),
		Subtotal:   q.Subtotal.String(),
		Discount:   q.Discount.String(),
		Total:      q.Total.String(),
		Status:     string(q.Status),
		ClientName: q.Document.Client.Name,
		CreatedAt:  formatTime(q.CreatedAt),
		UpdatedAt:  formatTime(q.UpdatedAt),
	}, nil
}

func fromQuoteItem(it quoteItem) (entities.QuoteRecord, error) {
	var doc entities.QuoteDocument
	if it.Document != "" {
		if err := json.Unmarshal([]byte(it.Document), &doc); err != nil {
			return entities.QuoteRecord{}, err
		}
	}
	return entities.QuoteRecord{
		ID:        it.ID,
		OwnerID:   it.OwnerID,
		Document:  doc,
		Subtotal:  parseDecimal(it.Subtotal),
		Discount:  parseDecimal(it.Discount),
		Total:     parseDecimal(it.Total),
		Status:    entities.QuoteStatus(it.Status),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}, nil
}
