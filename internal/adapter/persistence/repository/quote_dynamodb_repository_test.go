package repository

import (
	"context"
	"testing"
	"time"

	"gerador_orcamentos/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func sampleRecord() entities.QuoteRecord {
	doc := entities.QuoteDocument{
		Company: entities.Company{Name: "Acme Ltda"},
		Client:  entities.Client{Name: "João Silva"},
		LineItems: []entities.LineItem{
			{ID: "1", Description: "Pintura", Quantity: 2, UnitPrice: decimal.RequireFromString("150.00")},
		},
		DiscountPercent: decimal.NewFromInt(10),
	}
	doc.Normalize(30)
	return entities.QuoteRecord{
		ID:        "q-1",
		OwnerID:   "user-1",
		Document:  doc,
		Subtotal:  doc.Subtotal(),
		Discount:  doc.DiscountAmount(),
		Total:     doc.FinalTotal(),
		Status:    entities.QuoteStatusPendente,
		CreatedAt: time.Date(2026, 1, 15, 18, 30, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 1, 15, 18, 30, 0, 0, time.UTC),
	}
}

func TestQuoteDynamoRepository_CreateAndGet(t *testing.T) {
	var stored map[string]types.AttributeValue
	stub := &stubDynamo{
		putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			if aws.ToString(in.ConditionExpression) != "attribute_not_exists(#id)" {
				t.Fatalf("create must not overwrite")
			}
			stored = in.Item
			return &dynamodb.PutItemOutput{}, nil
		},
		getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: stored}, nil
		},
	}
	repo := NewQuoteDynamoRepository(stub, "quotes")

	if _, err := repo.Create(context.Background(), sampleRecord()); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := repo.GetByID(context.Background(), "q-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Total.String() != "270" || got.Document.Client.Name != "João Silva" || len(got.Document.LineItems) != 1 {
		t.Fatalf("unexpected record: %+v", got)
	}
	if !got.Document.LineItems[0].UnitPrice.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("unit price lost precision: %s", got.Document.LineItems[0].UnitPrice)
	}
}

func TestQuoteDynamoRepository_ListByOwnerID_Paginates(t *testing.T) {
	it, _ := toQuoteItem(sampleRecord())
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	calls := 0
	stub := &stubDynamo{
		query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			calls++
			if aws.ToString(in.IndexName) != "owner_id-index" {
				t.Fatalf("expected owner index")
			}
			if calls == 1 {
				return &dynamodb.QueryOutput{
					Items:            []map[string]types.AttributeValue{av},
					LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "q-1"}},
				}, nil
			}
			if in.ExclusiveStartKey == nil {
				t.Fatalf("second page must continue from the last key")
			}
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{av}}, nil
		},
	}

	got, err := NewQuoteDynamoRepository(stub, "quotes").ListByOwnerID(context.Background(), "user-1")
	if err != nil || len(got) != 2 || calls != 2 {
		t.Fatalf("unexpected result len=%d calls=%d err=%v", len(got), calls, err)
	}
}

func TestQuoteDynamoRepository_UpdateStatus(t *testing.T) {
	t.Run("conditional on current status", func(t *testing.T) {
		stub := &stubDynamo{
			updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				if aws.ToString(in.ConditionExpression) != "attribute_exists(#id) AND #status = :from" {
					t.Fatalf("unexpected condition %s", aws.ToString(in.ConditionExpression))
				}
				if in.ExpressionAttributeNames["#id"] != "id" || in.ExpressionAttributeNames["#status"] != "status" {
					t.Fatalf("unexpected names %+v", in.ExpressionAttributeNames)
				}
				rec := sampleRecord()
				rec.Status = entities.QuoteStatusAprovado
				it, _ := toQuoteItem(rec)
				attrs, _ := attributevalue.MarshalMap(it)
				return &dynamodb.UpdateItemOutput{Attributes: attrs}, nil
			},
		}
		got, err := NewQuoteDynamoRepository(stub, "quotes").UpdateStatus(context.Background(), "q-1", entities.QuoteStatusPendente, entities.QuoteStatusAprovado)
		if err != nil || got.Status != entities.QuoteStatusAprovado {
			t.Fatalf("unexpected result %+v err=%v", got, err)
		}
	})

	t.Run("condition failure returns zero value", func(t *testing.T) {
		stub := &stubDynamo{
			updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				return nil, &types.ConditionalCheckFailedException{}
			},
		}
		got, err := NewQuoteDynamoRepository(stub, "quotes").UpdateStatus(context.Background(), "q-1", entities.QuoteStatusPendente, entities.QuoteStatusAprovado)
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero record, got %+v err=%v", got, err)
		}
	})
}
