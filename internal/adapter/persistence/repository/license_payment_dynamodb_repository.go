package repository

import (
	"context"

	"gerador_orcamentos/internal/domain/entities"
	"gerador_orcamentos/internal/infrastructure/database"
	"gerador_orcamentos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type licensePaymentItem struct {
	ID           string                 `dynamodbav:"id"`
	OwnerID      string                 `dynamodbav:"owner_id"`
	Plan         string                 `dynamodbav:"plan"`
	Amount       string                 `dynamodbav:"amount"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// LicensePaymentDynamoRepository persists LicensePayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_id-index (PK: owner_id)

type LicensePaymentDynamoRepository struct {
	ddb       database.API
	tableName string
}

var _ interfaces.ILicensePaymentRepository = (*LicensePaymentDynamoRepository)(nil)

func NewLicensePaymentDynamoRepository(ddb database.API, tableName string) *LicensePaymentDynamoRepository {
	return &LicensePaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *LicensePaymentDynamoRepository) Create(ctx context.Context, p entities.LicensePayment) (entities.LicensePayment, error) {
	av, err := attributevalue.MarshalMap(toLicensePaymentItem(p))
	if err != nil {
		return entities.LicensePayment{}, err
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
		return entities.LicensePayment{}, err
	}
	return p, nil
}

func (r *LicensePaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.LicensePayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.LicensePayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.LicensePayment{}, nil
	}

	var it licensePaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.LicensePayment{}, err
	}
	return fromLicensePaymentItem(it), nil
}

func (r *LicensePaymentDynamoRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]entities.LicensePayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ownerIDIndex),
		KeyConditionExpression: aws.String("owner_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: ownerID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.LicensePayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it licensePaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromLicensePaymentItem(it))
	}
	return items, nil
}

func toLicensePaymentItem(p entities.LicensePayment) licensePaymentItem {
	return licensePaymentItem{
		ID:           p.ID,
		OwnerID:      p.OwnerID,
		Plan:         p.Plan,
		Amount:       p.Amount.String(),
		Date:         formatTime(p.Date),
		Status:       string(p.Status),
		MPPayload:    p.MPPayload,
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
}

func fromLicensePaymentItem(it licensePaymentItem) entities.LicensePayment {
	return entities.LicensePayment{
		ID:           it.ID,
		OwnerID:      it.OwnerID,
		Plan:         it.Plan,
		Amount:       parseDecimal(it.Amount),
		Date:         parseTime(it.Date),
		Status:       entities.PaymentStatus(it.Status),
		MPPayload:    it.MPPayload,
		MPPayloadRaw: []byte(it.MPPayloadRaw),
	}
}
