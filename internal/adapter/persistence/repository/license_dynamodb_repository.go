package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"gerador_orcamentos/internal/domain/entities"
	"gerador_orcamentos/internal/infrastructure/database"
	"gerador_orcamentos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// expiresAtLayout is fixed width so expiry can be compared as a string inside
// condition expressions.
const expiresAtLayout = "2006-01-02T15:04:05Z"

const conditionalCheckFailed = "ConditionalCheckFailed"

type licenseItem struct {
	OwnerID       string `dynamodbav:"owner_id"`
	Plan          string `dynamodbav:"plan"`
	Status        string `dynamodbav:"status"`
	PDFsGenerated int    `dynamodbav:"pdfs_generated"`
	PDFLimit      int    `dynamodbav:"pdf_limit"`
	ExpiresAt     string `dynamodbav:"expires_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// LicenseDynamoRepository persists License entities and performs PDF accounting.
//
// Table requirements:
//   - licenses: PK owner_id (string)
//   - usage logs: see UsageLogDynamoRepository
//
// RecordGeneration writes to both tables in one TransactWriteItems call, so the
// counter and the log never disagree and concurrent callers cannot exceed the limit.
type LicenseDynamoRepository struct {
	ddb            database.API
	tableName      string
	usageTableName string
}

var _ interfaces.ILicenseRepository = (*LicenseDynamoRepository)(nil)

func NewLicenseDynamoRepository(ddb database.API, tableName, usageTableName string) *LicenseDynamoRepository {
	return &LicenseDynamoRepository{ddb: ddb, tableName: tableName, usageTableName: usageTableName}
}

func (r *LicenseDynamoRepository) GetByOwnerID(ctx context.Context, ownerID string) (entities.License, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"owner_id": &types.AttributeValueMemberS{Value: ownerID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.License{}, err
	}
	if len(out.Item) == 0 {
		return entities.License{}, nil
	}

	var it licenseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.License{}, err
	}
	return fromLicenseItem(it), nil
}

// Save replaces the owner's license; plan activation uses it to reset the counter.
func (r *LicenseDynamoRepository) Save(ctx context.Context, l entities.License) (entities.License, error) {
	av, err := attributevalue.MarshalMap(toLicenseItem(l))
	if err != nil {
		return entities.License{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.License{}, err
	}
	return l, nil
}

func (r *LicenseDynamoRepository) UpdateStatus(ctx context.Context, ownerID string, status entities.LicenseStatus) (entities.License, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"owner_id": &types.AttributeValueMemberS{Value: ownerID},
		},
		ConditionExpression: aws.String("attribute_exists(#owner_id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#status": "status", "#updated_at": "updated_at"},
			map[string]string{"#owner_id": "owner_id"},
		),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.License{}, nil
		}
		return entities.License{}, err
	}
	var it licenseItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.License{}, err
	}
	return fromLicenseItem(it), nil
}

func (r *LicenseDynamoRepository) RecordGeneration(ctx context.Context, usage entities.UsageLog, now time.Time) (entities.License, error) {
	logAV, err := attributevalue.MarshalMap(toUsageLogItem(usage))
	if err != nil {
		return entities.License{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:                aws.String(r.usageTableName),
					Item:                     logAV,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"owner_id": &types.AttributeValueMemberS{Value: usage.OwnerID},
					},
					ConditionExpression: aws.String("attribute_exists(#owner_id) AND #status = :active AND #used < #limit AND #expires_at >= :now"),
					UpdateExpression:    aws.String("SET #used = #used + :one, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#owner_id":   "owner_id",
						"#status":     "status",
						"#used":       "pdfs_generated",
						"#limit":      "pdf_limit",
						"#expires_at": "expires_at",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":active":     &types.AttributeValueMemberS{Value: string(entities.LicenseStatusActive)},
						":now":        &types.AttributeValueMemberS{Value: now.UTC().Format(expiresAtLayout)},
						":one":        &types.AttributeValueMemberN{Value: "1"},
						":updated_at": &types.AttributeValueMemberS{Value: formatTime(now)},
					},
				},
			},
		},
	})
	if err != nil {
		return entities.License{}, mapTransactionError(err)
	}

	lic, err := r.GetByOwnerID(ctx, usage.OwnerID)
	if err != nil {
		// The generation is already accounted; a failed read-back must not undo that.
		log.Printf("[license][repository] read-back after accounting failed owner_id=%s err=%v", usage.OwnerID, err)
		return entities.License{OwnerID: usage.OwnerID}, nil
	}
	return lic, nil
}

// mapTransactionError maps cancellation reasons by item position: 0 is the usage
// log put, 1 is the license counter update.
func mapTransactionError(err error) error {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return err
	}
	reasons := tce.CancellationReasons
	if len(reasons) > 0 && aws.ToString(reasons[0].Code) == conditionalCheckFailed {
		return entities.ErrDuplicateGeneration
	}
	if len(reasons) > 1 && aws.ToString(reasons[1].Code) == conditionalCheckFailed {
		return entities.ErrLicenseQuotaExceeded
	}
	return err
}

func toLicenseItem(l entities.License) licenseItem {
	expires := ""
	if !l.ExpiresAt.IsZero() {
		expires = l.ExpiresAt.UTC().Format(expiresAtLayout)
	}
	return licenseItem{
		OwnerID:       l.OwnerID,
		Plan:          l.Plan,
		Status:        string(l.Status),
		PDFsGenerated: l.PDFsGenerated,
		PDFLimit:      l.PDFLimit,
		ExpiresAt:     expires,
		UpdatedAt:     formatTime(l.UpdatedAt),
	}
}

func fromLicenseItem(it licenseItem) entities.License {
	expires, _ := time.Parse(expiresAtLayout, it.ExpiresAt)
	return entities.License{
		OwnerID:       it.OwnerID,
		Plan:          it.Plan,
		Status:        entities.LicenseStatus(it.Status),
		PDFsGenerated: it.PDFsGenerated,
		PDFLimit:      it.PDFLimit,
		ExpiresAt:     expires,
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
