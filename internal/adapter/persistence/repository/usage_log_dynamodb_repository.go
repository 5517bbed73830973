package repository

import (
	"context"
	"sort"

	"gerador_orcamentos/internal/domain/entities"
	"gerador_orcamentos/internal/infrastructure/database"
	"gerador_orcamentos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type usageLogItem struct {
	ID          string `dynamodbav:"id"`
	OwnerID     string `dynamodbav:"owner_id"`
	ClientName  string `dynamodbav:"client_name"`
	TotalValue  string `dynamodbav:"total_value"`
	Fingerprint string `dynamodbav:"fingerprint"`
	Path        string `dynamodbav:"path"`
	ClientIP    string `dynamodbav:"client_ip,omitempty"`
	UserAgent   string `dynamodbav:"user_agent,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// UsageLogDynamoRepository reads the PDF usage log. Entries are only written by
// LicenseDynamoRepository.RecordGeneration, in the same transaction as the counter.
//
// Table requirements:
//   - PK: id (string, the idempotency key)
//   - GSI: owner_id-index (PK: owner_id)
type UsageLogDynamoRepository struct {
	ddb       database.API
	tableName string
}

var _ interfaces.IUsageLogRepository = (*UsageLogDynamoRepository)(nil)

func NewUsageLogDynamoRepository(ddb database.API, tableName string) *UsageLogDynamoRepository {
	return &UsageLogDynamoRepository{ddb: ddb, tableName: tableName}
}

// ListByOwnerID returns the owner's entries, newest first.
func (r *UsageLogDynamoRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]entities.UsageLog, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ownerIDIndex),
		KeyConditionExpression: aws.String("owner_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: ownerID},
		},
	}

	logs := make([]entities.UsageLog, 0)
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it usageLogItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			logs = append(logs, fromUsageLogItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}

	sort.SliceStable(logs, func(i, j int) bool { return logs[i].CreatedAt.After(logs[j].CreatedAt) })
	return logs, nil
}

func toUsageLogItem(u entities.UsageLog) usageLogItem {
	return usageLogItem{
		ID:          u.ID,
		OwnerID:     u.OwnerID,
		ClientName:  u.ClientName,
		TotalValue:  u.TotalValue.String(),
		Fingerprint: u.Fingerprint,
		Path:        string(u.Path),
		ClientIP:    u.ClientIP,
		UserAgent:   u.UserAgent,
		CreatedAt:   formatTime(u.CreatedAt),
	}
}

func fromUsageLogItem(it usageLogItem) entities.UsageLog {
	return entities.UsageLog{
		ID:          it.ID,
		OwnerID:     it.OwnerID,
		ClientName:  it.ClientName,
		TotalValue:  parseDecimal(it.TotalValue),
		Fingerprint: it.Fingerprint,
		Path:        entities.RenderPath(it.Path),
		ClientIP:    it.ClientIP,
		UserAgent:   it.UserAgent,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
