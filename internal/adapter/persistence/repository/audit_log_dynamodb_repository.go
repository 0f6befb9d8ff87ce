package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAuditTableName = "audit_logs"
	auditEntityTypeIndex  = "entity_type-index"
)

type auditLogItem struct {
	ID         string `dynamodbav:"id"`
	UserID     string `dynamodbav:"user_id,omitempty"`
	Action     string `dynamodbav:"action"`
	EntityType string `dynamodbav:"entity_type"`
	EntityID   string `dynamodbav:"entity_id,omitempty"`
	Changes    string `dynamodbav:"changes,omitempty"`
	IPAddress  string `dynamodbav:"ip_address,omitempty"`
	UserAgent  string `dynamodbav:"user_agent,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// AuditLogDynamoRepository persists AuditLog entries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: entity_type-index (PK: entity_type, SK: created_at)
type AuditLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuditLogRepository = (*AuditLogDynamoRepository)(nil)

// NewAuditLogDynamoRepository falls back to AUDIT_TABLE, then "audit_logs",
// when tableName is empty.
func NewAuditLogDynamoRepository(ddb *dynamodb.Client, tableName string) *AuditLogDynamoRepository {
	if strings.TrimSpace(tableName) == "" {
		tableName = getenvDefault("AUDIT_TABLE", defaultAuditTableName)
	}
	return &AuditLogDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *AuditLogDynamoRepository) Create(ctx context.Context, l entities.AuditLog) (entities.AuditLog, error) {
	av, err := attributevalue.MarshalMap(toAuditLogItem(l))
	if err != nil {
		return entities.AuditLog{}, err
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
		return entities.AuditLog{}, err
	}
	return l, nil
}

// List queries the entity_type index when the filter names a type and scans
// otherwise. Results are newest first.
func (r *AuditLogDynamoRepository) List(ctx context.Context, filter entities.AuditLogFilter) ([]entities.AuditLog, error) {
	filterExpr, values, names := auditFilterExpression(filter)

	var raw []map[string]types.AttributeValue
	if filter.EntityType != "" {
		values[":et"] = &types.AttributeValueMemberS{Value: filter.EntityType}
		names["#entity_type"] = "entity_type"
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			IndexName:                 aws.String(auditEntityTypeIndex),
			KeyConditionExpression:    aws.String("#entity_type = :et"),
			FilterExpression:          filterExpr,
			ExpressionAttributeValues: values,
			ExpressionAttributeNames:  names,
			ScanIndexForward:          aws.Bool(false),
		})
		if err != nil {
			return nil, err
		}
		raw = out.Items
	} else {
		in := &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: filterExpr,
		}
		if len(values) > 0 {
			in.ExpressionAttributeValues = values
			in.ExpressionAttributeNames = names
		}
		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		raw = out.Items
	}

	logs := make([]entities.AuditLog, 0, len(raw))
	for _, item := range raw {
		var it auditLogItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		logs = append(logs, fromAuditLogItem(it))
	}
	sort.SliceStable(logs, func(i, j int) bool { return logs[i].CreatedAt.After(logs[j].CreatedAt) })

	if limit := auditLimit(filter.Limit); len(logs) > limit {
		logs = logs[:limit]
	}
	return logs, nil
}

func auditFilterExpression(filter entities.AuditLogFilter) (*string, map[string]types.AttributeValue, map[string]string) {
	var clauses []string
	values := map[string]types.AttributeValue{}
	names := map[string]string{}

	if filter.EntityID != "" {
		clauses = append(clauses, "#entity_id = :eid")
		values[":eid"] = &types.AttributeValueMemberS{Value: filter.EntityID}
		names["#entity_id"] = "entity_id"
	}
	if filter.UserID != "" {
		clauses = append(clauses, "#user_id = :uid")
		values[":uid"] = &types.AttributeValueMemberS{Value: filter.UserID}
		names["#user_id"] = "user_id"
	}
	if len(clauses) == 0 {
		return nil, values, names
	}
	return aws.String(strings.Join(clauses, " AND ")), values, names
}

func toAuditLogItem(l entities.AuditLog) auditLogItem {
	return auditLogItem{
		ID:         l.ID,
		UserID:     l.UserID,
		Action:     string(l.Action),
		EntityType: l.EntityType,
		EntityID:   l.EntityID,
		Changes:    string(l.Changes),
		IPAddress:  l.IPAddress,
		UserAgent:  l.UserAgent,
		CreatedAt:  l.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAuditLogItem(it auditLogItem) entities.AuditLog {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	l := entities.AuditLog{
		ID:         it.ID,
		UserID:     it.UserID,
		Action:     entities.AuditAction(it.Action),
		EntityType: it.EntityType,
		EntityID:   it.EntityID,
		IPAddress:  it.IPAddress,
		UserAgent:  it.UserAgent,
		CreatedAt:  createdAt,
	}
	if it.Changes != "" {
		l.Changes = []byte(it.Changes)
	}
	return l
}
