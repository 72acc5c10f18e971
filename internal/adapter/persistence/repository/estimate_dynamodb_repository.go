package repository

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sort"
	"strconv"
	"time"

	"contractor_crm/internal/domain/entities"
	"contractor_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstimatesTableName = "estimates"
	emailTokenIndex           = "email_token-index"
	estimateNumberIndex       = "record_type-estimate_number-index"

	recordTypeEstimate = "estimate"
	recordTypeCounter  = "counter"
)

// estimateItem lifts the attributes DynamoDB needs for keys, the GSIs and the
// conditional version check; the rest of the aggregate travels as one JSON
// document in doc.
type estimateItem struct {
	ID             string `dynamodbav:"id"`
	RecordType     string `dynamodbav:"record_type"`
	EstimateNumber string `dynamodbav:"estimate_number"`
	EmailToken     string `dynamodbav:"email_token,omitempty"`
	Version        int64  `dynamodbav:"version"`
	UpdatedAt      string `dynamodbav:"updated_at"`
	Doc            string `dynamodbav:"doc"`
}

// EstimateDynamoRepository persists the Estimate aggregate in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email_token-index (PK: email_token)
//   - GSI: record_type-estimate_number-index (PK: record_type, SK: estimate_number)
//
// The whole aggregate is one item, so a single conditional write covers the
// document, its ledger, its change log and its payments.
type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	it, err := toEstimateItem(e)
	if err != nil {
		return entities.Estimate{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Estimate{}, err
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
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it)
}

func (r *EstimateDynamoRepository) GetByToken(ctx context.Context, token string) (entities.Estimate, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(emailTokenIndex),
		KeyConditionExpression: aws.String("email_token = :token"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":token": &types.AttributeValueMemberS{Value: token},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Items) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Estimate{}, err
	}
	// The GSI projection may lag; re-read the base item so mutations through
	// the token path see the current version.
	return r.GetByID(ctx, it.ID)
}

func (r *EstimateDynamoRepository) ListOrderedByNumber(ctx context.Context) ([]entities.Estimate, error) {
	var items []estimateItem
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(estimateNumberIndex),
			KeyConditionExpression: aws.String("record_type = :rt"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":rt": &types.AttributeValueMemberS{Value: recordTypeEstimate},
			},
			ExclusiveStartKey: startKey,
			ScanIndexForward:  aws.Bool(true),
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it estimateItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, it)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	// The GSI already orders by estimate number, but keys from a stale
	// projection can land out of place; sorting here keeps the contract.
	sort.Slice(items, func(i, j int) bool {
		return items[i].EstimateNumber < items[j].EstimateNumber
	})

	estimates := make([]entities.Estimate, 0, len(items))
	for _, it := range items {
		e, err := fromEstimateItem(it)
		if err != nil {
			return nil, err
		}
		estimates = append(estimates, e)
	}
	return estimates, nil
}

// Update persists the aggregate only when the stored version still equals
// expectedVersion, then bumps the version by one.
func (r *EstimateDynamoRepository) Update(ctx context.Context, e entities.Estimate, expectedVersion int64) (entities.Estimate, error) {
	e.Version = expectedVersion + 1
	it, err := toEstimateItem(e)
	if err != nil {
		return entities.Estimate{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, interfaces.ErrVersionConflict
		}
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// NextSequence advances the per-year numbering counter with an atomic ADD and
// returns the new value. The counter lives in the same table under a
// synthetic key.
func (r *EstimateDynamoRepository) NextSequence(ctx context.Context, year int) (int, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: "seq#" + strconv.Itoa(year)},
		},
		UpdateExpression: aws.String("ADD #seq :one SET #rt = :rt"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
			"#rt":  "record_type",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
			":rt":  &types.AttributeValueMemberS{Value: recordTypeCounter},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	raw, ok := out.Attributes["seq"]
	if !ok {
		return 0, errors.New("sequence counter missing from update result")
	}
	n, ok := raw.(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("sequence counter has unexpected type")
	}
	return strconv.Atoi(n.Value)
}

func toEstimateItem(e entities.Estimate) (estimateItem, error) {
	doc, err := json.Marshal(e)
	if err != nil {
		return estimateItem{}, err
	}
	return estimateItem{
		ID:             e.ID,
		RecordType:     recordTypeEstimate,
		EstimateNumber: e.EstimateNumber,
		EmailToken:     e.EmailToken,
		Version:        e.Version,
		UpdatedAt:      e.UpdatedAt.UTC().Format(time.RFC3339Nano),
		Doc:            string(doc),
	}, nil
}

func fromEstimateItem(it estimateItem) (entities.Estimate, error) {
	var e entities.Estimate
	if err := json.Unmarshal([]byte(it.Doc), &e); err != nil {
		return entities.Estimate{}, err
	}
	e.Version = it.Version
	return e, nil
}
