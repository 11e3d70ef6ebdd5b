package repository

import (
	"context"
	"errors"
	"time"

	"servicehub/internal/domain/entities"
	"servicehub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTransactionsTableName = "payment_transactions"
	transactionsBookingIDIndex   = "booking_id-index"
)

type paymentTransactionItem struct {
	ID                string `dynamodbav:"id"`
	BookingID         string `dynamodbav:"booking_id"`
	Amount            string `dynamodbav:"amount"`
	Status            string `dynamodbav:"status"`
	ProviderReference string `dynamodbav:"provider_reference,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// PaymentTransactionDynamoRepository persists PaymentTransaction entities.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (booking_id-index): booking_id
//
// The status write is a compare-and-set; once a transaction settles, no write
// path can move it again.

type PaymentTransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentTransactionRepository = (*PaymentTransactionDynamoRepository)(nil)

func NewPaymentTransactionDynamoRepository(ddb *dynamodb.Client) *PaymentTransactionDynamoRepository {
	return &PaymentTransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *PaymentTransactionDynamoRepository) Create(ctx context.Context, tx entities.PaymentTransaction) (entities.PaymentTransaction, error) {
	av, err := attributevalue.MarshalMap(toPaymentTransactionItem(tx))
	if err != nil {
		return entities.PaymentTransaction{}, err
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
		return entities.PaymentTransaction{}, err
	}
	return tx, nil
}

func (r *PaymentTransactionDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentTransaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentTransaction{}, nil
	}

	var it paymentTransactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentTransaction{}, err
	}
	return fromPaymentTransactionItem(it), nil
}

func (r *PaymentTransactionDynamoRepository) GetByBookingID(ctx context.Context, bookingID string) (entities.PaymentTransaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsBookingIDIndex),
		KeyConditionExpression: aws.String("#booking_id = :booking_id"),
		ExpressionAttributeNames: map[string]string{
			"#booking_id": "booking_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":booking_id": &types.AttributeValueMemberS{Value: bookingID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	if len(out.Items) == 0 {
		return entities.PaymentTransaction{}, nil
	}

	var it paymentTransactionItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.PaymentTransaction{}, err
	}
	return fromPaymentTransactionItem(it), nil
}

func (r *PaymentTransactionDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.PaymentStatus, providerRef string) (entities.PaymentTransaction, error) {
	now := formatTime(time.Now())
	expr := "SET #status = :to, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":to":         &types.AttributeValueMemberS{Value: string(to)},
		":from":       &types.AttributeValueMemberS{Value: string(from)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if providerRef != "" {
		expr += ", #provider_reference = :provider_reference"
		vals[":provider_reference"] = &types.AttributeValueMemberS{Value: providerRef}
		names["#provider_reference"] = "provider_reference"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			existing, gErr := r.GetByID(ctx, id)
			if gErr != nil {
				return entities.PaymentTransaction{}, gErr
			}
			if existing.ID == "" {
				return entities.PaymentTransaction{}, nil
			}
			return entities.PaymentTransaction{}, interfaces.ErrVersionConflict
		}
		return entities.PaymentTransaction{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PaymentTransaction{}, nil
	}

	var it paymentTransactionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentTransaction{}, err
	}
	return fromPaymentTransactionItem(it), nil
}

func toPaymentTransactionItem(tx entities.PaymentTransaction) paymentTransactionItem {
	return paymentTransactionItem{
		ID:                tx.ID,
		BookingID:         tx.BookingID,
		Amount:            floatToString(tx.Amount),
		Status:            string(tx.Status),
		ProviderReference: tx.ProviderReference,
		CreatedAt:         formatTime(tx.CreatedAt),
		UpdatedAt:         formatTime(tx.UpdatedAt),
	}
}

func fromPaymentTransactionItem(it paymentTransactionItem) entities.PaymentTransaction {
	return entities.PaymentTransaction{
		ID:                it.ID,
		BookingID:         it.BookingID,
		Amount:            stringToFloat(it.Amount),
		Status:            entities.PaymentStatus(it.Status),
		ProviderReference: it.ProviderReference,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
