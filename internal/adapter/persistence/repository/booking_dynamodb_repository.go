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

const defaultBookingsTableName = "bookings"

type bookingItem struct {
	ID                 string   `dynamodbav:"id"`
	ServiceID          string   `dynamodbav:"service_id"`
	CustomerName       string   `dynamodbav:"customer_name"`
	CustomerEmail      string   `dynamodbav:"customer_email"`
	ProjectDescription string   `dynamodbav:"project_description"`
	SelectedPackageID  string   `dynamodbav:"selected_package_id,omitempty"`
	CustomBudget       string   `dynamodbav:"custom_budget,omitempty"`
	Timeline           string   `dynamodbav:"timeline,omitempty"`
	Status             string   `dynamodbav:"status"`
	CancelReason       string   `dynamodbav:"cancel_reason,omitempty"`
	CreatedAt          string   `dynamodbav:"created_at"`
	UpdatedAt          string   `dynamodbav:"updated_at"`
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Status writes are conditional on the stored status still matching the
// caller's expectation; a lost race surfaces as ErrVersionConflict, never as
// a silent overwrite.

type BookingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
	}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	av, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		return entities.Booking{}, err
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
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.BookingStatus) (entities.Booking, error) {
	return r.casUpdate(ctx, id, from, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :to, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *BookingDynamoRepository) Cancel(ctx context.Context, id string, from entities.BookingStatus, reason string) (entities.Booking, error) {
	return r.casUpdate(ctx, id, from, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :to, #cancel_reason = :reason, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":to":         &types.AttributeValueMemberS{Value: string(entities.BookingStatusCancelled)},
			":reason":     &types.AttributeValueMemberS{Value: reason},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":        "status",
			"#cancel_reason": "cancel_reason",
			"#updated_at":    "updated_at",
		}
		return expr, vals, names
	})
}

// casUpdate writes conditionally on the stored status matching from. The
// conditional-check failure is disambiguated with a follow-up read: missing
// item means not-found (zero value), anything else means a lost race.
func (r *BookingDynamoRepository) casUpdate(
	ctx context.Context,
	id string,
	from entities.BookingStatus,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Booking, error) {
	now := formatTime(time.Now())
	updateExpr, values, names := build(now)
	values[":from"] = &types.AttributeValueMemberS{Value: string(from)}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#status": "status"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			existing, gErr := r.GetByID(ctx, id)
			if gErr != nil {
				return entities.Booking{}, gErr
			}
			if existing.ID == "" {
				return entities.Booking{}, nil
			}
			return entities.Booking{}, interfaces.ErrVersionConflict
		}
		return entities.Booking{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func toBookingItem(b entities.Booking) bookingItem {
	it := bookingItem{
		ID:                 b.ID,
		ServiceID:          b.ServiceID,
		CustomerName:       b.CustomerName,
		CustomerEmail:      b.CustomerEmail,
		ProjectDescription: b.ProjectDescription,
		SelectedPackageID:  b.SelectedPackageID,
		Timeline:           string(b.Timeline),
		Status:             string(b.Status),
		CancelReason:       b.CancelReason,
		CreatedAt:          formatTime(b.CreatedAt),
		UpdatedAt:          formatTime(b.UpdatedAt),
	}
	if b.CustomBudget > 0 {
		it.CustomBudget = floatToString(b.CustomBudget)
	}
	return it
}

func fromBookingItem(it bookingItem) entities.Booking {
	return entities.Booking{
		ID:                 it.ID,
		ServiceID:          it.ServiceID,
		CustomerName:       it.CustomerName,
		CustomerEmail:      it.CustomerEmail,
		ProjectDescription: it.ProjectDescription,
		SelectedPackageID:  it.SelectedPackageID,
		CustomBudget:       stringToFloat(it.CustomBudget),
		Timeline:           entities.Timeline(it.Timeline),
		Status:             entities.BookingStatus(it.Status),
		CancelReason:       it.CancelReason,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
