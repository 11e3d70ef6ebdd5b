package repository

import (
	"context"
	"sort"

	"servicehub/internal/domain/entities"
	"servicehub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPackagesTableName = "service_packages"
	packagesServiceIDIndex   = "service_id-index"
)

type packageItem struct {
	ID           string   `dynamodbav:"id"`
	ServiceID    string   `dynamodbav:"service_id"`
	Name         string   `dynamodbav:"name"`
	Price        string   `dynamodbav:"price"`
	DeliveryDays int      `dynamodbav:"delivery_days"`
	Features     []string `dynamodbav:"features,omitempty"`
	CreatedAt    string   `dynamodbav:"created_at"`
}

// PackageDynamoRepository persists Package entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (service_id-index): service_id
//
// Packages never change after Create; there is no update path on purpose.

type PackageDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPackageRepository = (*PackageDynamoRepository)(nil)

func NewPackageDynamoRepository(ddb *dynamodb.Client) *PackageDynamoRepository {
	return &PackageDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PACKAGES_TABLE", defaultPackagesTableName),
	}
}

func (r *PackageDynamoRepository) Create(ctx context.Context, p entities.Package) (entities.Package, error) {
	av, err := attributevalue.MarshalMap(toPackageItem(p))
	if err != nil {
		return entities.Package{}, err
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
		return entities.Package{}, err
	}
	return p, nil
}

func (r *PackageDynamoRepository) GetByID(ctx context.Context, id string) (entities.Package, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Package{}, err
	}
	if len(out.Item) == 0 {
		return entities.Package{}, nil
	}

	var it packageItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Package{}, err
	}
	return fromPackageItem(it), nil
}

func (r *PackageDynamoRepository) ListByServiceID(ctx context.Context, serviceID string) ([]entities.Package, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(packagesServiceIDIndex),
		KeyConditionExpression: aws.String("#service_id = :service_id"),
		ExpressionAttributeNames: map[string]string{
			"#service_id": "service_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":service_id": &types.AttributeValueMemberS{Value: serviceID},
		},
	})
	if err != nil {
		return nil, err
	}

	packages := make([]entities.Package, 0, len(out.Items))
	for _, item := range out.Items {
		var it packageItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		packages = append(packages, fromPackageItem(it))
	}
	// GSI projection order is not guaranteed; catalog order is publish order.
	sort.Slice(packages, func(i, j int) bool {
		return packages[i].CreatedAt.Before(packages[j].CreatedAt)
	})
	return packages, nil
}

func toPackageItem(p entities.Package) packageItem {
	return packageItem{
		ID:           p.ID,
		ServiceID:    p.ServiceID,
		Name:         p.Name,
		Price:        floatToString(p.Price),
		DeliveryDays: p.DeliveryDays,
		Features:     p.Features,
		CreatedAt:    formatTime(p.CreatedAt),
	}
}

func fromPackageItem(it packageItem) entities.Package {
	return entities.Package{
		ID:           it.ID,
		ServiceID:    it.ServiceID,
		Name:         it.Name,
		Price:        stringToFloat(it.Price),
		DeliveryDays: it.DeliveryDays,
		Features:     it.Features,
		CreatedAt:    parseTime(it.CreatedAt),
	}
}
