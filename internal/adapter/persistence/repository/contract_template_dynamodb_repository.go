package repository

import (
	"context"
	"time"

	"crm_imobiliario/internal/domain/entities"
	"crm_imobiliario/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultContractTemplatesTableName = "contract_templates"
	contractTemplatesUserIndex        = "user_id-index"
)

type contractTemplateItem struct {
	ID          string `dynamodbav:"id"`
	UserID      string `dynamodbav:"user_id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
	FileName    string `dynamodbav:"file_name"`
	FileKey     string `dynamodbav:"file_key"`
	ContentType string `dynamodbav:"content_type"`
	Size        int64  `dynamodbav:"size"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// ContractTemplateDynamoRepository persists contract template records.
//
// Table requirements:
//   - PK: id (string)
//   - GSI user_id-index: user_id (string)

type ContractTemplateDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IContractTemplateRepository = (*ContractTemplateDynamoRepository)(nil)

func NewContractTemplateDynamoRepository(ddb DynamoDBAPI, tableName string) *ContractTemplateDynamoRepository {
	if tableName == "" {
		tableName = DefaultContractTemplatesTableName
	}
	return &ContractTemplateDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ContractTemplateDynamoRepository) Create(ctx context.Context, t entities.ContractTemplate) (entities.ContractTemplate, error) {
	av, err := attributevalue.MarshalMap(toContractTemplateItem(t))
	if err != nil {
		return entities.ContractTemplate{}, err
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
		return entities.ContractTemplate{}, err
	}
	return t, nil
}

func (r *ContractTemplateDynamoRepository) GetByID(ctx context.Context, id string) (entities.ContractTemplate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ContractTemplate{}, err
	}
	if len(out.Item) == 0 {
		return entities.ContractTemplate{}, nil
	}

	var it contractTemplateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ContractTemplate{}, err
	}
	return fromContractTemplateItem(it), nil
}

func (r *ContractTemplateDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.ContractTemplate, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(contractTemplatesUserIndex),
		KeyConditionExpression: aws.String("#user_id = :user_id"),
		ExpressionAttributeNames: map[string]string{
			"#user_id": "user_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
		},
	})

	out := []entities.ContractTemplate{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []contractTemplateItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromContractTemplateItem(it))
		}
	}
	return out, nil
}

func (r *ContractTemplateDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toContractTemplateItem(t entities.ContractTemplate) contractTemplateItem {
	return contractTemplateItem{
		ID:          t.ID,
		UserID:      t.UserID,
		Name:        t.Name,
		Description: t.Description,
		FileName:    t.FileName,
		FileKey:     t.FileKey,
		ContentType: t.ContentType,
		Size:        t.Size,
		CreatedAt:   formatTime(t.CreatedAt),
	}
}

func fromContractTemplateItem(it contractTemplateItem) entities.ContractTemplate {
	return entities.ContractTemplate{
		ID:          it.ID,
		UserID:      it.UserID,
		Name:        it.Name,
		Description: it.Description,
		FileName:    it.FileName,
		FileKey:     it.FileKey,
		ContentType: it.ContentType,
		Size:        it.Size,
		CreatedAt:   parseTime(it.CreatedAt).OrElse(time.Time{}),
	}
}
