package repository

import (
	"context"
	"testing"
	"time"

	"crm_imobiliario/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractTemplateDynamoRepository(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 4, 10, 15, 0, 0, 0, time.UTC)
	tpl := entities.ContractTemplate{
		ID:          "t1",
		UserID:      "u1",
		Name:        "Compra e venda",
		FileName:    "compra.pdf",
		FileKey:     "contracts/u1/k.pdf",
		ContentType: "application/pdf",
		Size:        1024,
		CreatedAt:   created,
	}

	t.Run("create writes a conditional put", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := NewContractTemplateDynamoRepository(fake, "")

		got, err := repo.Create(ctx, tpl)
		require.NoError(t, err)
		assert.Equal(t, tpl, got)
		assert.Equal(t, DefaultContractTemplatesTableName, aws.ToString(fake.putInput.TableName))
		assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(fake.putInput.ConditionExpression))
		assert.NotContains(t, fake.putInput.Item, "description")
	})

	t.Run("get by id", func(t *testing.T) {
		item := marshalItems(t, toContractTemplateItem(tpl))[0]
		repo := NewContractTemplateDynamoRepository(&fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: item}}, "")

		got, err := repo.GetByID(ctx, "t1")
		require.NoError(t, err)
		assert.Equal(t, tpl.FileKey, got.FileKey)
		assert.True(t, created.Equal(got.CreatedAt))
	})

	t.Run("get by id missing", func(t *testing.T) {
		repo := NewContractTemplateDynamoRepository(&fakeDynamo{getOut: &dynamodb.GetItemOutput{}}, "")

		got, err := repo.GetByID(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("list queries the user index", func(t *testing.T) {
		fake := &fakeDynamo{queryPages: []*dynamodb.QueryOutput{
			{Items: marshalItems(t, toContractTemplateItem(tpl))},
		}}
		repo := NewContractTemplateDynamoRepository(fake, "")

		got, err := repo.ListByUserID(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "t1", got[0].ID)
		assert.Equal(t, "user_id-index", aws.ToString(fake.queryInputs[0].IndexName))
	})

	t.Run("delete", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := NewContractTemplateDynamoRepository(fake, "")

		require.NoError(t, repo.Delete(ctx, "t1"))
		assert.NotNil(t, fake.deleteInput)
	})
}
