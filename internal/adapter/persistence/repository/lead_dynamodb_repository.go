package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"crm_imobiliario/internal/domain/entities"
	"crm_imobiliario/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	DefaultLeadsTableName = "leads"
	leadsUserIndexName    = "user_id-index"
)

type leadItem struct {
	ID             string   `dynamodbav:"id"`
	UserID         string   `dynamodbav:"user_id"`
	Name           string   `dynamodbav:"name"`
	Email          *string  `dynamodbav:"email,omitempty"`
	Phone          *string  `dynamodbav:"phone,omitempty"`
	Source         string   `dynamodbav:"source"`
	Stage          string   `dynamodbav:"stage"`
	Interest       *string  `dynamodbav:"interest,omitempty"`
	EstimatedValue *float64 `dynamodbav:"estimated_value,omitempty"`
	Notes          *string  `dynamodbav:"notes,omitempty"`
	PropertyID     *string  `dynamodbav:"property_id,omitempty"`
	CreatedAt      string   `dynamodbav:"created_at,omitempty"`
	UpdatedAt      string   `dynamodbav:"updated_at,omitempty"`
}

// LeadDynamoRepository persists leads in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id, SK: created_at)
//
// Absent optional fields are not written at all, so a cleared field is a
// REMOVE rather than a NULL attribute.

type LeadDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb DynamoDBAPI, tableName string) *LeadDynamoRepository {
	if tableName == "" {
		tableName = DefaultLeadsTableName
	}
	return &LeadDynamoRepository{ddb: ddb, tableName: tableName}
}

// List reads one owner's leads through user_id-index, or scans the table
// when the filter names no owner. Either way the result is ordered newest
// first, ties broken by id so the order is stable across calls.
func (r *LeadDynamoRepository) List(ctx context.Context, filter entities.LeadFilter) ([]entities.Lead, error) {
	var (
		items []leadItem
		err   error
	)
	if filter.UserID != "" {
		items, err = r.queryByUser(ctx, filter.UserID)
	} else {
		items, err = r.scanAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	leads := make([]entities.Lead, 0, len(items))
	for _, it := range items {
		leads = append(leads, fromLeadItem(it))
	}
	sortNewestFirst(leads)
	return leads, nil
}

func (r *LeadDynamoRepository) queryByUser(ctx context.Context, userID string) ([]leadItem, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(leadsUserIndexName),
		KeyConditionExpression: aws.String("#user_id = :user_id"),
		ExpressionAttributeNames: map[string]string{
			"#user_id": "user_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false),
	})

	var items []leadItem
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var page []leadItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)
	}
	return items, nil
}

func (r *LeadDynamoRepository) scanAll(ctx context.Context) ([]leadItem, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	var items []leadItem
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var page []leadItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)
	}
	return items, nil
}

func sortNewestFirst(leads []entities.Lead) {
	sort.SliceStable(leads, func(i, j int) bool {
		ti := leads[i].CreatedAt.OrElse(time.Time{})
		tj := leads[j].CreatedAt.OrElse(time.Time{})
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return leads[i].ID < leads[j].ID
	})
}

func (r *LeadDynamoRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	now := time.Now().UTC()
	l.ID = uuid.NewString()
	l.CreatedAt = entities.Some(now)
	l.UpdatedAt = entities.Some(now)

	av, err := attributevalue.MarshalMap(toLeadItem(l))
	if err != nil {
		return entities.Lead{}, err
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
		return entities.Lead{}, err
	}
	return l, nil
}

func (r *LeadDynamoRepository) Update(ctx context.Context, filter entities.LeadFilter, id string, patch entities.LeadPatch) (entities.Lead, error) {
	updateExpr, values, names, err := buildLeadUpdate(patch)
	if err != nil {
		return entities.Lead{}, err
	}
	cond, condNames, condValues := leadOwnerCondition(filter)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: mergeValues(values, condValues),
		ExpressionAttributeNames:  mergeNames(names, condNames),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Lead{}, nil
		}
		return entities.Lead{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Lead{}, nil
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

// Delete of a missing id succeeds. With an owner in the filter, another
// owner's lead fails the condition and is reported the same way.
func (r *LeadDynamoRepository) Delete(ctx context.Context, filter entities.LeadFilter, id string) error {
	in := &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	}
	if filter.UserID != "" {
		cond, names, values := leadOwnerCondition(filter)
		in.ConditionExpression = aws.String(cond)
		in.ExpressionAttributeNames = names
		in.ExpressionAttributeValues = values
	}

	_, err := r.ddb.DeleteItem(ctx, in)
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return nil
	}
	return err
}

// leadOwnerCondition requires the item to exist and, when the filter names
// an owner, to belong to it.
func leadOwnerCondition(filter entities.LeadFilter) (string, map[string]string, map[string]types.AttributeValue) {
	names := map[string]string{"#id": "id"}
	if filter.UserID == "" {
		return "attribute_exists(#id)", names, nil
	}
	names["#user_id"] = "user_id"
	values := map[string]types.AttributeValue{
		":owner_id": &types.AttributeValueMemberS{Value: filter.UserID},
	}
	return "attribute_exists(#id) AND #user_id = :owner_id", names, values
}

// buildLeadUpdate turns a patch into an update expression. Only the fields
// named by the patch appear in it.
func buildLeadUpdate(p entities.LeadPatch) (string, map[string]types.AttributeValue, map[string]string, error) {
	b := &updateBuilder{
		values: map[string]types.AttributeValue{},
		names:  map[string]string{},
	}

	if p.Name != nil {
		b.set("name", *p.Name)
	}
	b.optionalString("email", p.Email)
	b.optionalString("phone", p.Phone)
	if p.Source != nil {
		b.set("source", *p.Source)
	}
	if p.Stage != nil {
		b.set("stage", string(*p.Stage))
	}
	b.optionalString("interest", p.Interest)
	if p.EstimatedValue != nil {
		if v, ok := p.EstimatedValue.Get(); ok {
			b.set("estimated_value", v)
		} else {
			b.remove("estimated_value")
		}
	}
	b.optionalString("notes", p.Notes)
	b.optionalString("property_id", p.PropertyID)
	if p.UpdatedAt != nil {
		b.set("updated_at", formatTime(*p.UpdatedAt))
	}

	if b.err != nil {
		return "", nil, nil, b.err
	}
	if len(b.sets) == 0 && len(b.removes) == 0 {
		return "", nil, nil, errors.New("empty lead update")
	}

	var parts []string
	if len(b.sets) > 0 {
		parts = append(parts, "SET "+strings.Join(b.sets, ", "))
	}
	if len(b.removes) > 0 {
		parts = append(parts, "REMOVE "+strings.Join(b.removes, ", "))
	}

	values := b.values
	if len(values) == 0 {
		values = nil
	}
	return strings.Join(parts, " "), values, b.names, nil
}

type updateBuilder struct {
	sets    []string
	removes []string
	values  map[string]types.AttributeValue
	names   map[string]string
	err     error
}

func (b *updateBuilder) set(attr string, v any) {
	if b.err != nil {
		return
	}
	av, err := attributevalue.Marshal(v)
	if err != nil {
		b.err = err
		return
	}
	b.names["#"+attr] = attr
	b.values[":"+attr] = av
	b.sets = append(b.sets, "#"+attr+" = :"+attr)
}

func (b *updateBuilder) remove(attr string) {
	b.names["#"+attr] = attr
	b.removes = append(b.removes, "#"+attr)
}

func (b *updateBuilder) optionalString(attr string, o *entities.Optional[string]) {
	if o == nil {
		return
	}
	if v, ok := o.Get(); ok {
		b.set(attr, v)
		return
	}
	b.remove(attr)
}

func toLeadItem(l entities.Lead) leadItem {
	return leadItem{
		ID:             l.ID,
		UserID:         l.UserID,
		Name:           l.Name,
		Email:          l.Email.Ptr(),
		Phone:          l.Phone.Ptr(),
		Source:         l.Source,
		Stage:          string(l.Stage),
		Interest:       l.Interest.Ptr(),
		EstimatedValue: l.EstimatedValue.Ptr(),
		Notes:          l.Notes.Ptr(),
		PropertyID:     l.PropertyID.Ptr(),
		CreatedAt:      formatTime(l.CreatedAt.OrElse(time.Time{})),
		UpdatedAt:      formatTime(l.UpdatedAt.OrElse(time.Time{})),
	}
}

func fromLeadItem(it leadItem) entities.Lead {
	return entities.Lead{
		ID:             it.ID,
		UserID:         it.UserID,
		Name:           it.Name,
		Email:          entities.FromPtr(it.Email),
		Phone:          entities.FromPtr(it.Phone),
		Source:         it.Source,
		Stage:          entities.LeadStage(it.Stage),
		Interest:       entities.FromPtr(it.Interest),
		EstimatedValue: entities.FromPtr(it.EstimatedValue),
		Notes:          entities.FromPtr(it.Notes),
		PropertyID:     entities.FromPtr(it.PropertyID),
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
