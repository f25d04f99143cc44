package repository

import (
	"context"
	"errors"

	"studioo/internal/domain/entities"
	"studioo/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type lineItemItem struct {
	Option      string  `dynamodbav:"option"`
	Description string  `dynamodbav:"description"`
	Quantity    float64 `dynamodbav:"quantity"`
	Rate        float64 `dynamodbav:"rate"`
	Total       float64 `dynamodbav:"total"`
}

type quoteItem struct {
	Date          string         `dynamodbav:"date"`
	Engagement    string         `dynamodbav:"engagement"`
	ClientName    string         `dynamodbav:"client_name"`
	ClientEmail   string         `dynamodbav:"client_email"`
	ClientPhone   string         `dynamodbav:"client_phone"`
	ClientCompany string         `dynamodbav:"client_company,omitempty"`
	ProjectName   string         `dynamodbav:"project_name"`
	LineItems     []lineItemItem `dynamodbav:"line_items"`
	GrandTotal    float64        `dynamodbav:"grand_total"`
	Currency      string         `dynamodbav:"currency"`
	ValidityDays  int            `dynamodbav:"validity_days"`
	Notes         string         `dynamodbav:"notes"`
}

type quoteRequestItem struct {
	QuoteNumber  string    `dynamodbav:"quote_number"`
	ID           string    `dynamodbav:"id"`
	SessionID    string    `dynamodbav:"session_id"`
	ClientUserID string    `dynamodbav:"client_user_id,omitempty"`
	Language     string    `dynamodbav:"language"`
	Status       string    `dynamodbav:"status"`
	Quote        quoteItem `dynamodbav:"quote"`
	CreatedAt    string    `dynamodbav:"created_at"`
}

// QuoteRequestDynamoRepository persists submitted quotes in DynamoDB.
//
// Table requirements:
//   - PK: quote_number (string)
//
// Keying by quote number makes a duplicate submission fail the conditional
// put instead of creating a second request.
type QuoteRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRequestRepository = (*QuoteRequestDynamoRepository)(nil)

func NewQuoteRequestDynamoRepository(ddb *dynamodb.Client, tableName string) *QuoteRequestDynamoRepository {
	return &QuoteRequestDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuoteRequestDynamoRepository) Create(ctx context.Context, req entities.QuoteRequest) (entities.QuoteRequest, error) {
	av, err := attributevalue.MarshalMap(toQuoteRequestItem(req))
	if err != nil {
		return entities.QuoteRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#qn)"),
		ExpressionAttributeNames: map[string]string{
			"#qn": "quote_number",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.QuoteRequest{}, interfaces.ErrQuoteNumberTaken
		}
		return entities.QuoteRequest{}, err
	}
	return req, nil
}

func (r *QuoteRequestDynamoRepository) GetByQuoteNumber(ctx context.Context, quoteNumber string) (entities.QuoteRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"quote_number": &types.AttributeValueMemberS{Value: quoteNumber},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuoteRequest{}, nil
	}

	var it quoteRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuoteRequest{}, err
	}
	return fromQuoteRequestItem(it), nil
}

func toQuoteRequestItem(r entities.QuoteRequest) quoteRequestItem {
	q := r.Quote
	items := make([]lineItemItem, 0, len(q.LineItems))
	for _, li := range q.LineItems {
		items = append(items, lineItemItem(li))
	}
	return quoteRequestItem{
		QuoteNumber:  r.QuoteNumber,
		ID:           r.ID,
		SessionID:    r.SessionID,
		ClientUserID: r.ClientUserID,
		Language:     r.Language,
		Status:       string(r.Status),
		Quote: quoteItem{
			Date:          formatTime(q.Date),
			Engagement:    q.Engagement.Key(),
			ClientName:    q.ClientName,
			ClientEmail:   q.ClientEmail,
			ClientPhone:   q.ClientPhone,
			ClientCompany: q.ClientCompany,
			ProjectName:   q.ProjectName,
			LineItems:     items,
			GrandTotal:    q.GrandTotal,
			Currency:      q.Currency,
			ValidityDays:  q.ValidityDays,
			Notes:         q.Notes,
		},
		CreatedAt: formatTime(r.CreatedAt),
	}
}

func fromQuoteRequestItem(it quoteRequestItem) entities.QuoteRequest {
	q := it.Quote
	items := make([]entities.LineItem, 0, len(q.LineItems))
	for _, li := range q.LineItems {
		items = append(items, entities.LineItem(li))
	}
	engagement, _ := entities.ParseEngagementKey(q.Engagement)
	return entities.QuoteRequest{
		ID:           it.ID,
		QuoteNumber:  it.QuoteNumber,
		SessionID:    it.SessionID,
		ClientUserID: it.ClientUserID,
		Language:     it.Language,
		Status:       entities.QuoteRequestStatus(it.Status),
		Quote: entities.Quote{
			QuoteNumber:   it.QuoteNumber,
			Date:          parseTime(q.Date),
			Engagement:    engagement,
			ClientName:    q.ClientName,
			ClientEmail:   q.ClientEmail,
			ClientPhone:   q.ClientPhone,
			ClientCompany: q.ClientCompany,
			ProjectName:   q.ProjectName,
			LineItems:     items,
			GrandTotal:    q.GrandTotal,
			Currency:      q.Currency,
			ValidityDays:  q.ValidityDays,
			Notes:         q.Notes,
		},
		CreatedAt: parseTime(it.CreatedAt),
	}
}
