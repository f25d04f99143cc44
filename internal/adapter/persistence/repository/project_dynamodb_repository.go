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

const projectsClientIDIndex = "client_id-index"

type timelineEventItem struct {
	Date   string `dynamodbav:"date"`
	Title  string `dynamodbav:"title"`
	Status string `dynamodbav:"status"`
}

type projectFileItem struct {
	Name string `dynamodbav:"name"`
	URL  string `dynamodbav:"url"`
	Size string `dynamodbav:"size,omitempty"`
}

type projectItem struct {
	ID           string              `dynamodbav:"id"`
	ClientID     string              `dynamodbav:"client_id"`
	Title        string              `dynamodbav:"title"`
	ProjectType  string              `dynamodbav:"project_type"`
	SubService   string              `dynamodbav:"sub_service,omitempty"`
	Style        string              `dynamodbav:"style,omitempty"`
	Description  string              `dynamodbav:"description"`
	Location     string              `dynamodbav:"location"`
	StartDate    string              `dynamodbav:"start_date"`
	Requirements string              `dynamodbav:"requirements,omitempty"`
	Status       string              `dynamodbav:"status"`
	Timeline     []timelineEventItem `dynamodbav:"timeline,omitempty"`
	Files        []projectFileItem   `dynamodbav:"files,omitempty"`
	CreatedAt    string              `dynamodbav:"created_at"`
	UpdatedAt    string              `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists hub projects in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
//
// Projects are created by the studio; the hub only reads them and edits the
// partner-owned details.
type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client, tableName string) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Project, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(projectsClientIDIndex),
		KeyConditionExpression: aws.String("client_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clientID},
		},
	}

	projects := []entities.Project{}
	paginator := dynamodb.NewQueryPaginator(r.ddb, in)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it projectItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			projects = append(projects, fromProjectItem(it))
		}
	}
	return projects, nil
}

// UpdateDetails writes the editable fields of p. The write only happens when
// the stored project still belongs to p.ClientID; otherwise a zero Project is
// returned.
func (r *ProjectDynamoRepository) UpdateDetails(ctx context.Context, p entities.Project) (entities.Project, error) {
	expr := "SET #title = :title, #project_type = :project_type, #sub_service = :sub_service, #style = :style, " +
		"#description = :description, #location = :location, #start_date = :start_date, " +
		"#requirements = :requirements, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":title":        &types.AttributeValueMemberS{Value: p.Title},
		":project_type": &types.AttributeValueMemberS{Value: p.ProjectType},
		":sub_service":  &types.AttributeValueMemberS{Value: p.SubService},
		":style":        &types.AttributeValueMemberS{Value: p.Style},
		":description":  &types.AttributeValueMemberS{Value: p.Description},
		":location":     &types.AttributeValueMemberS{Value: p.Location},
		":start_date":   &types.AttributeValueMemberS{Value: p.StartDate},
		":requirements": &types.AttributeValueMemberS{Value: p.Requirements},
		":updated_at":   &types.AttributeValueMemberS{Value: formatTime(p.UpdatedAt)},
		":client_id":    &types.AttributeValueMemberS{Value: p.ClientID},
	}
	names := map[string]string{
		"#title":        "title",
		"#project_type": "project_type",
		"#sub_service":  "sub_service",
		"#style":        "style",
		"#description":  "description",
		"#location":     "location",
		"#start_date":   "start_date",
		"#requirements": "requirements",
		"#updated_at":   "updated_at",
		"#client_id":    "client_id",
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: p.ID},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #client_id = :client_id"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Project{}, nil
	}
	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func toProjectItem(p entities.Project) projectItem {
	it := projectItem{
		ID:           p.ID,
		ClientID:     p.ClientID,
		Title:        p.Title,
		ProjectType:  p.ProjectType,
		SubService:   p.SubService,
		Style:        p.Style,
		Description:  p.Description,
		Location:     p.Location,
		StartDate:    p.StartDate,
		Requirements: p.Requirements,
		Status:       string(p.Status),
		CreatedAt:    formatTime(p.CreatedAt),
		UpdatedAt:    formatTime(p.UpdatedAt),
	}
	for _, ev := range p.Timeline {
		it.Timeline = append(it.Timeline, timelineEventItem{Date: ev.Date, Title: ev.Title, Status: string(ev.Status)})
	}
	for _, f := range p.Files {
		it.Files = append(it.Files, projectFileItem{Name: f.Name, URL: f.URL, Size: f.Size})
	}
	return it
}

func fromProjectItem(it projectItem) entities.Project {
	p := entities.Project{
		ID:           it.ID,
		ClientID:     it.ClientID,
		Title:        it.Title,
		ProjectType:  it.ProjectType,
		SubService:   it.SubService,
		Style:        it.Style,
		Description:  it.Description,
		Location:     it.Location,
		StartDate:    it.StartDate,
		Requirements: it.Requirements,
		Status:       entities.ProjectStatus(it.Status),
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
	for _, ev := range it.Timeline {
		p.Timeline = append(p.Timeline, entities.TimelineEvent{Date: ev.Date, Title: ev.Title, Status: entities.MilestoneStatus(ev.Status)})
	}
	for _, f := range it.Files {
		p.Files = append(p.Files, entities.ProjectFile{Name: f.Name, URL: f.URL, Size: f.Size})
	}
	return p
}
