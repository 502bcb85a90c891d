package opensearch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/acadify/acadify-api/internal/config"
	"github.com/acadify/acadify-api/internal/domain"
)

// Repository maintains the per-tenant student directory index used for
// free-text search on the students list.
type Repository interface {
	Index(ctx context.Context, student *domain.Student) error
	Remove(ctx context.Context, tenantID, studentID string) error
	Search(ctx context.Context, filter *domain.StudentFilter) ([]domain.Student, error)
}

type repository struct {
	client *opensearch.Client
	config *config.OpenSearchConfig
}

func NewRepository(client *opensearch.Client, config *config.OpenSearchConfig) Repository {
	return &repository{
		client: client,
		config: config,
	}
}

func (r *repository) Index(ctx context.Context, student *domain.Student) error {
	data, err := json.Marshal(student)
	if err != nil {
		return fmt.Errorf("failed to marshal student: %w", err)
	}

	req := opensearchapi.IndexRequest{
		Index:      r.config.GetStudentIndexName(student.TenantID),
		DocumentID: student.ID,
		Body:       strings.NewReader(string(data)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}

	return nil
}

func (r *repository) Remove(ctx context.Context, tenantID, studentID string) error {
	req := opensearchapi.DeleteRequest{
		Index:      r.config.GetStudentIndexName(tenantID),
		DocumentID: studentID,
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	defer res.Body.Close()

	// A missing document is fine; the row may predate the index.
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("error deleting document: %s", res.String())
	}

	return nil
}

func (r *repository) Search(ctx context.Context, filter *domain.StudentFilter) ([]domain.Student, error) {
	query := r.buildSearchQuery(filter)

	queryJSON, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	req := opensearchapi.SearchRequest{
		Index: []string{r.config.GetStudentIndexName(filter.TenantID)},
		Body:  strings.NewReader(string(queryJSON)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		if res.StatusCode == 404 {
			return []domain.Student{}, nil
		}
		return nil, fmt.Errorf("search request failed: %s", res.String())
	}

	var searchResult struct {
		Hits struct {
			Hits []struct {
				Source domain.Student `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(res.Body).Decode(&searchResult); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	var students []domain.Student
	for _, hit := range searchResult.Hits.Hits {
		students = append(students, hit.Source)
	}

	return students, nil
}

func (r *repository) buildSearchQuery(filter *domain.StudentFilter) map[string]any {
	must := make([]map[string]any, 0)

	if filter.Query != "" {
		must = append(must, map[string]any{
			"multi_match": map[string]any{
				"query":  filter.Query,
				"fields": []string{"name", "email", "phone"},
			},
		})
	}
	if filter.BranchID != "" {
		must = append(must, createTermQuery("branch_id", filter.BranchID))
	}
	if filter.Status != "" {
		must = append(must, createTermQuery("status", filter.Status))
	}

	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": must,
			},
		},
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query["from"] = (filter.Page - 1) * filter.PageSize
		query["size"] = filter.PageSize
	}

	query["sort"] = []map[string]any{
		{
			"name.keyword": map[string]any{
				"order": "asc",
			},
		},
	}

	return query
}

func createTermQuery(field, value string) map[string]any {
	return map[string]any{
		"term": map[string]any{
			field: value,
		},
	}
}
