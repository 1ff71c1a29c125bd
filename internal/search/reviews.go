package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/reviewmarket/review_dashboard/internal/models"
)

// Index maintains the full-text review index. The document identifier is
// the review_id, so re-indexing an updated review overwrites its document.
type Index struct {
	ES   *elasticsearch.Client
	Name string
}

func NewIndex(es *elasticsearch.Client, name string) *Index {
	return &Index{ES: es, Name: name}
}

func (i *Index) IndexReview(ctx context.Context, review models.Review) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(review); err != nil {
		return fmt.Errorf("search: encode review: %w", err)
	}

	res, err := i.ES.Index(
		i.Name,
		&buf,
		i.ES.Index.WithDocumentID(strconv.Itoa(review.ReviewID)),
		i.ES.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("search: index review: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("search: index review: %s", res.Status())
	}
	return nil
}

func (i *Index) DeleteReview(ctx context.Context, reviewID int) error {
	res, err := i.ES.Delete(
		i.Name,
		strconv.Itoa(reviewID),
		i.ES.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("search: delete review: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("search: delete review: %s", res.Status())
	}
	return nil
}

func (i *Index) Search(ctx context.Context, query string) ([]models.Review, error) {
	body := map[string]interface{}{
		"query": map[string]interface{}{
			"match": map[string]interface{}{
				"content": map[string]interface{}{
					"query":     query,
					"fuzziness": "AUTO",
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, fmt.Errorf("search: encode query: %w", err)
	}

	res, err := i.ES.Search(
		i.ES.Search.WithContext(ctx),
		i.ES.Search.WithIndex(i.Name),
		i.ES.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, fmt.Errorf("search: query failed: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("search: query failed: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Hits []struct {
				Source models.Review `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, err
	}

	reviews := make([]models.Review, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		reviews[i] = hit.Source
	}
	return reviews, nil
}
