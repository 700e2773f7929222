// internal/store/search.go
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"

	"support-chatbot/internal/models"
)

// DefaultTurnIndex is the Elasticsearch index used when none is configured.
const DefaultTurnIndex = "chatbot-conversations"

// TurnIndex mirrors conversation turns into Elasticsearch so support staff
// can search past conversations by free text.
type TurnIndex struct {
	client *elasticsearch.Client
	index  string
}

// NewTurnIndex wraps an existing Elasticsearch client.
func NewTurnIndex(client *elasticsearch.Client, index string) *TurnIndex {
	if index == "" {
		index = DefaultTurnIndex
	}
	return &TurnIndex{client: client, index: index}
}

// IndexTurn writes one turn into the search index.
func (t *TurnIndex) IndexTurn(ctx context.Context, turn models.ConversationTurn) error {
	payload, err := json.Marshal(turn)
	if err != nil {
		return fmt.Errorf("failed to marshal turn: %w", err)
	}

	res, err := t.client.Index(
		t.index,
		bytes.NewReader(payload),
		t.client.Index.WithDocumentID(turn.ID),
		t.client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to index turn: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("failed to index turn: %s", res.Status())
	}
	return nil
}

// Search finds archived turns matching the query text. An empty userID
// searches across all users.
func (t *TurnIndex) Search(ctx context.Context, userID, query string, size int) ([]models.ConversationTurn, error) {
	if size <= 0 {
		size = 20
	}

	must := []map[string]interface{}{
		{"match": map[string]interface{}{"message": query}},
	}
	if userID != "" {
		must = append(must, map[string]interface{}{
			"term": map[string]interface{}{"userId.keyword": userID},
		})
	}

	body := map[string]interface{}{
		"size": size,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{"must": must},
		},
		"sort": []map[string]interface{}{
			{"timestamp": map[string]interface{}{"order": "desc"}},
		},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, fmt.Errorf("failed to encode search query: %w", err)
	}

	res, err := t.client.Search(
		t.client.Search.WithContext(ctx),
		t.client.Search.WithIndex(t.index),
		t.client.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("failed to execute search: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source models.ConversationTurn `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	turns := make([]models.ConversationTurn, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		turns = append(turns, hit.Source)
	}
	return turns, nil
}
