package classify

import (
	"context"
	"fmt"

	"github.com/philippgille/chromem-go"

	"specmaster/internal/catalog"
)

// ChromemMatcher matches lines against label embeddings held in an
// in-process chromem collection. Label embeddings are computed once at
// construction; per-line queries only embed the query text.
type ChromemMatcher struct {
	collection *chromem.Collection
}

// NewChromemMatcher embeds every label variant of every catalog parameter
// into a fresh collection. The embedding function typically points at an
// OpenAI-compatible endpoint (chromem.NewEmbeddingFuncOpenAICompat).
func NewChromemMatcher(ctx context.Context, cat *catalog.Catalog, embed chromem.EmbeddingFunc) (*ChromemMatcher, error) {
	db := chromem.NewDB()
	col, err := db.CreateCollection("param-labels", nil, embed)
	if err != nil {
		return nil, fmt.Errorf("create label collection: %w", err)
	}

	var docs []chromem.Document
	for _, p := range cat.Parameters() {
		for i, label := range p.Labels {
			docs = append(docs, chromem.Document{
				ID:       fmt.Sprintf("%s/%d", p.ID, i),
				Metadata: map[string]string{"param": p.ID},
				Content:  label,
			})
		}
	}
	if err := col.AddDocuments(ctx, docs, 4); err != nil {
		return nil, fmt.Errorf("embed catalog labels: %w", err)
	}
	return &ChromemMatcher{collection: col}, nil
}

// BestMatch returns the parameter whose closest label embedding has the
// highest cosine similarity to the line.
func (m *ChromemMatcher) BestMatch(ctx context.Context, line string) (string, float64, error) {
	res, err := m.collection.Query(ctx, line, 1, nil, nil)
	if err != nil {
		return "", 0, fmt.Errorf("query label collection: %w", err)
	}
	if len(res) == 0 {
		return "", 0, nil
	}
	return res[0].Metadata["param"], float64(res[0].Similarity), nil
}
