package entity

// Collection identifies one logical knowledge base collection of the vector index.
type Collection string

const (
	// CollectionExercises holds exercise descriptions.
	CollectionExercises Collection = "exercises"
	// CollectionFoods holds food nutrient descriptions.
	CollectionFoods Collection = "nutrients"
)

// Collections lists every collection the retriever queries.
var Collections = []Collection{CollectionExercises, CollectionFoods}

// String returns the string representation of the Collection.
func (c Collection) String() string {
	return string(c)
}

// IsValid checks if the Collection is a valid value.
func (c Collection) IsValid() bool {
	return c == CollectionExercises || c == CollectionFoods
}

// KnowledgeDocument is one embedded entry of the knowledge base.
type KnowledgeDocument struct {
	ID         string
	Collection Collection
	Title      string
	Content    string
	Metadata   map[string]string
	Embedding  []float32
}

// Snippet is a retrieved document text with its similarity score.
type Snippet struct {
	Collection Collection `json:"collection"`
	Text       string     `json:"text"`
	Score      float64    `json:"score"`
}

// RetrievedContext holds the grounding snippets of one request, ordered by relevance.
type RetrievedContext struct {
	Exercises []Snippet
	Foods     []Snippet
}

// IsDegraded reports whether at least one collection returned nothing.
func (c *RetrievedContext) IsDegraded() bool {
	return len(c.Exercises) == 0 || len(c.Foods) == 0
}

// GeneratedPlan is the text returned to the caller: a three-section plan or a refusal.
type GeneratedPlan struct {
	Text    string
	Gated   bool
	Warning string
}

// Empty reports whether the given collection returned no snippets.
func (c *RetrievedContext) Empty(collection Collection) bool {
	switch collection {
	case CollectionExercises:
		return len(c.Exercises) == 0
	case CollectionFoods:
		return len(c.Foods) == 0
	default:
		return true
	}
}
