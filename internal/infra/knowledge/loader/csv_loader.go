// Package loader turns the exercise and food CSV datasets into knowledge documents.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"fitbot/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const missingValue = "N/A"

// documentNamespace seeds deterministic document IDs so re-ingestion upserts.
var documentNamespace = uuid.MustParse("5b0d1f64-7a55-4c0e-9a43-2f7f6f0e1c11")

// Exercise dataset columns (megaGym format)
var exerciseColumns = []string{"Title", "Desc", "Type", "BodyPart", "Equipment", "Level"}

// Food dataset columns (nutrition facts format)
var foodColumns = []string{"name", "serving_size", "calories", "protein", "fat", "carbohydrate", "fiber"}

// Result holds the parsed documents and the number of skipped rows
type Result struct {
	Documents []*entity.KnowledgeDocument
	Skipped   int
}

// LoadExercises parses the exercise dataset.
// Rows without a title or description are skipped.
func LoadExercises(r io.Reader) (*Result, error) {
	return load(r, "exercises", exerciseColumns, []string{"Title", "Desc"}, exerciseDocument)
}

// LoadFoods parses the food dataset.
// Rows without a name are skipped.
func LoadFoods(r io.Reader) (*Result, error) {
	return load(r, "foods", foodColumns, []string{"name"}, foodDocument)
}

type row map[string]string

func (r row) get(column string) string {
	if v := strings.TrimSpace(r[column]); v != "" {
		return v
	}

	return missingValue
}

func load(
	r io.Reader,
	dataset string,
	columns []string,
	required []string,
	build func(row) *entity.KnowledgeDocument,
) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s header", dataset)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, column := range required {
		if _, ok := index[column]; !ok {
			return nil, errors.Errorf("invalid %s format: missing column %q", dataset, column)
		}
	}

	result := &Result{}
	lineNum := 1 // header

	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, errors.Wrapf(readErr, "invalid %s format at line %d", dataset, lineNum+1)
		}
		lineNum++

		values := make(row, len(columns))
		for _, column := range columns {
			if i, ok := index[column]; ok && i < len(record) {
				values[column] = record[i]
			}
		}

		if hasMissing(values, required) {
			result.Skipped++
			continue
		}

		result.Documents = append(result.Documents, build(values))
	}

	return result, nil
}

func hasMissing(values row, required []string) bool {
	for _, column := range required {
		if strings.TrimSpace(values[column]) == "" {
			return true
		}
	}

	return false
}

func exerciseDocument(r row) *entity.KnowledgeDocument {
	title := r.get("Title")
	content := fmt.Sprintf("%s targets %s, type: %s, equipment: %s, level: %s. Description: %s",
		title, r.get("BodyPart"), r.get("Type"), r.get("Equipment"), r.get("Level"), r.get("Desc"))

	return &entity.KnowledgeDocument{
		ID:         documentID(entity.CollectionExercises, title, content),
		Collection: entity.CollectionExercises,
		Title:      title,
		Content:    content,
		Metadata: map[string]string{
			"body_part": r.get("BodyPart"),
			"equipment": r.get("Equipment"),
			"level":     r.get("Level"),
			"type":      r.get("Type"),
		},
	}
}

func foodDocument(r row) *entity.KnowledgeDocument {
	name := r.get("name")
	content := fmt.Sprintf("%s: %s calories, %sg protein, %sg fat, %sg carbs, %sg fiber per %s.",
		name, r.get("calories"), grams(r.get("protein")), grams(r.get("fat")),
		grams(r.get("carbohydrate")), grams(r.get("fiber")), r.get("serving_size"))

	return &entity.KnowledgeDocument{
		ID:         documentID(entity.CollectionFoods, name, content),
		Collection: entity.CollectionFoods,
		Title:      name,
		Content:    content,
		Metadata: map[string]string{
			"calories":     r.get("calories"),
			"protein":      r.get("protein"),
			"fat":          r.get("fat"),
			"carbohydrate": r.get("carbohydrate"),
		},
	}
}

// grams drops a trailing gram unit so the template does not repeat it.
func grams(v string) string {
	return strings.TrimSpace(strings.TrimSuffix(v, "g"))
}

func documentID(collection entity.Collection, title, content string) string {
	return uuid.NewSHA1(documentNamespace, []byte(collection.String()+"\x00"+title+"\x00"+content)).String()
}
