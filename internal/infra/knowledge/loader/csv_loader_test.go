package loader

import (
	"strings"
	"testing"

	"fitbot/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadExercises(t *testing.T) {
	exercisesCSV := `,Title,Desc,Type,BodyPart,Equipment,Level,Rating,RatingDesc
0,Partner plank band row,"The partner plank band row is an abdominal exercise",Strength,Abdominals,Bands,Intermediate,0.0,
1,,Missing title row,Strength,Abdominals,Bands,Beginner,,
2,Banded crunch isometric hold,,Strength,Abdominals,Bands,Intermediate,,
3,Landmine twist,Rotational core movement,Strength,Abdominals,,Beginner,8.7,Average
`

	result, err := LoadExercises(strings.NewReader(exercisesCSV))
	require.NoError(t, err)

	require.Len(t, result.Documents, 2)
	assert.Equal(t, 2, result.Skipped)

	first := result.Documents[0]
	assert.Equal(t, entity.CollectionExercises, first.Collection)
	assert.Equal(t, "Partner plank band row", first.Title)
	assert.Equal(t,
		"Partner plank band row targets Abdominals, type: Strength, equipment: Bands, level: Intermediate. "+
			"Description: The partner plank band row is an abdominal exercise",
		first.Content)
	assert.Equal(t, "Intermediate", first.Metadata["level"])

	assert.Contains(t, result.Documents[1].Content, "equipment: N/A")
}

func TestLoadFoods(t *testing.T) {
	foodsCSV := `,name,serving_size,calories,total_fat,protein,fat,carbohydrate,fiber
0,Cornstarch,100 g,381,0.1g,0.26 g,0.05 g,91.27 g,0.9 g
1,,100 g,10,0g,0 g,0 g,0 g,0 g
2,Lentils,100 g,116,0.4g,9.02 g,0.38 g,20.13 g,7.9 g
`

	result, err := LoadFoods(strings.NewReader(foodsCSV))
	require.NoError(t, err)

	require.Len(t, result.Documents, 2)
	assert.Equal(t, 1, result.Skipped)

	lentils := result.Documents[1]
	assert.Equal(t, entity.CollectionFoods, lentils.Collection)
	assert.Equal(t, "Lentils: 116 calories, 9.02g protein, 0.38g fat, 20.13g carbs, 7.9g fiber per 100 g.", lentils.Content)
}

func TestLoad_DeterministicIDs(t *testing.T) {
	foodsCSV := "name,calories\nOats,389\n"

	first, err := LoadFoods(strings.NewReader(foodsCSV))
	require.NoError(t, err)
	second, err := LoadFoods(strings.NewReader(foodsCSV))
	require.NoError(t, err)

	assert.Equal(t, first.Documents[0].ID, second.Documents[0].ID)
	assert.NotEmpty(t, first.Documents[0].ID)
}

func TestLoad_MissingRequiredColumn(t *testing.T) {
	_, err := LoadExercises(strings.NewReader("Name,Type\nSquat,Strength\n"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), `missing column "Title"`)
}

func TestLoad_EmptyInput(t *testing.T) {
	_, err := LoadFoods(strings.NewReader(""))

	assert.Error(t, err)
}
