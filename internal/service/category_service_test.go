package service

import (
	"testing"

	"pretty_exam_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_Create(t *testing.T) {
	db := newTestDB(t)
	svc := newCategorySvc(db)

	category, err := svc.Create(CategoryRequest{Name: "  Matemáticas  "})
	require.NoError(t, err)
	assert.NotZero(t, category.ID)
	assert.Equal(t, "Matemáticas", category.Name)
	assert.Equal(t, "matematicas", category.NameNormalized)
}

func TestCategoryService_CreateInvalidName(t *testing.T) {
	db := newTestDB(t)
	svc := newCategorySvc(db)

	_, err := svc.Create(CategoryRequest{Name: "Cat@#$"})
	appErr := requireAppError(t, err, util.TypeValidation)
	assert.Contains(t, appErr.Messages[0], "solo puede contener")
}

func TestCategoryService_CreateDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := newCategorySvc(db)

	_, err := svc.Create(CategoryRequest{Name: "Historia"})
	require.NoError(t, err)

	// Same name modulo case, accents and surrounding whitespace.
	for _, name := range []string{"Historia", " historia ", "HISTORIA"} {
		_, err = svc.Create(CategoryRequest{Name: name})
		appErr := requireAppError(t, err, util.TypeConflict)
		assert.Contains(t, appErr.Messages[0], "Ya existe una categoría")
	}
}

func TestCategoryService_GetAllOrdered(t *testing.T) {
	db := newTestDB(t)
	svc := newCategorySvc(db)

	for _, name := range []string{"Historia", "Arte", "Ciencias"} {
		_, err := svc.Create(CategoryRequest{Name: name})
		require.NoError(t, err)
	}

	categories, err := svc.GetAll()
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Arte", categories[0].Name)
	assert.Equal(t, "Ciencias", categories[1].Name)
	assert.Equal(t, "Historia", categories[2].Name)
}

func TestCategoryService_Update(t *testing.T) {
	db := newTestDB(t)
	svc := newCategorySvc(db)

	historia, err := svc.Create(CategoryRequest{Name: "Historia"})
	require.NoError(t, err)
	_, err = svc.Create(CategoryRequest{Name: "Arte"})
	require.NoError(t, err)

	t.Run("rename", func(t *testing.T) {
		updated, err := svc.Update(historia.ID, CategoryRequest{Name: "Historia Universal"})
		require.NoError(t, err)
		assert.Equal(t, "Historia Universal", updated.Name)
		assert.Equal(t, "historia universal", updated.NameNormalized)
	})

	t.Run("own name is not a conflict", func(t *testing.T) {
		_, err := svc.Update(historia.ID, CategoryRequest{Name: "historia universal"})
		require.NoError(t, err)
	})

	t.Run("colliding with another category", func(t *testing.T) {
		_, err := svc.Update(historia.ID, CategoryRequest{Name: "arte"})
		requireAppError(t, err, util.TypeConflict)
	})

	t.Run("missing category", func(t *testing.T) {
		_, err := svc.Update(9999, CategoryRequest{Name: "Geografía"})
		requireAppError(t, err, util.TypeNotFound)
	})
}

func TestCategoryService_Delete(t *testing.T) {
	db := newTestDB(t)
	svc := newCategorySvc(db)

	category, err := svc.Create(CategoryRequest{Name: "Temporal"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(category.ID))
	requireAppError(t, svc.Delete(category.ID), util.TypeNotFound)
}

func TestCategoryService_DeleteWithQuestions(t *testing.T) {
	db := newTestDB(t)
	svc := newCategorySvc(db)

	category, err := svc.Create(CategoryRequest{Name: "Matemáticas"})
	require.NoError(t, err)

	id := int64(category.ID)
	_, err = newQuestionSvc(db).Create(mcInput("¿Cuánto es dos más dos?", &id))
	require.NoError(t, err)

	err = svc.Delete(category.ID)
	appErr := requireAppError(t, err, util.TypeDelete)
	assert.Contains(t, appErr.Messages[0], "tiene preguntas asociadas")
}

func TestCategoryService_NameExists(t *testing.T) {
	db := newTestDB(t)
	svc := newCategorySvc(db)

	created, err := svc.Create(CategoryRequest{Name: "Matemáticas"})
	require.NoError(t, err)

	match, exists, err := svc.NameExists("matematicas", 0)
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, created.ID, match.ID)

	_, exists, err = svc.NameExists("Química", 0)
	require.NoError(t, err)
	assert.False(t, exists)

	_, exists, err = svc.NameExists("Matemáticas", created.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}
