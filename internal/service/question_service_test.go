package service

import (
	"testing"

	"pretty_exam_backend/internal/model"
	"pretty_exam_backend/internal/util"
	"pretty_exam_backend/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionService_CreateRoundTrip(t *testing.T) {
	db := newTestDB(t)

	category, err := newCategorySvc(db).Create(CategoryRequest{Name: "Math"})
	require.NoError(t, err)

	id := int64(category.ID)
	created, err := newQuestionSvc(db).Create(mcInput("¿Cuánto es 2+2?", &id))
	require.NoError(t, err)

	fetched, err := newQuestionSvc(db).GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "¿Cuánto es 2+2?", fetched.Text)
	assert.Equal(t, model.QuestionTypeMultipleChoice, fetched.Type)
	assert.Equal(t, model.QuestionSourceManual, fetched.Source)
	require.NotNil(t, fetched.Category)
	assert.Equal(t, "Math", fetched.Category.Name)
	require.Len(t, fetched.Options, 3)

	correct := 0
	for _, opt := range fetched.Options {
		assert.NotZero(t, opt.ID)
		assert.Equal(t, created.ID, opt.QuestionID)
		if opt.IsCorrect {
			correct++
		}
	}
	assert.Equal(t, 1, correct)
}

func TestQuestionService_CreateMissingCategoryRollsBack(t *testing.T) {
	db := newTestDB(t)
	svc := newQuestionSvc(db)

	id := int64(9999)
	_, err := svc.Create(mcInput("¿Pregunta sin categoría válida?", &id))
	requireAppError(t, err, util.TypeNotFound)

	var questions, options int64
	require.NoError(t, db.Model(&model.Question{}).Count(&questions).Error)
	require.NoError(t, db.Model(&model.Option{}).Count(&options).Error)
	assert.Zero(t, questions)
	assert.Zero(t, options)
}

func TestQuestionService_CreateInvalid(t *testing.T) {
	db := newTestDB(t)
	svc := newQuestionSvc(db)

	_, err := svc.Create(validation.QuestionInput{Text: "corto", Type: "essay"})
	appErr := requireAppError(t, err, util.TypeValidation)
	assert.NotEmpty(t, appErr.Messages)
}

func TestQuestionService_SearchEmptyReturnsAllNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := newQuestionSvc(db)

	first := seedQuestion(t, db, "¿Primera pregunta del banco?")
	second := seedQuestion(t, db, "¿Segunda pregunta del banco?")
	third := seedQuestion(t, db, "¿Tercera pregunta del banco?")

	results, err := svc.Search("", nil)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, third.ID, results[0].ID)
	assert.Equal(t, second.ID, results[1].ID)
	assert.Equal(t, first.ID, results[2].ID)
	assert.NotEmpty(t, results[0].Options)
}

func TestQuestionService_SearchAccentInsensitive(t *testing.T) {
	db := newTestDB(t)
	svc := newQuestionSvc(db)

	target := seedQuestion(t, db, "¿Qué estudian las matemáticas discretas?")
	seedQuestion(t, db, "¿Cuál es la capital de Francia?")

	for _, term := range []string{"matematicas", "MATEMÁTICAS", "  matemáticas "} {
		results, err := svc.Search(term, nil)
		require.NoError(t, err)
		require.Len(t, results, 1, "term %q", term)
		assert.Equal(t, target.ID, results[0].ID)
	}
}

func TestQuestionService_SearchMatchesCategoryName(t *testing.T) {
	db := newTestDB(t)

	category, err := newCategorySvc(db).Create(CategoryRequest{Name: "Matemáticas"})
	require.NoError(t, err)

	id := int64(category.ID)
	svc := newQuestionSvc(db)
	inCategory, err := svc.Create(mcInput("¿Cuánto es 2+2?", &id))
	require.NoError(t, err)
	seedQuestion(t, db, "¿Cuál es la capital de Francia?")

	results, err := svc.Search("matematicas", nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, inCategory.ID, results[0].ID)
}

func TestQuestionService_SearchWithCategoryFilter(t *testing.T) {
	db := newTestDB(t)
	catSvc := newCategorySvc(db)
	svc := newQuestionSvc(db)

	math, err := catSvc.Create(CategoryRequest{Name: "Matemáticas"})
	require.NoError(t, err)
	history, err := catSvc.Create(CategoryRequest{Name: "Historia"})
	require.NoError(t, err)

	mathID, historyID := int64(math.ID), int64(history.ID)
	mathQuestion, err := svc.Create(mcInput("¿Cuánto es 2+2?", &mathID))
	require.NoError(t, err)
	_, err = svc.Create(mcInput("¿Quién descubrió América?", &historyID))
	require.NoError(t, err)

	results, err := svc.Search("", []uint{math.ID})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, mathQuestion.ID, results[0].ID)

	// With a category filter active the term matches question text only.
	results, err = svc.Search("america", []uint{math.ID})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestQuestionService_UpdatePartial(t *testing.T) {
	db := newTestDB(t)
	svc := newQuestionSvc(db)

	question := seedQuestion(t, db, "¿Pregunta original del banco?")

	updated, err := svc.Update(question.ID, validation.QuestionUpdateInput{
		Text: strPtr("¿Cuál es la fórmula del ácido sulfúrico?"),
	})
	require.NoError(t, err)
	assert.Equal(t, "¿Cuál es la fórmula del ácido sulfúrico?", updated.Text)
	require.Len(t, updated.Options, 3)

	// The folded search column follows the new text.
	results, err := svc.Search("acido sulfurico", nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, question.ID, results[0].ID)
}

func TestQuestionService_UpdateEmptyPayload(t *testing.T) {
	db := newTestDB(t)
	svc := newQuestionSvc(db)
	question := seedQuestion(t, db, "¿Pregunta original del banco?")

	_, err := svc.Update(question.ID, validation.QuestionUpdateInput{})
	appErr := requireAppError(t, err, util.TypeValidation)
	assert.Contains(t, appErr.Messages[0], "No hay campos")
}

func TestQuestionService_UpdateReplacesOptions(t *testing.T) {
	db := newTestDB(t)
	svc := newQuestionSvc(db)

	question := seedQuestion(t, db, "¿De qué color es el cielo despejado?")
	require.Len(t, question.Options, 3)
	keptID := question.Options[0].ID // "Opción A"

	// An already-recorded answer referencing an option that will be removed.
	exam := seedExam(t, db, "Parcial", int64(question.ID))
	result := model.Result{ExamID: exam.ID}
	require.NoError(t, db.Create(&result).Error)
	require.NoError(t, db.Create(&model.UserAnswer{
		ResultID:   result.ID,
		QuestionID: question.ID,
		OptionID:   question.Options[1].ID,
		IsCorrect:  question.Options[1].IsCorrect,
	}).Error)

	updated, err := svc.Update(question.ID, validation.QuestionUpdateInput{
		Options: []validation.OptionInput{
			{Text: "opción a", IsCorrect: boolPtr(false)},
			{Text: "Opción Z", IsCorrect: boolPtr(true)},
		},
	})
	require.NoError(t, err)
	require.Len(t, updated.Options, 2)

	byText := make(map[string]model.Option, 2)
	for _, opt := range updated.Options {
		byText[opt.Text] = opt
	}
	matched, ok := byText["opción a"]
	require.True(t, ok)
	assert.Equal(t, keptID, matched.ID, "text match keeps the option id")
	assert.False(t, matched.IsCorrect)
	assert.True(t, byText["Opción Z"].IsCorrect)

	// The answer pointed at a removed option and went with it.
	var answers int64
	require.NoError(t, db.Model(&model.UserAnswer{}).Count(&answers).Error)
	assert.Zero(t, answers)
}

func TestQuestionService_UpdateTypeChangeValidatesOptions(t *testing.T) {
	db := newTestDB(t)
	svc := newQuestionSvc(db)
	question := seedQuestion(t, db, "¿El agua hierve a cien grados?")

	// Three options do not fit true_false; the effective type governs.
	_, err := svc.Update(question.ID, validation.QuestionUpdateInput{
		Type: strPtr(model.QuestionTypeTrueFalse),
		Options: []validation.OptionInput{
			{Text: "Verdadero", IsCorrect: boolPtr(true)},
			{Text: "Falso", IsCorrect: boolPtr(false)},
			{Text: "Depende", IsCorrect: boolPtr(false)},
		},
	})
	appErr := requireAppError(t, err, util.TypeValidation)
	assert.Contains(t, appErr.Messages[0], "exactamente 2 opciones")
}

func TestQuestionService_Delete(t *testing.T) {
	db := newTestDB(t)
	svc := newQuestionSvc(db)
	question := seedQuestion(t, db, "¿Pregunta que será eliminada?")

	require.NoError(t, svc.Delete(question.ID))

	_, err := svc.GetByID(question.ID)
	requireAppError(t, err, util.TypeNotFound)

	var options int64
	require.NoError(t, db.Model(&model.Option{}).Where("question_id = ?", question.ID).Count(&options).Error)
	assert.Zero(t, options)

	requireAppError(t, svc.Delete(question.ID), util.TypeNotFound)
}

func TestQuestionService_GetByCategory(t *testing.T) {
	db := newTestDB(t)

	category, err := newCategorySvc(db).Create(CategoryRequest{Name: "Historia"})
	require.NoError(t, err)

	id := int64(category.ID)
	svc := newQuestionSvc(db)
	inCategory, err := svc.Create(mcInput("¿Quién descubrió América?", &id))
	require.NoError(t, err)
	seedQuestion(t, db, "¿Pregunta sin categoría asignada?")

	questions, err := svc.GetByCategory(category.ID)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, inCategory.ID, questions[0].ID)
}
