package service

import (
	"fmt"
	"strings"
	"testing"

	"pretty_exam_backend/internal/model"
	"pretty_exam_backend/internal/repository"
	"pretty_exam_backend/internal/util"
	"pretty_exam_backend/internal/validation"
	"pretty_exam_backend/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory store named after the test, with
// foreign keys on so the cascades under test behave as in production.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newCategorySvc(db *gorm.DB) *CategoryService {
	return NewCategoryService(repository.NewCategoryRepository(db))
}

func newQuestionSvc(db *gorm.DB) *QuestionService {
	return NewQuestionService(repository.NewQuestionRepository(db), db, nil)
}

func newExamSvc(db *gorm.DB) *ExamService {
	return NewExamService(repository.NewExamRepository(db), db)
}

func newResultSvc(db *gorm.DB) *ResultService {
	return NewResultService(repository.NewResultRepository(db), db)
}

func boolPtr(b bool) *bool    { return &b }
func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }
func int64Ptr(v int64) *int64 { return &v }

func requireAppError(t *testing.T, err error, wantType string) *util.AppError {
	t.Helper()
	require.Error(t, err)
	var appErr *util.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, wantType, appErr.Type)
	return appErr
}

func mcInput(text string, categoryID *int64) validation.QuestionInput {
	return validation.QuestionInput{
		Text:       text,
		Type:       model.QuestionTypeMultipleChoice,
		CategoryID: categoryID,
		Options: []validation.OptionInput{
			{Text: "Opción A", IsCorrect: boolPtr(true)},
			{Text: "Opción B", IsCorrect: boolPtr(false)},
			{Text: "Opción C", IsCorrect: boolPtr(false)},
		},
	}
}

func seedQuestion(t *testing.T, db *gorm.DB, text string) *model.Question {
	t.Helper()
	question, err := newQuestionSvc(db).Create(mcInput(text, nil))
	require.NoError(t, err)
	return question
}

func seedExam(t *testing.T, db *gorm.DB, name string, questionIDs ...int64) *model.Exam {
	t.Helper()
	exam, err := newExamSvc(db).Create(validation.ExamInput{Name: name, QuestionIDs: questionIDs})
	require.NoError(t, err)
	return exam
}
