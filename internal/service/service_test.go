package service

import (
	"testing"
	"time"

	"quiz_master_backend/internal/model"
	"quiz_master_backend/internal/repository"
	"quiz_master_backend/pkg/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func intPtr(n int) *int { return &n }

// seedQuiz 建一条 科目->章节->测验 链，并按给定正确选项生成题目
func seedQuiz(t *testing.T, db *gorm.DB, title string, correctOptions ...int) *model.Quiz {
	t.Helper()

	subject := &model.Subject{Name: title + " Subject"}
	if err := db.Create(subject).Error; err != nil {
		t.Fatalf("seed subject: %v", err)
	}
	chapter := &model.Chapter{Name: title + " Chapter", SubjectID: subject.ID}
	if err := db.Create(chapter).Error; err != nil {
		t.Fatalf("seed chapter: %v", err)
	}
	quiz := &model.Quiz{
		Title:     title,
		ChapterID: chapter.ID,
		Date:      time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Duration:  30,
	}
	if err := db.Create(quiz).Error; err != nil {
		t.Fatalf("seed quiz: %v", err)
	}

	for i, correct := range correctOptions {
		question := &model.Question{
			QuizID:        quiz.ID,
			QuestionText:  title + " question",
			Option1:       "A",
			Option2:       "B",
			Option3:       "C",
			Option4:       "D",
			CorrectOption: correct,
		}
		if err := db.Create(question).Error; err != nil {
			t.Fatalf("seed question %d: %v", i, err)
		}
	}
	return quiz
}

func seedUser(t *testing.T, db *gorm.DB, username, fullName string) *model.User {
	t.Helper()

	user := &model.User{
		Username: username,
		Password: "irrelevant",
		FullName: fullName,
		DOB:      time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		Role:     model.RoleUser,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func newSessionService(db *gorm.DB) *SessionService {
	return NewSessionService(
		repository.NewQuizRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewProgressRepository(db),
	)
}

func newContentService(db *gorm.DB) *ContentService {
	return NewContentService(
		repository.NewSubjectRepository(db),
		repository.NewChapterRepository(db),
	)
}

func newQuizService(db *gorm.DB) *QuizService {
	return NewQuizService(
		repository.NewChapterRepository(db),
		repository.NewQuizRepository(db),
		repository.NewQuestionRepository(db),
	)
}

func newDashboardService(db *gorm.DB) *DashboardService {
	return NewDashboardService(
		repository.NewSubjectRepository(db),
		repository.NewChapterRepository(db),
		repository.NewQuizRepository(db),
		repository.NewProgressRepository(db),
	)
}

func countProgress(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var n int64
	if err := db.Model(&model.UserQuizProgress{}).Count(&n).Error; err != nil {
		t.Fatalf("count progress: %v", err)
	}
	return n
}
