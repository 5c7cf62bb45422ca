package service

import (
	"testing"

	"quiz_master_backend/internal/model"
	"quiz_master_backend/internal/repository"
)

func TestGetUserProgress(t *testing.T) {
	db := newTestDB(t)
	analytics := NewAnalyticsService(repository.NewProgressRepository(db))
	session := newSessionService(db)
	user := seedUser(t, db, "student1", "Student One")

	quiz := seedQuiz(t, db, "Report Quiz", 1)

	var question model.Question
	if err := db.Where("quiz_id = ?", quiz.ID).First(&question).Error; err != nil {
		t.Fatalf("load question: %v", err)
	}
	if _, err := session.SubmitQuiz(user.ID, quiz.ID, model.AnswerSheet{question.ID: intPtr(1)}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	rows, err := analytics.GetUserProgress()
	if err != nil {
		t.Fatalf("GetUserProgress: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	row := rows[0]
	if row.FullName != "Student One" {
		t.Errorf("full name = %q", row.FullName)
	}
	if row.SubjectName != "Report Quiz Subject" {
		t.Errorf("subject = %q", row.SubjectName)
	}
	if row.QuizTitle != "Report Quiz" {
		t.Errorf("quiz = %q", row.QuizTitle)
	}
	if row.Score != 100 {
		t.Errorf("score = %v, want 100", row.Score)
	}
}

func TestGetProgressChartData(t *testing.T) {
	db := newTestDB(t)
	analytics := NewAnalyticsService(repository.NewProgressRepository(db))
	session := newSessionService(db)
	alice := seedUser(t, db, "alice", "Alice")
	bob := seedUser(t, db, "bob", "Bob")

	quiz := seedQuiz(t, db, "Chart Quiz", 1)

	var question model.Question
	if err := db.Where("quiz_id = ?", quiz.ID).First(&question).Error; err != nil {
		t.Fatalf("load question: %v", err)
	}
	if _, err := session.SubmitQuiz(alice.ID, quiz.ID, model.AnswerSheet{question.ID: intPtr(1)}); err != nil {
		t.Fatalf("alice submit: %v", err)
	}
	if _, err := session.SubmitQuiz(bob.ID, quiz.ID, model.AnswerSheet{question.ID: intPtr(2)}); err != nil {
		t.Fatalf("bob submit: %v", err)
	}

	data, err := analytics.GetProgressChartData()
	if err != nil {
		t.Fatalf("GetProgressChartData: %v", err)
	}

	// 并列数组必须等长对齐
	n := len(data.Users)
	if n != 2 {
		t.Fatalf("users = %d, want 2", n)
	}
	if len(data.Subjects) != n || len(data.Quizzes) != n || len(data.Scores) != n || len(data.CompletionDates) != n {
		t.Errorf("parallel arrays misaligned: %d %d %d %d %d",
			len(data.Users), len(data.Subjects), len(data.Quizzes), len(data.Scores), len(data.CompletionDates))
	}
	for _, d := range data.CompletionDates {
		if len(d) != len("2006-01-02") {
			t.Errorf("completion date %q not in YYYY-MM-DD form", d)
		}
	}
}

func TestGetPerformanceChartData(t *testing.T) {
	db := newTestDB(t)
	analytics := NewAnalyticsService(repository.NewProgressRepository(db))
	session := newSessionService(db)
	user := seedUser(t, db, "student1", "Student One")

	full := seedQuiz(t, db, "Full Marks", 1)
	zero := seedQuiz(t, db, "Zero Marks", 1)

	var fullQ, zeroQ model.Question
	if err := db.Where("quiz_id = ?", full.ID).First(&fullQ).Error; err != nil {
		t.Fatalf("load question: %v", err)
	}
	if err := db.Where("quiz_id = ?", zero.ID).First(&zeroQ).Error; err != nil {
		t.Fatalf("load question: %v", err)
	}

	if _, err := session.SubmitQuiz(user.ID, full.ID, model.AnswerSheet{fullQ.ID: intPtr(1)}); err != nil {
		t.Fatalf("submit full: %v", err)
	}
	if _, err := session.SubmitQuiz(user.ID, zero.ID, model.AnswerSheet{zeroQ.ID: intPtr(2)}); err != nil {
		t.Fatalf("submit zero: %v", err)
	}

	data, err := analytics.GetPerformanceChartData()
	if err != nil {
		t.Fatalf("GetPerformanceChartData: %v", err)
	}
	if len(data.Users) != 1 || len(data.AverageScores) != 1 {
		t.Fatalf("rows = %d/%d, want 1/1", len(data.Users), len(data.AverageScores))
	}
	if data.Users[0] != "Student One" {
		t.Errorf("user = %q", data.Users[0])
	}
	if data.AverageScores[0] != 50 {
		t.Errorf("average = %v, want 50", data.AverageScores[0])
	}
}
