package service

import (
	"errors"
	"testing"

	"quiz_master_backend/internal/model"
	"quiz_master_backend/internal/util"
)

func TestSubmitQuizScoring(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(db)
	user := seedUser(t, db, "student1", "Student One")

	quiz := seedQuiz(t, db, "Algebra Basics", 2, 3)

	var questions []model.Question
	if err := db.Where("quiz_id = ?", quiz.ID).Order("id").Find(&questions).Error; err != nil {
		t.Fatalf("load questions: %v", err)
	}

	// 第一题答对，第二题未作答
	answers := model.AnswerSheet{questions[0].ID: intPtr(2)}
	progress, err := svc.SubmitQuiz(user.ID, quiz.ID, answers)
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}
	if progress.Score != 50 {
		t.Errorf("score = %v, want 50", progress.Score)
	}
	if got := countProgress(t, db); got != 1 {
		t.Errorf("progress rows = %d, want 1", got)
	}

	// 答卷中缺失的题目按未作答处理，归一化后答卷覆盖全部题目
	if len(progress.UserAnswers) != 2 {
		t.Errorf("normalized answers = %d entries, want 2", len(progress.UserAnswers))
	}
	if progress.UserAnswers[questions[1].ID] != nil {
		t.Errorf("missing answer should be stored as nil")
	}
}

func TestSubmitQuizAllCorrect(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(db)
	user := seedUser(t, db, "student1", "Student One")

	quiz := seedQuiz(t, db, "Geometry", 1, 4, 2)

	var questions []model.Question
	if err := db.Where("quiz_id = ?", quiz.ID).Order("id").Find(&questions).Error; err != nil {
		t.Fatalf("load questions: %v", err)
	}

	answers := model.AnswerSheet{
		questions[0].ID: intPtr(1),
		questions[1].ID: intPtr(4),
		questions[2].ID: intPtr(2),
	}
	progress, err := svc.SubmitQuiz(user.ID, quiz.ID, answers)
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}
	if progress.Score != 100 {
		t.Errorf("score = %v, want 100", progress.Score)
	}
}

func TestSubmitQuizEmptyQuiz(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(db)
	user := seedUser(t, db, "student1", "Student One")

	quiz := seedQuiz(t, db, "Empty Quiz")

	progress, err := svc.SubmitQuiz(user.ID, quiz.ID, model.AnswerSheet{})
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}
	if progress.Score != 0 {
		t.Errorf("score = %v, want 0 for quiz with no questions", progress.Score)
	}
}

func TestSubmitQuizIgnoresForeignQuestionIDs(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(db)
	user := seedUser(t, db, "student1", "Student One")

	quiz := seedQuiz(t, db, "Target Quiz", 1)
	other := seedQuiz(t, db, "Other Quiz", 1)

	var otherQuestion model.Question
	if err := db.Where("quiz_id = ?", other.ID).First(&otherQuestion).Error; err != nil {
		t.Fatalf("load other question: %v", err)
	}

	// 别的测验的题目ID不参与判分，也不落盘
	answers := model.AnswerSheet{otherQuestion.ID + 1000: intPtr(1), otherQuestion.ID: intPtr(1)}
	progress, err := svc.SubmitQuiz(user.ID, quiz.ID, answers)
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}
	if progress.Score != 0 {
		t.Errorf("score = %v, want 0", progress.Score)
	}
	if len(progress.UserAnswers) != 1 {
		t.Errorf("stored answers = %d entries, want 1", len(progress.UserAnswers))
	}
}

func TestSubmitQuizResubmissionOverwrites(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(db)
	user := seedUser(t, db, "student1", "Student One")

	quiz := seedQuiz(t, db, "Algebra Basics", 2, 3)

	var questions []model.Question
	if err := db.Where("quiz_id = ?", quiz.ID).Order("id").Find(&questions).Error; err != nil {
		t.Fatalf("load questions: %v", err)
	}

	first, err := svc.SubmitQuiz(user.ID, quiz.ID, model.AnswerSheet{questions[0].ID: intPtr(2)})
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if first.Score != 50 {
		t.Fatalf("first score = %v, want 50", first.Score)
	}

	second, err := svc.SubmitQuiz(user.ID, quiz.ID, model.AnswerSheet{
		questions[0].ID: intPtr(2),
		questions[1].ID: intPtr(3),
	})
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if second.Score != 100 {
		t.Errorf("second score = %v, want 100", second.Score)
	}

	// 同一 (user, quiz) 只保留一条记录，且以最近一次提交为准
	if got := countProgress(t, db); got != 1 {
		t.Errorf("progress rows = %d, want 1", got)
	}

	var stored model.UserQuizProgress
	if err := db.Where("user_id = ? AND quiz_id = ?", user.ID, quiz.ID).First(&stored).Error; err != nil {
		t.Fatalf("load progress: %v", err)
	}
	if stored.Score != 100 {
		t.Errorf("stored score = %v, want 100", stored.Score)
	}
}

func TestSubmitQuizSeparatePerUser(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(db)
	alice := seedUser(t, db, "alice", "Alice")
	bob := seedUser(t, db, "bob", "Bob")

	quiz := seedQuiz(t, db, "Shared Quiz", 1)

	var question model.Question
	if err := db.Where("quiz_id = ?", quiz.ID).First(&question).Error; err != nil {
		t.Fatalf("load question: %v", err)
	}

	if _, err := svc.SubmitQuiz(alice.ID, quiz.ID, model.AnswerSheet{question.ID: intPtr(1)}); err != nil {
		t.Fatalf("alice submit: %v", err)
	}
	if _, err := svc.SubmitQuiz(bob.ID, quiz.ID, model.AnswerSheet{question.ID: intPtr(2)}); err != nil {
		t.Fatalf("bob submit: %v", err)
	}

	if got := countProgress(t, db); got != 2 {
		t.Errorf("progress rows = %d, want 2", got)
	}
}

func TestSubmitQuizNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(db)
	user := seedUser(t, db, "student1", "Student One")

	if _, err := svc.SubmitQuiz(user.ID, 9999, model.AnswerSheet{}); !errors.Is(err, util.ErrQuizNotFound) {
		t.Errorf("err = %v, want ErrQuizNotFound", err)
	}
}

func TestStartQuizHidesAnswers(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(db)

	quiz := seedQuiz(t, db, "Algebra Basics", 2)

	view, err := svc.StartQuiz(quiz.ID)
	if err != nil {
		t.Fatalf("StartQuiz: %v", err)
	}
	if view.Quiz.ID != quiz.ID {
		t.Errorf("quiz id = %d, want %d", view.Quiz.ID, quiz.ID)
	}
	if len(view.Questions) != 1 {
		t.Fatalf("questions = %d, want 1", len(view.Questions))
	}
	if view.Questions[0].Options != [4]string{"A", "B", "C", "D"} {
		t.Errorf("options = %v", view.Questions[0].Options)
	}
}

func TestReviewQuiz(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(db)
	user := seedUser(t, db, "student1", "Student One")

	quiz := seedQuiz(t, db, "Algebra Basics", 2, 3)

	var questions []model.Question
	if err := db.Where("quiz_id = ?", quiz.ID).Order("id").Find(&questions).Error; err != nil {
		t.Fatalf("load questions: %v", err)
	}

	if _, err := svc.SubmitQuiz(user.ID, quiz.ID, model.AnswerSheet{questions[0].ID: intPtr(2)}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	review, err := svc.ReviewQuiz(user.ID, quiz.ID)
	if err != nil {
		t.Fatalf("ReviewQuiz: %v", err)
	}
	if review.Score != 50 {
		t.Errorf("score = %v, want 50", review.Score)
	}
	if len(review.Questions) != 2 {
		t.Fatalf("entries = %d, want 2", len(review.Questions))
	}
	if review.Questions[0].UserAnswer != "B" {
		t.Errorf("answered entry = %q, want B", review.Questions[0].UserAnswer)
	}
	if review.Questions[0].CorrectAnswer != "B" {
		t.Errorf("correct entry = %q, want B", review.Questions[0].CorrectAnswer)
	}
	if review.Questions[1].UserAnswer != "Not Answered" {
		t.Errorf("unanswered entry = %q, want Not Answered", review.Questions[1].UserAnswer)
	}
	if review.Questions[1].CorrectAnswer != "C" {
		t.Errorf("correct entry = %q, want C", review.Questions[1].CorrectAnswer)
	}
}

func TestReviewQuizOutOfRangeAnswer(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(db)
	user := seedUser(t, db, "student1", "Student One")

	quiz := seedQuiz(t, db, "Algebra Basics", 2)

	var question model.Question
	if err := db.Where("quiz_id = ?", quiz.ID).First(&question).Error; err != nil {
		t.Fatalf("load question: %v", err)
	}

	// 直接写入越界的选项值，复盘时应展示为未作答
	progress := &model.UserQuizProgress{
		UserID:      user.ID,
		QuizID:      quiz.ID,
		Score:       0,
		UserAnswers: model.AnswerSheet{question.ID: intPtr(7)},
	}
	if err := db.Create(progress).Error; err != nil {
		t.Fatalf("seed progress: %v", err)
	}

	review, err := svc.ReviewQuiz(user.ID, quiz.ID)
	if err != nil {
		t.Fatalf("ReviewQuiz: %v", err)
	}
	if review.Questions[0].UserAnswer != "Not Answered" {
		t.Errorf("out-of-range answer shown as %q, want Not Answered", review.Questions[0].UserAnswer)
	}
}

func TestReviewQuizNotCompleted(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(db)
	user := seedUser(t, db, "student1", "Student One")

	quiz := seedQuiz(t, db, "Algebra Basics", 2)

	if _, err := svc.ReviewQuiz(user.ID, quiz.ID); !errors.Is(err, util.ErrQuizNotCompleted) {
		t.Errorf("err = %v, want ErrQuizNotCompleted", err)
	}
}
