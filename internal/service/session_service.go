package service

import (
	"errors"
	"time"

	"quiz_master_backend/internal/model"
	"quiz_master_backend/internal/repository"
	"quiz_master_backend/internal/util"

	"gorm.io/gorm"
)

const notAnsweredLabel = "Not Answered"

// SessionService 负责答题、判分与复盘
type SessionService struct {
	QuizRepo     *repository.QuizRepository
	QuestionRepo *repository.QuestionRepository
	ProgressRepo *repository.ProgressRepository
}

func NewSessionService(quizRepo *repository.QuizRepository, questionRepo *repository.QuestionRepository, progressRepo *repository.ProgressRepository) *SessionService {
	return &SessionService{
		QuizRepo:     quizRepo,
		QuestionRepo: questionRepo,
		ProgressRepo: progressRepo,
	}
}

// QuizQuestionView 答题页题目视图，不包含正确答案
type QuizQuestionView struct {
	ID           uint      `json:"id"`
	QuestionText string    `json:"questionText"`
	Options      [4]string `json:"options"`
}

type QuizView struct {
	Quiz      *model.Quiz        `json:"quiz"`
	Questions []QuizQuestionView `json:"questions"`
}

func (s *SessionService) findQuiz(quizID uint) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	}
	return quiz, err
}

// StartQuiz 返回答题所需的题目与选项
func (s *SessionService) StartQuiz(quizID uint) (*QuizView, error) {
	quiz, err := s.findQuiz(quizID)
	if err != nil {
		return nil, err
	}

	questions, err := s.QuestionRepo.ListByQuiz(quizID)
	if err != nil {
		return nil, err
	}

	views := make([]QuizQuestionView, len(questions))
	for i, q := range questions {
		views[i] = QuizQuestionView{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			Options:      q.Options(),
		}
	}

	return &QuizView{Quiz: quiz, Questions: views}, nil
}

// SubmitQuiz 判分并落盘。未作答按错误计，无部分得分；
// 同一 (user, quiz) 重复提交覆盖旧记录，最近一次提交生效。
func (s *SessionService) SubmitQuiz(userID, quizID uint, answers model.AnswerSheet) (*model.UserQuizProgress, error) {
	if _, err := s.findQuiz(quizID); err != nil {
		return nil, err
	}

	questions, err := s.QuestionRepo.ListByQuiz(quizID)
	if err != nil {
		return nil, err
	}

	// 按测验题目归一化答卷：只保留本测验的题目，缺失的记为未作答
	sheet := make(model.AnswerSheet, len(questions))
	correct := 0
	for _, q := range questions {
		selected := answers[q.ID]
		sheet[q.ID] = selected
		if selected != nil && *selected == q.CorrectOption {
			correct++
		}
	}

	// 空测验得 0 分，避免除零
	score := 0.0
	if len(questions) > 0 {
		score = float64(correct) / float64(len(questions)) * 100
	}

	progress, err := s.ProgressRepo.FindByUserAndQuiz(userID, quizID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		progress = &model.UserQuizProgress{
			UserID:      userID,
			QuizID:      quizID,
			Score:       score,
			CompletedOn: time.Now(),
			UserAnswers: sheet,
		}
		if err := s.ProgressRepo.Create(progress); err != nil {
			return nil, err
		}
		return progress, nil
	}

	progress.Score = score
	progress.CompletedOn = time.Now()
	progress.UserAnswers = sheet
	if err := s.ProgressRepo.Update(progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// ReviewEntry 复盘中的一道题：题干、用户所选选项文本、正确选项文本
type ReviewEntry struct {
	QuestionText  string `json:"questionText"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
}

type QuizReview struct {
	Quiz        *model.Quiz   `json:"quiz"`
	Score       float64       `json:"score"`
	CompletedOn time.Time     `json:"completedOn"`
	Questions   []ReviewEntry `json:"questions"`
}

// ReviewQuiz 根据已存的答卷重建复盘视图。
// 未作答或选项越界展示为 "Not Answered"。
func (s *SessionService) ReviewQuiz(userID, quizID uint) (*QuizReview, error) {
	quiz, err := s.findQuiz(quizID)
	if err != nil {
		return nil, err
	}

	progress, err := s.ProgressRepo.FindByUserAndQuiz(userID, quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotCompleted
		}
		return nil, err
	}

	questions, err := s.QuestionRepo.ListByQuiz(quizID)
	if err != nil {
		return nil, err
	}

	entries := make([]ReviewEntry, len(questions))
	for i, q := range questions {
		userText := notAnsweredLabel
		if selected := progress.UserAnswers[q.ID]; selected != nil {
			if text, ok := q.OptionText(*selected); ok {
				userText = text
			}
		}

		correctText, _ := q.OptionText(q.CorrectOption)

		entries[i] = ReviewEntry{
			QuestionText:  q.QuestionText,
			UserAnswer:    userText,
			CorrectAnswer: correctText,
		}
	}

	return &QuizReview{
		Quiz:        quiz,
		Score:       progress.Score,
		CompletedOn: progress.CompletedOn,
		Questions:   entries,
	}, nil
}
