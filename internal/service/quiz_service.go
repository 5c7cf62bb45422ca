package service

import (
	"errors"

	"quiz_master_backend/internal/model"
	"quiz_master_backend/internal/repository"
	"quiz_master_backend/internal/util"

	"gorm.io/gorm"
)

// QuizService 维护测验与题目两级内容
type QuizService struct {
	ChapterRepo  *repository.ChapterRepository
	QuizRepo     *repository.QuizRepository
	QuestionRepo *repository.QuestionRepository
}

func NewQuizService(chapterRepo *repository.ChapterRepository, quizRepo *repository.QuizRepository, questionRepo *repository.QuestionRepository) *QuizService {
	return &QuizService{
		ChapterRepo:  chapterRepo,
		QuizRepo:     quizRepo,
		QuestionRepo: questionRepo,
	}
}

type QuizRequest struct {
	Title    string `json:"title" binding:"required"`
	Date     string `json:"date" binding:"required"` // YYYY-MM-DD
	Duration int    `json:"duration" binding:"required,min=1"`
}

func (s *QuizService) CreateQuiz(chapterID uint, req QuizRequest) (*model.Quiz, error) {
	if _, err := s.ChapterRepo.FindByID(chapterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrChapterNotFound
		}
		return nil, err
	}

	date, err := util.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	quiz := &model.Quiz{
		Title:     req.Title,
		ChapterID: chapterID,
		Date:      date,
		Duration:  req.Duration,
	}
	if err := s.QuizRepo.Create(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) GetQuiz(id uint) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	}
	return quiz, err
}

func (s *QuizService) ListQuizzes(chapterID uint) ([]model.Quiz, error) {
	if _, err := s.ChapterRepo.FindByID(chapterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrChapterNotFound
		}
		return nil, err
	}
	return s.QuizRepo.ListByChapter(chapterID)
}

func (s *QuizService) UpdateQuiz(id uint, req QuizRequest) (*model.Quiz, error) {
	quiz, err := s.GetQuiz(id)
	if err != nil {
		return nil, err
	}

	date, err := util.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	quiz.Title = req.Title
	quiz.Date = date
	quiz.Duration = req.Duration
	if err := s.QuizRepo.Update(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

// DeleteQuiz 级联删除题目，并同时清理答题进度
func (s *QuizService) DeleteQuiz(id uint) error {
	if _, err := s.GetQuiz(id); err != nil {
		return err
	}
	return s.QuizRepo.DeleteCascade(id)
}

type QuestionRequest struct {
	QuestionText  string `json:"questionText" binding:"required"`
	Option1       string `json:"option1" binding:"required"`
	Option2       string `json:"option2" binding:"required"`
	Option3       string `json:"option3" binding:"required"`
	Option4       string `json:"option4" binding:"required"`
	CorrectOption int    `json:"correctOption" binding:"required"`
}

func (s *QuizService) CreateQuestion(quizID uint, req QuestionRequest) (*model.Question, error) {
	if _, err := s.GetQuiz(quizID); err != nil {
		return nil, err
	}

	if req.CorrectOption < 1 || req.CorrectOption > 4 {
		return nil, util.ErrInvalidCorrectOption
	}

	question := &model.Question{
		QuizID:        quizID,
		QuestionText:  req.QuestionText,
		Option1:       req.Option1,
		Option2:       req.Option2,
		Option3:       req.Option3,
		Option4:       req.Option4,
		CorrectOption: req.CorrectOption,
	}
	if err := s.QuestionRepo.Create(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuizService) ListQuestions(quizID uint) ([]model.Question, error) {
	if _, err := s.GetQuiz(quizID); err != nil {
		return nil, err
	}
	return s.QuestionRepo.ListByQuiz(quizID)
}

func (s *QuizService) GetQuestion(id uint) (*model.Question, error) {
	question, err := s.QuestionRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuestionNotFound
	}
	return question, err
}

func (s *QuizService) UpdateQuestion(id uint, req QuestionRequest) (*model.Question, error) {
	question, err := s.GetQuestion(id)
	if err != nil {
		return nil, err
	}

	if req.CorrectOption < 1 || req.CorrectOption > 4 {
		return nil, util.ErrInvalidCorrectOption
	}

	question.QuestionText = req.QuestionText
	question.Option1 = req.Option1
	question.Option2 = req.Option2
	question.Option3 = req.Option3
	question.Option4 = req.Option4
	question.CorrectOption = req.CorrectOption
	if err := s.QuestionRepo.Update(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuizService) DeleteQuestion(id uint) error {
	if _, err := s.GetQuestion(id); err != nil {
		return err
	}
	return s.QuestionRepo.Delete(id)
}
