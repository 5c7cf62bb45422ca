package service

import (
	"quiz_master_backend/internal/model"
	"quiz_master_backend/internal/repository"
)

// DashboardService 聚合用户端的内容层级与完成情况
type DashboardService struct {
	SubjectRepo  *repository.SubjectRepository
	ChapterRepo  *repository.ChapterRepository
	QuizRepo     *repository.QuizRepository
	ProgressRepo *repository.ProgressRepository
}

func NewDashboardService(subjectRepo *repository.SubjectRepository, chapterRepo *repository.ChapterRepository, quizRepo *repository.QuizRepository, progressRepo *repository.ProgressRepository) *DashboardService {
	return &DashboardService{
		SubjectRepo:  subjectRepo,
		ChapterRepo:  chapterRepo,
		QuizRepo:     quizRepo,
		ProgressRepo: progressRepo,
	}
}

type DashboardQuiz struct {
	ID        uint     `json:"id"`
	Title     string   `json:"title"`
	Duration  int      `json:"duration"`
	Completed bool     `json:"completed"`
	Score     *float64 `json:"score"`
}

type DashboardChapter struct {
	ID      uint            `json:"id"`
	Name    string          `json:"name"`
	Quizzes []DashboardQuiz `json:"quizzes"`
}

type DashboardSubject struct {
	ID       uint               `json:"id"`
	Name     string             `json:"name"`
	Chapters []DashboardChapter `json:"chapters"`
}

// GetDashboard 逐级展开科目/章节/测验，并标注当前用户的完成状态与分数
func (s *DashboardService) GetDashboard(userID uint) ([]DashboardSubject, error) {
	subjects, err := s.SubjectRepo.ListAll()
	if err != nil {
		return nil, err
	}

	progresses, err := s.ProgressRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	progressByQuiz := make(map[uint]model.UserQuizProgress, len(progresses))
	for _, p := range progresses {
		progressByQuiz[p.QuizID] = p
	}

	result := make([]DashboardSubject, 0, len(subjects))
	for _, subject := range subjects {
		chapters, err := s.ChapterRepo.ListBySubject(subject.ID)
		if err != nil {
			return nil, err
		}

		ds := DashboardSubject{
			ID:       subject.ID,
			Name:     subject.Name,
			Chapters: make([]DashboardChapter, 0, len(chapters)),
		}

		for _, chapter := range chapters {
			quizzes, err := s.QuizRepo.ListByChapter(chapter.ID)
			if err != nil {
				return nil, err
			}

			dc := DashboardChapter{
				ID:      chapter.ID,
				Name:    chapter.Name,
				Quizzes: make([]DashboardQuiz, 0, len(quizzes)),
			}

			for _, quiz := range quizzes {
				dq := DashboardQuiz{
					ID:       quiz.ID,
					Title:    quiz.Title,
					Duration: quiz.Duration,
				}
				if p, ok := progressByQuiz[quiz.ID]; ok {
					score := p.Score
					dq.Completed = true
					dq.Score = &score
				}
				dc.Quizzes = append(dc.Quizzes, dq)
			}
			ds.Chapters = append(ds.Chapters, dc)
		}
		result = append(result, ds)
	}
	return result, nil
}

type SummaryQuiz struct {
	QuizTitle string  `json:"quizTitle"`
	Score     float64 `json:"score"`
}

type SubjectSummary struct {
	SubjectName string        `json:"subjectName"`
	Quizzes     []SummaryQuiz `json:"quizzes"`
}

// GetSummary 按科目汇总当前用户已作答的测验与分数
func (s *DashboardService) GetSummary(userID uint) ([]SubjectSummary, error) {
	subjects, err := s.SubjectRepo.ListAll()
	if err != nil {
		return nil, err
	}

	progresses, err := s.ProgressRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	progressByQuiz := make(map[uint]model.UserQuizProgress, len(progresses))
	for _, p := range progresses {
		progressByQuiz[p.QuizID] = p
	}

	summary := make([]SubjectSummary, 0, len(subjects))
	for _, subject := range subjects {
		sd := SubjectSummary{SubjectName: subject.Name}

		chapters, err := s.ChapterRepo.ListBySubject(subject.ID)
		if err != nil {
			return nil, err
		}
		for _, chapter := range chapters {
			quizzes, err := s.QuizRepo.ListByChapter(chapter.ID)
			if err != nil {
				return nil, err
			}
			for _, quiz := range quizzes {
				if p, ok := progressByQuiz[quiz.ID]; ok {
					sd.Quizzes = append(sd.Quizzes, SummaryQuiz{
						QuizTitle: quiz.Title,
						Score:     p.Score,
					})
				}
			}
		}

		summary = append(summary, sd)
	}
	return summary, nil
}
