package service

import (
	"quiz_master_backend/internal/model"
	"quiz_master_backend/internal/repository"
)

// AnalyticsService 管理端报表，只做读投影
type AnalyticsService struct {
	ProgressRepo *repository.ProgressRepository
}

func NewAnalyticsService(progressRepo *repository.ProgressRepository) *AnalyticsService {
	return &AnalyticsService{ProgressRepo: progressRepo}
}

func (s *AnalyticsService) GetUserProgress() ([]model.ProgressDetail, error) {
	return s.ProgressRepo.ListDetails()
}

// ProgressChartData 前端图表用的并列数组
type ProgressChartData struct {
	Users           []string  `json:"users"`
	Subjects        []string  `json:"subjects"`
	Quizzes         []string  `json:"quizzes"`
	Scores          []float64 `json:"scores"`
	CompletionDates []string  `json:"completion_dates"`
}

func (s *AnalyticsService) GetProgressChartData() (*ProgressChartData, error) {
	rows, err := s.ProgressRepo.ListDetails()
	if err != nil {
		return nil, err
	}

	data := &ProgressChartData{
		Users:           make([]string, len(rows)),
		Subjects:        make([]string, len(rows)),
		Quizzes:         make([]string, len(rows)),
		Scores:          make([]float64, len(rows)),
		CompletionDates: make([]string, len(rows)),
	}
	for i, row := range rows {
		data.Users[i] = row.FullName
		data.Subjects[i] = row.SubjectName
		data.Quizzes[i] = row.QuizTitle
		data.Scores[i] = row.Score
		data.CompletionDates[i] = row.CompletedOn.Format("2006-01-02")
	}
	return data, nil
}

type PerformanceChartData struct {
	Users         []string  `json:"users"`
	AverageScores []float64 `json:"average_scores"`
}

func (s *AnalyticsService) GetPerformanceChartData() (*PerformanceChartData, error) {
	rows, err := s.ProgressRepo.AverageScores()
	if err != nil {
		return nil, err
	}

	data := &PerformanceChartData{
		Users:         make([]string, len(rows)),
		AverageScores: make([]float64, len(rows)),
	}
	for i, row := range rows {
		data.Users[i] = row.FullName
		data.AverageScores[i] = row.AverageScore
	}
	return data, nil
}
