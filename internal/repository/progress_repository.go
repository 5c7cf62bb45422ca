package repository

import (
	"quiz_master_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) FindByUserAndQuiz(userID, quizID uint) (*model.UserQuizProgress, error) {
	var p model.UserQuizProgress
	err := r.DB.Where("user_id = ? AND quiz_id = ?", userID, quizID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProgressRepository) Create(p *model.UserQuizProgress) error {
	return r.DB.Create(p).Error
}

func (r *ProgressRepository) Update(p *model.UserQuizProgress) error {
	return r.DB.Save(p).Error
}

func (r *ProgressRepository) ListByUser(userID uint) ([]model.UserQuizProgress, error) {
	var ps []model.UserQuizProgress
	err := r.DB.Where("user_id = ?", userID).Find(&ps).Error
	return ps, err
}

// ListDetails 联查用户、科目、测验，产出管理端报表行
func (r *ProgressRepository) ListDetails() ([]model.ProgressDetail, error) {
	var rows []model.ProgressDetail
	err := r.DB.Table("user_quiz_progress").
		Select("users.full_name, subjects.name as subject_name, quizzes.title as quiz_title, user_quiz_progress.score, user_quiz_progress.completed_on").
		Joins("JOIN users ON users.id = user_quiz_progress.user_id AND users.deleted_at IS NULL").
		Joins("JOIN quizzes ON quizzes.id = user_quiz_progress.quiz_id AND quizzes.deleted_at IS NULL").
		Joins("JOIN chapters ON chapters.id = quizzes.chapter_id AND chapters.deleted_at IS NULL").
		Joins("JOIN subjects ON subjects.id = chapters.subject_id AND subjects.deleted_at IS NULL").
		Where("user_quiz_progress.deleted_at IS NULL").
		Order("user_quiz_progress.completed_on asc").
		Scan(&rows).Error
	return rows, err
}

// AverageScores 按用户分组的平均分
func (r *ProgressRepository) AverageScores() ([]model.UserPerformance, error) {
	var rows []model.UserPerformance
	err := r.DB.Table("user_quiz_progress").
		Select("users.full_name, AVG(user_quiz_progress.score) as average_score").
		Joins("JOIN users ON users.id = user_quiz_progress.user_id AND users.deleted_at IS NULL").
		Where("user_quiz_progress.deleted_at IS NULL").
		Group("users.full_name").
		Scan(&rows).Error
	return rows, err
}
