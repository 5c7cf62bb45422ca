package repository

import (
	"quiz_master_backend/internal/model"

	"gorm.io/gorm"
)

type ChapterRepository struct {
	DB *gorm.DB
}

func NewChapterRepository(db *gorm.DB) *ChapterRepository {
	return &ChapterRepository{DB: db}
}

func (r *ChapterRepository) Create(chapter *model.Chapter) error {
	return r.DB.Create(chapter).Error
}

func (r *ChapterRepository) FindByID(id uint) (*model.Chapter, error) {
	var c model.Chapter
	err := r.DB.First(&c, id).Error
	return &c, err
}

func (r *ChapterRepository) ListBySubject(subjectID uint) ([]model.Chapter, error) {
	var chapters []model.Chapter
	err := r.DB.Where("subject_id = ?", subjectID).Order("created_at asc").Find(&chapters).Error
	return chapters, err
}

func (r *ChapterRepository) ListAll() ([]model.Chapter, error) {
	var chapters []model.Chapter
	err := r.DB.Order("created_at asc").Find(&chapters).Error
	return chapters, err
}

func (r *ChapterRepository) Update(chapter *model.Chapter) error {
	return r.DB.Save(chapter).Error
}

// DeleteCascade 删除章节及其下属的测验、题目和答题进度
func (r *ChapterRepository) DeleteCascade(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		quizIDs := tx.Model(&model.Quiz{}).Select("id").Where("chapter_id = ?", id)

		if err := tx.Where("quiz_id IN (?)", quizIDs).Delete(&model.UserQuizProgress{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id IN (?)", quizIDs).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		if err := tx.Where("chapter_id = ?", id).Delete(&model.Quiz{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Chapter{}, id).Error
	})
}
