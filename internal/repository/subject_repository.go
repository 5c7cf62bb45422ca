package repository

import (
	"quiz_master_backend/internal/model"

	"gorm.io/gorm"
)

type SubjectRepository struct {
	DB *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) *SubjectRepository {
	return &SubjectRepository{DB: db}
}

func (r *SubjectRepository) Create(subject *model.Subject) error {
	return r.DB.Create(subject).Error
}

func (r *SubjectRepository) FindByID(id uint) (*model.Subject, error) {
	var s model.Subject
	err := r.DB.First(&s, id).Error
	return &s, err
}

func (r *SubjectRepository) ListAll() ([]model.Subject, error) {
	var subjects []model.Subject
	err := r.DB.Order("created_at asc").Find(&subjects).Error
	return subjects, err
}

func (r *SubjectRepository) Update(subject *model.Subject) error {
	return r.DB.Save(subject).Error
}

// DeleteCascade 删除科目及其下属的章节、测验、题目和答题进度。
// 层级严格向下清理，不留悬挂外键。
func (r *SubjectRepository) DeleteCascade(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		chapterIDs := tx.Model(&model.Chapter{}).Select("id").Where("subject_id = ?", id)
		quizIDs := tx.Model(&model.Quiz{}).Select("id").Where("chapter_id IN (?)", chapterIDs)

		if err := tx.Where("quiz_id IN (?)", quizIDs).Delete(&model.UserQuizProgress{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id IN (?)", quizIDs).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		if err := tx.Where("chapter_id IN (?)", chapterIDs).Delete(&model.Quiz{}).Error; err != nil {
			return err
		}
		if err := tx.Where("subject_id = ?", id).Delete(&model.Chapter{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Subject{}, id).Error
	})
}
