package repository

import (
	"quiz_master_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("username = ?", username).First(&user).Error
	return &user, err
}

// Search 按姓名模糊检索用户，search 为空时返回全部
func (r *UserRepository) Search(search string) ([]model.User, error) {
	var users []model.User
	query := r.DB.Model(&model.User{})
	if search != "" {
		query = query.Where("full_name LIKE ?", "%"+search+"%")
	}
	err := query.Order("created_at desc").Find(&users).Error
	return users, err
}
