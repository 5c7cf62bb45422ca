package service

import (
	"quiz_master_backend/internal/model"
	"quiz_master_backend/internal/repository"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

// SearchUsers 管理端按姓名检索注册用户
func (s *UserService) SearchUsers(search string) ([]model.User, error) {
	return s.UserRepo.Search(search)
}

func (s *UserService) GetUser(id uint) (*model.User, error) {
	return s.UserRepo.FindByID(id)
}
