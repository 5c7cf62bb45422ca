package service

import (
	"errors"

	"quiz_master_backend/internal/config"
	"quiz_master_backend/internal/model"
	"quiz_master_backend/internal/repository"
	"quiz_master_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

type RegisterRequest struct {
	Username      string `json:"username" binding:"required"`
	Password      string `json:"password" binding:"required,min=6"`
	FullName      string `json:"fullName" binding:"required"`
	Qualification string `json:"qualification"`
	DOB           string `json:"dob" binding:"required"` // YYYY-MM-DD
}

// Register 注册普通用户。注册入口只创建 user 角色账号。
func (s *AuthService) Register(req RegisterRequest) (*model.User, error) {
	dob, err := util.ParseDate(req.DOB)
	if err != nil {
		return nil, err
	}

	_, err = s.UserRepo.FindByUsername(req.Username)
	if err == nil {
		return nil, util.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:      req.Username,
		Password:      string(hashedPassword),
		FullName:      req.FullName,
		Qualification: req.Qualification,
		DOB:           dob,
		Role:          model.RoleUser,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		return "", util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", util.ErrInvalidCredentials
	}

	return util.GenerateJWT(user.ID, user.Username, user.Role, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

// AdminLogin 校验配置中的管理员凭据并签发 role=admin 的令牌。
// 管理员不占用 users 表，UserID 固定为 0。
func (s *AuthService) AdminLogin(username, password string) (string, error) {
	if username != s.Cfg.Admin.Username || password != s.Cfg.Admin.Password {
		return "", util.ErrInvalidCredentials
	}
	return util.GenerateJWT(0, username, model.RoleAdmin, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}
