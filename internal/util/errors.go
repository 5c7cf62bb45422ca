package util

import "errors"

var (
	ErrUsernameTaken        = errors.New("用户名已被注册")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidDate          = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrSubjectNotFound      = errors.New("subject not found")
	ErrChapterNotFound      = errors.New("chapter not found")
	ErrQuizNotFound         = errors.New("quiz not found")
	ErrQuestionNotFound     = errors.New("question not found")
	ErrQuizNotCompleted     = errors.New("quiz not completed yet")
	ErrInvalidCorrectOption = errors.New("correct option must be between 1 and 4")
)
