package service

import (
	"errors"

	"quiz_master_backend/internal/model"
	"quiz_master_backend/internal/repository"
	"quiz_master_backend/internal/util"

	"gorm.io/gorm"
)

// ContentService 维护科目与章节两级内容
type ContentService struct {
	SubjectRepo *repository.SubjectRepository
	ChapterRepo *repository.ChapterRepository
}

func NewContentService(subjectRepo *repository.SubjectRepository, chapterRepo *repository.ChapterRepository) *ContentService {
	return &ContentService{
		SubjectRepo: subjectRepo,
		ChapterRepo: chapterRepo,
	}
}

type SubjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (s *ContentService) CreateSubject(req SubjectRequest) (*model.Subject, error) {
	subject := &model.Subject{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.SubjectRepo.Create(subject); err != nil {
		return nil, err
	}
	return subject, nil
}

func (s *ContentService) ListSubjects() ([]model.Subject, error) {
	return s.SubjectRepo.ListAll()
}

func (s *ContentService) GetSubject(id uint) (*model.Subject, error) {
	subject, err := s.SubjectRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSubjectNotFound
	}
	return subject, err
}

func (s *ContentService) UpdateSubject(id uint, req SubjectRequest) (*model.Subject, error) {
	subject, err := s.GetSubject(id)
	if err != nil {
		return nil, err
	}

	subject.Name = req.Name
	subject.Description = req.Description
	if err := s.SubjectRepo.Update(subject); err != nil {
		return nil, err
	}
	return subject, nil
}

func (s *ContentService) DeleteSubject(id uint) error {
	if _, err := s.GetSubject(id); err != nil {
		return err
	}
	return s.SubjectRepo.DeleteCascade(id)
}

type ChapterRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (s *ContentService) CreateChapter(subjectID uint, req ChapterRequest) (*model.Chapter, error) {
	if _, err := s.GetSubject(subjectID); err != nil {
		return nil, err
	}

	chapter := &model.Chapter{
		Name:        req.Name,
		Description: req.Description,
		SubjectID:   subjectID,
	}
	if err := s.ChapterRepo.Create(chapter); err != nil {
		return nil, err
	}
	return chapter, nil
}

func (s *ContentService) ListChapters(subjectID uint) ([]model.Chapter, error) {
	if _, err := s.GetSubject(subjectID); err != nil {
		return nil, err
	}
	return s.ChapterRepo.ListBySubject(subjectID)
}

func (s *ContentService) GetChapter(id uint) (*model.Chapter, error) {
	chapter, err := s.ChapterRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrChapterNotFound
	}
	return chapter, err
}

func (s *ContentService) UpdateChapter(id uint, req ChapterRequest) (*model.Chapter, error) {
	chapter, err := s.GetChapter(id)
	if err != nil {
		return nil, err
	}

	chapter.Name = req.Name
	chapter.Description = req.Description
	if err := s.ChapterRepo.Update(chapter); err != nil {
		return nil, err
	}
	return chapter, nil
}

func (s *ContentService) DeleteChapter(id uint) error {
	if _, err := s.GetChapter(id); err != nil {
		return err
	}
	return s.ChapterRepo.DeleteCascade(id)
}
