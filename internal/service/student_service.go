package service

import (
	"context"
	"errors"
	"fmt"

	"assessment-service/internal/models"
	"assessment-service/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

type StudentService struct {
	Repo *repository.StudentRepository
}

func NewStudentService(repo *repository.StudentRepository) *StudentService {
	return &StudentService{Repo: repo}
}

// RegisterStudent creates a student, or returns the existing one when the
// SAP number is already registered.
func (s *StudentService) RegisterStudent(ctx context.Context, name, sapNo string) (*models.Student, error) {
	if sapNo == "" {
		return nil, fmt.Errorf("sap_no is required")
	}
	existing, err := s.Repo.FindBySapNo(ctx, sapNo)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}
	student := &models.Student{Name: name, SapNo: sapNo}
	if err := s.Repo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *StudentService) GetBySapNo(ctx context.Context, sapNo string) (*models.Student, error) {
	student, err := s.Repo.FindBySapNo(ctx, sapNo)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrStudentNotFound
	}
	return student, err
}
