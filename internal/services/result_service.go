package services

import (
	"context"
	"time"

	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/internal/store"
	"portfolio_backend/pkg/apperrors"
)

// ResultService handles student result submission and lookup.
type ResultService struct {
	results *store.Collection[models.ResultRecord]
}

func NewResultService(results *store.Collection[models.ResultRecord]) *ResultService {
	return &ResultService{results: results}
}

// Submit persists a result. Student IDs are unique; totals, percentage and
// grades are derived from the subject marks.
func (s *ResultService) Submit(ctx context.Context, req *dto.ResultSubmitRequest) (models.ResultRecord, error) {
	_, exists, err := s.results.Find(func(r models.ResultRecord) bool {
		return r.StudentID == req.StudentID
	})
	if err != nil {
		return models.ResultRecord{}, apperrors.StorageError(err, "Failed to check existing results")
	}
	if exists {
		return models.ResultRecord{}, apperrors.NewAlreadyExistsError("result",
			"A result for student '"+req.StudentID+"' already exists")
	}

	subjects := make([]models.SubjectResult, 0, len(req.Subjects))
	total := 0
	for _, sub := range req.Subjects {
		subjects = append(subjects, models.SubjectResult{
			Subject: sub.Subject,
			Marks:   sub.Marks,
			Grade:   gradeFor(float64(sub.Marks)),
		})
		total += sub.Marks
	}
	percentage := float64(total) / float64(len(req.Subjects))

	record := models.ResultRecord{
		StudentID:     req.StudentID,
		StudentName:   req.StudentName,
		Subjects:      subjects,
		TotalMarks:    total,
		Percentage:    percentage,
		Grade:         gradeFor(percentage),
		SubmittedDate: time.Now().UTC().Format(time.RFC3339),
		Status:        models.ResultStatusSubmitted,
	}

	record, err = s.results.Append(record)
	if err != nil {
		return models.ResultRecord{}, apperrors.StorageError(err, "Failed to save result")
	}

	logger.CtxInfo(ctx, "result submitted", "result_id", record.ID, "student_id", record.StudentID)
	return record, nil
}

// GetByStudent returns the result for one student ID.
func (s *ResultService) GetByStudent(studentID string) (models.ResultRecord, error) {
	record, found, err := s.results.Find(func(r models.ResultRecord) bool {
		return r.StudentID == studentID
	})
	if err != nil {
		return models.ResultRecord{}, apperrors.StorageError(err, "Failed to fetch result")
	}
	if !found {
		return models.ResultRecord{}, apperrors.NewNotFoundError("result",
			"No result found for student '"+studentID+"'")
	}
	return record, nil
}

// gradeFor maps a 0-100 score to the grading bands of the site.
func gradeFor(score float64) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}
