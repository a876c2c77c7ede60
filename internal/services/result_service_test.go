package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/internal/store"
	"portfolio_backend/pkg/apperrors"
)

func newResultService(t *testing.T) *ResultService {
	t.Helper()
	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	return NewResultService(st.Results)
}

func TestResultSubmitDerivesTotalsAndGrades(t *testing.T) {
	svc := newResultService(t)

	record, err := svc.Submit(context.Background(), &dto.ResultSubmitRequest{
		StudentID:   "STU001",
		StudentName: "Jaya",
		Subjects: []dto.SubjectMarks{
			{Subject: "Math", Marks: 95},
			{Subject: "Physics", Marks: 72},
			{Subject: "Chemistry", Marks: 58},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 225, record.TotalMarks)
	assert.InDelta(t, 75.0, record.Percentage, 0.001)
	assert.Equal(t, "B", record.Grade)
	assert.Equal(t, models.ResultStatusSubmitted, record.Status)

	require.Len(t, record.Subjects, 3)
	assert.Equal(t, "A+", record.Subjects[0].Grade)
	assert.Equal(t, "B", record.Subjects[1].Grade)
	assert.Equal(t, "D", record.Subjects[2].Grade)
}

func TestResultSubmitRejectsDuplicateStudent(t *testing.T) {
	svc := newResultService(t)

	req := &dto.ResultSubmitRequest{
		StudentID:   "STU002",
		StudentName: "A",
		Subjects:    []dto.SubjectMarks{{Subject: "Math", Marks: 40}},
	}
	_, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), req)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
}

func TestResultGetByStudent(t *testing.T) {
	svc := newResultService(t)

	_, err := svc.Submit(context.Background(), &dto.ResultSubmitRequest{
		StudentID:   "STU003",
		StudentName: "B",
		Subjects:    []dto.SubjectMarks{{Subject: "Math", Marks: 88}},
	})
	require.NoError(t, err)

	record, err := svc.GetByStudent("STU003")
	require.NoError(t, err)
	assert.Equal(t, "B", record.StudentName)

	_, err = svc.GetByStudent("STU999")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestGradeBands(t *testing.T) {
	cases := map[float64]string{
		100: "A+", 90: "A+", 89.9: "A", 80: "A",
		79: "B", 70: "B", 65: "C", 55: "D", 49.9: "F", 0: "F",
	}
	for score, want := range cases {
		assert.Equal(t, want, gradeFor(score), "score %v", score)
	}
}
