package dto

// SubjectMarks is one subject line of a result submission. Marks are out of
// 100 per subject.
type SubjectMarks struct {
	Subject string `json:"subject" validate:"required"`
	Marks   int    `json:"marks" validate:"min=0,max=100"`
}

// ResultSubmitRequest creates a result record. Totals and grades are derived
// server-side from the subject list, never taken from the caller.
type ResultSubmitRequest struct {
	StudentID   string         `json:"studentId" validate:"required"`
	StudentName string         `json:"studentName" validate:"required"`
	Subjects    []SubjectMarks `json:"subjects" validate:"required,min=1,dive"`
}
