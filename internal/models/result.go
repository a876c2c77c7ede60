package models

// ResultStatus is the review state of a submitted result.
type ResultStatus string

const (
	ResultStatusSubmitted ResultStatus = "submitted"
	ResultStatusApproved  ResultStatus = "approved"
	ResultStatusPublished ResultStatus = "published"
)

// SubjectResult is one subject line of a student result. Marks are out of
// 100 per subject.
type SubjectResult struct {
	Subject string `json:"subject"`
	Marks   int    `json:"marks"`
	Grade   string `json:"grade"`
}

// ResultRecord is one student's submitted result. StudentID is unique across
// the collection; TotalMarks, Percentage and Grade are derived from the
// subject list on submission.
type ResultRecord struct {
	ID            int64           `json:"id"`
	StudentID     string          `json:"studentId"`
	StudentName   string          `json:"studentName"`
	Subjects      []SubjectResult `json:"subjects"`
	TotalMarks    int             `json:"totalMarks"`
	Percentage    float64         `json:"percentage"`
	Grade         string          `json:"grade"`
	SubmittedDate string          `json:"submittedDate"` // ISO-8601 / RFC 3339
	Status        ResultStatus    `json:"status"`
}
