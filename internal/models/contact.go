package models

// ContactStatus tracks how far the site operator has processed a message.
// Transitions are one-directional: received -> read -> replied.
type ContactStatus string

const (
	ContactStatusReceived ContactStatus = "received"
	ContactStatusRead     ContactStatus = "read"
	ContactStatusReplied  ContactStatus = "replied"
)

// ContactRecord is one contact-form submission. Message is opaque untrusted
// text; it is only ever rendered through escaping templates.
type ContactRecord struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Timestamp string        `json:"timestamp"` // ISO-8601 / RFC 3339
	Status    ContactStatus `json:"status"`
}

// CanTransitionTo reports whether moving to next is a valid forward step.
func (s ContactStatus) CanTransitionTo(next ContactStatus) bool {
	order := map[ContactStatus]int{
		ContactStatusReceived: 0,
		ContactStatusRead:     1,
		ContactStatusReplied:  2,
	}
	from, okFrom := order[s]
	to, okTo := order[next]
	return okFrom && okTo && to > from
}
