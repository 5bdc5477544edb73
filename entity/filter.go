package entity

// MessageStatus narrows a message listing by read state.
type MessageStatus int

const (
	StatusUnread MessageStatus = iota
	StatusIsRead
	// StatusAll is the sentinel: no read-state predicate is applied.
	StatusAll
)

// ParseMessageStatus accepts either the enum name or its numeric value.
// Empty input means All.
func ParseMessageStatus(s string) MessageStatus {
	switch s {
	case "Unread", "0":
		return StatusUnread
	case "IsRead", "Read", "1":
		return StatusIsRead
	default:
		return StatusAll
	}
}

// MessageFilter narrows the received-messages listing. UserID is mandatory;
// every other field is applied only when supplied.
type MessageFilter struct {
	UserID int           `form:"userId" binding:"required"`
	Login  string        `form:"login"`  // sender login contains, case-sensitive
	From   string        `form:"from"`   // YYYY-MM-DD, inclusive lower bound
	To     string        `form:"to"`     // YYYY-MM-DD, inclusive upper bound
	Status MessageStatus `form:"-"`
}
