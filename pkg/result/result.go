// Package result carries the outcome of catalog operations: a status, an
// optional payload and an ordered list of events describing what went wrong.
package result

// Status is the overall state of a result.
type Status string

const (
	// StatusOK means the operation succeeded without remarks.
	StatusOK Status = "OK"
	// StatusWarn means the operation succeeded with warnings.
	StatusWarn Status = "WARN"
	// StatusError means the operation was refused.
	StatusError Status = "ERROR"
)

// Severity classifies a single event.
type Severity string

const (
	SeverityInfo  Severity = "INFO"
	SeverityWarn  Severity = "WARN"
	SeverityError Severity = "ERROR"
)

// Void is the payload of results that carry no data.
type Void = struct{}

// Event is one remark attached to a result.
type Event struct {
	Severity Severity `json:"severity"`
	Key      string   `json:"key"`
	Message  string   `json:"message"`
}

// NewEvent creates an event.
func NewEvent(severity Severity, key, message string) Event {
	return Event{Severity: severity, Key: key, Message: message}
}

// ErrorEvent creates an event with ERROR severity.
func ErrorEvent(key, message string) Event {
	return NewEvent(SeverityError, key, message)
}

// WarnEvent creates an event with WARN severity.
func WarnEvent(key, message string) Event {
	return NewEvent(SeverityWarn, key, message)
}

// Result is the uniform return value of facade operations.
type Result[T any] struct {
	Status Status  `json:"status"`
	Data   T       `json:"data"`
	Events []Event `json:"events"`
}

// New returns an empty OK result.
func New[T any]() *Result[T] {
	return &Result[T]{Status: StatusOK, Events: []Event{}}
}

// Of returns an OK result carrying data.
func Of[T any](data T) *Result[T] {
	r := New[T]()
	r.Data = data
	return r
}

// Error returns a result holding a single ERROR event.
func Error[T any](key, message string) *Result[T] {
	r := New[T]()
	r.AddEvent(ErrorEvent(key, message))
	return r
}

// From returns a result holding the given events.
func From[T any](events ...Event) *Result[T] {
	r := New[T]()
	r.AddEvents(events...)
	return r
}

// AddEvent appends an event and raises the status if needed.
func (r *Result[T]) AddEvent(event Event) {
	r.Events = append(r.Events, event)
	switch event.Severity {
	case SeverityError:
		r.Status = StatusError
	case SeverityWarn:
		if r.Status == StatusOK {
			r.Status = StatusWarn
		}
	}
}

// AddEvents appends events in order.
func (r *Result[T]) AddEvents(events ...Event) {
	for _, event := range events {
		r.AddEvent(event)
	}
}

// IsOK reports whether the result has no errors and no warnings.
func (r *Result[T]) IsOK() bool {
	return r.Status == StatusOK
}

// IsError reports whether the result was refused.
func (r *Result[T]) IsError() bool {
	return r.Status == StatusError
}

// Merge appends the events of src to dst, keeping the worse status.
func Merge[T, U any](dst *Result[T], src *Result[U]) *Result[T] {
	if src == nil {
		return dst
	}
	dst.AddEvents(src.Events...)
	if rank(src.Status) > rank(dst.Status) {
		dst.Status = src.Status
	}
	return dst
}

// Convert copies status and events of src into a result with another payload type.
func Convert[T, U any](src *Result[U]) *Result[T] {
	return Merge(New[T](), src)
}

func rank(s Status) int {
	switch s {
	case StatusError:
		return 2
	case StatusWarn:
		return 1
	default:
		return 0
	}
}
