package listing

import "github.com/dmehra2102/menudash/internal/domain"

// Status is the fetch state of a listing screen.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Snapshot is a copy of a controller's state at one instant.
type Snapshot[T any] struct {
	Status        Status
	Query         domain.ListQuery
	Items         []T
	TotalPages    int
	TotalElements int64
	Err           error
	Message       string
}

// Loading reports whether a fetch is outstanding.
func (s Snapshot[T]) Loading() bool {
	return s.Status == StatusLoading
}

// HasNext reports whether a page follows the current one.
func (s Snapshot[T]) HasNext() bool {
	return s.Query.Page+1 < s.TotalPages
}

// HasPrev reports whether a page precedes the current one.
func (s Snapshot[T]) HasPrev() bool {
	return s.Query.Page > 0
}

func (s *Snapshot[T]) next() bool {
	if !s.HasNext() {
		return false
	}
	s.Query.Page++
	return true
}

func (s *Snapshot[T]) prev() bool {
	if !s.HasPrev() {
		return false
	}
	s.Query.Page--
	return true
}
