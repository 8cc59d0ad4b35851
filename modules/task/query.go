package task

import (
	"slices"

	domain "github.com/airtribe-projects/task-manager-api-PrasadBhat4/domain/task"
)

// SortOrder is the createdAt ordering requested by a list call.
type SortOrder string

const (
	SortNone SortOrder = ""
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ListQuery is the interpreted form of the list parameters.
type ListQuery struct {
	// Completed is nil when no completion filter was requested.
	Completed *bool
	Sort      SortOrder
}

// NewListQuery interprets raw list parameters. A completed value other than the
// exact string "true" filters for incomplete tasks; an unknown sort keeps
// insertion order.
func NewListQuery(completed *string, sort string) ListQuery {
	var q ListQuery
	if completed != nil {
		want := *completed == "true"
		q.Completed = &want
	}
	switch SortOrder(sort) {
	case SortAsc, SortDesc:
		q.Sort = SortOrder(sort)
	}
	return q
}

// Apply filters and sorts tasks. The input slice is left untouched.
func (q ListQuery) Apply(tasks []domain.Task) []domain.Task {
	result := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if q.Completed != nil && t.Completed != *q.Completed {
			continue
		}
		result = append(result, t)
	}

	switch q.Sort {
	case SortAsc:
		slices.SortStableFunc(result, func(a, b domain.Task) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		})
	case SortDesc:
		slices.SortStableFunc(result, func(a, b domain.Task) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}
	return result
}
