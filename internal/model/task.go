package model

import "time"

// Task is a tracked unit of work scheduled for a civil date.
type Task struct {
	ID          int64 // 0 until persisted
	Title       string
	Description string
	Date        time.Time // civil date, midnight UTC
	Tags        []Tag
	Ratings     Ratings
	Blocked     bool
	Completed   bool
	Weight      float64 // derived from Ratings
}

// TagNames returns the names of the task's tags in stored order.
func (t Task) TagNames() []string {
	names := make([]string, 0, len(t.Tags))
	for _, tag := range t.Tags {
		names = append(names, tag.Name)
	}
	return names
}

// TagIDs returns the IDs of the task's tags.
func (t Task) TagIDs() []int64 {
	ids := make([]int64, 0, len(t.Tags))
	for _, tag := range t.Tags {
		ids = append(ids, tag.ID)
	}
	return ids
}

// HasAnyTag reports whether the task carries at least one of names.
func (t Task) HasAnyTag(names []string) bool {
	for _, tag := range t.Tags {
		for _, n := range names {
			if tag.Name == n {
				return true
			}
		}
	}
	return false
}

// Tag is a named label shared between tasks.
type Tag struct {
	ID   int64
	Name string
}
