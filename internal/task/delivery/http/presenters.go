package http

import (
	"strings"
	"time"

	"task-tracker/internal/model"
	"task-tracker/internal/task"
	"task-tracker/pkg/response"
)

// --- Request DTOs ---

// taskReq is the body of create and update. Omitted ratings default to 5.
type taskReq struct {
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Date             *response.Date `json:"date"`
	Tags             []string       `json:"tags"`
	Importance       *int           `json:"importance"`
	Urgency          *int           `json:"urgency"`
	PersonalInterest *int           `json:"personalInterest"`
	ExecutionTime    *int           `json:"executionTime"`
	Complexity       *int           `json:"complexity"`
	Concentration    *int           `json:"concentration"`
	Blocked          bool           `json:"blocked"`
	Completed        bool           `json:"completed"`
}

func (r taskReq) validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return task.ErrEmptyTitle
	}
	return nil
}

func (r taskReq) date() time.Time {
	if r.Date == nil {
		return time.Time{}
	}
	return time.Time(*r.Date)
}

func (r taskReq) ratings() *model.Ratings {
	fields := []*int{r.Importance, r.Urgency, r.PersonalInterest, r.ExecutionTime, r.Complexity, r.Concentration}
	set := false
	for _, f := range fields {
		if f != nil {
			set = true
			break
		}
	}
	if !set {
		return nil
	}

	pick := func(v *int) int {
		if v == nil {
			return model.DefaultRating
		}
		return *v
	}
	return &model.Ratings{
		Importance:       pick(r.Importance),
		Urgency:          pick(r.Urgency),
		PersonalInterest: pick(r.PersonalInterest),
		ExecutionTime:    pick(r.ExecutionTime),
		Complexity:       pick(r.Complexity),
		Concentration:    pick(r.Concentration),
	}
}

func (r taskReq) toCreateInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		Date:        r.date(),
		Tags:        r.Tags,
		Ratings:     r.ratings(),
		Blocked:     r.Blocked,
		Completed:   r.Completed,
	}
}

func (r taskReq) toUpdateInput(id int64) task.UpdateTaskInput {
	return task.UpdateTaskInput{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		Date:        r.date(),
		Tags:        r.Tags,
		Ratings:     r.ratings(),
		Blocked:     r.Blocked,
		Completed:   r.Completed,
	}
}

type quickReq struct {
	Title string `json:"title"`
}

func (r quickReq) validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return task.ErrEmptyTitle
	}
	return nil
}

// listReq carries the ordering and tag filter query. Tags is comma separated.
type listReq struct {
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
	Tags      string `form:"tags"`
}

func (r listReq) toInput(date *time.Time) task.ListTasksInput {
	sortBy := r.SortBy
	if sortBy == "" {
		sortBy = defaultSortBy
	}
	sortOrder := r.SortOrder
	if sortOrder == "" {
		sortOrder = defaultSortOrder
	}

	var tags []string
	for _, t := range strings.Split(r.Tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	return task.ListTasksInput{
		Date:      date,
		SortBy:    sortBy,
		SortOrder: sortOrder,
		Tags:      tags,
	}
}

const (
	defaultSortBy    = "weight"
	defaultSortOrder = "desc"
)

// --- Response DTOs ---

type taskResp struct {
	ID               int64         `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description,omitempty"`
	Date             response.Date `json:"date"`
	Tags             []string      `json:"tags"`
	Importance       int           `json:"importance"`
	Urgency          int           `json:"urgency"`
	PersonalInterest int           `json:"personalInterest"`
	ExecutionTime    int           `json:"executionTime"`
	Complexity       int           `json:"complexity"`
	Concentration    int           `json:"concentration"`
	Blocked          bool          `json:"blocked"`
	Completed        bool          `json:"completed"`
	Weight           float64       `json:"weight"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:               t.ID,
		Title:            t.Title,
		Description:      t.Description,
		Date:             response.Date(t.Date),
		Tags:             t.TagNames(),
		Importance:       t.Ratings.Importance,
		Urgency:          t.Ratings.Urgency,
		PersonalInterest: t.Ratings.PersonalInterest,
		ExecutionTime:    t.Ratings.ExecutionTime,
		Complexity:       t.Ratings.Complexity,
		Concentration:    t.Ratings.Concentration,
		Blocked:          t.Blocked,
		Completed:        t.Completed,
		Weight:           t.Weight,
	}
}

func (h *handler) newTaskResp(out task.TaskOutput) taskResp {
	return newTaskResp(out.Task)
}

func (h *handler) newListResp(out task.ListTasksOutput) []taskResp {
	items := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		items[i] = newTaskResp(t)
	}
	return items
}
