package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"task-tracker/internal/middleware"
	"task-tracker/internal/model"
	"task-tracker/internal/task"
	"task-tracker/pkg/datemath"
	"task-tracker/pkg/log"
	"task-tracker/pkg/response"
	"task-tracker/pkg/scope"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockTaskUseCase struct {
	out     task.TaskOutput
	listOut task.ListTasksOutput
	tags    []string
	err     error

	lastCreate task.CreateTaskInput
	lastUpdate task.UpdateTaskInput
	lastList   task.ListTasksInput
	lastID     int64
	lastTitle  string
}

func (m *mockTaskUseCase) Create(ctx context.Context, in task.CreateTaskInput) (task.TaskOutput, error) {
	m.lastCreate = in
	return m.out, m.err
}
func (m *mockTaskUseCase) Detail(ctx context.Context, id int64) (task.TaskOutput, error) {
	m.lastID = id
	return m.out, m.err
}
func (m *mockTaskUseCase) Update(ctx context.Context, in task.UpdateTaskInput) (task.TaskOutput, error) {
	m.lastUpdate = in
	return m.out, m.err
}
func (m *mockTaskUseCase) Delete(ctx context.Context, id int64) error {
	m.lastID = id
	return m.err
}
func (m *mockTaskUseCase) CreateQuick(ctx context.Context, title string) (task.TaskOutput, error) {
	m.lastTitle = title
	return m.out, m.err
}
func (m *mockTaskUseCase) CreateQuickEstimated(ctx context.Context, title string) (task.TaskOutput, error) {
	m.lastTitle = title
	return m.out, m.err
}
func (m *mockTaskUseCase) List(ctx context.Context, in task.ListTasksInput) (task.ListTasksOutput, error) {
	m.lastList = in
	return m.listOut, m.err
}
func (m *mockTaskUseCase) ListTags(ctx context.Context) ([]string, error) {
	return m.tags, m.err
}
func (m *mockTaskUseCase) RolloverOpenTasks(ctx context.Context, today time.Time) (int, error) {
	return 0, m.err
}

// ── Helpers ────────────────────────────────────────────────────────────────

type testServer struct {
	engine *gin.Engine
	token  string
}

func newTestServer(t *testing.T, uc task.UseCase) testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jm, err := scope.New("secret", time.Hour, nil)
	if err != nil {
		t.Fatalf("scope.New() error = %v", err)
	}
	token, err := jm.CreateToken(scope.DefaultSubject)
	if err != nil {
		t.Fatalf("CreateToken() error = %v", err)
	}

	dates, err := datemath.NewParser("Europe/Moscow")
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}
	dates = dates.WithClock(func() time.Time {
		return time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)
	})

	l := log.NewNop()
	r := gin.New()
	RegisterRoutes(r.Group("/api"), New(l, uc, dates), middleware.New(l, jm, 60))
	return testServer{engine: r, token: token}
}

func (s testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func sampleTask() model.Task {
	return model.Task{
		ID:      7,
		Title:   "Write report",
		Date:    datemath.Date(2024, 1, 2),
		Tags:    []model.Tag{{ID: 1, Name: "work"}},
		Ratings: model.UniformRatings(6),
		Weight:  6,
	}
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestRoutesRequireToken(t *testing.T) {
	s := newTestServer(t, &mockTaskUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/tags", nil)
	w = httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 on tags without token, got %d", w.Code)
	}
}

func TestList(t *testing.T) {
	uc := &mockTaskUseCase{listOut: task.ListTasksOutput{Tasks: []model.Task{sampleTask()}}}
	s := newTestServer(t, uc)

	t.Run("defaults", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/tasks", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.lastList.SortBy != "weight" || uc.lastList.SortOrder != "desc" {
			t.Errorf("unexpected defaults: %+v", uc.lastList)
		}
		if uc.lastList.Date != nil {
			t.Errorf("expected no date filter, got %v", uc.lastList.Date)
		}

		var resp struct {
			Data []map[string]any `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(resp.Data) != 1 {
			t.Fatalf("expected 1 task, got %d", len(resp.Data))
		}
		got := resp.Data[0]
		if got["date"] != "2024-01-02" {
			t.Errorf("expected date 2024-01-02, got %v", got["date"])
		}
		if got["personalInterest"] != float64(6) {
			t.Errorf("expected personalInterest 6, got %v", got["personalInterest"])
		}
	})

	t.Run("query params", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/tasks?sortBy=urgency&sortOrder=asc&tags=work,%20home,,", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if uc.lastList.SortBy != "urgency" || uc.lastList.SortOrder != "asc" {
			t.Errorf("unexpected sort: %+v", uc.lastList)
		}
		if len(uc.lastList.Tags) != 2 || uc.lastList.Tags[0] != "work" || uc.lastList.Tags[1] != "home" {
			t.Errorf("unexpected tags: %v", uc.lastList.Tags)
		}
	})
}

func TestListByDate(t *testing.T) {
	uc := &mockTaskUseCase{}
	s := newTestServer(t, uc)

	tests := []struct {
		name     string
		segment  string
		wantCode int
		wantDate time.Time
	}{
		{"iso", "2024-03-05", http.StatusOK, datemath.Date(2024, 3, 5)},
		{"today", "today", http.StatusOK, datemath.Date(2024, 1, 2)},
		{"tomorrow", "tomorrow", http.StatusOK, datemath.Date(2024, 1, 3)},
		{"garbage", "someday", http.StatusBadRequest, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc.lastList = task.ListTasksInput{}
			w := s.do(http.MethodGet, "/api/tasks/date/"+tt.segment, nil)
			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, w.Code)
			}
			if tt.wantCode != http.StatusOK {
				return
			}
			if uc.lastList.Date == nil || !uc.lastList.Date.Equal(tt.wantDate) {
				t.Errorf("expected date %v, got %v", tt.wantDate, uc.lastList.Date)
			}
		})
	}
}

func TestCreate(t *testing.T) {
	uc := &mockTaskUseCase{out: task.TaskOutput{Task: sampleTask()}}
	s := newTestServer(t, uc)

	t.Run("partial ratings default to 5", func(t *testing.T) {
		w := s.do(http.MethodPost, "/api/tasks", map[string]any{
			"title":      "Write report",
			"date":       "2024-01-05",
			"tags":       []string{"work"},
			"importance": 9,
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		in := uc.lastCreate
		if in.Ratings == nil {
			t.Fatal("expected ratings")
		}
		if in.Ratings.Importance != 9 || in.Ratings.Urgency != model.DefaultRating {
			t.Errorf("unexpected ratings: %+v", *in.Ratings)
		}
		if !in.Date.Equal(datemath.Date(2024, 1, 5)) {
			t.Errorf("unexpected date %v", in.Date)
		}
	})

	t.Run("no ratings and no date", func(t *testing.T) {
		w := s.do(http.MethodPost, "/api/tasks", map[string]any{"title": "Plain"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if uc.lastCreate.Ratings != nil {
			t.Errorf("expected nil ratings, got %+v", uc.lastCreate.Ratings)
		}
		if !uc.lastCreate.Date.IsZero() {
			t.Errorf("expected zero date, got %v", uc.lastCreate.Date)
		}
	})

	t.Run("empty title", func(t *testing.T) {
		w := s.do(http.MethodPost, "/api/tasks", map[string]any{"title": "  "})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad date", func(t *testing.T) {
		w := s.do(http.MethodPost, "/api/tasks", map[string]any{"title": "x", "date": "05.01.2024"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuick(t *testing.T) {
	t.Run("quick", func(t *testing.T) {
		uc := &mockTaskUseCase{out: task.TaskOutput{Task: sampleTask()}}
		s := newTestServer(t, uc)
		w := s.do(http.MethodPost, "/api/tasks/quick", map[string]any{"title": "Call mom"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if uc.lastTitle != "Call mom" {
			t.Errorf("unexpected title %q", uc.lastTitle)
		}
	})

	t.Run("estimate unavailable", func(t *testing.T) {
		uc := &mockTaskUseCase{err: task.ErrEstimateUnavailable}
		s := newTestServer(t, uc)
		w := s.do(http.MethodPost, "/api/tasks/quick/llm", map[string]any{"title": "Call mom"})
		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("expected 422, got %d", w.Code)
		}
	})
}

func TestDetailUpdateDelete(t *testing.T) {
	t.Run("detail", func(t *testing.T) {
		uc := &mockTaskUseCase{out: task.TaskOutput{Task: sampleTask()}}
		s := newTestServer(t, uc)
		w := s.do(http.MethodGet, "/api/tasks/7", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if uc.lastID != 7 {
			t.Errorf("expected id 7, got %d", uc.lastID)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		s := newTestServer(t, &mockTaskUseCase{})
		for _, path := range []string{"/api/tasks/abc", "/api/tasks/0"} {
			if w := s.do(http.MethodGet, path, nil); w.Code != http.StatusBadRequest {
				t.Errorf("%s: expected 400, got %d", path, w.Code)
			}
		}
	})

	t.Run("not found", func(t *testing.T) {
		s := newTestServer(t, &mockTaskUseCase{err: task.ErrTaskNotFound})
		w := s.do(http.MethodDelete, "/api/tasks/9", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update passes id", func(t *testing.T) {
		uc := &mockTaskUseCase{out: task.TaskOutput{Task: sampleTask()}}
		s := newTestServer(t, uc)
		w := s.do(http.MethodPut, "/api/tasks/7", map[string]any{"title": "New", "completed": true})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if uc.lastUpdate.ID != 7 || !uc.lastUpdate.Completed || uc.lastUpdate.Title != "New" {
			t.Errorf("unexpected update input: %+v", uc.lastUpdate)
		}
	})

	t.Run("storage failure hides cause", func(t *testing.T) {
		s := newTestServer(t, &mockTaskUseCase{err: errors.New("connection refused")})
		w := s.do(http.MethodGet, "/api/tasks/7", nil)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var resp response.Resp
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Message != response.DefaultErrorMessage {
			t.Errorf("unexpected message %q", resp.Message)
		}
	})
}

func TestListTags(t *testing.T) {
	s := newTestServer(t, &mockTaskUseCase{tags: []string{"home", "work"}})
	w := s.do(http.MethodGet, "/api/tags", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Data []string `json:"data"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Data) != 2 || resp.Data[0] != "home" {
		t.Errorf("unexpected tags %v", resp.Data)
	}
}
