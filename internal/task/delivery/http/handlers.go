package http

import (
	"github.com/gin-gonic/gin"

	"task-tracker/pkg/response"
)

// List godoc
// @Summary     List tasks
// @Description Returns every task, incomplete first, ordered by the given key.
// @Tags        Tasks
// @Produce     json
// @Param       sortBy    query string false "weight, importance, urgency, personalInterest, executionTime, complexity, concentration (default: weight)"
// @Param       sortOrder query string false "asc or desc (default: desc)"
// @Param       tags      query string false "Comma separated tag names, any of which must match"
// @Success     200 {object} response.Resp{data=[]taskResp}
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    Bearer
// @Router      /api/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput(nil))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// ListByDate godoc
// @Summary     List tasks for a date
// @Description Returns tasks scheduled on a date. The date is ISO (2024-01-31) or relative (today, tomorrow, in 3 days, next monday).
// @Tags        Tasks
// @Produce     json
// @Param       date      path  string true  "Date"
// @Param       sortBy    query string false "Sort key (default: weight)"
// @Param       sortOrder query string false "asc or desc (default: desc)"
// @Param       tags      query string false "Comma separated tag names"
// @Success     200 {object} response.Resp{data=[]taskResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    Bearer
// @Router      /api/tasks/date/{date} [GET]
func (h *handler) ListByDate(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.dates.Resolve(c.Param("date"))
	if err != nil {
		h.l.Debugf(ctx, "task.delivery.http.ListByDate: %v", err)
		response.Error(c, errInvalidDate)
		return
	}

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput(&date))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} response.Resp{data=taskResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    Bearer
// @Router      /api/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskResp(output))
}

// Create godoc
// @Summary     Create a task
// @Description Ratings are clamped to 1..10 and default to 5. A missing date means today.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body taskReq true "Task"
// @Success     200 {object} response.Resp{data=taskResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    Bearer
// @Router      /api/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toCreateInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskResp(output))
}

// CreateQuick godoc
// @Summary     Create a quick task
// @Description Creates a task for today with every rating at 10.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body quickReq true "Title"
// @Success     200 {object} response.Resp{data=taskResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    Bearer
// @Router      /api/tasks/quick [POST]
func (h *handler) CreateQuick(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQuickReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateQuick(ctx, req.Title)
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateQuick: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskResp(output))
}

// CreateQuickEstimated godoc
// @Summary     Create a quick task rated by the LLM
// @Description Creates a task for today with ratings suggested by the language model.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body quickReq true "Title"
// @Success     200 {object} response.Resp{data=taskResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "No rating estimate"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    Bearer
// @Router      /api/tasks/quick/llm [POST]
func (h *handler) CreateQuickEstimated(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQuickReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateQuickEstimated(ctx, req.Title)
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateQuickEstimated: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskResp(output))
}

// Update godoc
// @Summary     Replace a task
// @Description Replaces every field of the task. Tags no longer used by any task are removed.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path int     true "Task ID"
// @Param       body body taskReq true "Task"
// @Success     200 {object} response.Resp{data=taskResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    Bearer
// @Router      /api/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toUpdateInput(id))
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    Bearer
// @Router      /api/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// ListTags godoc
// @Summary     List tag names
// @Tags        Tags
// @Produce     json
// @Success     200 {object} response.Resp{data=[]string}
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    Bearer
// @Router      /api/tags [GET]
func (h *handler) ListTags(c *gin.Context) {
	ctx := c.Request.Context()

	tags, err := h.uc.ListTags(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTags: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, tags)
}
