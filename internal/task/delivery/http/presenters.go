package http

import (
	"task-management/internal/model"
	"task-management/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Title       string `json:"title"       binding:"required,max=255"`
	Description string `json:"description" binding:"max=2000"`
	Status      string `json:"status"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
	}
}

// ---

type listReq struct {
	Status string `form:"status"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{Status: r.Status}
}

// ---

type updateReq struct {
	ID          int64  `json:"-"` // populated from URI param
	Title       string `json:"title"       binding:"required,max=255"`
	Description string `json:"description" binding:"max=2000"`
	Status      string `json:"status"      binding:"required"`
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		StatusLabel: t.Status.Label(),
	}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks: tasks,
		Count: out.Count,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(t model.Task) detailResp {
	return detailResp{Task: newTaskResp(t)}
}
