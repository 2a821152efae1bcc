package http

import (
	"time"

	"tasq/internal/model"
	"tasq/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Title    string `json:"title"    binding:"required,min=1,max=500"`
	Date     string `json:"date"     binding:"max=100"`
	Time     string `json:"time"     binding:"max=100"`
	Priority string `json:"priority" binding:"omitempty,oneof=High Medium Low"`
	Category string `json:"category" binding:"max=100"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:    r.Title,
		Date:     r.Date,
		Time:     r.Time,
		Priority: r.Priority,
		Category: r.Category,
	}
}

type listReq struct {
	Date string `form:"date"`
}

func (r listReq) validate() error { return nil }

// --- Response DTOs ---

type taskResp struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Date        string     `json:"date"`
	Time        string     `json:"time,omitempty"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category"`
	IsComplete  bool       `json:"is_complete"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CreatedBy   string     `json:"created_by"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Date:        t.Date,
		Time:        t.Time,
		Priority:    string(t.Priority),
		Category:    t.Category,
		IsComplete:  t.IsComplete,
		CompletedAt: t.CompletedAt,
		CreatedAt:   t.CreatedAt,
		CreatedBy:   t.CreatedBy,
	}
}

type createResp struct {
	Task           taskResp `json:"task"`
	NotificationID string   `json:"notification_id,omitempty"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	return createResp{
		Task:           newTaskResp(out.Task),
		NotificationID: out.NotificationID,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}

type toggleResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newToggleResp(out task.ToggleOutput) toggleResp {
	return toggleResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Date  string     `json:"date"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks, Date: out.Date}
}

type trendPointResp struct {
	Date      string  `json:"date"`
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Rate      float64 `json:"rate"`
}

type trendResp struct {
	Days []trendPointResp `json:"days"`
}

func (h *handler) newTrendResp(out task.TrendOutput) trendResp {
	days := make([]trendPointResp, len(out.Days))
	for i, d := range out.Days {
		days[i] = trendPointResp{
			Date:      d.Date,
			Total:     d.Total,
			Completed: d.Completed,
			Rate:      d.Rate,
		}
	}
	return trendResp{Days: days}
}
