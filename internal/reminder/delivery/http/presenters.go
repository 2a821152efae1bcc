package http

import (
	"tasq/internal/model"
	"tasq/internal/reminder"
)

// --- Request DTOs ---

type updateSettingsReq struct {
	TaskReminders *bool `json:"task_reminders"`
	DailySummary  *bool `json:"daily_summary"`
	SummaryTime   *int  `json:"summary_time" binding:"omitempty,min=0,max=23"`
}

func (r updateSettingsReq) toPatch() model.NotificationSettingsPatch {
	return model.NotificationSettingsPatch{
		TaskReminders: r.TaskReminders,
		DailySummary:  r.DailySummary,
		SummaryTime:   r.SummaryTime,
	}
}

type notificationResponseReq struct {
	Action    string `json:"action"    binding:"omitempty,oneof=MARK_COMPLETE SNOOZE VIEW_TASKS"`
	Type      string `json:"type"      binding:"omitempty,oneof=TASK_REMINDER DAILY_SUMMARY"`
	TaskID    string `json:"task_id"`
	TaskTitle string `json:"task_title"`
}

func (r notificationResponseReq) toResponse() reminder.NotificationResponse {
	return reminder.NotificationResponse{
		Action:    reminder.Action(r.Action),
		Type:      reminder.NotificationType(r.Type),
		TaskID:    r.TaskID,
		TaskTitle: r.TaskTitle,
	}
}

// --- Response DTOs ---

type settingsResp struct {
	TaskReminders bool `json:"task_reminders"`
	DailySummary  bool `json:"daily_summary"`
	SummaryTime   int  `json:"summary_time"`
}

func newSettingsResp(s model.NotificationSettings) settingsResp {
	return settingsResp{
		TaskReminders: s.TaskReminders,
		DailySummary:  s.DailySummary,
		SummaryTime:   s.SummaryTime,
	}
}

type routeResp struct {
	Route string `json:"route"`
}
