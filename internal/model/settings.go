package model

// DefaultSummaryHour is the default daily summary hour (8 PM).
const DefaultSummaryHour = 20

// NotificationSettings is the per-device notification preferences document,
// persisted in the local key-value store.
type NotificationSettings struct {
	TaskReminders bool `json:"task_reminders"`
	DailySummary  bool `json:"daily_summary"`
	SummaryTime   int  `json:"summary_time"` // hour 0-23
}

// DefaultNotificationSettings returns the defaults applied when no settings
// document exists yet.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		TaskReminders: true,
		DailySummary:  true,
		SummaryTime:   DefaultSummaryHour,
	}
}

// NotificationSettingsPatch is a partial settings update. Nil fields keep the
// stored value.
type NotificationSettingsPatch struct {
	TaskReminders *bool `json:"task_reminders,omitempty"`
	DailySummary  *bool `json:"daily_summary,omitempty"`
	SummaryTime   *int  `json:"summary_time,omitempty"`
}

// Apply merges the patch into s and reports whether the daily summary
// schedule needs to be re-derived.
func (p NotificationSettingsPatch) Apply(s NotificationSettings) (merged NotificationSettings, summaryChanged bool) {
	merged = s
	if p.TaskReminders != nil {
		merged.TaskReminders = *p.TaskReminders
	}
	if p.DailySummary != nil {
		merged.DailySummary = *p.DailySummary
		summaryChanged = true
	}
	if p.SummaryTime != nil {
		merged.SummaryTime = *p.SummaryTime
		summaryChanged = true
	}
	return merged, summaryChanged
}
