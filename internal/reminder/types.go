package reminder

// ReminderInput is the slice of a task record the scheduler needs.
type ReminderInput struct {
	TaskID string
	Title  string
	Date   string // free-form or ISO date expression
	Time   string // free-form clock expression
}

// NotificationType tags what kind of notification a payload belongs to.
type NotificationType string

const (
	TypeTaskReminder NotificationType = "TASK_REMINDER"
	TypeDailySummary NotificationType = "DAILY_SUMMARY"
)

// Action is the identifier of the button (or default tap) a user chose on a
// delivered notification.
type Action string

const (
	ActionMarkComplete Action = "MARK_COMPLETE"
	ActionSnooze       Action = "SNOOZE"
	ActionViewTasks    Action = "VIEW_TASKS"
	ActionDefault      Action = ""
)

// NotificationResponse is a user's interaction with a delivered notification.
type NotificationResponse struct {
	Action    Action
	Type      NotificationType
	TaskID    string
	TaskTitle string
}

// Route is where the app should navigate after handling a response.
type Route string

const (
	RouteNone     Route = ""
	RouteTasks    Route = "tasks"
	RouteCalendar Route = "calendar"
)

// Notification payload data keys.
const (
	DataKeyTaskID    = "taskId"
	DataKeyTaskTitle = "taskTitle"
	DataKeyType      = "type"
)

// User-visible notification strings.
const (
	ReminderTitle        = "📋 Task Reminder"
	ReminderSnoozedTitle = "📋 Task Reminder (Snoozed)"
	SummaryTitle         = "📊 Daily Summary"
	SummaryBody          = "Check your progress and plan for tomorrow!"
)
