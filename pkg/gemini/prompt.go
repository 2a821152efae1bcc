package gemini

import "fmt"

// IntentParsingPrompt is the instruction template sent to Gemini for turning a
// free-text utterance into a structured task intent.
const IntentParsingPrompt = `Parse the following user input into a structured task object. Extract:
- title: The main task description (required)
- time: Specific time mentioned (e.g., "8pm", "3:30 AM", "noon") or null
- date: Date mentioned (e.g., "tomorrow", "Monday", "today", "December 15") or null
- priority: High, Medium, or Low based on urgency words
- category: Work, Personal, Health, Shopping, etc. based on context

User input: "%s"

Respond ONLY with a valid JSON object in this exact format:
{
  "title": "extracted task title",
  "time": "extracted time or null",
  "date": "extracted date or null",
  "priority": "High|Medium|Low",
  "category": "extracted category"
}

Examples:
- "Remind me to call Mom at 8pm tomorrow" → {"title": "Call Mom", "time": "8pm", "date": "tomorrow", "priority": "Medium", "category": "Personal"}
- "Buy groceries" → {"title": "Buy groceries", "time": null, "date": null, "priority": "Medium", "category": "Shopping"}
- "Important meeting with boss at 9 AM Monday" → {"title": "Meeting with boss", "time": "9 AM", "date": "Monday", "priority": "High", "category": "Work"}`

// ConfirmationPrompt asks for a short, friendly message confirming a created task.
const ConfirmationPrompt = `Generate a brief, friendly confirmation message for adding a task to a task manager app called "tasQ".

Task details:
- Title: %s
- Time: %s
- Date: %s
- Priority: %s
- Category: %s

The response should be:
- 1-2 sentences maximum
- Friendly and encouraging
- Confirm the task was added
- Mention relevant details (time/date if specified)
- Match the app's motivational tone ("built for doers, not draggers")`

// SuggestionPrompt asks for a clarification hint when input was too vague to act on.
const SuggestionPrompt = `The user provided unclear input for a task manager: "%s"

Generate a helpful, friendly suggestion that:
- Acknowledges their input
- Explains what might be missing
- Provides 1-2 specific examples of better phrasing
- Keeps the tone encouraging and brief
- Matches the app's style ("tasQ" - built for doers)

Keep it to 1-2 sentences maximum.`

// BuildIntentParsingPrompt builds the full prompt for intent parsing.
func BuildIntentParsingPrompt(userInput string) string {
	return fmt.Sprintf(IntentParsingPrompt, userInput)
}

// BuildConfirmationPrompt builds the confirmation prompt for a created task.
func BuildConfirmationPrompt(title, timeStr, dateStr, priority, category string) string {
	if timeStr == "" {
		timeStr = "Not specified"
	}
	if dateStr == "" {
		dateStr = "Today"
	}
	return fmt.Sprintf(ConfirmationPrompt, title, timeStr, dateStr, priority, category)
}

// BuildSuggestionPrompt builds the clarification prompt for unclear input.
func BuildSuggestionPrompt(userInput string) string {
	return fmt.Sprintf(SuggestionPrompt, userInput)
}
