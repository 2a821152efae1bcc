package firestore

import (
	"strings"
	"time"

	firestore "google.golang.org/api/firestore/v1"

	"tasq/internal/model"
)

// Firestore document field names for task documents.
const (
	fieldTitle       = "title"
	fieldDate        = "date"
	fieldTime        = "time"
	fieldPriority    = "priority"
	fieldCategory    = "category"
	fieldIsComplete  = "isComplete"
	fieldCompletedAt = "completedAt"
	fieldUserID      = "userId"
	fieldCreatedAt   = "createdAt"
	fieldCreatedBy   = "createdBy"
)

// strValue builds a string field. ForceSendFields keeps empty strings on the
// wire so an absent time expression round-trips as "".
func strValue(s string) firestore.Value {
	return firestore.Value{StringValue: s, ForceSendFields: []string{"StringValue"}}
}

// boolValue builds a boolean field. false is zero-valued in Go, so it must be
// force-sent or the encoder drops it.
func boolValue(b bool) firestore.Value {
	return firestore.Value{BooleanValue: b, ForceSendFields: []string{"BooleanValue"}}
}

func timestampValue(t time.Time) firestore.Value {
	return firestore.Value{TimestampValue: t.UTC().Format(time.RFC3339Nano)}
}

func nullValue() firestore.Value {
	return firestore.Value{NullValue: "NULL_VALUE"}
}

func readString(fields map[string]firestore.Value, key string) string {
	return fields[key].StringValue
}

func readBool(fields map[string]firestore.Value, key string) bool {
	return fields[key].BooleanValue
}

func readTimestamp(fields map[string]firestore.Value, key string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, fields[key].TimestampValue)
	return t
}

// documentID extracts the document id from a full Firestore resource name
// (projects/.../documents/tasks/<id>).
func documentID(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}

// docToTask maps a Firestore document onto the domain model.
func docToTask(doc *firestore.Document) model.Task {
	t := model.Task{
		ID:         documentID(doc.Name),
		Title:      readString(doc.Fields, fieldTitle),
		Date:       readString(doc.Fields, fieldDate),
		Time:       readString(doc.Fields, fieldTime),
		Priority:   model.Priority(readString(doc.Fields, fieldPriority)),
		Category:   readString(doc.Fields, fieldCategory),
		IsComplete: readBool(doc.Fields, fieldIsComplete),
		UserID:     readString(doc.Fields, fieldUserID),
		CreatedAt:  readTimestamp(doc.Fields, fieldCreatedAt),
		CreatedBy:  readString(doc.Fields, fieldCreatedBy),
	}

	if v, ok := doc.Fields[fieldCompletedAt]; ok && v.TimestampValue != "" {
		at := readTimestamp(doc.Fields, fieldCompletedAt)
		t.CompletedAt = &at
	}

	return t
}
