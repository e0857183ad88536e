package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields are attached to every record logged with the enriched context.
type LogFields struct {
	UserID      *int64
	WorkspaceID *int64
	InviteID    *int64
	MessageID   *string // Redis stream message ID
	Component   string  // e.g. "docs.worker.invite_email"
}

// WithLogFields merges fields into the context. Later non-empty values win.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	merged := mergeFields(GetLogFields(ctx), fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.UserID != nil {
		result.UserID = next.UserID
	}
	if next.WorkspaceID != nil {
		result.WorkspaceID = next.WorkspaceID
	}
	if next.InviteID != nil {
		result.InviteID = next.InviteID
	}
	if next.MessageID != nil {
		result.MessageID = next.MessageID
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

func Ptr[T any](v T) *T {
	return &v
}
