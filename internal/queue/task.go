package queue

type TaskType string

const (
	TaskTypeInviteEmail TaskType = "invite_email"
)

// Task is what producers put on the stream. The worker reloads the invite by
// id, so a resend that rotates the token never mails a stale link.
type Task struct {
	TaskType    TaskType
	InviteID    int64
	WorkspaceID int64
	TraceID     string
	Attempt     int
}

func InviteEmailTask(inviteID, workspaceID int64, traceID string) Task {
	return Task{
		TaskType:    TaskTypeInviteEmail,
		InviteID:    inviteID,
		WorkspaceID: workspaceID,
		TraceID:     traceID,
		Attempt:     1,
	}
}
