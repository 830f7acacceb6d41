package form

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/km-arc/kindform/app/datakind"
)

type submissionIDKey struct{}

// WithSubmissionID returns ctx carrying id. An empty id gets a fresh UUID.
func WithSubmissionID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = uuid.New().String()
	}
	return context.WithValue(ctx, submissionIDKey{}, id)
}

// SubmissionID returns the id stored by WithSubmissionID, or "".
func SubmissionID(ctx context.Context) string {
	id, _ := ctx.Value(submissionIDKey{}).(string)
	return id
}

// LogSubmit is the default submit callback: it records every accepted
// submission on logger.
func LogSubmit(logger *zap.Logger) datakind.SubmitFunc {
	return func(ctx context.Context, s datakind.Submission) error {
		logger.Info("form submitted",
			zap.String("submission_id", SubmissionID(ctx)),
			zap.Int("option", int(s.Option)),
			zap.String("kind", s.Option.String()),
			zap.Strings("values", s.Values),
		)
		return nil
	}
}
