package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		// Retrying cannot fix a malformed payload.
		return fmt.Errorf("failed to unmarshal welcome email payload: %v: %w", err, asynq.SkipRetry)
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Str("user_type", p.UserType).
		Msg("processing welcome email task")

	if err := j.emails.SendWelcomeEmail(p.To, p.Name, p.UserType); err != nil {
		j.logger.Error().
			Str("type", "welcome").
			Str("to", p.To).
			Err(err).
			Msg("failed to send welcome email")
		return err
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("sent welcome email")

	return nil
}
