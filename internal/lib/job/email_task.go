package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	TaskWelcome = "email:welcome"
)

type WelcomeEmailPayload struct {
	To       string `json:"to"`
	Name     string `json:"name"`
	UserType string `json:"user_type"`
}

// NewWelcomeEmailTask builds an email:welcome task on the default queue,
// retried up to three times with a 30 second deadline per attempt.
func NewWelcomeEmailTask(to, name, userType string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{
		To:       to,
		Name:     name,
		UserType: userType,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
