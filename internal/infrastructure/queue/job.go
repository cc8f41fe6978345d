package queue

import (
	"encoding/json"
	"fmt"
	"time"
)

type JobType string

const (
	// JobDeleteFile removes a stored video file whose row is gone or was
	// never committed.
	JobDeleteFile JobType = "delete_file"
)

type Job struct {
	Type       JobType   `json:"type"`
	Locator    string    `json:"locator"`
	Attempt    int       `json:"attempt,omitempty"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

func NewDeleteJob(locator string) Job {
	return Job{
		Type:       JobDeleteFile,
		Locator:    locator,
		EnqueuedAt: time.Now().UTC(),
	}
}

func DeserializeJob(data string) (*Job, error) {
	var job Job
	if err := json.Unmarshal([]byte(data), &job); err != nil {
		return nil, fmt.Errorf("failed to deserialize job: %w", err)
	}
	return &job, nil
}

func SerializeJob(job Job) (string, error) {
	bytes, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("failed to serialize job: %w", err)
	}
	return string(bytes), nil
}
