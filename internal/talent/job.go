package talent

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Job describes an opening posted by a company.
type Job struct {
	ID           string `json:"id,omitempty"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	JobType      string `json:"job_type"`
	Location     string `json:"location"`
}

// Empty reports whether the job carries no usable text at all.
func (j *Job) Empty() bool {
	if j == nil {
		return true
	}
	return strings.TrimSpace(j.Title) == "" &&
		strings.TrimSpace(j.Description) == "" &&
		strings.TrimSpace(j.Requirements) == ""
}

// FreeText concatenates every descriptive field of the job.
func (j *Job) FreeText() string {
	if j == nil {
		return ""
	}

	parts := []string{j.Title, j.Description, j.Requirements, j.JobType, j.Location}

	nonEmpty := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}

	return strings.Join(nonEmpty, "\n")
}

// LoadJob reads a single job posting from a JSON file.
func LoadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job from %q: %w", path, err)
	}

	var job Job
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("parsing job from %q: %w", path, err)
	}

	return &job, nil
}
