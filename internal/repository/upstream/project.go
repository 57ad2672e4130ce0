package upstream

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/staffport/attendance-report-go/internal/domain/project"
)

type ProjectRepository struct {
	client *Client
}

func NewProjectRepository(client *Client) project.ProjectRepository {
	return &ProjectRepository{client: client}
}

// GetAll implements project.ProjectRepository.
func (r *ProjectRepository) GetAll(ctx context.Context) ([]project.Project, error) {
	var raw json.RawMessage
	if err := r.client.get(ctx, "/projects", nil, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}

	projects, err := decodeProjects(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode projects: %w", err)
	}
	return projects, nil
}

// decodeProjects accepts a bare array, {"data": [...]}, or
// {"data": {"projects": [...]}}.
func decodeProjects(raw json.RawMessage) ([]project.Project, error) {
	var list []project.Project
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil || len(env.Data) == 0 {
		return nil, fmt.Errorf("unexpected projects payload")
	}

	if err := json.Unmarshal(env.Data, &list); err == nil {
		return list, nil
	}

	var wrapped struct {
		Projects []project.Project `json:"projects"`
	}
	if err := json.Unmarshal(env.Data, &wrapped); err == nil {
		return wrapped.Projects, nil
	}

	return nil, fmt.Errorf("unexpected projects payload shape")
}
