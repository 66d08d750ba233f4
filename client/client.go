// Package client is a Go rendition of the task tracker front end: a typed
// API client plus the list/detail/filter state handling that sits on top
// of it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"tasktracker/dto"
	"tasktracker/model"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
}

type apiError struct {
	Message string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) (int, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}
	if resp.StatusCode >= 400 {
		var apiErr apiError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Message != "" {
			return resp.StatusCode, errors.New(apiErr.Message)
		}
		return resp.StatusCode, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if out != nil {
		return resp.StatusCode, json.Unmarshal(data, out)
	}
	return resp.StatusCode, nil
}

func (c *Client) CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*model.Task, error) {
	var task model.Task
	if _, err := c.do(ctx, http.MethodPost, "/tasks", req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) GetTasks(ctx context.Context) ([]model.Task, error) {
	tasks := make([]model.Task, 0)
	if _, err := c.do(ctx, http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetTask returns (nil, nil) when the server reports the task missing.
func (c *Client) GetTask(ctx context.Context, id int) (*model.Task, error) {
	var task model.Task
	status, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tasks/%d", id), nil, &task)
	if status == http.StatusNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask returns (nil, nil) when the server reports the task missing.
func (c *Client) UpdateTask(ctx context.Context, id int, req dto.UpdateTaskRequest) (*model.Task, error) {
	var task model.Task
	status, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d", id), req, &task)
	if status == http.StatusNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) DeleteTask(ctx context.Context, id int) (bool, error) {
	var res dto.DeleteResponse
	status, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, &res)
	if status == http.StatusNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return res.Success, nil
}

func (c *Client) CreateAttachment(ctx context.Context, req dto.CreateAttachmentRequest) (*model.Attachment, error) {
	var attachment model.Attachment
	if _, err := c.do(ctx, http.MethodPost, "/attachments", req, &attachment); err != nil {
		return nil, err
	}
	return &attachment, nil
}

func (c *Client) GetAttachmentsByTask(ctx context.Context, taskID int) ([]model.Attachment, error) {
	attachments := make([]model.Attachment, 0)
	if _, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tasks/%d/attachments", taskID), nil, &attachments); err != nil {
		return nil, err
	}
	return attachments, nil
}

func (c *Client) DeleteAttachment(ctx context.Context, id int) (bool, error) {
	var res dto.DeleteResponse
	status, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/attachments/%d", id), nil, &res)
	if status == http.StatusNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return res.Success, nil
}
