// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Web-Plus-Academy/lms-admin/internal/model"
)

// RegisterStudent submits a completed registration. At most one backend
// call per invocation; callers must not reissue while one is outstanding.
func (c *Client) RegisterStudent(ctx context.Context, reg model.StudentRegistration) error {
	return c.do(ctx, http.MethodPost, "/api/adminAccess/register", reg, nil)
}

// StudentsByBatch lists students enrolled in a batch/course cohort.
func (c *Client) StudentsByBatch(ctx context.Context, batch int, course string) ([]model.Student, error) {
	var students []model.Student
	path := fmt.Sprintf("/api/adminAccess/getStudentsByBatch/%d/%s", batch, url.PathEscape(course))
	if err := c.do(ctx, http.MethodGet, path, nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// UpdateStudentProfile edits an existing student record.
func (c *Client) UpdateStudentProfile(ctx context.Context, student model.Student) error {
	path := "/api/adminAccess/updateProfile/" + url.PathEscape(student.UserID)
	return c.do(ctx, http.MethodPut, path, student, nil)
}

// AssignTask allocates an assignment to a batch/course cohort.
func (c *Client) AssignTask(ctx context.Context, task model.Assignment) error {
	return c.do(ctx, http.MethodPost, "/api/adminAccess/assignTask", task, nil)
}

// EditTask updates an allocated assignment.
func (c *Client) EditTask(ctx context.Context, task model.Assignment) error {
	return c.do(ctx, http.MethodPut, "/api/adminAccess/editTask", task, nil)
}

// TasksFor lists the assignments allocated to a batch/course cohort.
func (c *Client) TasksFor(ctx context.Context, batch int, course string) ([]model.Assignment, error) {
	var tasks []model.Assignment
	path := fmt.Sprintf("/api/adminAccess/getTasks/%d/%s", batch, url.PathEscape(course))
	if err := c.do(ctx, http.MethodGet, path, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}
