// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Web-Plus-Academy/lms-admin/internal/model"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Options{BaseURL: srv.URL, RequestsPerSec: 1000})
}

func TestLoginSuccessInstallsToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		require.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var creds Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "admin01", creds.UserID)

		json.NewEncoder(w).Encode(map[string]any{"success": true, "token": "tok-123"})
	})

	res, err := c.Login(context.Background(), Credentials{UserID: "admin01", Password: "pw"})
	require.NoError(t, err)
	require.Equal(t, "tok-123", res.Token)
	require.Equal(t, "tok-123", c.bearer())
}

func TestSetTokenConcurrentWithRequests(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": []model.Course{}})
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			c.SetToken(fmt.Sprintf("tok-%d", i))
		}
	}()
	for i := 0; i < 50; i++ {
		_, err := c.Courses(context.Background())
		require.NoError(t, err)
	}
	<-done
}

func TestLoginInvalidCredentials(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "invalid credentials"})
	})

	_, err := c.Login(context.Background(), Credentials{UserID: "x", Password: "y"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "invalid credentials", apiErr.Message)
}

func TestUnauthorizedMapsToSentinel(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.Courses(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestBearerTokenSent(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": []model.Course{}})
	})
	c.SetToken("tok-9")

	_, err := c.Courses(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-9", gotAuth)
}

func TestCoursesDecodesData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/app-admin/courses", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": []model.Course{
				{ID: "c1", Title: "Full Stack Bootcamp", Students: 40},
				{ID: "c2", Title: "Data Science", Students: 25},
			},
		})
	})

	courses, err := c.Courses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 2)
	require.Equal(t, "Full Stack Bootcamp", courses[0].Title)
}

func TestRegisterStudentSingleCall(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		require.Equal(t, "/api/adminAccess/register", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	err := c.RegisterStudent(context.Background(), model.StudentRegistration{UserID: "FSB105"})
	require.NoError(t, err)
	require.Equal(t, 1, calls, "submit must hit the backend exactly once")
}

func TestRegisterStudentServerErrorNoRetry(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "db down"})
	})

	err := c.RegisterStudent(context.Background(), model.StudentRegistration{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusInternalServerError, apiErr.Status)
	require.Equal(t, 1, calls, "client must not retry on its own")
}

func TestDeleteResource(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/app-admin/events/e42", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	require.NoError(t, c.DeleteResource(context.Background(), "events", "e42"))
}

func TestTasksForEscapesCourse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/adminAccess/getTasks/5/Full%20Stack%20Bootcamp", r.URL.EscapedPath())
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    []model.Assignment{{TaskNo: 1, Title: "Build a REST API", Week: 3}},
		})
	})

	tasks, err := c.TasksFor(context.Background(), 5, "Full Stack Bootcamp")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "Build a REST API", tasks[0].Title)
}

func TestEditTask(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/adminAccess/editTask", r.URL.Path)

		var task model.Assignment
		require.NoError(t, json.NewDecoder(r.Body).Decode(&task))
		require.Equal(t, 2, task.TaskNo)
		require.Equal(t, "2026-09-15", task.DueDate)
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	err := c.EditTask(context.Background(), model.Assignment{TaskNo: 2, DueDate: "2026-09-15"})
	require.NoError(t, err)
}

func TestTransportErrorSurfaces(t *testing.T) {
	c := NewClient(Options{BaseURL: "http://127.0.0.1:1", RequestsPerSec: 1000})
	_, err := c.Courses(context.Background())
	require.Error(t, err)
	var apiErr *APIError
	require.False(t, errors.As(err, &apiErr), "transport failures are not APIErrors")
}

func TestSummaryAggregates(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var data any
		switch r.URL.Path {
		case "/api/app-admin/courses":
			data = []model.Course{{Students: 30}, {Students: 12}}
		case "/api/app-admin/internships":
			data = []model.Internship{{Role: "SDE Intern"}}
		case "/api/app-admin/events":
			data = []model.Event{}
		case "/api/app-admin/workshops":
			data = []model.Workshop{{Topic: "Git"}, {Topic: "Docker"}}
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
	})

	sum, err := c.Summary(context.Background())
	require.NoError(t, err)
	require.Equal(t, 42, sum.Students)
	require.Equal(t, 2, sum.Courses)
	require.Equal(t, 1, sum.Internships)
	require.Equal(t, 0, sum.Events)
	require.Equal(t, 2, sum.Workshops)
}
