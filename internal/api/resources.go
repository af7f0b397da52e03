// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Web-Plus-Academy/lms-admin/internal/model"
)

// The app-admin resource endpoints share one shape:
//   GET    /api/app-admin/<kind>        list
//   POST   /api/app-admin/<kind>/add    create
//   PUT    /api/app-admin/<kind>/<id>   update
//   DELETE /api/app-admin/<kind>/<id>   delete

func resourcePath(kind string) string {
	return "/api/app-admin/" + kind
}

func (c *Client) listResource(ctx context.Context, kind string, out any) error {
	return c.do(ctx, http.MethodGet, resourcePath(kind), nil, out)
}

func (c *Client) addResource(ctx context.Context, kind string, body any) error {
	return c.do(ctx, http.MethodPost, resourcePath(kind)+"/add", body, nil)
}

func (c *Client) updateResource(ctx context.Context, kind, id string, body any) error {
	return c.do(ctx, http.MethodPut, resourcePath(kind)+"/"+url.PathEscape(id), body, nil)
}

// DeleteResource removes one record of the named kind ("courses",
// "internships", "events", "workshops").
func (c *Client) DeleteResource(ctx context.Context, kind, id string) error {
	return c.do(ctx, http.MethodDelete, resourcePath(kind)+"/"+url.PathEscape(id), nil, nil)
}

// Courses lists all published courses.
func (c *Client) Courses(ctx context.Context) ([]model.Course, error) {
	var out []model.Course
	if err := c.listResource(ctx, "courses", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddCourse publishes a new course.
func (c *Client) AddCourse(ctx context.Context, course model.Course) error {
	return c.addResource(ctx, "courses", course)
}

// UpdateCourse edits an existing course.
func (c *Client) UpdateCourse(ctx context.Context, course model.Course) error {
	return c.updateResource(ctx, "courses", course.ID, course)
}

// Internships lists all internship listings.
func (c *Client) Internships(ctx context.Context) ([]model.Internship, error) {
	var out []model.Internship
	if err := c.listResource(ctx, "internships", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddInternship publishes a new internship listing.
func (c *Client) AddInternship(ctx context.Context, in model.Internship) error {
	return c.addResource(ctx, "internships", in)
}

// UpdateInternship edits an existing internship listing.
func (c *Client) UpdateInternship(ctx context.Context, in model.Internship) error {
	return c.updateResource(ctx, "internships", in.ID, in)
}

// Events lists all scheduled events.
func (c *Client) Events(ctx context.Context) ([]model.Event, error) {
	var out []model.Event
	if err := c.listResource(ctx, "events", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddEvent schedules a new event.
func (c *Client) AddEvent(ctx context.Context, ev model.Event) error {
	return c.addResource(ctx, "events", ev)
}

// UpdateEvent edits a scheduled event.
func (c *Client) UpdateEvent(ctx context.Context, ev model.Event) error {
	return c.updateResource(ctx, "events", ev.ID, ev)
}

// Workshops lists all workshops.
func (c *Client) Workshops(ctx context.Context) ([]model.Workshop, error) {
	var out []model.Workshop
	if err := c.listResource(ctx, "workshops", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddWorkshop publishes a new workshop.
func (c *Client) AddWorkshop(ctx context.Context, w model.Workshop) error {
	return c.addResource(ctx, "workshops", w)
}

// UpdateWorkshop edits an existing workshop.
func (c *Client) UpdateWorkshop(ctx context.Context, w model.Workshop) error {
	return c.updateResource(ctx, "workshops", w.ID, w)
}

// Summary aggregates counts for the dashboard landing screen. The counts
// come from the list endpoints; a dedicated summary endpoint does not
// exist in the backend contract.
func (c *Client) Summary(ctx context.Context) (model.DashboardSummary, error) {
	var sum model.DashboardSummary

	courses, err := c.Courses(ctx)
	if err != nil {
		return sum, err
	}
	internships, err := c.Internships(ctx)
	if err != nil {
		return sum, err
	}
	events, err := c.Events(ctx)
	if err != nil {
		return sum, err
	}
	workshops, err := c.Workshops(ctx)
	if err != nil {
		return sum, err
	}

	sum.Courses = len(courses)
	sum.Internships = len(internships)
	sum.Events = len(events)
	sum.Workshops = len(workshops)
	for _, course := range courses {
		sum.Students += course.Students
	}
	return sum, nil
}
