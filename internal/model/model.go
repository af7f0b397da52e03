// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "time"

// Address is the nested address block on a student record.
type Address struct {
	DoorNo  string `json:"doorNo"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// Student is the registered-student record returned by the backend.
type Student struct {
	UserID         string  `json:"userId"`
	Email          string  `json:"email"`
	FullName       string  `json:"fullName"`
	DOB            string  `json:"dob"`
	Gender         string  `json:"gender"`
	Avatar         string  `json:"avatar,omitempty"`
	Phone          string  `json:"phone"`
	SecondaryPhone string  `json:"secondaryPhone,omitempty"`
	Address        Address `json:"address"`
	Batch          int     `json:"batch"`
	EnrollmentDate string  `json:"enrollmentDate"`
	CourseName     string  `json:"courseName"`
}

// StudentRegistration is the payload for the registration endpoint. The
// wizard produces it from a completed draft; password travels only here.
type StudentRegistration struct {
	UserID         string  `json:"userId"`
	Email          string  `json:"email"`
	Password       string  `json:"password"`
	FullName       string  `json:"fullName"`
	DOB            string  `json:"dob"`
	Gender         string  `json:"gender"`
	Avatar         string  `json:"avatar,omitempty"`
	Phone          string  `json:"phone"`
	SecondaryPhone string  `json:"secondaryPhone,omitempty"`
	Address        Address `json:"address"`
	Batch          int     `json:"batch"`
	EnrollmentDate string  `json:"enrollmentDate"`
	CourseName     string  `json:"courseName"`
}

// Course is a published course offering.
type Course struct {
	ID          string `json:"_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Instructor  string `json:"instructor"`
	Category    string `json:"category"`
	Students    int    `json:"students"`
	StartDate   string `json:"startDate"`
	EnrollClose string `json:"enrollClose"`
	IsPaid      bool   `json:"isPaid"`
	Price       int    `json:"price"`
}

// Internship is an open internship listing.
type Internship struct {
	ID               string `json:"_id,omitempty"`
	Role             string `json:"role"`
	Description      string `json:"description"`
	Duration         string `json:"duration"`
	Skills           string `json:"skills"`
	Mode             string `json:"mode"`
	Location         string `json:"location"`
	Deadline         string `json:"deadline"`
	InternshipType   string `json:"internshipType"`
	ApplicationFee   int    `json:"applicationFee"`
	StipendAmount    int    `json:"stipendAmount"`
	StipendFrequency string `json:"stipendFrequency"`
	Openings         int    `json:"openings"`
}

// Event is a scheduled platform event.
type Event struct {
	ID          string `json:"_id,omitempty"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Speaker     string `json:"speaker"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Attendees   int    `json:"attendees"`
	IsPaid      bool   `json:"isPaid"`
	Price       int    `json:"price"`
}

// Workshop is a hands-on training workshop.
type Workshop struct {
	ID          string `json:"_id,omitempty"`
	Topic       string `json:"topic"`
	Trainer     string `json:"trainer"`
	Schedule    string `json:"schedule"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
	Skills      string `json:"skills"`
	IsPaid      bool   `json:"isPaid"`
	Price       int    `json:"price"`
}

// Assignment is a weekly task allocated to a batch/course cohort.
type Assignment struct {
	Batch    int    `json:"batch"`
	Course   string `json:"course"`
	Semester int    `json:"sem"`
	Month    int    `json:"month"`
	Week     int    `json:"week"`
	TaskNo   int    `json:"taskNo"`
	Title    string `json:"title"`
	Details  string `json:"details"`
	DueDate  string `json:"dueDate"`
}

// DashboardSummary is the landing-screen aggregate.
type DashboardSummary struct {
	Students    int `json:"students"`
	Courses     int `json:"courses"`
	Internships int `json:"internships"`
	Events      int `json:"events"`
	Workshops   int `json:"workshops"`
}

// Activity is one entry in the dashboard's recent-activity feed.
type Activity struct {
	At      time.Time `json:"at"`
	Kind    string    `json:"kind"`
	Message string    `json:"message"`
}
