// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

package wizard

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Web-Plus-Academy/lms-admin/internal/model"
)

// ===== STUDENT REGISTRATION FORM =====

// Field paths for the student registration wizard. The address block is
// the one grouped section; everything else is flat.
var (
	StuUserID         = Field("userId")
	StuEmail          = Field("email")
	StuPassword       = Field("password")
	StuFullName       = Field("fullName")
	StuDOB            = Field("dob")
	StuGender         = Field("gender")
	StuAvatar         = Field("avatar")
	StuPhone          = Field("phone")
	StuSecondaryPhone = Field("secondaryPhone")
	StuDoorNo         = Grouped("address", "doorNo")
	StuStreet         = Grouped("address", "street")
	StuCity           = Grouped("address", "city")
	StuState          = Grouped("address", "state")
	StuPincode        = Grouped("address", "pincode")
	StuBatch          = Field("batch")
	StuEnrollment     = Field("enrollmentDate")
	StuCourseName     = Field("courseName")
)

// dateLayout is what the date inputs produce.
const dateLayout = "2006-01-02"

// StudentForm returns the five-step registration form. The userId is
// derived from the batch number (FSB<100+batch>) and overwrites any
// earlier value whenever the batch changes.
func StudentForm() *Form {
	return &Form{
		ID: "addStudent",
		Fields: []Path{
			StuUserID, StuEmail, StuPassword,
			StuFullName, StuDOB, StuGender, StuAvatar, StuPhone, StuSecondaryPhone,
			StuDoorNo, StuStreet, StuCity, StuState, StuPincode,
			StuBatch, StuEnrollment, StuCourseName,
		},
		Steps: []Step{
			{
				Title:    "Account",
				Required: []Path{StuUserID, StuEmail, StuPassword},
				Check:    checkAccount,
			},
			{
				Title:    "Personal",
				Required: []Path{StuFullName, StuDOB, StuGender, StuPhone},
				Check:    checkPersonal,
			},
			{
				Title:    "Address",
				Required: []Path{StuDoorNo, StuStreet, StuCity, StuState, StuPincode},
				Check:    checkAddress,
			},
			{
				Title:    "Course",
				Required: []Path{StuBatch, StuEnrollment, StuCourseName},
				Check:    checkCourse,
			},
			{
				Title: "Review",
			},
		},
		Derive: deriveUserID,
	}
}

// deriveUserID assembles the login id from the batch number. A batch
// that does not parse leaves the existing userId alone so step 1 can be
// filled before the batch is known.
func deriveUserID(f Fields) {
	batch, err := strconv.Atoi(strings.TrimSpace(f.Get(StuBatch)))
	if err != nil || batch <= 0 {
		return
	}
	f[StuUserID] = fmt.Sprintf("FSB%d", 100+batch)
}

// ===== STEP CHECKS =====

func checkAccount(f Fields) error {
	if !strings.Contains(f.Get(StuEmail), "@") {
		return fmt.Errorf("email %q is not an address", f.Get(StuEmail))
	}
	if len(f.Get(StuPassword)) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	return nil
}

func checkPersonal(f Fields) error {
	if _, err := time.Parse(dateLayout, f.Get(StuDOB)); err != nil {
		return fmt.Errorf("date of birth must be YYYY-MM-DD")
	}
	if err := checkDigits("phone", f.Get(StuPhone), 10); err != nil {
		return err
	}
	if s := f.Get(StuSecondaryPhone); s != "" {
		return checkDigits("secondary phone", s, 10)
	}
	return nil
}

func checkAddress(f Fields) error {
	return checkDigits("pincode", f.Get(StuPincode), 6)
}

func checkCourse(f Fields) error {
	batch, err := strconv.Atoi(strings.TrimSpace(f.Get(StuBatch)))
	if err != nil || batch <= 0 {
		return fmt.Errorf("batch must be a positive number")
	}
	if _, err := time.Parse(dateLayout, f.Get(StuEnrollment)); err != nil {
		return fmt.Errorf("enrollment date must be YYYY-MM-DD")
	}
	return nil
}

func checkDigits(label, s string, n int) error {
	if len(s) != n {
		return fmt.Errorf("%s must be %d digits", label, n)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return fmt.Errorf("%s must be %d digits", label, n)
		}
	}
	return nil
}

// ===== PAYLOAD =====

// BuildRegistration coerces a completed field bag into the registration
// payload: batch becomes an int, date inputs become RFC 3339 instants.
func BuildRegistration(f Fields) (model.StudentRegistration, error) {
	batch, err := strconv.Atoi(strings.TrimSpace(f.Get(StuBatch)))
	if err != nil {
		return model.StudentRegistration{}, fmt.Errorf("batch %q: %w", f.Get(StuBatch), err)
	}
	dob, err := coerceDate(f.Get(StuDOB))
	if err != nil {
		return model.StudentRegistration{}, fmt.Errorf("dob: %w", err)
	}
	enrolled, err := coerceDate(f.Get(StuEnrollment))
	if err != nil {
		return model.StudentRegistration{}, fmt.Errorf("enrollmentDate: %w", err)
	}
	return model.StudentRegistration{
		UserID:         f.Get(StuUserID),
		Email:          f.Get(StuEmail),
		Password:       f.Get(StuPassword),
		FullName:       f.Get(StuFullName),
		DOB:            dob,
		Gender:         f.Get(StuGender),
		Avatar:         f.Get(StuAvatar),
		Phone:          f.Get(StuPhone),
		SecondaryPhone: f.Get(StuSecondaryPhone),
		Address: model.Address{
			DoorNo:  f.Get(StuDoorNo),
			Street:  f.Get(StuStreet),
			City:    f.Get(StuCity),
			State:   f.Get(StuState),
			Pincode: f.Get(StuPincode),
		},
		Batch:          batch,
		EnrollmentDate: enrolled,
		CourseName:     f.Get(StuCourseName),
	}, nil
}

// coerceDate normalizes a YYYY-MM-DD input to an RFC 3339 UTC instant.
func coerceDate(s string) (string, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return "", err
	}
	return t.UTC().Format(time.RFC3339), nil
}

// StudentSubmitter adapts a registration endpoint to the controller's
// submission sink.
func StudentSubmitter(register func(ctx context.Context, reg model.StudentRegistration) error) SubmitFunc {
	return func(ctx context.Context, f Fields) error {
		reg, err := BuildRegistration(f)
		if err != nil {
			return err
		}
		return register(ctx, reg)
	}
}
