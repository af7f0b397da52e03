// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"fmt"
	"strings"
)

// Payslip is the finance screen's locally computed pay statement. Nothing
// here touches the backend; print layout is outside this package.
type Payslip struct {
	EmployeeName   string
	EmployeeID     string
	Designation    string
	Department     string
	PayPeriod      string
	PayDate        string
	EmploymentType string // "fulltime" or "intern"

	Basic        int
	HRA          int
	Travel       int
	Internet     int
	Professional int
}

// Gross returns the sum of all earning components.
func (p Payslip) Gross() int {
	return p.Basic + p.HRA + p.Travel + p.Internet + p.Professional
}

// FormatINR renders an amount in Indian digit grouping (12,34,567).
func FormatINR(amount int) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := fmt.Sprintf("%d", amount)
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		s = strings.Join(groups, ",") + "," + tail
	}
	if neg {
		return "-₹" + s
	}
	return "₹" + s
}

var (
	onesWords = []string{"", "One", "Two", "Three", "Four", "Five", "Six",
		"Seven", "Eight", "Nine", "Ten", "Eleven", "Twelve", "Thirteen",
		"Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}
	tensWords = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty",
		"Sixty", "Seventy", "Eighty", "Ninety"}
)

// twoDigitWords spells 0..99.
func twoDigitWords(n int) string {
	switch {
	case n == 0:
		return ""
	case n < 20:
		return onesWords[n]
	case n%10 == 0:
		return tensWords[n/10]
	default:
		return tensWords[n/10] + " " + onesWords[n%10]
	}
}

// AmountInWords spells an amount in the Indian crore/lakh system, as it
// appears on the printed payslip ("Twelve Lakh Thirty Four Thousand ...").
func AmountInWords(amount int) string {
	if amount == 0 {
		return "Zero"
	}
	if amount < 0 || amount > 999_999_999 {
		return "Overflow"
	}

	crore := amount / 10_000_000
	lakh := (amount / 100_000) % 100
	thousand := (amount / 1000) % 100
	hundred := (amount / 100) % 10
	rest := amount % 100

	var parts []string
	if crore > 0 {
		parts = append(parts, twoDigitWords(crore)+" Crore")
	}
	if lakh > 0 {
		parts = append(parts, twoDigitWords(lakh)+" Lakh")
	}
	if thousand > 0 {
		parts = append(parts, twoDigitWords(thousand)+" Thousand")
	}
	if hundred > 0 {
		parts = append(parts, onesWords[hundred]+" Hundred")
	}
	if rest > 0 {
		parts = append(parts, twoDigitWords(rest))
	}
	return strings.Join(parts, " ")
}
