// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// Attachment is the predicate function for attachment builders.
type Attachment func(*sql.Selector)

// BlockedDate is the predicate function for blockeddate builders.
type BlockedDate func(*sql.Selector)

// Branch is the predicate function for branch builders.
type Branch func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// Service is the predicate function for service builders.
type Service func(*sql.Selector)

// Therapist is the predicate function for therapist builders.
type Therapist func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// WeeklyScheduleEntry is the predicate function for weeklyscheduleentry builders.
type WeeklyScheduleEntry func(*sql.Selector)
