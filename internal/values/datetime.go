// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package values

import (
	"fmt"
	"net"
	"time"
)

// Date is a strict calendar date with no time-of-day component. The wire
// form is `{$date: epochMillis}` at UTC midnight.
type Date struct {
	year, month, day int
}

// NewDate validates and constructs a Date; invalid calendar dates (e.g.
// February 30) are a fatal construction error, never silently coerced.
func NewDate(year, month, day int) (Date, error) {
	candidate := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if candidate.Year() != year || int(candidate.Month()) != month || candidate.Day() != day {
		return Date{}, fmt.Errorf("values: invalid calendar date %04d-%02d-%02d", year, month, day)
	}
	return Date{year: year, month: month, day: day}, nil
}

// DateFromEpochMillis converts the wire form's epoch-millisecond integer
// back into a Date, truncating to the UTC calendar day.
func DateFromEpochMillis(ms int64) Date {
	t := time.UnixMilli(ms).UTC()
	return Date{year: t.Year(), month: int(t.Month()), day: t.Day()}
}

// EpochMillis returns the wire form: UTC midnight of this calendar date.
func (d Date) EpochMillis() int64 {
	return time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, time.UTC).UnixMilli()
}

func (d Date) String() string { return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day) }

// Equal and Before give Date a total order by calendar day.
func (d Date) Equal(other Date) bool { return d == other }
func (d Date) Before(other Date) bool {
	return d.EpochMillis() < other.EpochMillis()
}

// Time is a strict time-of-day with nanosecond precision, no date component.
type Time struct {
	hour, minute, second, nanos int
}

// NewTime validates and constructs a Time.
func NewTime(hour, minute, second, nanos int) (Time, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 || nanos < 0 || nanos > 999999999 {
		return Time{}, fmt.Errorf("values: invalid time %02d:%02d:%02d.%09d", hour, minute, second, nanos)
	}
	return Time{hour: hour, minute: minute, second: second, nanos: nanos}, nil
}

func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d.%09d", t.hour, t.minute, t.second, t.nanos)
}

func (t Time) Equal(other Time) bool { return t == other }

// Timestamp is an instant in time, wire form `{$date: epochMillis}`.
type Timestamp struct {
	instant time.Time
}

// NewTimestamp constructs a Timestamp from a time.Time, normalizing to UTC.
func NewTimestamp(instant time.Time) Timestamp {
	return Timestamp{instant: instant.UTC()}
}

// TimestampFromEpochMillis converts the wire form back into a Timestamp.
func TimestampFromEpochMillis(ms int64) Timestamp {
	return Timestamp{instant: time.UnixMilli(ms).UTC()}
}

// EpochMillis returns the wire form.
func (ts Timestamp) EpochMillis() int64 { return ts.instant.UnixMilli() }

func (ts Timestamp) Time() time.Time { return ts.instant }

func (ts Timestamp) Equal(other Timestamp) bool { return ts.instant.Equal(other.instant) }
func (ts Timestamp) Before(other Timestamp) bool { return ts.instant.Before(other.instant) }

// Duration wraps a signed nanosecond count, wire form a Go-style duration
// string honored by the server's duration parser.
type Duration struct {
	nanos int64
}

// NewDuration constructs a Duration from a time.Duration.
func NewDuration(d time.Duration) Duration { return Duration{nanos: int64(d)} }

// ParseDuration parses the wire string form.
func ParseDuration(s string) (Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return Duration{}, fmt.Errorf("values: invalid duration %q: %w", s, err)
	}
	return Duration{nanos: int64(d)}, nil
}

func (d Duration) String() string { return time.Duration(d.nanos).String() }

func (d Duration) Equal(other Duration) bool { return d.nanos == other.nanos }

// InetAddress wraps a validated IPv4 or IPv6 address.
type InetAddress struct {
	ip net.IP
}

// ParseInetAddress validates and constructs an InetAddress.
func ParseInetAddress(s string) (InetAddress, error) {
	ip := net.ParseIP(s)
	if ip == nil {
		return InetAddress{}, fmt.Errorf("values: invalid inet address %q", s)
	}
	return InetAddress{ip: ip}, nil
}

func (a InetAddress) String() string { return a.ip.String() }

func (a InetAddress) Equal(other InetAddress) bool { return a.ip.Equal(other.ip) }
