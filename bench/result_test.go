package bench

import (
	"math"
	"regexp"
	"testing"
	"time"
)

func TestGBPerSecond(t *testing.T) {
	tests := []struct {
		name    string
		bytes   int64
		elapsed time.Duration
		want    float64
	}{
		{"one GB in one second", 1e9, time.Second, 1},
		{"4e9 bytes in half a second", 4e9, 500 * time.Millisecond, 8},
		{"zero bytes", 0, time.Second, 0},
		{"zero elapsed", 4e9, 0, 0},
		{"negative elapsed", 4e9, -time.Second, 0},
		{"one nanosecond", 4, time.Nanosecond, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GBPerSecond(tt.bytes, tt.elapsed)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("GBPerSecond(%d, %v) = %v, want %v", tt.bytes, tt.elapsed, got, tt.want)
			}
		})
	}
}

var throughputLine = regexp.MustCompile(`^\d+\.\d{2} GB/s$`)

func TestFormatThroughput(t *testing.T) {
	tests := []struct {
		gbps float64
		want string
	}{
		{0, "0.00 GB/s"},
		{2, "2.00 GB/s"},
		{12.5, "12.50 GB/s"},
		{0.126, "0.13 GB/s"},
		{123456.7, "123456.70 GB/s"},
	}
	for _, tt := range tests {
		got := FormatThroughput(tt.gbps)
		if got != tt.want {
			t.Errorf("FormatThroughput(%v) = %q, want %q", tt.gbps, got, tt.want)
		}
		if !throughputLine.MatchString(got) {
			t.Errorf("FormatThroughput(%v) = %q does not match %v", tt.gbps, got, throughputLine)
		}
	}
}

func TestResultStringAlwaysWellFormed(t *testing.T) {
	for _, elapsed := range []time.Duration{0, 1, time.Microsecond, time.Hour} {
		for _, bytes := range []int64{0, 1, 4e9, math.MaxInt64} {
			got := Result{Bytes: bytes, Elapsed: elapsed}.String()
			if !throughputLine.MatchString(got) {
				t.Errorf("Result{%d, %v}.String() = %q", bytes, elapsed, got)
			}
		}
	}
}
