package main

import (
	"slices"
	"testing"
)

func TestParseInts(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{"3,4,5", []int{3, 4, 5}, false},
		{" 3 , 9 ,", []int{3, 9}, false},
		{"", nil, true},
		{"3,x", nil, true},
	}
	for _, tt := range tests {
		got, err := parseInts(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseInts(%q) error = %v", tt.in, err)
			continue
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("parseInts(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestJoinInts(t *testing.T) {
	if got := joinInts([]int{3, 4, 9}); got != "3,4,9" {
		t.Errorf("joinInts = %q", got)
	}
}
