package pdf

import (
	"reflect"
	"testing"
)

func TestFormatPageSelection(t *testing.T) {
	tests := []struct {
		pages []int
		want  []string
	}{
		{nil, nil},
		{[]int{5}, []string{"5"}},
		{[]int{1, 2, 3}, []string{"1-3"}},
		{[]int{1, 2, 3, 7, 9, 10}, []string{"1-3", "7", "9-10"}},
		{[]int{10, 9, 1, 2}, []string{"1-2", "9-10"}},
		{[]int{4, 4, 5}, []string{"4-5"}},
	}

	for _, tt := range tests {
		if got := FormatPageSelection(tt.pages); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("FormatPageSelection(%v) = %v, want %v", tt.pages, got, tt.want)
		}
	}
}

func TestValidatePageNumbers(t *testing.T) {
	if err := ValidatePageNumbers([]int{1, 5, 10}, 10); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidatePageNumbers([]int{0}, 10); err == nil {
		t.Error("expected error for page 0")
	}
	if err := ValidatePageNumbers([]int{11}, 10); err == nil {
		t.Error("expected error for page past the end")
	}
}
