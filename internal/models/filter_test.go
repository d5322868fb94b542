package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListFilter_Normalize(t *testing.T) {
	tests := []struct {
		name        string
		filter      ListFilter
		wantPage    int
		wantPerPage int
	}{
		{
			name:        "zero values get defaults",
			filter:      ListFilter{},
			wantPage:    1,
			wantPerPage: 10,
		},
		{
			name:        "negative page becomes first",
			filter:      ListFilter{Page: -3, PerPage: 7},
			wantPage:    1,
			wantPerPage: 7,
		},
		{
			name:        "per_page below minimum is clamped up",
			filter:      ListFilter{Page: 2, PerPage: 1},
			wantPage:    2,
			wantPerPage: 5,
		},
		{
			name:        "per_page above maximum is clamped down",
			filter:      ListFilter{Page: 2, PerPage: 100},
			wantPage:    2,
			wantPerPage: 10,
		},
		{
			name:        "values in range are kept",
			filter:      ListFilter{Page: 4, PerPage: 8},
			wantPage:    4,
			wantPerPage: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Normalize(5, 10, 10)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantPerPage, got.PerPage)
		})
	}
}

func TestListFilter_Offset(t *testing.T) {
	tests := []struct {
		name   string
		filter ListFilter
		want   int
	}{
		{
			name:   "first page",
			filter: ListFilter{Page: 1, PerPage: 10},
			want:   0,
		},
		{
			name:   "third page",
			filter: ListFilter{Page: 3, PerPage: 5},
			want:   10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Offset())
		})
	}
}
