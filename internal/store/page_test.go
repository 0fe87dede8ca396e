package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequest_Normalize(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		in       PageRequest
		expected PageRequest
	}{
		{
			name:     "zero value gets defaults",
			in:       PageRequest{},
			expected: PageRequest{Number: 0, Size: DefaultPageSize},
		},
		{
			name:     "negative page number resets to first page",
			in:       PageRequest{Number: -2, Size: 10},
			expected: PageRequest{Number: 0, Size: 10},
		},
		{
			name:     "oversized page is capped",
			in:       PageRequest{Number: 1, Size: 5000},
			expected: PageRequest{Number: 1, Size: MaxPageSize},
		},
		{
			name:     "valid request is unchanged",
			in:       PageRequest{Number: 3, Size: 25},
			expected: PageRequest{Number: 3, Size: 25},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, tc.in.Normalize())
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, PageRequest{Number: 0, Size: 20}.Offset())
	assert.Equal(t, 40, PageRequest{Number: 2, Size: 20}.Offset())
}
