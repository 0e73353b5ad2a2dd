package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPage_Offset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		page Page
		want int
	}{
		{name: "first_page", page: Page{Number: 1, Size: 10}, want: 0},
		{name: "third_page", page: Page{Number: 3, Size: 10}, want: 20},
		{name: "zero_number", page: Page{Number: 0, Size: 10}, want: 0},
		{name: "no_size", page: Page{Number: 5}, want: 0},
		{name: "overflow_saturates", page: Page{Number: math.MaxInt/2 + 2, Size: 2}, want: math.MaxInt},
		{name: "largest_exact", page: Page{Number: math.MaxInt/2 + 1, Size: 2}, want: math.MaxInt - 1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, tc.page.Offset())
		})
	}
}
