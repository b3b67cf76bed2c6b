package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDateToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"05/2022", "May 2022"},
		{"5/2022", "May 2022"},
		{"2022/05", "May 2022"},
		{"03-2021", "Mar 2021"},
		{"2021-03", "Mar 2021"},
		{"January 2020", "Jan 2020"},
		{"jan 2020", "Jan 2020"},
		{"2020 December", "Dec 2020"},
		{"May 2022", "May 2022"},
		{"present", "Present"},
		{"Current", "Present"},
		{"", ""},
		{"sometime in 2020", "sometime in 2020"},
		{"2020", "2020"},
		{"Foosday 2020", "Foosday 2020"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDateToken(tt.in))
		})
	}
}

func TestNormalizeDuration(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"01/2020 - 12/2021", "Jan 2020 - Dec 2021"},
		{"03-2021 - present", "Mar 2021 - Present"},
		{"May 2022 - Present", "May 2022 - Present"},
		{"2019 - 2022", "2019 - 2022"},
		{"05/2022", "May 2022"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDuration(tt.in))
		})
	}
}
