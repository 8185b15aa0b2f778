package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogFileName(t *testing.T) {
	t.Parallel()

	type logFiles struct {
		Name string `validate:"logfilename"`
	}

	tests := []struct {
		name  string
		valid bool
	}{
		{name: "access.log", valid: true},
		{name: "error.log", valid: true},
		{name: "", valid: false},
		{name: "..", valid: false},
		{name: "../access.log", valid: false},
		{name: "nginx/access.log", valid: false},
		{name: `logs\access.log`, valid: false},
	}

	validate := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(logFiles{Name: tt.name})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
