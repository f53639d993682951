package paths

import (
	"strings"
	"testing"

	"github.com/arthur-debert/amlpack/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanFileName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Part A", "Part A"},
		{"colon and slash", "Update of ItemType: Part/Doc", "Update of ItemType PartDoc"},
		{"all invalid", `<>:"/\|?*`, "_"},
		{"control characters", "a\tb\nc\x00", "abc"},
		{"trailing dots and spaces", "name. . ", "name"},
		{"empty", "", "_"},
		{"reserved device name", "CON", "_CON"},
		{"reserved with extension", "nul.txt", "_nul.txt"},
		{"reserved prefix is fine", "CONSOLE", "CONSOLE"},
		{"predicate", "[Method].[name] = 'x'", "[Method].[name] = 'x'"},
		{"unicode kept", "Pièce ✓", "Pièce ✓"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanFileName(tt.in))
		})
	}
}

func TestValidateRelative(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		wantErr     bool
		errContains string
	}{
		{name: "allocated path", path: "_Scripts/Edit of Part 1.xml"},
		{name: "nested", path: "a/b/c.xml"},
		{name: "dot segments that stay inside", path: "a/../b.xml"},
		{name: "empty", path: "", wantErr: true, errContains: "cannot be empty"},
		{name: "null bytes", path: "a\x00b", wantErr: true, errContains: "null bytes"},
		{name: "too long", path: strings.Repeat("a", 4097), wantErr: true, errContains: "maximum length"},
		{name: "absolute", path: "/etc/passwd", wantErr: true, errContains: "must be relative"},
		{name: "drive letter", path: "C:/x.xml", wantErr: true, errContains: "must be relative"},
		{name: "escapes root", path: "../x.xml", wantErr: true, errContains: "escapes"},
		{name: "escapes after clean", path: "a/../../x.xml", wantErr: true, errContains: "escapes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRelative(tt.path)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		})
	}
}
