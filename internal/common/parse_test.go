package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseUint64orHex(t *testing.T) {
	tests := []struct {
		name    string
		input   *string
		want    uint64
		wantErr bool
	}{
		{name: "nil input", input: nil, want: 0},
		{name: "decimal", input: strPtr("1000"), want: 1000},
		{name: "decimal with spaces", input: strPtr("  42 "), want: 42},
		{name: "lowercase hex", input: strPtr("0x3e8"), want: 1000},
		{name: "uppercase prefix", input: strPtr("0X3E8"), want: 1000},
		{name: "max uint64", input: strPtr("18446744073709551615"), want: ^uint64(0)},
		{name: "overflow", input: strPtr("18446744073709551616"), wantErr: true},
		{name: "negative", input: strPtr("-1"), wantErr: true},
		{name: "garbage", input: strPtr("12abc"), wantErr: true},
		{name: "empty", input: strPtr(""), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUint64orHex(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestToLowerWithTrim(t *testing.T) {
	require.Equal(t, "near_final", ToLowerWithTrim("  NEAR_Final\t"))
	require.Equal(t, "", ToLowerWithTrim("   "))
}

func strPtr(s string) *string {
	return &s
}
