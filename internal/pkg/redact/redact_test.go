package redact

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Пакет unit-тестов для internal/pkg/redact.
//
// Покрытие:
//   - литералы Token/Secret неизменны;
//   - Digest: усечение длинных значений, короткие — как есть.

func TestLiterals_TokenAndSecret(t *testing.T) {
	t.Parallel()

	require.Equal(t, "[REDACTED_TOKEN]", Token())
	require.Equal(t, "[REDACTED_SECRET]", Secret())
}

// TestDigest_Table — табличные тесты на усечение дайджеста.
func TestDigest_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "long_digest_truncated", in: "q3WJsgd10oNvoEtJS1oGlqDiyrkWRnRCSV7nFRjCYUU", want: "q3WJsgd1..."},
		{name: "exactly_keep_len", in: "12345678", want: "12345678"},
		{name: "shorter_than_keep", in: "abc", want: "abc"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, Digest(tt.in))
		})
	}
}
