package ruledomain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{name: "RFC3339", input: `"2023-01-01T10:00:00Z"`, expected: time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC)},
		{name: "RFC3339 com fração", input: `"2023-01-01T10:00:00.123Z"`, expected: time.Date(2023, 1, 1, 10, 0, 0, 123000000, time.UTC)},
		{name: "data e hora com espaço", input: `"2023-01-01 10:00:00"`, expected: time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC)},
		{name: "somente data", input: `"2023-01-01"`, expected: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "epoch", input: `1672567200`, expected: time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC)},
		{name: "null", input: `null`, expected: time.Time{}},
		{name: "string vazia", input: `""`, expected: time.Time{}},
		{name: "formato inválido", input: `"01/01/2023"`, wantErr: true},
		{name: "tipo inválido", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			err := ts.UnmarshalJSON([]byte(tt.input))

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(ts.Time), "esperado %s, obtido %s", tt.expected, ts.Time)
		})
	}
}

func TestTimestamp_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(NewTimestamp(time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.Equal(t, `"2023-01-01T10:00:00Z"`, string(data))

	data, err = json.Marshal(NewTimestamp(time.Date(2023, 1, 1, 10, 0, 0, 123456000, time.UTC)))
	require.NoError(t, err)
	assert.Equal(t, `"2023-01-01T10:00:00.123456Z"`, string(data))

	data, err = json.Marshal(Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(data))
}
