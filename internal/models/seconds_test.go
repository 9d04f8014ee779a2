package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestSeconds_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Seconds
	}{
		{"number", `{"timeDurationSeconds": 65}`, 65},
		{"fractional", `{"timeDurationSeconds": 12.5}`, 12.5},
		{"numeric string", `{"timeDurationSeconds": "40"}`, 40},
		{"non numeric string", `{"timeDurationSeconds": "abc"}`, 0},
		{"null", `{"timeDurationSeconds": null}`, 0},
		{"boolean", `{"timeDurationSeconds": true}`, 0},
		{"infinity string", `{"timeDurationSeconds": "Inf"}`, 0},
		{"NaN string", `{"timeDurationSeconds": "NaN"}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sub SubSection
			require.NoError(t, json.Unmarshal([]byte(tt.input), &sub))
			assert.Equal(t, tt.expected, sub.TimeDurationSeconds)
		})
	}
}

func TestSeconds_UnmarshalBSONValue(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected Seconds
	}{
		{"double", 65.0, 65},
		{"int32", int32(40), 40},
		{"int64", int64(90), 90},
		{"numeric string", "30", 30},
		{"non numeric string", "abc", 0},
		{"negative string", "-5", 0},
		{"infinity string", "+Inf", 0},
		{"NaN string", "NaN", 0},
		{"infinite double", math.Inf(1), 0},
		{"NaN double", math.NaN(), 0},
		{"negative double", -3.0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := bson.Marshal(bson.M{"title": "lesson", "timeDurationSeconds": tt.value})
			require.NoError(t, err)

			var sub SubSection
			require.NoError(t, bson.Unmarshal(raw, &sub))
			assert.Equal(t, tt.expected, sub.TimeDurationSeconds)
		})
	}
}
