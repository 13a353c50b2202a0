package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadgeRequirement_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(BadgeRequirement{Kind: RequirementWateringCompleted, Threshold: 5})
	require.NoError(t, err)
	assert.JSONEq(t, `{"wateringCompleted":5}`, string(data))
}

func TestBadgeRequirement_UnmarshalJSON(t *testing.T) {
	var req BadgeRequirement
	require.NoError(t, json.Unmarshal([]byte(`{"plantsAdded":1}`), &req))
	assert.Equal(t, RequirementPlantsAdded, req.Kind)
	assert.Equal(t, 1, req.Threshold)
}

func TestBadgeRequirement_UnmarshalJSON_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown kind", `{"plantsHugged":3}`},
		{"two keys", `{"plantsAdded":1,"daysCaring":30}`},
		{"empty object", `{}`},
		{"zero threshold", `{"plantsAdded":0}`},
		{"not an object", `[1]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req BadgeRequirement
			assert.Error(t, json.Unmarshal([]byte(tt.input), &req))
		})
	}
}

func TestEffects_PointsTotal(t *testing.T) {
	var effects Effects
	effects.Add(
		Effect{Kind: EffectPointsGranted, Points: 10},
		Effect{Kind: EffectBadgeAwarded, SubjectID: 2},
		Effect{Kind: EffectPointsGranted, Points: 50},
	)

	assert.Equal(t, 60, effects.PointsTotal())
	assert.Len(t, effects.OfKind(EffectBadgeAwarded), 1)
}
