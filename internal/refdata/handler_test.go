package refdata

import (
	"encoding/json"
	"testing"

	"wiretrack-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The target and shift endpoints must speak the same snake_case wire contract
// as the rest of the API, not Go field names.

func TestTargetResponse_SnakeCaseJSON(t *testing.T) {
	res := toTargetResponse(models.Target{
		ID:        7,
		MachineID: "M-01",
		ShiftCode: "A",
		TargetQty: 10000,
		UOM:       "mtr",
	})

	raw, err := json.Marshal(res)
	require.NoError(t, err)

	var keys map[string]any
	require.NoError(t, json.Unmarshal(raw, &keys))
	assert.Equal(t, "M-01", keys["machine_id"])
	assert.Equal(t, "A", keys["shift_code"])
	assert.Equal(t, 10000.0, keys["target_qty"])
	assert.Equal(t, "mtr", keys["uom"])
	assert.NotContains(t, keys, "MachineID")
	assert.NotContains(t, keys, "TargetQty")
}

func TestShiftResponse_SnakeCaseJSON(t *testing.T) {
	res := toShiftResponse(models.Shift{
		ID:        3,
		ShiftCode: "A",
		ShiftName: "Morning",
		StartTime: "06:00",
		EndTime:   "14:00",
	})

	raw, err := json.Marshal(res)
	require.NoError(t, err)

	var keys map[string]any
	require.NoError(t, json.Unmarshal(raw, &keys))
	assert.Equal(t, "Morning", keys["shift_name"])
	assert.Equal(t, "06:00", keys["start_time"])
	assert.Equal(t, "14:00", keys["end_time"])
	assert.NotContains(t, keys, "ShiftName")
}
