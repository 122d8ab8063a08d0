package hermes

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMsg(t *testing.T) {
	evt := EstimateFailedEvent{
		RequestID: "req-1",
		Field:     "farm.turbines",
		Error:     "invalid parameter",
		Timestamp: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	msg, err := newMsg(SubjectEstimateFailed("req-1"), evt)
	require.NoError(t, err)

	assert.Equal(t, "landbos.estimate.req-1.failed", msg.Subject)
	assert.Equal(t, "application/json", msg.Header.Get("Content-Type"))

	var got EstimateFailedEvent
	require.NoError(t, json.Unmarshal(msg.Data, &got))
	assert.Equal(t, evt, got)
}

func TestNewMsgMarshalError(t *testing.T) {
	_, err := newMsg("landbos.estimate.x.computed", EstimateComputedEvent{Total: math.NaN()})
	assert.Error(t, err)
}
