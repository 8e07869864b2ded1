package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordEngineCall(t *testing.T) {
	before := testutil.ToFloat64(EngineRequests.WithLabelValues("momentum", "error"))
	RecordEngineCall("momentum", 10*time.Millisecond, errors.New("boom"))
	after := testutil.ToFloat64(EngineRequests.WithLabelValues("momentum", "error"))
	assert.Equal(t, before+1, after)
}

func TestRecordProviderFetch(t *testing.T) {
	before := testutil.ToFloat64(ProviderFetches.WithLabelValues("mock", "success"))
	RecordProviderFetch("mock", "success", time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(ProviderFetches.WithLabelValues("mock", "success")))
}

func TestInit_Idempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Init()
		Init()
	})
}
