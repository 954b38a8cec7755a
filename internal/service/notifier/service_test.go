package notifier

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanjeevani/coordination-api/internal/model"
)

type captureDispatcher struct {
	mu     sync.Mutex
	alerts []Alert
}

func (c *captureDispatcher) Dispatch(alert Alert) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.alerts = append(c.alerts, alert)
}

func (c *captureDispatcher) snapshot() []Alert {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Alert, len(c.alerts))
	copy(out, c.alerts)
	return out
}

func TestEmergencyCreatedStagesAlerts(t *testing.T) {
	sink := &captureDispatcher{}
	svc := NewService(sink, Config{
		HospitalContactDelay: time.Millisecond,
		DonorNotifyDelay:     2 * time.Millisecond,
	}, nil)

	req := &model.MedicalRequest{Base: model.NewBase()}
	svc.EmergencyCreated(req)

	// The submission acknowledgement is synchronous
	first := sink.snapshot()
	require.NotEmpty(t, first)
	assert.Equal(t, StageSubmitted, first[0].Stage)
	assert.Equal(t, req.ID, first[0].RequestID)

	require.Eventually(t, func() bool {
		return len(sink.snapshot()) == 3
	}, time.Second, 5*time.Millisecond)

	alerts := sink.snapshot()
	assert.Equal(t, StageHospitalsContacted, alerts[1].Stage)
	assert.Equal(t, "3 nearby hospitals contacted", alerts[1].Message)
	assert.Equal(t, StageDonorsNotified, alerts[2].Stage)
	assert.Equal(t, "12 compatible donors notified", alerts[2].Message)
	for _, a := range alerts {
		assert.Equal(t, req.ID, a.RequestID)
	}
}

func TestAlertsCarryRequestID(t *testing.T) {
	sink := &captureDispatcher{}
	svc := NewService(sink, Config{
		HospitalContactDelay: time.Millisecond,
		DonorNotifyDelay:     time.Millisecond,
	}, nil)

	a := &model.MedicalRequest{Base: model.NewBase()}
	b := &model.MedicalRequest{Base: model.NewBase()}
	svc.EmergencyCreated(a)
	svc.EmergencyCreated(b)

	require.Eventually(t, func() bool {
		return len(sink.snapshot()) == 6
	}, time.Second, 5*time.Millisecond)

	seen := map[uuid.UUID]int{}
	for _, alert := range sink.snapshot() {
		seen[alert.RequestID]++
	}
	assert.Equal(t, 3, seen[a.ID])
	assert.Equal(t, 3, seen[b.ID])
}
