package orchestrator

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryBusyIsSingleFlight(t *testing.T) {
	r := newLiveRegistry()
	r.register("s1")

	assert.True(t, r.tryAcquireBusy("s1"))
	assert.False(t, r.tryAcquireBusy("s1"), "second acquire must fail")

	r.releaseBusy("s1")
	assert.True(t, r.tryAcquireBusy("s1"))
}

func TestRegistryBusyRequiresRegistration(t *testing.T) {
	r := newLiveRegistry()
	assert.False(t, r.tryAcquireBusy("ghost"))
	r.releaseBusy("ghost") // must not panic
}

func TestRegistryConcurrentAcquire(t *testing.T) {
	r := newLiveRegistry()
	r.register("s1")

	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if r.tryAcquireBusy("s1") {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, wins)
}

func TestRegistryPendingRerunTakeClears(t *testing.T) {
	r := newLiveRegistry()
	r.register("s1")

	assert.False(t, r.takePendingRerun("s1"))
	r.setPendingRerun("s1", true)
	assert.True(t, r.takePendingRerun("s1"))
	assert.False(t, r.takePendingRerun("s1"), "take must clear the flag")
}

func TestRegistryRunningFlag(t *testing.T) {
	r := newLiveRegistry()
	assert.False(t, r.isRunning("s1"))

	r.register("s1")
	assert.True(t, r.isRunning("s1"))

	r.setRunning("s1", false)
	assert.True(t, r.registered("s1"))
	assert.False(t, r.isRunning("s1"))

	r.remove("s1")
	assert.False(t, r.registered("s1"))
}

func TestRegistryLockEval(t *testing.T) {
	r := newLiveRegistry()
	assert.Nil(t, r.lockEval("ghost"))

	r.register("s1")
	unlock := r.lockEval("s1")
	if assert.NotNil(t, unlock) {
		unlock()
	}
}
