package signal

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignal_Emit(t *testing.T) {
	aSignal := New()
	var order []string
	aSignal.Subscribe(func(value interface{}) error {
		order = append(order, fmt.Sprintf("first:%v", value))
		return nil
	})
	aSignal.Subscribe(func(value interface{}) error {
		order = append(order, fmt.Sprintf("second:%v", value))
		return nil
	})
	require.NoError(t, aSignal.Emit(1))
	assert.EqualValues(t, []string{"first:1", "second:1"}, order)
	assert.EqualValues(t, 2, aSignal.Len())
}

func TestSignal_Unsubscribe(t *testing.T) {
	aSignal := New()
	var calls int
	token := aSignal.Subscribe(func(interface{}) error {
		calls++
		return nil
	})
	require.NoError(t, aSignal.Emit(nil))
	assert.True(t, aSignal.Unsubscribe(token))
	require.NoError(t, aSignal.Emit(nil))
	assert.EqualValues(t, 1, calls)
	assert.EqualValues(t, 0, aSignal.Len())

	assert.False(t, aSignal.Unsubscribe(token))
	assert.False(t, aSignal.Unsubscribe(nil))
}

func TestSignal_SuppressResume(t *testing.T) {
	aSignal := New()
	var suppressed, unrelated int
	token := aSignal.Subscribe(func(interface{}) error {
		suppressed++
		return nil
	})
	aSignal.Subscribe(func(interface{}) error {
		unrelated++
		return nil
	})

	aSignal.Suppress(token)
	require.NoError(t, aSignal.Emit(nil))
	assert.EqualValues(t, 0, suppressed)
	assert.EqualValues(t, 1, unrelated)

	aSignal.Resume(token)
	require.NoError(t, aSignal.Emit(nil))
	assert.EqualValues(t, 1, suppressed)
	assert.EqualValues(t, 2, unrelated)
}

func TestSignal_EmitErrors(t *testing.T) {
	aSignal := New()
	first := fmt.Errorf("first failed")
	second := fmt.Errorf("second failed")
	aSignal.Subscribe(func(interface{}) error { return first })
	aSignal.Subscribe(func(interface{}) error { return nil })
	aSignal.Subscribe(func(interface{}) error { return second })
	err := aSignal.Emit(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, first))
	assert.True(t, errors.Is(err, second))
}

func TestSignal_reentrantHandler(t *testing.T) {
	aSignal := New()
	var token *Token
	var calls int
	token = aSignal.Subscribe(func(interface{}) error {
		calls++
		aSignal.Unsubscribe(token)
		return nil
	})
	require.NoError(t, aSignal.Emit(nil))
	require.NoError(t, aSignal.Emit(nil))
	assert.EqualValues(t, 1, calls)
}

func TestSignal_concurrentUse(t *testing.T) {
	aSignal := New()
	var mux sync.Mutex
	var calls int
	aSignal.Subscribe(func(interface{}) error {
		mux.Lock()
		calls++
		mux.Unlock()
		return nil
	})
	var waitGroup sync.WaitGroup
	for i := 0; i < 8; i++ {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			for j := 0; j < 100; j++ {
				_ = aSignal.Emit(j)
			}
		}()
	}
	waitGroup.Wait()
	assert.EqualValues(t, 800, calls)
}
