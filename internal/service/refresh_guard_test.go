package service

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefreshGuardLatestWins(t *testing.T) {
	guard := NewRefreshGuard()

	first := guard.Begin("summary:a")
	second := guard.Begin("summary:a")

	var applied string
	assert.True(t, guard.Commit("summary:a", second, func() { applied = "second" }))
	assert.False(t, guard.Commit("summary:a", first, func() { applied = "first" }))

	assert.Equal(t, "second", applied)
}

func TestRefreshGuardStaleCommitSkipsApply(t *testing.T) {
	guard := NewRefreshGuard()

	stale := guard.Begin("summary:a")
	guard.Begin("summary:a")

	called := false
	ok := guard.Commit("summary:a", stale, func() { called = true })

	assert.False(t, ok)
	assert.False(t, called)
}

func TestRefreshGuardKeysIndependent(t *testing.T) {
	guard := NewRefreshGuard()

	seqA := guard.Begin("summary:a")
	seqB := guard.Begin("summary:b")

	// b 的刷新开始得更晚，但不影响 a 的提交
	committedA := false
	assert.True(t, guard.Commit("summary:a", seqA, func() { committedA = true }))
	assert.True(t, committedA)

	committedB := false
	assert.True(t, guard.Commit("summary:b", seqB, func() { committedB = true }))
	assert.True(t, committedB)
}

func TestRefreshGuardConcurrent(t *testing.T) {
	guard := NewRefreshGuard()

	var wg sync.WaitGroup
	var mu sync.Mutex
	committed := 0

	for i := 0; i < 50; i++ {
		wg.Add(1)
		key := fmt.Sprintf("summary:%d", i%5)
		go func() {
			defer wg.Done()
			seq := guard.Begin(key)
			guard.Commit(key, seq, func() {
				mu.Lock()
				committed++
				mu.Unlock()
			})
		}()
	}
	wg.Wait()

	// 每个 key 至少最后取号的那次一定提交成功
	assert.GreaterOrEqual(t, committed, 1)

	latest := guard.Begin("summary:0")
	assert.True(t, guard.Commit("summary:0", latest, func() {}))
}
