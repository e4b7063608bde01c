package service

import "sync"

// RefreshGuard 丢弃过期刷新结果。同一缓存键的并发刷新按开始顺序取号，
// 只有持最新号的结果允许提交，晚到的旧结果直接丢弃；不同键互不影响。
type RefreshGuard struct {
	mu   sync.Mutex
	seqs map[string]uint64
}

func NewRefreshGuard() *RefreshGuard {
	return &RefreshGuard{
		seqs: make(map[string]uint64),
	}
}

// Begin 开始一次对 key 的刷新，返回本次的序号
func (g *RefreshGuard) Begin(key string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seqs[key]++
	return g.seqs[key]
}

// Commit 结果就绪时调用。仅当 seq 仍是该 key 最新一次刷新时执行 apply 并返回 true
func (g *RefreshGuard) Commit(key string, seq uint64, apply func()) bool {
	g.mu.Lock()
	latest := g.seqs[key]
	g.mu.Unlock()

	if latest != seq {
		return false
	}
	apply()
	return true
}
