package services

import "sync"

// inflightGuard tracks logical keys with an operation outstanding. A second
// acquire for the same key fails until the first holder releases it.
type inflightGuard struct {
	keys sync.Map
}

func (g *inflightGuard) TryAcquire(key string) bool {
	_, loaded := g.keys.LoadOrStore(key, struct{}{})
	return !loaded
}

func (g *inflightGuard) Release(key string) {
	g.keys.Delete(key)
}
