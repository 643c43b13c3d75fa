package service

import "sync"

// carLocks hands out one mutex per car id. Accept decisions take the car's
// lock for the duration of the conflict check plus the status write, so two
// concurrent accepts on overlapping requests for the same car cannot both
// pass the check. Operations on different cars never contend.
type carLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newCarLocks() *carLocks {
	return &carLocks{locks: make(map[int64]*sync.Mutex)}
}

func (c *carLocks) get(carID int64) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	lock, ok := c.locks[carID]
	if !ok {
		lock = &sync.Mutex{}
		c.locks[carID] = lock
	}
	return lock
}
