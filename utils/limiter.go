package utils

import (
	"sync"
	"time"
)

// Limiter is the process-local request limiter, used when no redis
// backend is configured.
var Limiter *LimiterMap

func init() {
	Limiter = NewLimiterMap(time.Second * 30)
}

type LimiterMap struct {
	sync.RWMutex
	data  map[string]*limitItem
	tiker *time.Ticker
}

type limitItem struct {
	t     time.Time
	limit time.Duration
	times int64
}

// NewLimiterMap builds a limiter whose expired entries are swept every
// cleanEvery.
func NewLimiterMap(cleanEvery time.Duration) *LimiterMap {
	l := &LimiterMap{
		data:  make(map[string]*limitItem),
		tiker: time.NewTicker(cleanEvery),
	}
	go l.Clean()
	return l
}

func (l *LimiterMap) unsafeAdd(key string, duration time.Duration) {
	l.data[key] = &limitItem{
		t:     time.Now(),
		limit: duration,
		times: 1,
	}
}

// IsLimited 操作是否被限制, 操作key，周期内最大可以执行多少次
func (l *LimiterMap) IsLimited(key string, duration time.Duration, max int64) (bool, int64) {
	l.Lock()
	defer l.Unlock()
	v, ok := l.data[key]
	if !ok {
		l.unsafeAdd(key, duration)
		return false, 1
	}
	v.times++
	if time.Now().Before(v.t.Add(duration)) {
		if v.times > max {
			return true, v.times
		}
		return false, v.times
	}
	// window elapsed, start over
	l.unsafeAdd(key, v.limit)
	return false, 1
}

// Clean self clean
func (l *LimiterMap) Clean() {
	for {
		<-l.tiker.C
		SafeCall(func() {
			timeoutKeys := make([]string, 0)
			l.RLock()
			for k, v := range l.data {
				if time.Now().After(v.t.Add(v.limit)) {
					timeoutKeys = append(timeoutKeys, k)
				}
			}
			l.RUnlock()
			l.Lock()
			for _, k := range timeoutKeys {
				delete(l.data, k)
			}
			l.Unlock()
		})
	}
}
