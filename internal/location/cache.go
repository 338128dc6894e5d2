package location

import (
	"container/list"
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"court-api/internal/logger"
)

// 进程内缓存容量上限：键来自调用方 IP（可被伪造头任意填充），必须有界
const memCacheCap = 4096

// 文档注释：进程内位置缓存（首层，LRU）
// 背景：5 分钟 TTL 内命中即返回，不触发任何解析调用；写入采用最后写入者胜出，
// 过期瞬间的并发刷新允许各自重新解析——接受有界的陈旧，不做串行化。
// 约束：读到过期条目即时删除，容量超限从队尾逐出；显式对象持有，禁止环境级全局缓存；
// Invalidate 供运维与测试主动失效。
type memCache struct {
	mu   sync.Mutex
	cap  int
	ttl  time.Duration
	lst  *list.List
	dict map[string]*list.Element
}

type memEntry struct {
	key string
	loc UserLocation
	exp time.Time
}

func newMemCache(ttl time.Duration, capacity int) *memCache {
	if capacity <= 0 {
		capacity = memCacheCap
	}
	return &memCache{cap: capacity, ttl: ttl, lst: list.New(), dict: make(map[string]*list.Element)}
}

func (c *memCache) Get(key string) (UserLocation, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.dict[key]; ok {
		it := e.Value.(memEntry)
		if time.Now().Before(it.exp) {
			c.lst.MoveToFront(e)
			return it.loc, true
		}
		c.lst.Remove(e)
		delete(c.dict, key)
	}
	return UserLocation{}, false
}

func (c *memCache) Set(key string, loc UserLocation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ent := memEntry{key: key, loc: loc, exp: time.Now().Add(c.ttl)}
	if e, ok := c.dict[key]; ok {
		e.Value = ent
		c.lst.MoveToFront(e)
		return
	}
	c.dict[key] = c.lst.PushFront(ent)
	for c.lst.Len() > c.cap {
		back := c.lst.Back()
		if back == nil {
			break
		}
		it := back.Value.(memEntry)
		delete(c.dict, it.key)
		c.lst.Remove(back)
	}
}

func (c *memCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.dict[key]; ok {
		c.lst.Remove(e)
		delete(c.dict, key)
	}
}

func (c *memCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lst.Len()
}

// redisCmd：redisCache 依赖的最小命令面；*redis.Client 原样满足，测试注入桩实现
type redisCmd interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// 文档注释：Redis 位置缓存（可选次层）
// 背景：多实例部署时共享解析成果；客户端为 nil 即停用该层，读写失败降级为未命中/放弃，
// 绝不影响主流程。TTL 与进程内层一致。
type redisCache struct {
	rc  redisCmd
	ttl time.Duration
}

func (c *redisCache) Get(ctx context.Context, key string) (UserLocation, bool) {
	if c == nil || c.rc == nil {
		return UserLocation{}, false
	}
	s, err := c.rc.Get(ctx, key).Result()
	if err != nil || s == "" {
		return UserLocation{}, false
	}
	var loc UserLocation
	if err := json.Unmarshal([]byte(s), &loc); err != nil {
		logger.L().Debug("location_redis_decode_error", "key", key, "err", err)
		return UserLocation{}, false
	}
	return loc, true
}

func (c *redisCache) Set(ctx context.Context, key string, loc UserLocation) {
	if c == nil || c.rc == nil {
		return
	}
	b, err := json.Marshal(loc)
	if err != nil {
		return
	}
	if err := c.rc.Set(ctx, key, string(b), c.ttl).Err(); err != nil {
		logger.L().Debug("location_redis_set_error", "key", key, "err", err)
	}
}
