package backend

import lru "github.com/hashicorp/golang-lru/v2"

// cache keeps recently resolved users so the auth middleware doesn't hit the
// database on every request.
type cache struct {
	b     *Backend
	users *lru.Cache[int64, *user]
}

func newCache(b *Backend, size int) *cache {
	if size <= 0 {
		size = 1
	}
	c := &cache{b: b}
	cache, _ := lru.New[int64, *user](size)
	c.users = cache
	return c
}

func (c *cache) Get(id int64) (*user, bool) {
	return c.users.Get(id)
}

func (c *cache) Set(id int64, u *user) {
	c.users.Add(id, u)
}

func (c *cache) Delete(id int64) {
	c.users.Remove(id)
}

func (c *cache) Len() int {
	return c.users.Len()
}
