package cache

import (
	"context"
	"fmt"
)

// Generation đọc counter do Incr tạo ra, key chưa có = generation 0
func Generation(ctx context.Context, c Cache, key string) (int64, error) {
	var gen int64
	if _, err := c.Get(ctx, key, &gen); err != nil {
		return 0, err
	}
	return gen, nil
}

// GenerationKey ghép prefix với generation, ví dụ "images:all:3"
func GenerationKey(prefix string, gen int64) string {
	return fmt.Sprintf("%s:%d", prefix, gen)
}
