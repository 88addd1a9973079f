// Package redis creates verified go-redis clients and a small byte cache on
// top of them.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	cache := redis.NewCache(client, "cmsnav:")
//	if err := cache.Set(ctx, "menu", payload, time.Minute); err != nil {
//		return err
//	}
//
// Connect accepts redis:// and rediss:// urls, retries the initial ping with
// a doubling interval and gives up after ConnectTimeout.
package redis
