package redisClient

import "github.com/go-redis/redis"

// New connects to redis and verifies the connection with a ping.
func New(host, port string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: host + ":" + port,
	})
	if err := client.Ping().Err(); err != nil {
		return nil, err
	}
	return client, nil
}
