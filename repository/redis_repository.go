package repository

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// CalculationRepositoryRedis guarda el historial de cálculos en redis,
// un registro por clave bajo el prefijo "calculo:".
type CalculationRepositoryRedis struct {
	client *redis.Client
}

func NewCalculationRepositoryRedis(addr string) *CalculationRepositoryRedis {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &CalculationRepositoryRedis{client: rdb}
}

func (r *CalculationRepositoryRedis) Save(
	ctx context.Context,
	record CalculationRecord,
) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, "calculo:"+record.ID, payload, 0).Err()
}

func (r *CalculationRepositoryRedis) Close() error {
	return r.client.Close()
}
