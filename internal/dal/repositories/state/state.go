// Package state selects the session state store configured by state.driver.
package state

import (
	"fmt"

	"github.com/corray333/backend-labs/cafe/internal/dal/interfaces/istaterepo"
	"github.com/corray333/backend-labs/cafe/internal/dal/postgres"
	memorystate "github.com/corray333/backend-labs/cafe/internal/dal/repositories/state/memory"
	postgresstate "github.com/corray333/backend-labs/cafe/internal/dal/repositories/state/postgres"
	redisstate "github.com/corray333/backend-labs/cafe/internal/dal/repositories/state/redis"
	"github.com/redis/go-redis/v9"
)

const (
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

// New returns the store for the driver. Clients not needed by the driver may be nil.
func New(driver string, pg *postgres.Client, rdb *redis.Client) (istaterepo.IStateRepository, error) {
	switch driver {
	case DriverPostgres:
		if pg == nil {
			return nil, fmt.Errorf("state driver %q needs a postgres client", driver)
		}
		return postgresstate.NewStore(pg), nil
	case DriverRedis:
		if rdb == nil {
			return nil, fmt.Errorf("state driver %q needs a redis client", driver)
		}
		return redisstate.NewStore(rdb), nil
	case DriverMemory, "":
		return memorystate.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown state driver %q", driver)
	}
}
