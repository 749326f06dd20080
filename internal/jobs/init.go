package jobs

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

const schemaRetryInterval = 30 * time.Second

// Jobs holds the background jobs started with the server.
type Jobs struct {
	Schema  *SchemaJob
	Weather *WeatherWarmupJob
	done    chan struct{}
}

// InitializeJobs starts the schema bootstrap and the one-shot weather
// warm-up in the background. Wait blocks until both have returned.
func InitializeJobs(ctx context.Context, database *sqlx.DB, orm *gorm.DB, weather WeatherSource) *Jobs {
	j := &Jobs{
		Schema:  NewSchemaJob(database, orm),
		Weather: NewWeatherWarmupJob(weather),
		done:    make(chan struct{}),
	}

	go func() {
		defer close(j.done)

		schemaDone := make(chan struct{})
		go func() {
			defer close(schemaDone)
			_ = j.Schema.RunUntilReady(ctx, schemaRetryInterval)
		}()

		j.Weather.Run(ctx)
		<-schemaDone
	}()

	return j
}

// Wait blocks until every job started by InitializeJobs has returned.
func (j *Jobs) Wait() {
	<-j.done
}
