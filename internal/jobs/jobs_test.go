package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"fuji-trip/tripmap/internal/config"
	"fuji-trip/tripmap/internal/db"
	"fuji-trip/tripmap/internal/logging"
	"fuji-trip/tripmap/internal/models/entities"
)

func init() {
	logging.SetLogger(zap.NewNop().Sugar())
}

type stubWeather struct {
	data  []entities.WeatherData
	calls int
}

func (s *stubWeather) Refresh(ctx context.Context) []entities.WeatherData {
	s.calls++
	return s.data
}

func TestSchemaJobCreatesTables(t *testing.T) {
	ctx := context.Background()

	sqlxDB, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	sqlxDB.SetMaxOpenConns(1)
	defer sqlxDB.Close()

	orm, err := db.OpenORM(config.DriverSQLite, sqlxDB)
	require.NoError(t, err)

	job := NewSchemaJob(sqlxDB, orm)
	require.NoError(t, job.RunUntilReady(ctx, time.Millisecond))
	// Idempotent.
	require.NoError(t, job.Run(ctx))

	for _, table := range []string{"trip_notes", "trip_locations", "packing_items", "custom_checklist_items"} {
		assert.True(t, orm.Migrator().HasTable(table), table)
	}
}

func TestSchemaJobStopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	sqlxDB, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	sqlxDB.SetMaxOpenConns(1)
	orm, err := db.OpenORM(config.DriverSQLite, sqlxDB)
	require.NoError(t, err)
	// A closed pool fails every attempt.
	require.NoError(t, sqlxDB.Close())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err = NewSchemaJob(sqlxDB, orm).RunUntilReady(ctx, 5*time.Millisecond)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWeatherWarmupCountsPlaceholders(t *testing.T) {
	weather := &stubWeather{data: []entities.WeatherData{
		{Day: 1, Temp: "1°C / 8°C", Desc: "晴朗", FujiVisibility: "極高"},
		{Day: 2, Temp: "--°C / --°C", Desc: "無資料", FujiVisibility: "-"},
	}}

	missing := NewWeatherWarmupJob(weather).Run(context.Background())
	assert.Equal(t, 1, missing)
	assert.Equal(t, 1, weather.calls)
}
