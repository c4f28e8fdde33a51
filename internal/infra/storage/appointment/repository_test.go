package appointment

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luizvb/gendaia-sub001/internal/domain"
	"github.com/luizvb/gendaia-sub001/pkg/ptr"
)

var errCaptureOnly = errors.New("capture only")

// captureExecutor перехватывает запрос и аргументы, не обращаясь к БД
type captureExecutor struct {
	query string
	args  []interface{}
}

func (c *captureExecutor) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	c.query = query
	c.args = args
	return nil, errCaptureOnly
}

func (c *captureExecutor) QueryContext(_ context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	c.query = query
	c.args = args
	return nil, errCaptureOnly
}

func (c *captureExecutor) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func TestGetWithFilter_DateParamsAreCalendarStrings(t *testing.T) {
	// Фильтр по DATE колонке не должен зависеть от таймзоны сессии:
	// границы периода уходят в запрос строками YYYY-MM-DD, а не инстантами
	executor := &captureExecutor{}
	repo := NewRepository(executor)

	date := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	filter := domain.AppointmentsFilter{
		BusinessID:     1,
		ProfessionalID: ptr.Ptr(int64(10)),
		StartDate:      &date,
		EndDate:        &date,
		OnlyBlocking:   true,
	}

	_, err := repo.GetWithFilter(context.Background(), filter)
	require.ErrorIs(t, err, ErrExecQuery)

	assert.Contains(t, executor.args, "2025-11-10")
	for _, arg := range executor.args {
		_, isTime := arg.(time.Time)
		assert.False(t, isTime, "date filter must not be bound as time.Time")
	}
}
