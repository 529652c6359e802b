package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/directorio-negocios/internal/domain"
)

// fakeRows implementa pgx.Rows sobre filas en memoria.
type fakeRows struct {
	data    [][]*string
	i       int
	scanErr error
	err     error
	closed  bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.i >= len(r.data) {
		return false
	}
	r.i++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	row := r.data[r.i-1]
	for i, d := range dest {
		*(d.(**string)) = row[i]
	}
	return nil
}

type fakeQuerier struct {
	rows *fakeRows
	err  error
	sql  string
}

func (q *fakeQuerier) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	q.sql = sql
	if q.err != nil {
		return nil, q.err
	}
	return q.rows, nil
}

func s(v string) *string { return &v }

func TestBusinessSource_FetchBusinesses(t *testing.T) {
	rows := &fakeRows{data: [][]*string{
		{s("Acme"), s("Retail"), s("company"), nil, s("/img/acme.jpg"), nil, nil, nil},
		{s("Bella"), s("Decor"), s("individual person"), s("Sofás"), nil, s("https://x.co/bella"), s("b@x.co"), s("300 123")},
	}}
	q := &fakeQuerier{rows: rows}

	recs, err := NewBusinessSource(q).FetchBusinesses(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "Acme", *recs[0].Name)
	assert.Nil(t, recs[0].Desc)
	assert.Equal(t, "/img/acme.jpg", *recs[0].Image)
	assert.Equal(t, "individual person", *recs[1].Status)
	assert.Equal(t, "300 123", *recs[1].Mobile)
	assert.True(t, rows.closed)
	assert.Contains(t, q.sql, "ORDER BY position")
}

func TestBusinessSource_TablaInexistente(t *testing.T) {
	q := &fakeQuerier{err: &pgconn.PgError{Code: "42P01", Message: "relation \"businesses\" does not exist"}}

	_, err := NewBusinessSource(q).FetchBusinesses(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLoad)
	var le *domain.LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "fetch", le.Op)
	assert.Contains(t, err.Error(), "inexistente")
}

func TestBusinessSource_ErrorDeEscaneo(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{data: [][]*string{{s("x")}}, scanErr: errors.New("tipo incompatible")}}

	_, err := NewBusinessSource(q).FetchBusinesses(context.Background())
	var le *domain.LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "decode", le.Op)
}

func TestBusinessSource_ErrorDeIteracion(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{err: errors.New("conexión cerrada")}}

	_, err := NewBusinessSource(q).FetchBusinesses(context.Background())
	assert.ErrorIs(t, err, domain.ErrLoad)
}

func TestIsUndefinedTable(t *testing.T) {
	assert.True(t, isUndefinedTable(&pgconn.PgError{Code: "42P01"}))
	assert.False(t, isUndefinedTable(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUndefinedTable(errors.New("otro")))
}
