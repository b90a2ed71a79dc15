package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	gomysql "github.com/go-sql-driver/mysql"

	"trybe_hotel/internal/domain"
)

const (
	errOutOfRange          = 1264 // ER_WARN_DATA_OUT_OF_RANGE
	errNoReferencedRow     = 1452 // ER_NO_REFERENCED_ROW_2
	errCheckConstraintFail = 3819 // ER_CHECK_CONSTRAINT_VIOLATED
)

// querier is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repo implements the city, hotel and room repositories over one querier.
type Repo struct{ q querier }

// Store opens one pooled connection per session.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

var _ domain.Store = (*Store)(nil)

func (s *Store) Open(ctx context.Context) (domain.Session, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	return &session{Repo: &Repo{q: conn}, conn: conn}, nil
}

type session struct {
	*Repo
	conn *sql.Conn
}

var _ domain.Session = (*session)(nil)

// Close hands the connection back to the pool.
func (s *session) Close() error { return s.conn.Close() }

func mysqlErrNumber(err error) uint16 {
	var me *gomysql.MySQLError
	if errors.As(err, &me) {
		return me.Number
	}
	return 0
}

func isForeignKeyViolation(err error) bool { return mysqlErrNumber(err) == errNoReferencedRow }

// isRangeViolation reports a value the column type or a CHECK constraint rejected.
func isRangeViolation(err error) bool {
	n := mysqlErrNumber(err)
	return n == errOutOfRange || n == errCheckConstraintFail
}

func insertID(res sql.Result) (int64, error) {
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}
