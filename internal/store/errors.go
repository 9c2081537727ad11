package store

import (
	"errors"

	"github.com/go-sql-driver/mysql" // MySQL driver errors
)

// isDuplicateEntry reports whether err is a MySQL unique-constraint
// violation (error 1062). The stores translate it into the conflict
// sentinels of the service error taxonomy so that callers never inspect
// driver errors directly.
func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
