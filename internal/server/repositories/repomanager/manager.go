// Package repomanager wires repositories to database handles and owns
// migrations. Passing a dbx.DBTX lets callers get repositories bound either
// to the pool or to an open transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/avolkov/quizdeck/internal/dbx"
	"github.com/avolkov/quizdeck/internal/server/repositories/questions"
	"github.com/avolkov/quizdeck/internal/server/repositories/tests"
	"github.com/avolkov/quizdeck/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Tests(db dbx.DBTX) tests.Repository
	Questions(db dbx.DBTX) questions.Repository
}
