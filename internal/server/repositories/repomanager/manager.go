// Package repomanager vends repository implementations bound to a DBTX so
// services can run the same repository code against *sql.DB or *sql.Tx.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/ooakt0/fyi-bolt-sub000/internal/dbx"
	"github.com/ooakt0/fyi-bolt-sub000/internal/server/repositories/files"
	"github.com/ooakt0/fyi-bolt-sub000/internal/server/repositories/ideas"
	"github.com/ooakt0/fyi-bolt-sub000/internal/server/repositories/images"
	"github.com/ooakt0/fyi-bolt-sub000/internal/server/repositories/refreshtokens"
	"github.com/ooakt0/fyi-bolt-sub000/internal/server/repositories/users"
)

// RepositoryManager builds repositories bound to the given database handle
// and owns schema migrations.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Ideas(db dbx.DBTX) ideas.Repository
	Files(db dbx.DBTX) files.Repository
	Images(db dbx.DBTX) images.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
