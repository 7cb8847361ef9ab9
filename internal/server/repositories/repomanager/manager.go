package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/loanvault/internal/dbx"
	"github.com/dmitrijs2005/loanvault/internal/server/repositories/cards"
	"github.com/dmitrijs2005/loanvault/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/loanvault/internal/server/repositories/tokenpairs"
	"github.com/dmitrijs2005/loanvault/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so the same code
// path works on the pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	TokenPairs(db dbx.DBTX) tokenpairs.Repository
	Cards(db dbx.DBTX) cards.Repository
	Profiles(db dbx.DBTX) profiles.Repository
}
