package repo

import (
	"github.com/edumarket/wallet/internal/pg"
	methodrepo "github.com/edumarket/wallet/internal/repo/method-repo"
	payoutrepo "github.com/edumarket/wallet/internal/repo/payout-repo"
	transactionrepo "github.com/edumarket/wallet/internal/repo/transaction-repo"
	walletrepo "github.com/edumarket/wallet/internal/repo/wallet-repo"
)

// Repositories are concrete so both the wallet and payout services can take
// the slice of each repo they declare an interface for.
type Repositories struct {
	WalletRepo      *walletrepo.Repository
	TransactionRepo *transactionrepo.Repository
	MethodRepo      *methodrepo.Repository
	PayoutRepo      *payoutrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		WalletRepo:      walletrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		MethodRepo:      methodrepo.New(conn),
		PayoutRepo:      payoutrepo.New(conn),
	}
}
