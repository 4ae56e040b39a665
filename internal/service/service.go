package service

import (
	"github.com/edumarket/wallet/internal/pg"
	"github.com/edumarket/wallet/internal/repo"
	"github.com/edumarket/wallet/internal/service/payoutservice"
	"github.com/edumarket/wallet/internal/service/walletservice"
)

type Services struct {
	WalletService *walletservice.Service
	PayoutService *payoutservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	walletService := walletservice.New(repo.WalletRepo, repo.TransactionRepo, txManager)
	payoutService := payoutservice.New(repo.WalletRepo, repo.TransactionRepo, repo.MethodRepo, repo.PayoutRepo, txManager)

	return &Services{
		WalletService: walletService,
		PayoutService: payoutService,
	}
}
