package repo

import (
	"github.com/GlebRadaev/wagering/internal/pg"
	balancerepo "github.com/GlebRadaev/wagering/internal/repo/balance-repo"
	bonustaskrepo "github.com/GlebRadaev/wagering/internal/repo/bonustask-repo"
	cashbackrepo "github.com/GlebRadaev/wagering/internal/repo/cashback-repo"
	orderrepo "github.com/GlebRadaev/wagering/internal/repo/order-repo"
	rolloverrepo "github.com/GlebRadaev/wagering/internal/repo/rollover-repo"
	"github.com/GlebRadaev/wagering/internal/service/bonustaskservice"
	"github.com/GlebRadaev/wagering/internal/service/cashbackservice"
	"github.com/GlebRadaev/wagering/internal/service/ledgerservice"
	"github.com/GlebRadaev/wagering/internal/service/rolloverservice"
)

type Repositories struct {
	BalanceRepo   ledgerservice.Repo
	RolloverRepo  rolloverservice.Repo
	BonusTaskRepo bonustaskservice.Repo
	OrderRepo     bonustaskservice.OrderRepo
	CashbackRepo  cashbackservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		BalanceRepo:   balancerepo.New(conn, txManager),
		RolloverRepo:  rolloverrepo.New(conn, txManager),
		BonusTaskRepo: bonustaskrepo.New(conn, txManager),
		OrderRepo:     orderrepo.New(conn),
		CashbackRepo:  cashbackrepo.New(conn, txManager),
	}
}
