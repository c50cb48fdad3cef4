package service

import (
	"fmt"

	"github.com/GlebRadaev/wagering/internal/buffer"
	"github.com/GlebRadaev/wagering/internal/config"
	"github.com/GlebRadaev/wagering/internal/events"
	"github.com/GlebRadaev/wagering/internal/notify"
	"github.com/GlebRadaev/wagering/internal/repo"
	"github.com/GlebRadaev/wagering/internal/scheduler"
	"github.com/GlebRadaev/wagering/internal/service/bonustaskservice"
	"github.com/GlebRadaev/wagering/internal/service/cashbackservice"
	"github.com/GlebRadaev/wagering/internal/service/ledgerservice"
	"github.com/GlebRadaev/wagering/internal/service/rolloverservice"
	"github.com/GlebRadaev/wagering/internal/service/vipservice"
	"github.com/GlebRadaev/wagering/pkg/clients"
)

// Deps are the process-level resources shared by the services.
type Deps struct {
	Buffer   buffer.Buffer
	Notifier *notify.Notifier
	Client   clients.HTTPClientI
	Pool     events.WorkerPoolI
}

type Services struct {
	Ledger     *ledgerservice.Service
	Rollovers  *rolloverservice.Service
	BonusTasks *bonustaskservice.Service
	Cashback   *cashbackservice.Service
	Vip        *vipservice.Service
	Dispatcher *events.Dispatcher
	Scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config, repo *repo.Repositories, deps Deps) (*Services, error) {
	policy, err := cashbackservice.NewPolicy(cfg.CashbackTiers, cfg.CashbackMaxAmount, cfg.CashbackExcludedGames)
	if err != nil {
		return nil, fmt.Errorf("cashback policy: %w", err)
	}
	rewards, err := vipservice.ParseRewards(cfg.VipRewards)
	if err != nil {
		return nil, fmt.Errorf("vip rewards: %w", err)
	}

	ledgerService := ledgerservice.New(repo.BalanceRepo, deps.Notifier, cfg.LedgerAttempts)
	rolloverService := rolloverservice.New(repo.RolloverRepo)
	bonusTaskService := bonustaskservice.New(repo.BonusTaskRepo, repo.OrderRepo, deps.Notifier)
	cashbackService := cashbackservice.New(repo.CashbackRepo, deps.Buffer, ledgerService, rolloverService, deps.Notifier, policy, cfg.CashbackClaimWeeks)
	vipService := vipservice.New(cfg.VipAddress, deps.Client, ledgerService, rolloverService, rewards, cfg.VipRewardCurrency)

	table := events.NewTable(events.Deps{
		Rollovers:  rolloverService,
		BonusTasks: bonusTaskService,
		Cashback:   cashbackService,
		Vip:        vipService,
		Notifier:   deps.Notifier,
	}, events.Options{MaxAttempts: cfg.HandlerAttempts, Timeout: cfg.HandlerTimeout})

	sched := scheduler.New(bonusTaskService, cashbackService)
	if err := sched.Register(scheduler.Schedules{
		Expire:   cfg.ExpireSchedule,
		Flush:    cfg.FlushSchedule,
		Finalize: cfg.FinalizeSchedule,
		Remind:   cfg.RemindSchedule,
	}); err != nil {
		return nil, fmt.Errorf("scheduler: %w", err)
	}

	return &Services{
		Ledger:     ledgerService,
		Rollovers:  rolloverService,
		BonusTasks: bonusTaskService,
		Cashback:   cashbackService,
		Vip:        vipService,
		Dispatcher: events.NewDispatcher(table, deps.Pool),
		Scheduler:  sched,
	}, nil
}
