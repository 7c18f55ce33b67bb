package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lifeflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lifeflow-backend/internal/adapter/postgres/ledger"
	"github.com/heartmarshall/lifeflow-backend/internal/auth"
	"github.com/heartmarshall/lifeflow-backend/internal/domain"
	"github.com/heartmarshall/lifeflow-backend/internal/metrics"
	"github.com/heartmarshall/lifeflow-backend/internal/service/award"
)

const commandTimeout = 5 * time.Minute

type reconcileCmd struct {
	Repair bool `help:"Reset every mismatched balance to its ledger sum."`
}

func (c *reconcileCmd) Run(rt *runtime) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	pool, err := rt.db(ctx)
	if err != nil {
		return err
	}
	repo := ledger.New(pool)

	mismatches, err := repo.Reconcile(ctx)
	if err != nil {
		return err
	}
	if len(mismatches) == 0 {
		rt.logger.Info("ledger consistent")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "USER\tBALANCE\tLEDGER")
	for _, m := range mismatches {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", m.UserID, m.Balance, m.LedgerSum)
	}
	tw.Flush()

	if !c.Repair {
		return fmt.Errorf("%d account(s) out of sync, rerun with --repair", len(mismatches))
	}

	for _, m := range mismatches {
		balance, err := repo.Repair(ctx, m.UserID)
		if err != nil {
			return fmt.Errorf("repair %s: %w", m.UserID, err)
		}
		rt.logger.Info("balance repaired",
			slog.String("user_id", m.UserID.String()),
			slog.Int("was", m.Balance),
			slog.Int("balance", balance),
		)
	}
	return nil
}

type balanceCmd struct {
	User  uuid.UUID `required:"" help:"User ID."`
	Limit int       `default:"10" help:"Number of recent earnings to show."`
}

func (c *balanceCmd) Run(rt *runtime) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	pool, err := rt.db(ctx)
	if err != nil {
		return err
	}
	repo := ledger.New(pool)

	balance, err := repo.BalanceOf(ctx, c.User)
	if err != nil {
		return err
	}
	earnings, err := repo.RecentEarnings(ctx, c.User, c.Limit)
	if err != nil {
		return err
	}

	fmt.Printf("balance: %d\n", balance)
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tPOINTS\tDESCRIPTION")
	for _, e := range earnings {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", e.ID, domain.DateOf(e.CreatedAt), e.Points, e.Description)
	}
	return tw.Flush()
}

type awardCmd struct {
	User   uuid.UUID `required:"" help:"User ID."`
	Action string    `required:"" help:"Award action, e.g. task_completed."`
	Key    string    `help:"Dedup key; a repeated key is a no-op."`
}

func (c *awardCmd) Run(rt *runtime) error {
	action := domain.AwardAction(c.Action)
	if !action.IsValid() {
		return fmt.Errorf("unknown action %q, expected one of %v", c.Action, domain.AllAwardActions())
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	pool, err := rt.db(ctx)
	if err != nil {
		return err
	}

	txManager := postgres.NewTxManager(pool)
	svc := award.NewService(rt.logger, ledger.New(pool), txManager, metrics.New())

	var earning *domain.PointEarning
	err = txManager.RunInTx(ctx, func(ctx context.Context) error {
		if c.Key == "" {
			earning, err = svc.Award(ctx, c.User, action)
			return err
		}
		var awarded bool
		earning, awarded, err = svc.AwardOnce(ctx, c.User, action, c.Key)
		if err == nil && !awarded {
			fmt.Printf("key %q already awarded, nothing to do\n", c.Key)
		}
		return err
	})
	if err != nil {
		return err
	}

	if earning != nil {
		fmt.Printf("awarded %d points (%s), earning #%d\n", earning.Points, earning.Description, earning.ID)
	}
	return nil
}

type tokenCmd struct {
	User uuid.UUID     `required:"" help:"User ID to put in the subject claim."`
	TTL  time.Duration `default:"1h" help:"Token lifetime."`
}

func (c *tokenCmd) Run(rt *runtime) error {
	cfg, err := rt.config()
	if err != nil {
		return err
	}

	token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer).GenerateAccessToken(c.User, c.TTL)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
