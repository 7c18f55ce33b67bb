// Command pointsctl is the operator tool for the points ledger.
//
// Usage:
//
//	pointsctl reconcile [--repair]
//	pointsctl balance --user=<uuid>
//	pointsctl award --user=<uuid> --action=task_completed [--key=<dedup key>]
//	pointsctl token --user=<uuid> [--ttl=1h]
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/heartmarshall/lifeflow-backend/internal/app"
)

var cli struct {
	Version kong.VersionFlag

	Reconcile reconcileCmd `cmd:"" help:"Report accounts whose balance differs from the ledger."`
	Balance   balanceCmd   `cmd:"" help:"Show a user's balance and latest earnings."`
	Award     awardCmd     `cmd:"" help:"Append an award to a user's ledger."`
	Token     tokenCmd     `cmd:"" help:"Issue an access token for local testing."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("pointsctl"),
		kong.Description("Points ledger maintenance for the Lifeflow backend."),
		kong.UsageOnError(),
		kong.Vars{"version": app.BuildVersion()},
	)

	rt := &runtime{}
	defer rt.Close()

	if err := kctx.Run(rt); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
