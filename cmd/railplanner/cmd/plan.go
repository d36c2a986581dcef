package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/solatis/railplanner/internal/core/api"
	"github.com/solatis/railplanner/internal/core/config"
	"github.com/solatis/railplanner/internal/core/logging"
	"github.com/solatis/railplanner/internal/input"
	"github.com/solatis/railplanner/internal/planner"
)

// errPlanFailed signals a non-zero exit after the diagnostic was already
// written to the output file.
var errPlanFailed = errors.New("planning failed")

var planCmd = &cobra.Command{
	Use:   "plan <InputFile>",
	Short: "Compute the minimal track price for an input file",
	Long: `Reads the target length, connection types and segment types from InputFile
and writes "The minimal price is: X" to the output file (X is -1 when no track
of exactly the target length exists). Malformed input is reported as
"Invalid input in line: N." in the same file, and a wrong argument count
writes the usage line there.`,
	Args: cobra.ArbitraryArgs,
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().StringP("output", "o", "", "output file (default railway_planner_output.txt)")
	planCmd.Flags().Bool("stdout", false, "also print the result message to stdout")
	planCmd.Flags().String("remote", "", "planner service address (host:port); compute remotely instead of locally")
	planCmd.Flags().Duration("timeout", 30*time.Second, "timeout for --remote calls")
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	cfg, err := config.Load(configFile, map[string]*pflag.Flag{
		"planner.output_file": cmd.Flags().Lookup("output"),
	})
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var sink input.Sink = input.NewFileSink(cfg.Planner.OutputFile)
	if stdout, _ := cmd.Flags().GetBool("stdout"); stdout {
		sink = input.MultiSink{sink, input.WriterSink{W: cmd.OutOrStdout()}}
	}

	if len(args) != 1 {
		if werr := sink.WriteMessage(input.MsgUsage); werr != nil {
			return werr
		}
		return errors.New(input.MsgUsage)
	}

	plan, err := input.ParseFile(args[0], cfg.Planner.Limits())
	if err != nil {
		if !input.IsInputError(err) {
			return err
		}
		logger.Warn("invalid planner input", "file", args[0], "error", err)
		if werr := input.WriteError(sink, err); werr != nil {
			return werr
		}
		return errPlanFailed
	}

	var res planner.Result
	if remote, _ := cmd.Flags().GetString("remote"); remote != "" {
		timeout, _ := cmd.Flags().GetDuration("timeout")
		res, err = planRemote(ctx, remote, timeout, plan)
		if err != nil {
			return err
		}
	} else {
		recorder, closeDB, err := openRecorder()
		if err != nil {
			return err
		}
		defer closeDB()

		service, err := api.NewPlannerService(recorder, cfg.Planner.Limits())
		if err != nil {
			return err
		}
		out, err := service.Run(ctx, args[0], plan)
		if err != nil {
			return err
		}
		res = out.Result
		if out.RunID != "" {
			logger.Info("run recorded", "run_id", out.RunID)
		}
	}

	logger.Info("planned track", "file", args[0], "target_length", plan.TargetLength, "result", res.String())
	return sink.WriteResult(res)
}

// planRemote sends plan to a running planner service.
func planRemote(ctx context.Context, addr string, timeout time.Duration, plan *input.Plan) (planner.Result, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return planner.Result{}, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	got, err := api.NewPlannerClient(conn).Plan(ctx, plan)
	if err != nil {
		return planner.Result{}, fmt.Errorf("remote planner call failed: %w", err)
	}
	if !got.Reachable {
		return planner.Unreachable(), nil
	}
	return planner.Reachable(got.Price), nil
}
