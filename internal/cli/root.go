// Package cli implements the dineflex command line client.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nekogravitycat/dineflex-backend/internal/booking"
	"github.com/nekogravitycat/dineflex-backend/internal/config"
	"github.com/nekogravitycat/dineflex-backend/internal/lifecycle"
	"github.com/nekogravitycat/dineflex-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/dineflex-backend/internal/pkg/logger"
	"github.com/nekogravitycat/dineflex-backend/internal/reservation"
)

type session struct {
	apiURL      string
	timeout     time.Duration
	latency     time.Duration
	failureRate float64
	verbose     bool

	log    *logger.Logger
	client *reservation.Client
}

func NewRootCmd() *cobra.Command {
	s := &session{}

	root := &cobra.Command{
		Use:           "dineflex",
		Short:         "Browse restaurant deals and book tables through the DineFlex API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.open(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if s.client != nil {
				s.client.Close()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&s.apiURL, "api-url", "", "API base URL (default from API_BASE_URL)")
	flags.DurationVar(&s.timeout, "timeout", 0, "per-request timeout (default from CLIENT_TIMEOUT)")
	flags.DurationVar(&s.latency, "latency", 0, "simulated latency per call (default from SIMULATED_LATENCY)")
	flags.Float64Var(&s.failureRate, "failure-rate", 0, "probability of a simulated server failure (default from FAILURE_RATE)")
	flags.BoolVarP(&s.verbose, "verbose", "v", false, "log request lifecycle to stderr")

	root.AddCommand(newRestaurantsCmd(s))
	root.AddCommand(newAvailabilityCmd(s))
	root.AddCommand(newBookCmd(s))
	root.AddCommand(newBookingCmd(s))

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// open fills unset flags from the environment and builds the client.
func (s *session) open(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("api-url") {
		s.apiURL = cfg.APIBaseURL
	}
	if !flags.Changed("timeout") {
		s.timeout = cfg.ClientTimeout
	}
	if !flags.Changed("latency") {
		s.latency = cfg.SimulatedLatency
	}
	if !flags.Changed("failure-rate") {
		s.failureRate = cfg.FailureRate
	}
	if s.failureRate < 0 || s.failureRate > 1 {
		return fmt.Errorf("--failure-rate must be between 0 and 1")
	}

	level := cfg.LogLevel
	if s.verbose {
		level = "debug"
	}
	s.log = logger.New(logger.Config{
		Level:   level,
		Format:  logger.FormatText,
		Output:  cmd.ErrOrStderr(),
		Service: "dineflex-cli",
	})

	var t reservation.Transport = reservation.NewHTTPTransport(s.apiURL, s.timeout)
	if s.latency > 0 || s.failureRate > 0 {
		t = reservation.Simulate(t, reservation.SimulationConfig{
			Latency:     s.latency,
			FailureRate: s.failureRate,
			Logger:      s.log,
		})
	}

	s.client = reservation.NewClient(t, booking.NewValidator())
	watch(s.log, "listRestaurants", s.client.Restaurants)
	watch(s.log, "getRestaurant", s.client.Detail)
	watch(s.log, "getAvailability", s.client.Availability)
	watch(s.log, "createBooking", s.client.Submit)
	watch(s.log, "getBooking", s.client.Lookup)
	return nil
}

func watch[P, V any](log *logger.Logger, op string, c *lifecycle.Controller[P, V]) {
	c.Subscribe(func(snap lifecycle.Snapshot[P, V]) {
		if snap.State == lifecycle.StateError {
			log.Debug("request settled", "operation", op, "state", snap.State, "code", snap.AppError().Code)
			return
		}
		log.Debug("request state", "operation", op, "state", snap.State)
	})
}

func (s *session) requestContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// describe renders err for a terminal.
func describe(err error) error {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		return err
	}

	switch apperror.KindOf(err) {
	case apperror.KindValidation:
		parts := make([]string, 0, len(appErr.Fields))
		for _, f := range appErr.Fields {
			parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
		}
		return fmt.Errorf("%s (%s): %s", appErr.Message, appErr.Code, strings.Join(parts, "; "))
	case apperror.KindNetwork, apperror.KindServer:
		return fmt.Errorf("%s (%s), try again", appErr.Message, appErr.Code)
	default:
		return fmt.Errorf("%s (%s)", appErr.Message, appErr.Code)
	}
}
