package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"travelsure/config"
	policyRepo "travelsure/database/repository/policy"
	"travelsure/models"
	"travelsure/services/conversation"
	"travelsure/services/faq"
	ai "travelsure/services/intelligence"
	"travelsure/services/payment"
	"travelsure/services/persona"
	"travelsure/services/plans"
	"travelsure/services/policy"
	"travelsure/services/session"
	"travelsure/services/storage"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	provider      string
	wordingPath   string
	sessionID     string
	deterministic bool
}

func newRootCmd() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:           "travelsure-chat",
		Short:         "Talk to the travel insurance assistant from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mgr, err := buildManager(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer func() { _ = ai.Close(mgr.LLM) }()
			return repl(cmd.Context(), mgr, opts.sessionID, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	root.Flags().StringVar(&opts.provider, "llm", "none", "language model provider: gemini|openai|none")
	root.Flags().StringVar(&opts.wordingPath, "wording", "", "policy wording PDF used to answer questions")
	root.Flags().StringVar(&opts.sessionID, "session", "", "session id (generated when empty)")
	root.Flags().BoolVar(&opts.deterministic, "deterministic", false, "always use the first phrasing of each reply")

	root.AddCommand(newExtractCmd())
	return root
}

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <message>",
		Short: "Show the trip fields extracted from one message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := conversation.NewExtractor(time.Now).Extract(strings.Join(args, " "), models.TripData{})
			out, err := json.MarshalIndent(fields, "", "  ")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

// buildManager assembles the conversation over in-memory collaborators.
func buildManager(ctx context.Context, opts options) (*conversation.Manager, error) {
	config.LoadConfig()
	cfg := config.AppConfig
	cfg.LLMProvider = opts.provider
	logger := zap.NewNop()

	llm, err := ai.NewTextGenerator(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	engine := plans.NewEngine(cfg.Currency)

	var wording *faq.Wording
	if opts.wordingPath != "" {
		if wording, err = faq.LoadWording(opts.wordingPath); err != nil {
			return nil, err
		}
	}

	issuer, err := policy.NewIssuer(policy.Deps{
		Repo:      policyRepo.NewMemoryPolicyRepo(),
		Plans:     engine,
		Documents: storage.NewMemoryStore(),
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}

	var phraser conversation.Phraser = conversation.RandomPhraser{}
	if opts.deterministic {
		phraser = conversation.FirstPhraser{}
	}

	return &conversation.Manager{
		Store:     session.NewMemoryStore(0, 0),
		Extractor: conversation.NewExtractor(time.Now),
		LLM:       llm,
		FAQ:       faq.NewService(engine, wording, llm, logger),
		Personas:  persona.NewClassifier(),
		Plans:     engine,
		Payments:  payment.NewSimulatedHandler(logger, 0),
		Issuer:    issuer,
		Phraser:   phraser,
		Timeout:   cfg.ExternalCallTimeout,
		Logger:    logger,
	}, nil
}

const help = `Commands: /confirm  bind the quote   /pay  complete the payment
          /session  dump the session   /quit  leave`

func repl(ctx context.Context, mgr *conversation.Manager, sessionID string, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	_, _ = fmt.Fprintf(out, "Session %s\n%s\n", sessionID, help)

	scanner := bufio.NewScanner(in)
	for {
		_, _ = fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var (
			res *conversation.ProcessResult
			err error
		)
		switch line {
		case "/quit", "/exit":
			return nil
		case "/help":
			_, _ = fmt.Fprintln(out, help)
			continue
		case "/session":
			s, err := mgr.GetSession(ctx, sessionID)
			if err != nil {
				_, _ = fmt.Fprintf(out, "! %v\n", err)
				continue
			}
			b, _ := json.MarshalIndent(s, "", "  ")
			_, _ = fmt.Fprintln(out, string(b))
			continue
		case "/confirm":
			res, err = mgr.ConfirmBinding(ctx, sessionID)
		case "/pay":
			res, err = mgr.CompletePayment(ctx, sessionID, "")
		default:
			res = mgr.ProcessMessage(ctx, sessionID, line)
		}
		if err != nil {
			_, _ = fmt.Fprintf(out, "! %v\n", err)
			continue
		}
		printResult(out, res)
	}
}

func printResult(out io.Writer, res *conversation.ProcessResult) {
	_, _ = fmt.Fprintf(out, "[%s] %s\n", res.Step, res.Response)
	if res.RequiresAction != "" {
		_, _ = fmt.Fprintf(out, "  (action: %s)\n", res.RequiresAction)
	}
}
