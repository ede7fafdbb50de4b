package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iudanet/cardconnect/internal/config"
)

// Builder собирает Cli по загруженной конфигурации.
// Возвращаемая функция освобождает ресурсы (БД, лог файл).
type Builder func(ctx context.Context, cfg *config.Client) (*Cli, func() error, error)

// NewRootCommand создает дерево команд. Вторая функция закрывает то,
// что открыл Builder, ее нужно вызвать после Execute.
func NewRootCommand(build Builder, version string) (*cobra.Command, func() error) {
	var (
		c          *Cli
		cleanup    func() error
		configFile string
		envFile    string
	)

	root := &cobra.Command{
		Use:   "cardconnect",
		Short: "CardConnect - business card scanner with cloud sync",
		Long: `CardConnect extracts contacts from photos of business cards,
enriches them with company and role descriptions and keeps them
in sync with your cloud collection.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadClient(config.Source{
				Flags:      cmd.Flags(),
				ConfigFile: configFile,
				EnvFile:    envFile,
			})
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			c, cleanup, err = build(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize client: %w", err)
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Path to YAML config file")
	flags.StringVar(&envFile, "env-file", ".env", "Path to .env file")
	flags.String("server-url", "", "Server URL")
	flags.String("db-path", "", "Path to local database")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("log-format", "", "Log format: text or json")
	flags.String("log-file", "", "Write logs to a rotating file instead of stderr")

	// run откладывает обращение к c до PersistentPreRunE
	run := func(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			if c == nil {
				return fmt.Errorf("client is not initialized")
			}
			return fn(cmd, args)
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "register",
			Short: "Create a cloud account",
			Args:  cobra.NoArgs,
			RunE: run(func(cmd *cobra.Command, _ []string) error {
				return c.runRegister(cmd.Context())
			}),
		},
		&cobra.Command{
			Use:   "login",
			Short: "Sign in and import cards from the cloud",
			Args:  cobra.NoArgs,
			RunE: run(func(cmd *cobra.Command, _ []string) error {
				return c.runLogin(cmd.Context())
			}),
		},
		&cobra.Command{
			Use:   "logout",
			Short: "Sign out, local cards are kept",
			Args:  cobra.NoArgs,
			RunE: run(func(cmd *cobra.Command, _ []string) error {
				return c.runLogout(cmd.Context())
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show account and sync status",
			Args:  cobra.NoArgs,
			RunE: run(func(cmd *cobra.Command, _ []string) error {
				return c.runStatus(cmd.Context())
			}),
		},
		&cobra.Command{
			Use:   "scan <image>...",
			Short: "Extract business cards from images",
			Args:  cobra.MinimumNArgs(1),
			RunE: run(func(cmd *cobra.Command, args []string) error {
				return c.runScan(cmd.Context(), args)
			}),
		},
		&cobra.Command{
			Use:   "watch <dir>",
			Short: "Ingest every new image that appears in a directory",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(cmd *cobra.Command, args []string) error {
				return c.runWatch(cmd.Context(), args[0])
			}),
		},
		newListCommand(run, &c),
		&cobra.Command{
			Use:   "show <id>",
			Short: "Show card details",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(cmd *cobra.Command, args []string) error {
				return c.runShow(cmd.Context(), args[0])
			}),
		},
		newEditCommand(run, &c),
		&cobra.Command{
			Use:   "enrich <id>",
			Short: "Regenerate company and role descriptions",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(cmd *cobra.Command, args []string) error {
				return c.runEnrich(cmd.Context(), args[0])
			}),
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a card locally and from the cloud",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(cmd *cobra.Command, args []string) error {
				return c.runDelete(cmd.Context(), args[0])
			}),
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Count cards by industry",
			Args:  cobra.NoArgs,
			RunE: run(func(cmd *cobra.Command, _ []string) error {
				return c.runStats(cmd.Context())
			}),
		},
		newSyncCommand(run, &c),
		newAccountCommand(run, &c),
	)

	closeFn := func() error {
		if cleanup == nil {
			return nil
		}
		return cleanup()
	}
	return root, closeFn
}

type runWrapper func(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error

func newListCommand(run runWrapper, c **Cli) *cobra.Command {
	var opts listOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cards, newest first",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, _ []string) error {
			return (*c).runList(cmd.Context(), opts)
		}),
	}
	cmd.Flags().StringVarP(&opts.Search, "search", "s", "", "Match name, company or title")
	cmd.Flags().StringVar(&opts.Since, "since", "", `Only cards created after this moment ("yesterday", "3 days ago", 2025-01-31)`)
	return cmd
}

func newEditCommand(run runWrapper, c **Cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change card fields",
		Args:  cobra.ExactArgs(1),
	}
	for _, field := range editableFields {
		cmd.Flags().String(field.flag, "", field.usage)
	}
	cmd.RunE = run(func(cmd *cobra.Command, args []string) error {
		changes := make(map[string]string)
		for _, field := range editableFields {
			if cmd.Flags().Changed(field.flag) {
				value, err := cmd.Flags().GetString(field.flag)
				if err != nil {
					return err
				}
				changes[field.flag] = value
			}
		}
		return (*c).runEdit(cmd.Context(), args[0], changes)
	})
	return cmd
}

func newSyncCommand(run runWrapper, c **Cli) *cobra.Command {
	var unsyncedOnly bool

	push := &cobra.Command{
		Use:   "push",
		Short: "Upload local cards to the cloud",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, _ []string) error {
			return (*c).runSyncPush(cmd.Context(), unsyncedOnly)
		}),
	}
	push.Flags().BoolVar(&unsyncedOnly, "unsynced", false, "Upload only cards that are not synced yet")

	pull := &cobra.Command{
		Use:   "pull",
		Short: "Import cloud cards missing locally",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, _ []string) error {
			return (*c).runSyncPull(cmd.Context())
		}),
	}

	cmd := &cobra.Command{Use: "sync", Short: "Synchronize with the cloud collection"}
	cmd.AddCommand(push, pull)
	return cmd
}

func newAccountCommand(run runWrapper, c **Cli) *cobra.Command {
	var yes bool

	del := &cobra.Command{
		Use:   "delete",
		Short: "Delete the account and every card, locally and in the cloud",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, _ []string) error {
			return (*c).runAccountDelete(cmd.Context(), yes)
		}),
	}
	del.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	cmd := &cobra.Command{Use: "account", Short: "Manage the cloud account"}
	cmd.AddCommand(del)
	return cmd
}

// Execute выполняет команду и печатает ошибку в stderr
func Execute(ctx context.Context, root *cobra.Command, closeFn func() error) int {
	code := 0
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		code = 1
	}
	if err := closeFn(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		code = 1
	}
	return code
}
