package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/rule-mcp/infrastructure/integrator/rule/ruleclient"
	"github.com/vfg2006/rule-mcp/internal/version"
)

var errMissingAPIKey = errors.New("API key is required. Use --api-key option.")

// Options configura a CLI; APIKey é usada quando --api-key não é informado
type Options struct {
	APIKey        string
	ClientOptions []ruleclient.Option
	Stdout        io.Writer
}

type app struct {
	opts   Options
	apiKey string
}

// Run executa a CLI e devolve o código de saída
func Run(ctx context.Context, args []string, opts Options) int {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	root := NewRootCommand(opts)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(opts.Stdout, "Error: %s\n", err.Error())
		return 1
	}

	return 0
}

func NewRootCommand(opts Options) *cobra.Command {
	a := &app{opts: opts}

	root := &cobra.Command{
		Use:           "rule",
		Short:         "Cliente de linha de comando para a API do Rule.io",
		Version:       version.Get().Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.apiKey == "" {
				a.apiKey = opts.APIKey
			}
			if a.apiKey == "" {
				return errMissingAPIKey
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("No command specified. Use --help for usage information.")
		},
	}

	root.SetOut(opts.Stdout)
	root.SetErr(opts.Stdout)
	root.SetVersionTemplate("rule version {{.Version}}\n")
	root.PersistentFlags().StringVar(&a.apiKey, "api-key", "", "Rule.io API key")

	root.AddCommand(
		a.subscribersCommand(),
		a.tagsCommand(),
		a.campaignsCommand(),
	)

	return root
}

func (a *app) client() (ruleclient.Client, error) {
	return ruleclient.NewClient(a.apiKey, a.opts.ClientOptions...)
}

func (a *app) subscribersCommand() *cobra.Command {
	var (
		list   bool
		get    string
		create bool
		email  string
	)

	cmd := &cobra.Command{
		Use:   "subscribers",
		Short: "Gerencia assinantes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			switch {
			case list:
				return listSubscribers(ctx, client, out)
			case get != "":
				return showSubscriber(ctx, client, out, get)
			case create && email != "":
				subscriber, err := client.CreateSubscriber(ctx, email, nil, nil)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Created subscriber: %s (%s)\n", subscriber.ID, subscriber.Email)
				return nil
			default:
				return errors.New("Invalid subscriber command. Use --list, --get, or --create.")
			}
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "List subscribers")
	cmd.Flags().StringVar(&get, "get", "", "Get subscriber by ID")
	cmd.Flags().BoolVar(&create, "create", false, "Create a new subscriber")
	cmd.Flags().StringVar(&email, "email", "", "Email for subscriber operations")

	return cmd
}

func listSubscribers(ctx context.Context, client ruleclient.Client, out io.Writer) error {
	subscribers, err := client.GetSubscribers(ctx, ruleclient.DefaultPage, ruleclient.DefaultLimit, nil)
	if err != nil {
		return err
	}

	for _, subscriber := range subscribers {
		fmt.Fprintf(out, "%s: %s\n", subscriber.ID, subscriber.Email)
	}
	return nil
}

func showSubscriber(ctx context.Context, client ruleclient.Client, out io.Writer, id string) error {
	subscriber, err := client.GetSubscriber(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "ID: %s\n", subscriber.ID)
	fmt.Fprintf(out, "Email: %s\n", subscriber.Email)
	fmt.Fprintf(out, "Created: %s\n", subscriber.Created.Format(time.RFC3339))
	return nil
}

func (a *app) tagsCommand() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Gerencia tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !list {
				return errors.New("Invalid tag command. Use --list.")
			}

			client, err := a.client()
			if err != nil {
				return err
			}

			tags, err := client.GetTags(cmd.Context(), ruleclient.DefaultPage, ruleclient.DefaultLimit)
			if err != nil {
				return err
			}

			for _, tag := range tags {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", tag.ID, tag.Name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "List all tags")

	return cmd
}

func (a *app) campaignsCommand() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "campaigns",
		Short: "Gerencia campanhas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !list {
				return errors.New("Invalid campaign command. Use --list.")
			}

			client, err := a.client()
			if err != nil {
				return err
			}

			campaigns, err := client.GetCampaigns(cmd.Context(), ruleclient.DefaultPage, ruleclient.DefaultLimit)
			if err != nil {
				return err
			}

			for _, campaign := range campaigns {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", campaign.ID, campaign.Name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "List all campaigns")

	return cmd
}
