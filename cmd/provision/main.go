package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"healthcall/config"
	"healthcall/logger"
	"healthcall/provision"
	"healthcall/service"
	"healthcall/tools"
	"healthcall/types"
)

var (
	envFile     string
	serverURL   string
	assistantID string
	areaCode    string
	toolIDs     []string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "provision",
		Short:         "Create the Vapi tools, assistant and phone number used by the health check-in webhook",
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	toolsCmd := &cobra.Command{
		Use:   "tools",
		Short: "Create one function tool per registered handler",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, p, err := setup()
			if err != nil {
				return err
			}
			ids, err := p.CreateTools(cmd.Context(), resolveServerURL(cfg), definitions())
			for _, def := range definitions() {
				if id, ok := ids[def.Name]; ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", def.Name, id)
				}
			}
			return err
		},
	}
	toolsCmd.Flags().StringVar(&serverURL, "server-url", "", "public base URL of the webhook (defaults to SERVER_URL)")

	assistantCmd := &cobra.Command{
		Use:   "assistant",
		Short: "Create the check-in assistant, or update it when an id is known",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, p, err := setup()
			if err != nil {
				return err
			}
			id, err := p.UpsertAssistant(cmd.Context(), resolveAssistantID(cfg), toolIDs)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "VAPI_ASSISTANT_ID=%s\n", id)
			return nil
		},
	}
	assistantCmd.Flags().StringVar(&assistantID, "assistant-id", "", "assistant to update (defaults to VAPI_ASSISTANT_ID)")
	assistantCmd.Flags().StringSliceVar(&toolIDs, "tool-id", nil, "tool ids to attach; repeatable")

	phoneCmd := &cobra.Command{
		Use:   "phone-number",
		Short: "Create a platform phone number bound to the assistant",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, p, err := setup()
			if err != nil {
				return err
			}
			id := resolveAssistantID(cfg)
			if id == "" {
				return fmt.Errorf("--assistant-id or VAPI_ASSISTANT_ID is required")
			}
			number, err := p.CreatePhoneNumber(cmd.Context(), id, areaCode)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "VAPI_PHONE_NUMBER_ID=%s\n# number: %s\n", number.ID, number.Number)
			return nil
		},
	}
	phoneCmd.Flags().StringVar(&assistantID, "assistant-id", "", "assistant answering the number (defaults to VAPI_ASSISTANT_ID)")
	phoneCmd.Flags().StringVar(&areaCode, "area-code", "", "desired area code")

	allCmd := &cobra.Command{
		Use:   "all",
		Short: "Create tools, then the assistant, then the phone number",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, p, err := setup()
			if err != nil {
				return err
			}
			result, err := p.All(cmd.Context(), resolveServerURL(cfg), resolveAssistantID(cfg), areaCode, definitions())
			for _, line := range result.EnvLines() {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return err
		},
	}
	allCmd.Flags().StringVar(&serverURL, "server-url", "", "public base URL of the webhook (defaults to SERVER_URL)")
	allCmd.Flags().StringVar(&assistantID, "assistant-id", "", "assistant to update instead of creating one")
	allCmd.Flags().StringVar(&areaCode, "area-code", "", "desired area code of the phone number")

	root.AddCommand(toolsCmd, assistantCmd, phoneCmd, allCmd)
	return root
}

func setup() (*config.Config, *provision.Provisioner, error) {
	if err := godotenv.Load(envFile); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %s not loaded: %v\n", envFile, err)
	}

	cfg := config.Load()
	logger.Init(cfg.Logger.Level, cfg.Logger.Verbose)
	if err := cfg.ValidateProvision(); err != nil {
		return nil, nil, err
	}
	return cfg, provision.New(service.NewVapiClient(cfg.Vapi)), nil
}

func definitions() []types.FunctionDef {
	return tools.NewDefaultRegistry(nil, nil, "").Definitions()
}

func resolveServerURL(cfg *config.Config) string {
	if serverURL != "" {
		return strings.TrimRight(serverURL, "/")
	}
	return cfg.Server.PublicURL
}

func resolveAssistantID(cfg *config.Config) string {
	if assistantID != "" {
		return assistantID
	}
	return cfg.Vapi.AssistantID
}
