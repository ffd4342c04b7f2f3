package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/plancatalog-backend/internal/auth"
	"github.com/heartmarshall/plancatalog-backend/pkg/ctxutil"
)

func newTokenCmd() *cobra.Command {
	var (
		userID string
		email  string
		role   string
		ttl    time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token for local development",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			id := uuid.New()
			if userID != "" {
				if id, err = uuid.Parse(userID); err != nil {
					return fmt.Errorf("invalid --user-id %q: %w", userID, err)
				}
			}
			if ttl <= 0 {
				ttl = cfg.Auth.AccessTokenTTL
			}

			token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, ttl).
				GenerateAccessToken(id, email, role)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user-id", "", "subject UUID (random when empty)")
	cmd.Flags().StringVar(&email, "email", "dev@localhost", "email claim")
	cmd.Flags().StringVar(&role, "role", ctxutil.RoleAdmin, "role claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (0 = auth.access_token_ttl)")
	return cmd
}
