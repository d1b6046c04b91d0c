package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/studyhall/internal/auth"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login [token]",
	Short: "Save your API token",
	Long:  "Save the API token from your account page. Pass it as an argument or paste it when prompted.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var token string
		if len(args) == 1 {
			token = args[0]
		} else {
			fmt.Print("Paste your API token: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return fmt.Errorf("read token: %w", err)
			}
			token = strings.TrimSpace(line)
		}
		if token == "" {
			return fmt.Errorf("no token provided")
		}

		if err := auth.SaveToken(token); err != nil {
			return err
		}

		if id, err := auth.IdentityFromToken(token); err == nil && id.DisplayName() != "" {
			fmt.Println("Signed in as", id.DisplayName())
		} else {
			fmt.Println("Token saved.")
		}
		return nil
	},
}
