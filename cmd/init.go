package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/dealtone/internal/config"
	"github.com/arcanaland/dealtone/internal/phone"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the config and contacts files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		// The config file was created by setup if it was missing
		fmt.Fprintln(out, "Config file initialized at:", configFile())

		contactsPath := config.GetContactsFilePath()
		if _, err := os.Stat(contactsPath); err == nil {
			fmt.Fprintln(out, "Contacts file already exists at:", contactsPath)
			return nil
		}

		if err := phone.WriteDirectory(contactsPath, phone.DefaultDirectory()); err != nil {
			return fmt.Errorf("error initializing contacts: %w", err)
		}

		fmt.Fprintln(out, "Contacts file initialized at:", contactsPath)
		fmt.Fprintln(out, "You can now add contacts to the [contacts] table of this file.")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(initCmd)
}
