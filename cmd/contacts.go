package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/dealtone/internal/config"
	"github.com/arcanaland/dealtone/internal/validator"
)

// contactsCmd represents the contacts command group
var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Manage the contacts used by dial",
	Long:  `Commands for listing and validating the contacts directory used by dial.`,
}

// contactsListCmd represents the contacts ls command
var contactsListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List contacts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, source, err := loadDirectory()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Contacts (%s):\n", source)
		if dir.Len() == 0 {
			fmt.Fprintln(out, "No contacts defined.")
			return nil
		}

		width := terminalWidth()
		for _, number := range dir.Numbers() {
			name, _ := dir.Lookup(number)
			prefix := fmt.Sprintf("  %s  ", number)
			lines := wrapText(name, width-len(prefix))
			fmt.Fprintf(out, "%s%s\n", prefix, lines[0])
			for _, line := range lines[1:] {
				fmt.Fprintf(out, "%s%s\n", strings.Repeat(" ", len(prefix)), line)
			}
		}
		return nil
	},
}

// contactsValidateCmd represents the contacts validate command
var contactsValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a contacts file",
	Long: `Validate checks that a contacts file has a [contacts] table, that every number
is formatted as NNN-NNN-NNNN and that every name is set. Without a path the
configured contacts file is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.ResolveContactsFile()
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			path = config.GetContactsFilePath()
		}

		// Create validator and run validation
		v := validator.NewValidator(path)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %v", err)
		}

		// Display validation results
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if results.Valid() {
			fmt.Fprintf(out, "✅ Contacts file '%s' is valid.\n", path)
		} else {
			fmt.Fprintf(out, "❌ Contacts file '%s' has %d validation errors:\n", path, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		if !results.Valid() {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(contactsCmd)
	contactsCmd.AddCommand(contactsListCmd)
	contactsCmd.AddCommand(contactsValidateCmd)
}
