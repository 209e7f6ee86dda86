package validator

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/dealtone/internal/phone"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid returns true when no errors were found
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	ContactsPath string
	Results      ValidationResults

	file phone.ContactsFile
}

func NewValidator(contactsPath string) *Validator {
	return &Validator{
		ContactsPath: contactsPath,
		Results:      ValidationResults{},
	}
}

// Validate checks a contacts file. It only returns an error when the file
// can't be read or parsed; problems with its content are reported in the
// results.
func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.validateContactsToml(); err != nil {
		return v.Results, err
	}

	v.validateNumbers()
	v.validateNames()

	return v.Results, nil
}

func (v *Validator) validateContactsToml() error {
	if _, err := os.Stat(v.ContactsPath); os.IsNotExist(err) {
		return fmt.Errorf("contacts file not found: %s", v.ContactsPath)
	}

	meta, err := toml.DecodeFile(v.ContactsPath, &v.file)
	if err != nil {
		return fmt.Errorf("error parsing contacts file: %v", err)
	}

	if !meta.IsDefined("contacts") {
		v.Results.Errors = append(v.Results.Errors, "[contacts] table is required")
		return nil
	}

	for _, key := range meta.Undecoded() {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("unknown key: %s", key.String()))
	}

	if len(v.file.Contacts) == 0 {
		v.Results.Warnings = append(v.Results.Warnings, "no contacts defined")
	}
	return nil
}

// validateNumbers checks that every number is dialable
func (v *Validator) validateNumbers() {
	for _, number := range sortedKeys(v.file.Contacts) {
		// The pipeline only ever dials what phone.Format produces
		if _, err := phone.Parse(number); err != nil {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("invalid number %q: expected NNN-NNN-NNNN", number))
		}
	}
}

// validateNames checks contact names
func (v *Validator) validateNames() {
	owners := make(map[string][]string)
	for _, number := range sortedKeys(v.file.Contacts) {
		name := v.file.Contacts[number]

		if strings.TrimSpace(name) == "" {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("contact %s has an empty name", number))
			continue
		}

		if strings.TrimSpace(name) != name {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("contact %s name %q has surrounding whitespace", number, name))
		}

		owners[name] = append(owners[name], number)
	}

	for _, name := range sortedKeys(owners) {
		if numbers := owners[name]; len(numbers) > 1 {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("name %q is used by %d numbers: %s", name, len(numbers), strings.Join(numbers, ", ")))
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
