package phone

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
)

// Contacts file structure
type ContactsFile struct {
	Contacts map[string]string `toml:"contacts"`
}

// Directory maps formatted numbers to display names. It is read-only after
// construction and safe to share.
type Directory struct {
	contacts map[string]string
}

// NewDirectory creates a directory from a copy of contacts
func NewDirectory(contacts map[string]string) *Directory {
	d := &Directory{contacts: make(map[string]string, len(contacts))}
	for number, name := range contacts {
		d.contacts[number] = name
	}
	return d
}

// DefaultDirectory returns the built-in contacts
func DefaultDirectory() *Directory {
	return NewDirectory(map[string]string{
		"603-555-1234": "Florent",
		"408-555-4321": "Marin",
		"217-555-1212": "Scott",
		"212-555-3434": "Shai",
	})
}

// LoadDirectory reads a contacts TOML file with a [contacts] table
func LoadDirectory(path string) (*Directory, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("contacts file not found: %s", path)
	}

	var file ContactsFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("error parsing contacts file: %v", err)
	}

	return NewDirectory(file.Contacts), nil
}

// WriteDirectory writes d as a contacts TOML file, creating the directory
// if needed
func WriteDirectory(path string, d *Directory) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating contacts directory: %v", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating contacts file: %v", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(ContactsFile{Contacts: d.contacts}); err != nil {
		return fmt.Errorf("error encoding contacts: %v", err)
	}
	return nil
}

// Lookup returns the name registered for number
func (d *Directory) Lookup(number string) (string, bool) {
	name, ok := d.contacts[number]
	return name, ok
}

// Dial returns a dialing message for number. Unknown numbers produce a
// "not found" message rather than an error.
func (d *Directory) Dial(number string) string {
	name, ok := d.Lookup(number)
	if !ok {
		return fmt.Sprintf("Contact not found for %s", number)
	}
	return fmt.Sprintf("Dialing %s (%s)...", name, number)
}

// Len returns the number of contacts
func (d *Directory) Len() int {
	return len(d.contacts)
}

// Numbers returns the registered numbers in sorted order
func (d *Directory) Numbers() []string {
	numbers := make([]string, 0, len(d.contacts))
	for number := range d.contacts {
		numbers = append(numbers, number)
	}
	slices.Sort(numbers)
	return numbers
}
