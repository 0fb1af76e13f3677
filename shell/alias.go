package shell

import "fmt"

// AliasTable maps alias names to command strings, remembering the order in
// which names were first registered.
//
// Aliases are recorded and listed only. Dispatch never expands them.
type AliasTable struct {
	names   []string
	targets map[string]string
}

func NewAliasTable() *AliasTable {
	return &AliasTable{targets: make(map[string]string)}
}

// Set registers or replaces an alias. Replacing keeps the original position.
func (a *AliasTable) Set(name, command string) {
	if _, ok := a.targets[name]; !ok {
		a.names = append(a.names, name)
	}
	a.targets[name] = command
}

func (a *AliasTable) Get(name string) (string, bool) {
	command, ok := a.targets[name]
	return command, ok
}

// List returns "name: command" lines in registration order.
func (a *AliasTable) List() []string {
	lines := make([]string, 0, len(a.names))
	for _, name := range a.names {
		lines = append(lines, fmt.Sprintf("%s: %s", name, a.targets[name]))
	}
	return lines
}

func (a *AliasTable) Len() int {
	return len(a.names)
}
