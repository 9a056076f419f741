package kvs

import (
	"fmt"
	"strings"
)

// Identity names the embedding application for storage-path construction.
// The durable backends store data under <root>/<Namespace>/<Application>
// (or Software\<Namespace>\<Application> in the registry), so both parts
// must be usable as path components. It is supplied at store construction
// time by the embedding application.
type Identity struct {
	Namespace   string // vendor or project namespace, first path level
	Application string // application name, second path level
}

// Validate checks that both parts are non-empty and representable as single
// path components.
func (id Identity) Validate() error {
	for name, part := range map[string]string{
		"namespace":   id.Namespace,
		"application": id.Application,
	} {
		switch {
		case part == "":
			return fmt.Errorf("identity %s must not be empty", name)
		case part == "." || part == "..":
			return fmt.Errorf("identity %s must not be a relative path component", name)
		case strings.ContainsAny(part, "/\\\x00"):
			return fmt.Errorf("identity %s contains a path separator or NUL", name)
		}
	}
	return nil
}

func (id Identity) String() string {
	return id.Namespace + "/" + id.Application
}
