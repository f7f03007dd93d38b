package extract

import (
	"fmt"
	"sort"
	"strings"
)

// Engine opens PDF bytes with a concrete decoding library.
type Engine interface {
	Name() string
	Open(data []byte) (Document, error)
}

// Document is one opened PDF. Pages are numbered from 1.
type Document interface {
	NumPage() int
	Runs(page int) ([]Run, error)
}

const DefaultEngine = "ledongthuc"

var engines = map[string]func() Engine{
	"ledongthuc": func() Engine { return ledongthucEngine{} },
	"rsc":        func() Engine { return rscEngine{} },
}

// EngineNames lists the engines NewEngine accepts, sorted.
func EngineNames() []string {
	names := make([]string, 0, len(engines))
	for n := range engines {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// NewEngine returns the engine registered under name; "" selects DefaultEngine.
func NewEngine(name string) (Engine, error) {
	if name == "" {
		name = DefaultEngine
	}
	mk, ok := engines[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownEngine, name, strings.Join(EngineNames(), ", "))
	}
	return mk(), nil
}
