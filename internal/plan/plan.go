// Package plan models filesystem mutations as explicit actions that are
// reviewed before anything touches disk. A Plan is built by the decision
// layer, optionally shown to the user, and then applied by an Executor
// in one strictly serialized pass.
package plan

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind is the type of mutation an action performs.
type Kind int

const (
	// Rename moves a directory or file to a new path.
	Rename Kind = iota
	// Delete removes a directory tree or file.
	Delete
)

func (k Kind) String() string {
	switch k {
	case Rename:
		return "rename"
	case Delete:
		return "delete"
	default:
		return "unknown"
	}
}

// Action is one planned mutation. ID is stable for the lifetime of the
// plan so results can be correlated back to actions.
type Action struct {
	ID     string
	Kind   Kind
	Source string
	// Target is the destination path for renames; empty for deletes.
	Target string
	// Detail is a short human-readable justification for display.
	Detail string
}

// Plan is an ordered list of actions applied first to last.
type Plan struct {
	Actions []Action
}

// AddRename appends a rename action and returns its ID.
func (p *Plan) AddRename(source, target, detail string) string {
	return p.add(Action{Kind: Rename, Source: source, Target: target, Detail: detail})
}

// AddDelete appends a delete action and returns its ID.
func (p *Plan) AddDelete(source, detail string) string {
	return p.add(Action{Kind: Delete, Source: source, Detail: detail})
}

func (p *Plan) add(action Action) string {
	action.ID = uuid.NewString()
	p.Actions = append(p.Actions, action)
	return action.ID
}

// Empty reports whether the plan contains no actions.
func (p *Plan) Empty() bool {
	return len(p.Actions) == 0
}

// Describe renders one action for listings and prompts.
func (a Action) Describe() string {
	switch a.Kind {
	case Rename:
		return fmt.Sprintf("rename %s -> %s", a.Source, a.Target)
	case Delete:
		return fmt.Sprintf("delete %s", a.Source)
	default:
		return a.Source
	}
}
