// Package admin holds the page actions of the catalog admin. Actions talk to
// the catalog services and return what happened as data: page state plus an
// Outcome carrying notices and where to go next. They never render.
package admin

import (
	"fmt"

	"catalog/admin/internal/client"
	"catalog/admin/internal/notify"
)

// Outcome is the user-visible result of an action.
type Outcome struct {
	Notices []notify.Notice
	// Redirect is the path to continue at, empty to stay on the page.
	Redirect string
	// Canceled is set when the user declined a confirmation.
	Canceled bool
}

func (o Outcome) Failed() bool {
	for _, n := range o.Notices {
		if n.Level == notify.LevelError {
			return true
		}
	}
	return false
}

func fail(msg string) Outcome {
	return Outcome{Notices: []notify.Notice{notify.Error(msg)}}
}

// Confirmer asks the user a yes/no question before a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

func DeleteCategoryPrompt(name string) string {
	return fmt.Sprintf("Tem certeza que deseja excluir a categoria \"%s\"?\n\nEsta ação não pode ser desfeita.", name)
}

func DeleteProductPrompt(name string) string {
	return fmt.Sprintf("Tem certeza que deseja excluir o produto \"%s\"?\n\nEsta ação não pode ser desfeita.", name)
}

// saveError prefers the API's own explanation over the generic text.
func saveError(err error, generic string) Outcome {
	if msg := client.ServerMessage(err); msg != "" {
		return fail(msg)
	}
	return fail(generic)
}

const msgNothingChanged = "Nenhuma alteração para salvar."
