package admin

import (
	"context"
	"fmt"

	"catalog/admin/internal/client"
	"catalog/admin/internal/domain"
	"catalog/admin/internal/form"
	"catalog/admin/internal/notify"
	"catalog/admin/internal/view"

	"github.com/sirupsen/logrus"
)

const (
	CategoriesPath = "/categories"

	msgCategoryListFailed = "Erro ao carregar categorias"
	msgCategoryLoadFailed = "Erro ao carregar categoria"
	msgCategoryNotFound   = "Categoria não encontrada"
	msgCategoryCreateErr  = "Erro ao criar categoria. Por favor, tente novamente."
	msgCategoryUpdateErr  = "Erro ao atualizar categoria. Por favor, tente novamente."
	msgCategoryDeleteErr  = "Erro ao excluir categoria. Por favor, tente novamente."
	msgCategoryDeleted    = "Categoria excluída com sucesso!"
	// MsgCategoryInUse is shown when the API refuses to delete a referenced category.
	MsgCategoryInUse = "Não é possível excluir essa categoria pois existem produtos associados a ela."
)

type Categories struct {
	svc client.CategoryService
	log *logrus.Entry
}

func NewCategories(svc client.CategoryService, logger *logrus.Logger) *Categories {
	return &Categories{
		svc: svc,
		log: logger.WithField("actions", "categories"),
	}
}

func CategoryPath(id int64) string {
	return fmt.Sprintf("%s/%d", CategoriesPath, id)
}

func (a *Categories) List(ctx context.Context) (*view.State[[]domain.Category], Outcome) {
	st := view.NewState[[]domain.Category]()
	if err := st.Load(ctx, a.svc.GetAll); err != nil {
		a.log.WithError(err).Error("list failed")
		return st, fail(msgCategoryListFailed)
	}
	return st, Outcome{}
}

func (a *Categories) Detail(ctx context.Context, id int64) (*view.State[*domain.Category], Outcome) {
	st := view.NewState[*domain.Category]()
	err := st.Load(ctx, func(ctx context.Context) (*domain.Category, error) {
		return a.svc.GetByID(ctx, id)
	})
	if err != nil {
		return st, a.loadFailure(id, err)
	}
	return st, Outcome{}
}

func (a *Categories) loadFailure(id int64, err error) Outcome {
	if client.IsNotFound(err) {
		return fail(msgCategoryNotFound)
	}
	a.log.WithError(err).WithField("id", id).Error("load failed")
	return fail(msgCategoryLoadFailed)
}

// NewForm returns an empty creation form.
func (a *Categories) NewForm() *form.State[form.CategoryForm] {
	return form.NewState(form.NewCategoryForm(nil))
}

func (a *Categories) Create(ctx context.Context, values form.CategoryForm) (*form.State[form.CategoryForm], Outcome) {
	fs := a.NewForm()
	fs.Update(values.Normalize(), form.ValidateCategory)
	if !fs.Valid() {
		return fs, Outcome{}
	}

	created, err := a.svc.Create(ctx, fs.Values.Payload())
	if err != nil {
		a.log.WithError(err).Warn("create failed")
		return fs, saveError(err, msgCategoryCreateErr)
	}

	return fs, Outcome{
		Notices:  []notify.Notice{notify.Success(fmt.Sprintf("Categoria \"%s\" criada com sucesso!", created.Name))},
		Redirect: CategoriesPath,
	}
}

// Edit loads the category and a form primed with its values.
func (a *Categories) Edit(ctx context.Context, id int64) (*view.State[*domain.Category], *form.State[form.CategoryForm], Outcome) {
	st, out := a.Detail(ctx, id)
	if out.Failed() {
		return st, nil, out
	}
	return st, form.NewState(form.NewCategoryForm(st.Data())), Outcome{}
}

func (a *Categories) Update(ctx context.Context, id int64, values form.CategoryForm) (*view.State[*domain.Category], *form.State[form.CategoryForm], Outcome) {
	st, fs, out := a.Edit(ctx, id)
	if fs == nil {
		return st, nil, out
	}

	fs.Update(values.Normalize(), form.ValidateCategory)
	if !fs.Valid() {
		return st, fs, Outcome{}
	}
	if !fs.Dirty() {
		return st, fs, Outcome{Notices: []notify.Notice{notify.Info(msgNothingChanged)}}
	}

	updated, err := a.svc.Update(ctx, id, fs.Values.Payload())
	if err != nil {
		a.log.WithError(err).WithField("id", id).Warn("update failed")
		return st, fs, saveError(err, msgCategoryUpdateErr)
	}

	return st, fs, Outcome{
		Notices:  []notify.Notice{notify.Success(fmt.Sprintf("Categoria \"%s\" atualizada com sucesso!", updated.Name))},
		Redirect: CategoriesPath,
	}
}

// Delete asks c to confirm, then deletes the category. A category still
// referenced by products stays and the user is told why.
func (a *Categories) Delete(ctx context.Context, id int64, c Confirmer) Outcome {
	category, err := a.svc.GetByID(ctx, id)
	if err != nil {
		out := a.loadFailure(id, err)
		out.Redirect = CategoriesPath
		return out
	}

	if !c.Confirm(DeleteCategoryPrompt(category.Name)) {
		return Outcome{Canceled: true}
	}

	out := Outcome{Redirect: CategoriesPath}
	switch err := a.svc.Delete(ctx, id); {
	case err == nil:
		out.Notices = []notify.Notice{notify.Success(msgCategoryDeleted)}
	case client.IsConflict(err):
		a.log.WithField("id", id).Info("delete refused, category in use")
		out.Notices = []notify.Notice{notify.Error(MsgCategoryInUse)}
	default:
		a.log.WithError(err).WithField("id", id).Error("delete failed")
		out.Notices = []notify.Notice{notify.Error(msgCategoryDeleteErr)}
	}
	return out
}
