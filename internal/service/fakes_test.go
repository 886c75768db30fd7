package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskboard/internal/model"
)

// In-memory repository fakes. The calls slice records repo method names
// so tests can assert ordering across repositories.

type fakeUserRepo struct {
	users []*model.User
	err   error
}

func (f *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	if f.err != nil {
		return f.err
	}
	u.ID = primitive.NewObjectID()
	f.users = append(f.users, u)
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

type fakeProjectRepo struct {
	projects []*model.Project
	calls    *[]string
	err      error
}

func (f *fakeProjectRepo) record(name string) {
	if f.calls != nil {
		*f.calls = append(*f.calls, name)
	}
}

func (f *fakeProjectRepo) Insert(_ context.Context, p *model.Project) error {
	if f.err != nil {
		return f.err
	}
	p.ID = primitive.NewObjectID()
	f.projects = append(f.projects, p)
	return nil
}

func (f *fakeProjectRepo) ListByUser(_ context.Context, userID primitive.ObjectID) ([]model.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Project
	for _, p := range f.projects {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProjectRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.projects {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProjectRepo) Update(_ context.Context, p *model.Project) error {
	if f.err != nil {
		return f.err
	}
	for i, existing := range f.projects {
		if existing.ID == p.ID {
			cp := *p
			f.projects[i] = &cp
			return nil
		}
	}
	return nil
}

func (f *fakeProjectRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	f.record("projects.Delete")
	if f.err != nil {
		return f.err
	}
	for i, p := range f.projects {
		if p.ID == id {
			f.projects = append(f.projects[:i], f.projects[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeTaskRepo struct {
	tasks []*model.Task
	calls *[]string
	err   error

	// canned List response plus a record of the received query
	listTasks []model.Task
	listTotal int64
	lastQuery model.TaskListQuery
}

func (f *fakeTaskRepo) record(name string) {
	if f.calls != nil {
		*f.calls = append(*f.calls, name)
	}
}

func (f *fakeTaskRepo) Insert(_ context.Context, t *model.Task) error {
	if f.err != nil {
		return f.err
	}
	t.ID = primitive.NewObjectID()
	f.tasks = append(f.tasks, t)
	return nil
}

func (f *fakeTaskRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, t := range f.tasks {
		if t.ID == id {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeTaskRepo) List(_ context.Context, _ primitive.ObjectID, q model.TaskListQuery) ([]model.Task, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	f.lastQuery = q
	return f.listTasks, f.listTotal, nil
}

func (f *fakeTaskRepo) ListByProject(_ context.Context, userID, projectID primitive.ObjectID) ([]model.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Task
	for _, t := range f.tasks {
		if t.UserID == userID && t.ProjectID == projectID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) Update(_ context.Context, t *model.Task) error {
	if f.err != nil {
		return f.err
	}
	for i, existing := range f.tasks {
		if existing.ID == t.ID {
			cp := *t
			f.tasks[i] = &cp
			return nil
		}
	}
	return nil
}

func (f *fakeTaskRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if f.err != nil {
		return f.err
	}
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeTaskRepo) DeleteByProject(_ context.Context, userID, projectID primitive.ObjectID) (int64, error) {
	f.record("tasks.DeleteByProject")
	if f.err != nil {
		return 0, f.err
	}
	var kept []*model.Task
	var deleted int64
	for _, t := range f.tasks {
		if t.UserID == userID && t.ProjectID == projectID {
			deleted++
			continue
		}
		kept = append(kept, t)
	}
	f.tasks = kept
	return deleted, nil
}
