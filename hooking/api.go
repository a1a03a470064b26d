package hooking

// NamedHookable is a Hookable that can invoke its own hooks.
type NamedHookable interface {
	Hookable
	InvokeHook(HookCtx)
}

func emit(domain NamedHookable, pos *HookPos, item interface{}) {
	domain.InvokeHook(HookCtx{
		Domain: domain,
		Pos:    pos,
		Item:   item,
	})
}

// StartTask reports that domain started a task. Nothing is reported, and no
// argument is checked, while the domain has no hooks attached.
func StartTask(
	id string,
	parentID string,
	domain NamedHookable,
	kind string,
	what string,
) {
	if domain.NumHooks() == 0 {
		return
	}

	start := TaskStart{
		ID:       id,
		ParentID: parentID,
		Kind:     kind,
		What:     what,
		Domain:   domain.Name(),
	}
	taskStartMustBeValid(start)

	emit(domain, HookPosTaskStart, start)
}

func taskStartMustBeValid(t TaskStart) {
	required := []struct {
		field, value string
	}{
		{"id", t.ID},
		{"kind", t.Kind},
		{"what", t.What},
		{"domain", t.Domain},
	}

	for _, r := range required {
		if r.value == "" {
			panic("task " + r.field + " must not be empty")
		}
	}
}

// AddTaskStep reports a step taken by a running task.
func AddTaskStep(
	taskID string,
	stepID string,
	domain NamedHookable,
	kind string,
	what string,
	detail string,
) {
	if domain.NumHooks() == 0 {
		return
	}

	emit(domain, HookPosTaskStep, TaskStep{
		TaskID: taskID,
		StepID: stepID,
		Kind:   kind,
		What:   what,
		Detail: detail,
	})
}

// TagTask attaches a tag to a running task.
func TagTask(taskID string, domain NamedHookable, what, detail string) {
	if domain.NumHooks() == 0 {
		return
	}

	emit(domain, HookPosTaskTag, TaskTag{
		TaskID: taskID,
		What:   what,
		Detail: detail,
	})
}

// EndTask reports that a task finished.
func EndTask(id string, domain NamedHookable) {
	if domain.NumHooks() == 0 {
		return
	}

	emit(domain, HookPosTaskEnd, TaskEnd{ID: id})
}
