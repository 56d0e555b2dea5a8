package todo

import (
	"github.com/idilsaglam/todolist/internal/dom"
)

// View returns the element for this item, building it on first call:
//
//	<li data-todo-status="PENDING" data-todo-id="...">text
//	  <div class="controls">
//	    <button class="button-status">Mark as Done</button>
//	    <button class="button-cancel">Cancel</button>
//	    <button class="button-edit">Edit</button>
//	  </div>
//	</li>
//
// Later calls return the same element.
func (it *Item) View() *dom.Element {
	if it.view != nil {
		return it.view
	}

	el := it.doc.CreateElement(it.tag)
	el.SetData("todoStatus", string(it.state.Status))
	el.SetData("todoId", it.state.ID)
	el.SetText(it.state.Text)
	el.AppendChild(it.buildControls())

	it.view = el
	if !it.state.Visible {
		it.applyVisibility()
	}
	return el
}

func (it *Item) buildControls() *dom.Element {
	wrapper := it.doc.CreateElement("div")
	wrapper.AddClass("controls")

	done := it.button(doneLabel(it.state.Status), "button-status")
	done.OnClick(func(*dom.Event) { it.ToggleDone() })

	cancel := it.button(LabelCancel, "button-cancel")
	cancel.OnClick(func(*dom.Event) { it.Cancel() })

	edit := it.button(LabelEdit, "button-edit")
	edit.OnClick(func(*dom.Event) { it.BeginEdit() })

	wrapper.AppendChild(done)
	wrapper.AppendChild(cancel)
	wrapper.AppendChild(edit)

	it.doneBtn = done
	it.editBtn = edit
	return wrapper
}

func (it *Item) button(label, class string) *dom.Element {
	b := it.doc.CreateElement("button")
	b.SetAttr("type", "button")
	b.AddClass(class)
	b.SetText(label)
	return b
}

// BeginEdit opens the inline edit form and hides the edit control. It does
// nothing while a form is already open.
func (it *Item) BeginEdit() {
	view := it.View()
	if it.editForm != nil {
		return
	}
	it.editForm = it.buildEditForm()
	view.AppendChild(it.editForm)
	it.editBtn.SetStyle("display", "none")
}

//	<form class="todo-edit-form">
//	  <input type="text" required name="item" value="text">
//	  <button type="submit">Save</button>
//	</form>
func (it *Item) buildEditForm() *dom.Element {
	form := it.doc.CreateElement("form")
	form.AddClass("todo-edit-form")
	form.OnSubmit(it.onEditSubmit)

	input := it.doc.CreateElement("input")
	input.SetAttr("type", "text")
	input.SetAttr("required", "")
	input.SetAttr("name", "item")
	input.SetAttr("value", it.state.Text)

	save := it.doc.CreateElement("button")
	save.SetAttr("type", "submit")
	save.SetText(LabelSave)

	form.AppendChild(input)
	form.AppendChild(save)
	return form
}

func (it *Item) onEditSubmit(ev *dom.Event) {
	ev.PreventDefault()
	ev.StopPropagation()

	form := ev.CurrentTarget
	if input := form.FormElement("item"); input != nil {
		it.Rename(input.Value())
	}
	form.Remove()
	it.editForm = nil
	it.editBtn.SetStyle("display", "initial")
}
