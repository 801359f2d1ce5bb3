package script

import (
	"github.com/dop251/goja"

	"editorpanel/pkg/layout"
	"editorpanel/pkg/style"
	"editorpanel/pkg/text"
)

// registerScene sets up the `panel` object and the `size` function.
func registerScene(vm *goja.Runtime, scene *Scene, m *text.Measurer) {
	vm.Set("size", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 2 {
			panic(vm.NewTypeError("Failed to execute 'size': 2 arguments required"))
		}
		w, h := call.Arguments[0].ToFloat(), call.Arguments[1].ToFloat()
		if w <= 0 || h <= 0 {
			panic(vm.NewTypeError("Failed to execute 'size': width and height must be positive"))
		}
		scene.Width, scene.Height = w, h
		return goja.Undefined()
	})

	panelObj := vm.NewObject()
	panelObj.Set("label", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			panic(vm.NewTypeError("Failed to execute 'label': 1 argument required"))
		}
		l := text.NewLabel(call.Arguments[0].String(), m)
		applyStyle(vm, "label", call.Argument(1), &l.Margins, &l.HAlign, &l.VAlign)
		return add(vm, scene, l)
	})
	panelObj.Set("editor", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 2 {
			panic(vm.NewTypeError("Failed to execute 'editor': 2 arguments required"))
		}
		b := layout.NewBox("", call.Arguments[0].ToFloat(), call.Arguments[1].ToFloat())
		applyStyle(vm, "editor", call.Argument(2), &b.Margins, &b.HAlign, &b.VAlign)
		return add(vm, scene, b)
	})
	panelObj.Set("box", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 3 {
			panic(vm.NewTypeError("Failed to execute 'box': 3 arguments required"))
		}
		b := layout.NewBox(call.Arguments[0].String(), call.Arguments[1].ToFloat(), call.Arguments[2].ToFloat())
		applyStyle(vm, "box", call.Argument(3), &b.Margins, &b.HAlign, &b.VAlign)
		return add(vm, scene, b)
	})
	panelObj.Set("count", func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(scene.Panel.Len())
	})
	panelObj.Set("rows", func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(len(scene.Panel.Rows()))
	})
	vm.Set("panel", panelObj)
}

// add appends e and returns its index, whose parity decides its role.
func add(vm *goja.Runtime, scene *Scene, e layout.Element) goja.Value {
	scene.Panel.Add(e)
	return vm.ToValue(scene.Panel.Len() - 1)
}

// applyStyle overrides only the properties the style string sets.
func applyStyle(vm *goja.Runtime, fn string, arg goja.Value, margin *layout.Thickness,
	h *layout.HorizontalAlignment, v *layout.VerticalAlignment) {
	if goja.IsUndefined(arg) || goja.IsNull(arg) {
		return
	}
	st, err := style.Parse(arg.String())
	if err != nil {
		panic(vm.NewTypeError("Failed to execute '%s': %v", fn, err))
	}
	overrideSide(st, "margin-left", &margin.Left)
	overrideSide(st, "margin-top", &margin.Top)
	overrideSide(st, "margin-right", &margin.Right)
	overrideSide(st, "margin-bottom", &margin.Bottom)
	if _, ok := st.Get("horizontal-alignment"); ok {
		*h, _ = st.GetHorizontalAlignment()
	}
	if _, ok := st.Get("vertical-alignment"); ok {
		*v, _ = st.GetVerticalAlignment()
	}
}

func overrideSide(st *style.Style, property string, side *float64) {
	if v, ok := st.GetLength(property); ok {
		*side = v
	}
}
