package vdom

import "testing"

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindComponent, "Component"},
		{KindRaw, "Raw"},
		{VKind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("VKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAttrIsEmpty(t *testing.T) {
	if !(Attr{}).IsEmpty() {
		t.Error("zero Attr should be empty")
	}
	if (Attr{Key: "id", Value: "x"}).IsEmpty() {
		t.Error("Attr with key should not be empty")
	}
}

func TestFuncComponent(t *testing.T) {
	calls := 0
	comp := Func(func() *VNode {
		calls++
		return Div(Text("from func"))
	})

	node := comp.Render()
	if node.Tag != "div" {
		t.Errorf("Tag = %v, want div", node.Tag)
	}
	if calls != 1 {
		t.Errorf("render called %d times, want 1", calls)
	}
}

func TestExpand(t *testing.T) {
	inner := Li(Text("inner"))
	tests := []struct {
		name string
		node *VNode
		want *VNode
	}{
		{"nil", nil, nil},
		{"element returns itself", inner, inner},
		{"component without comp", &VNode{Kind: KindComponent}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Expand(); got != tt.want {
				t.Errorf("Expand() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("component renders", func(t *testing.T) {
		node := &VNode{Kind: KindComponent, Comp: Func(func() *VNode { return inner })}
		if got := node.Expand(); got != inner {
			t.Errorf("Expand() = %v, want rendered node", got)
		}
	})
}
