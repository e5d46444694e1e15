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

func TestCreateElement(t *testing.T) {
	node := Div(
		ID("main"),
		Class("a", "", "b"),
		nil,
		"hello",
		Span(Text("x")),
		[]*VNode{Small(), nil},
		[]Attr{Data("k", "v"), {}},
		Attr{Key: "key", Value: "row-1"},
	)

	if node.Kind != KindElement || node.Tag != "div" {
		t.Fatalf("node = %v %q", node.Kind, node.Tag)
	}
	if node.Props["id"] != "main" {
		t.Errorf("id = %v", node.Props["id"])
	}
	if node.Props["class"] != "a b" {
		t.Errorf("class = %v", node.Props["class"])
	}
	if node.Props["data-k"] != "v" {
		t.Errorf("data-k = %v", node.Props["data-k"])
	}
	if node.Key != "row-1" {
		t.Errorf("Key = %q", node.Key)
	}
	if _, ok := node.Props["key"]; ok {
		t.Error("key must not be rendered as an attribute")
	}
	if len(node.Children) != 3 {
		t.Fatalf("children = %d, want 3", len(node.Children))
	}
	if node.Children[0].Kind != KindText || node.Children[0].Text != "hello" {
		t.Errorf("first child = %+v", node.Children[0])
	}
}

func TestClassesAccumulate(t *testing.T) {
	node := Input(Class("field"), Class("invalid"), AttrIf(false, Class("hidden")))
	if got := node.Props["class"]; got != "field invalid" {
		t.Errorf("class = %v", got)
	}

	node.AddClass("wide")
	if got := node.Props["class"]; got != "field invalid wide" {
		t.Errorf("class after AddClass = %v", got)
	}
}

func TestAttrIf(t *testing.T) {
	node := Input(AttrIf(true, Required()), AttrIf(false, Disabled()))
	if node.Props["required"] != true {
		t.Error("required should be set")
	}
	if _, ok := node.Props["disabled"]; ok {
		t.Error("disabled should not be set")
	}
}

func TestIsVoidElement(t *testing.T) {
	for _, tag := range []string{"input", "meta", "link", "br"} {
		if !IsVoidElement(tag) {
			t.Errorf("IsVoidElement(%q) = false", tag)
		}
	}
	for _, tag := range []string{"div", "textarea", "select"} {
		if IsVoidElement(tag) {
			t.Errorf("IsVoidElement(%q) = true", tag)
		}
	}
}

func TestFind(t *testing.T) {
	tree := Form(
		Fieldset(
			Div(Input(Name("a"))),
			Input(Name("b")),
		),
	)

	if got := tree.FindTag("input"); got == nil || got.Props["name"] != "a" {
		t.Errorf("FindTag(input) = %+v", got)
	}
	got := tree.Find(func(n *VNode) bool { return n.Props["name"] == "b" })
	if got == nil {
		t.Fatal("Find(name=b) = nil")
	}
	if tree.FindTag("select") != nil {
		t.Error("FindTag(select) should be nil")
	}

	var nilNode *VNode
	if nilNode.FindTag("input") != nil {
		t.Error("nil receiver should find nothing")
	}
}

func TestSetPropOnBareNode(t *testing.T) {
	node := &VNode{Kind: KindElement, Tag: "div"}
	node.SetProp("id", "x")
	if node.Props["id"] != "x" {
		t.Errorf("id = %v", node.Props["id"])
	}
}
