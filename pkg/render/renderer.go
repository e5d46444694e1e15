package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/vango-dev/autoform/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables indented output. Inline elements stay on one line.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer renders VNode trees to HTML. A Renderer holds no per-render
// state and is safe for concurrent use.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// Config returns the effective configuration.
func (r *Renderer) Config() RendererConfig {
	return r.config
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0)
}

func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth)
	case vdom.KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	case vdom.KindFragment:
		for _, child := range node.Children {
			if err := r.renderNode(w, child, depth); err != nil {
				return err
			}
		}
		return nil
	case vdom.KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int) error {
	tag := node.Tag
	if tag == "" {
		return fmt.Errorf("element without tag at depth %d", depth)
	}

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if vdom.IsVoidElement(tag) {
		r.newline(w)
		return nil
	}

	blockChildren := len(node.Children) > 0 && !isInlineElement(tag) && !hasOnlyText(node)
	if r.config.Pretty && blockChildren {
		r.newline(w)
	}

	childDepth := depth + 1
	if !blockChildren {
		// Inline content is written without indentation.
		childDepth = 0
	}
	for _, child := range node.Children {
		if err := r.renderInline(w, child, childDepth, blockChildren); err != nil {
			return err
		}
	}

	if r.config.Pretty && blockChildren {
		r.writeIndent(w, depth)
	}
	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	r.newline(w)
	return nil
}

// renderInline renders a child. Inside inline content, pretty printing is
// suspended so no whitespace leaks into text.
func (r *Renderer) renderInline(w io.Writer, child *vdom.VNode, depth int, block bool) error {
	if block {
		if child != nil && child.Kind == vdom.KindText && r.config.Pretty {
			r.writeIndent(w, depth)
			if err := r.renderNode(w, child, depth); err != nil {
				return err
			}
			r.newline(w)
			return nil
		}
		return r.renderNode(w, child, depth)
	}
	if !r.config.Pretty {
		return r.renderNode(w, child, depth)
	}
	flat := &Renderer{config: RendererConfig{Indent: r.config.Indent}}
	return flat.renderNode(w, child, 0)
}

func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	if len(node.Props) == 0 {
		return nil
	}

	// Sort keys for deterministic output
	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := node.Props[key]

		// Internal props are never rendered.
		if strings.HasPrefix(key, "_") || key == "key" {
			continue
		}

		if isBooleanAttr(key) {
			if b, ok := value.(bool); ok {
				if b {
					if _, err := fmt.Fprintf(w, " %s", key); err != nil {
						return err
					}
				}
				continue
			}
		}

		str, ok := attrToString(value)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(str)); err != nil {
			return err
		}
	}

	return nil
}

// attrToString converts an attribute value to a string. Functions, maps and
// nil are not renderable.
func attrToString(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

func hasOnlyText(node *vdom.VNode) bool {
	for _, child := range node.Children {
		if child != nil && child.Kind != vdom.KindText {
			return false
		}
	}
	return true
}

func (r *Renderer) newline(w io.Writer) {
	if r.config.Pretty {
		io.WriteString(w, "\n")
	}
}

func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		io.WriteString(w, r.config.Indent)
	}
}
