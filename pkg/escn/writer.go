package escn

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Faultbox/escn-export/pkg/math"
)

// ErrUnsupportedValue is returned when a property holds a type the .escn
// format has no literal for.
var ErrUnsupportedValue = errors.New("unsupported .escn property value type")

// Write serializes the document to the textual .escn format.
func (d *Document) Write(w io.Writer) error {
	var b strings.Builder

	loadSteps := len(d.resources) + 1
	if loadSteps > 1 {
		fmt.Fprintf(&b, "[gd_scene load_steps=%d format=2]\n", loadSteps)
	} else {
		b.WriteString("[gd_scene format=2]\n")
	}

	for i, res := range d.resources {
		fmt.Fprintf(&b, "\n[sub_resource type=%q id=%d]\n", res.resType, i+1)
		if err := writeProps(&b, res.keys, res.props); err != nil {
			return err
		}
	}

	for _, node := range d.nodes {
		b.WriteByte('\n')
		if node.parent == nil {
			fmt.Fprintf(&b, "[node name=%q type=%q]\n", node.name, node.nodeType)
		} else {
			fmt.Fprintf(&b, "[node name=%q type=%q parent=%q]\n",
				node.name, node.nodeType, node.parent.Path())
		}
		if err := writeProps(&b, node.keys, node.props); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeProps(b *strings.Builder, keys []string, props map[string]any) error {
	for _, key := range keys {
		literal, err := formatValue(props[key])
		if err != nil {
			return fmt.Errorf("property %q: %w", key, err)
		}
		fmt.Fprintf(b, "%s = %s\n", key, literal)
	}
	return nil
}

// formatValue renders one property value as a Godot literal.
func formatValue(v any) (string, error) {
	switch val := v.(type) {
	case bool:
		return strconv.FormatBool(val), nil
	case int:
		return strconv.Itoa(val), nil
	case float32:
		return formatFloat(val), nil
	case string:
		return strconv.Quote(val), nil
	case SubResource:
		if !val.Valid {
			return "null", nil
		}
		return fmt.Sprintf("SubResource( %d )", val.ID), nil
	case math.Vec3:
		return fmt.Sprintf("Vector3( %s, %s, %s )",
			formatFloat(val.X), formatFloat(val.Y), formatFloat(val.Z)), nil
	case []math.Vec3:
		parts := make([]string, 0, len(val)*3)
		for _, p := range val {
			parts = append(parts, formatFloat(p.X), formatFloat(p.Y), formatFloat(p.Z))
		}
		return "PoolVector3Array( " + strings.Join(parts, ", ") + " )", nil
	case math.Mat4:
		return formatTransform(val), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

// formatTransform renders a column-major Mat4 as a Godot Transform literal:
// the 3x3 basis in row-major order followed by the origin.
func formatTransform(m math.Mat4) string {
	elems := [12]float32{
		m[0], m[4], m[8],
		m[1], m[5], m[9],
		m[2], m[6], m[10],
		m[12], m[13], m[14],
	}
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = formatFloat(e)
	}
	return "Transform( " + strings.Join(parts, ", ") + " )"
}

func formatFloat(f float32) string {
	s := strconv.FormatFloat(float64(f), 'g', -1, 32)
	// Godot literals always carry a decimal point or exponent.
	if !strings.ContainsAny(s, ".eEIN") {
		s += ".0"
	}
	return s
}
