package emit

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vk/ledgen/internal/model"
)

// Dialect holds the target-language spellings used by Render.
type Dialect struct {
	// Header is written verbatim at the top of the file, followed by a blank line.
	Header string
	// Type is the C++ type of the generated constant.
	Type string
	// Variable is the name of the generated constant.
	Variable string
	// ActionPrefix qualifies every action literal.
	ActionPrefix string
	// NoAction is rendered in place of an action left empty in the source.
	NoAction string
}

// DefaultDialect returns the spellings expected by the phosphor LED manager.
func DefaultDialect() Dialect {
	return Dialect{
		Header:       "/* !!! WARNING: This is a GENERATED Code..Please do NOT Edit !!! */",
		Type:         "phosphor::led::GroupMap",
		Variable:     "systemLedMap",
		ActionPrefix: "phosphor::led::Layout::Action::",
		NoAction:     "std::nullopt",
	}
}

// Emit builds the table for groups and renders it with the default dialect.
func Emit(w io.Writer, groups []*model.Group) error {
	return Render(w, Build(groups), DefaultDialect())
}

// Render writes t as a static initializer. The whole file is formatted in
// memory and handed to w in a single Write.
func Render(w io.Writer, t Table, d Dialect) error {
	var b bytes.Buffer

	b.WriteString(d.Header)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "static const %s %s = {\n\n", d.Type, d.Variable)

	for _, e := range t.Entries {
		b.WriteString("   {")
		b.WriteString(quoteString(e.Key))
		b.WriteString(",{ ")
		b.WriteString(strconv.Itoa(e.Priority))
		b.WriteString(",\n{\n")
		for _, r := range e.Records {
			writeRecord(&b, r, d)
		}
		b.WriteString("   }}},\n")
	}
	b.WriteString("};\n")

	if _, err := w.Write(b.Bytes()); err != nil {
		return fmt.Errorf("emit: write table: %w", err)
	}
	return nil
}

func writeRecord(b *bytes.Buffer, r Record, d Dialect) {
	b.WriteString("        {")
	b.WriteString(quoteString(r.Name))
	b.WriteByte(',')
	b.WriteString(actionLiteral(r.Action, d))
	b.WriteByte(',')
	b.WriteString(strconv.FormatUint(uint64(r.DutyOn), 10))
	b.WriteByte(',')
	b.WriteString(strconv.FormatUint(uint64(r.Period), 10))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(r.Priority))
	b.WriteString(",},\n")
}

func actionLiteral(action string, d Dialect) string {
	if action == "" {
		return d.NoAction
	}
	return d.ActionPrefix + action
}

var cppEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\t", `\t`)

// quoteString renders s as a C++ narrow string literal.
func quoteString(s string) string {
	return `"` + cppEscaper.Replace(s) + `"`
}
