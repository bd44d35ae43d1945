// Package render emits the generated artifact: a preprocessor-directive
// stream that makes a C-family compiler surface diagnostics at the
// file/line/column of the original sources.
package render

import (
	"fmt"
	"io"

	"github.com/chiselworks/feedgen/pkg/types"
	"github.com/chiselworks/feedgen/pkg/workflow"
)

// preamble defines the severity-dispatch macros. Severity decisions are
// pre-expanded into the header so adding a severity later is a
// header-only change.
const preamble = `// DO NOT EDIT: this file is generated automatically

namespace { using dummy = int; }

#define __STRINGIFY(x) #x
#define STRINGIFY(x)   __STRINGIFY(x)
#define PRAGMA(x)      _Pragma(#x)

#if defined __GNUC__
#define FEEDBACK_RESPONSE_ERROR(id, msg)   PRAGMA(GCC error "feedback " STRINGIFY(id) ": " msg)
#define FEEDBACK_RESPONSE_WARNING(id, msg) PRAGMA(GCC warning "feedback " STRINGIFY(id) ": " msg)
#define FEEDBACK_RESPONSE_MESSAGE(id, msg) PRAGMA(message "feedback " STRINGIFY(id) ": " msg)
#define FEEDBACK_RESPONSE_NONE(id, msg)    /* no feedback response for id */
#elif defined _MSC_VER
#define FEEDBACK_MESSAGE(msg)              PRAGMA(message(__FILE__ "(" STRINGIFY(__LINE__) "): " msg))
#define FEEDBACK_RESPONSE_ERROR(id, msg)   FEEDBACK_MESSAGE("feedback error " STRINGIFY(id) ": " msg)
#define FEEDBACK_RESPONSE_WARNING(id, msg) FEEDBACK_MESSAGE("feedback warning " STRINGIFY(id) ": " msg)
#define FEEDBACK_RESPONSE_MESSAGE(id, msg) FEEDBACK_MESSAGE("feedback message " STRINGIFY(id) ": " msg)
#define FEEDBACK_RESPONSE_NONE(id, msg)    /* no feedback response for id */
#else
#error "Unsupported compiler"
#endif

`

// Header writes the preamble and one FEEDBACK_MATCH_<ID> define per
// rule, dispatched to the severity the workflow assigns the rule's
// category. All textual attributes are literal-escaped.
func Header(w io.Writer, rules *types.RuleSet, wf *workflow.Workflow) error {
	if _, err := io.WriteString(w, preamble); err != nil {
		return err
	}

	for _, id := range rules.IDs() {
		r := rules.Get(id)
		severity := wf.Handling(r.Category).Severity

		_, err := fmt.Fprintf(w,
			"#define FEEDBACK_MATCH_%s(match, highlighting) FEEDBACK_RESPONSE_%s(%s, \"%s [%s from file://%s]\\n |\\n | \" match \"\\n | \" highlighting \"\\n |\\n | RATIONALE : %s\\n | WORKAROUND: %s\\n |\")\n",
			Uppercase(string(id)), Uppercase(severity.String()), id,
			Literal(r.Summary), Literal(r.Category), Literal(rules.Origin),
			Literal(r.Rationale), Literal(r.Workaround))
		if err != nil {
			return err
		}
	}

	return nil
}

// SourceMarker writes the per-source marker that resets the compiler's
// notion of file and line.
func SourceMarker(w io.Writer, path string) error {
	_, err := fmt.Fprintf(w, "\n# line 1 \"%s\"\n", path)
	return err
}

// MatchBlock writes one match emission: a # line directive followed by
// the indented macro invocation carrying the matched first line and the
// caret annotation.
func MatchBlock(w io.Writer, m *types.Match) error {
	_, err := fmt.Fprintf(w, "# line %d\n%sFEEDBACK_MATCH_%s(\"%s\", \"%s\")\n",
		m.Line, m.Excerpt.Indentation, Uppercase(string(m.ID)),
		Literal(m.Excerpt.FirstLine), Literal(m.Excerpt.Indentation+m.Excerpt.Annotation))
	return err
}
