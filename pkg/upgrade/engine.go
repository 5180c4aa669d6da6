// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package upgrade

import (
	"fmt"
	"regexp"

	"github.com/walteh/dtsxup/pkg/rules"
)

// 🔧 compiledRule is a rule bound to a single attribute name, ready to run
// against file content.
type compiledRule struct {
	re          *regexp.Regexp // matches attr="<legacy value>"
	replacement string         // literal attr="<modern value>"
}

// 🎯 Engine applies the fixed rule tables to package content. It is pure
// text transformation: no I/O, no state beyond the precompiled patterns.
type Engine struct {
	executable []compiledRule // executable-type table, both task attributes
	classID    []compiledRule // string-form rules first, then GUID-form
}

// 🏭 NewEngine compiles the rule tables. Patterns are fixed package data, so
// compilation failure is a programming error and panics via MustCompile.
func NewEngine() *Engine {
	e := &Engine{}

	for _, rule := range rules.ExecutableType {
		for _, attr := range []string{rules.AttrCreationName, rules.AttrExecutableType} {
			e.executable = append(e.executable, compile(attr, rule))
		}
	}

	for _, rule := range rules.StringClassID {
		e.classID = append(e.classID, compile(rules.AttrComponentClassID, rule))
	}
	for _, rule := range rules.GUIDClassID {
		e.classID = append(e.classID, compile(rules.AttrComponentClassID, rule))
	}

	return e
}

// compile anchors a rule pattern to an exact attribute assignment. The value
// pattern is wrapped in the quoted form so only full attribute values match,
// never bare substrings elsewhere in the document.
func compile(attr string, rule rules.Rule) compiledRule {
	expr := fmt.Sprintf(`%s="(%s)"`, regexp.QuoteMeta(attr), rule.Pattern)
	if rule.IgnoreCase {
		expr = "(?i)" + expr
	}
	return compiledRule{
		re:          regexp.MustCompile(expr),
		replacement: fmt.Sprintf(`%s="%s"`, attr, rule.Replacement),
	}
}

// 🔄 SimplifyExecutableTypes rewrites DTS:ExecutableType and
// DTS:CreationName attributes to their simplified task names. Returns the
// updated content and the number of attribute occurrences replaced.
func (e *Engine) SimplifyExecutableTypes(content string) (string, int) {
	return applyAll(content, e.executable)
}

// 🔄 UpgradeComponentClassIDs rewrites componentClassID attributes from
// legacy ProgID or CLSID form to modern names.
func (e *Engine) UpgradeComponentClassIDs(content string) (string, int) {
	return applyAll(content, e.classID)
}

func applyAll(content string, table []compiledRule) (string, int) {
	total := 0
	for _, cr := range table {
		var n int
		content, n = applyRule(content, cr)
		total += n
	}
	return content, total
}

// applyRule replaces every occurrence of one attribute-bound rule, returning
// the new content and the occurrence count. Counting from the match index
// list keeps the transform free of mutable capture state.
func applyRule(content string, cr compiledRule) (string, int) {
	matches := cr.re.FindAllStringIndex(content, -1)
	if len(matches) == 0 {
		return content, 0
	}
	return cr.re.ReplaceAllLiteralString(content, cr.replacement), len(matches)
}
