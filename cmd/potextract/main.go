// Copyright 2024 - 2026, The langforge contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
potextract collects translatable strings into a POT template.

It scans every buildable package for conversions to i18n.MsgKey, for
MsgKey-typed fields and elements in composite literals (this is how the
generated language definitions are collected), and for Tr-family calls,
then writes a deterministic, sorted POT file.
*/
package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/tools/go/packages"
)

// entry models a gettext entry identified by context, singular msgid,
// and optional plural msgid_plural. For non-plural entries, plural is empty.
type entry struct {
	ctx    string
	id     string
	plural string
}

type ref struct {
	file string
	line int
}

// scanner holds the shared state for AST analysis within a package.
type scanner struct {
	refs     map[entry][]ref
	root     string
	fset     *token.FileSet
	info     *types.Info
	i18nPkgs map[string]struct{}
}

func main() {
	outPath := flag.String("o", "po/langforge.pot", "output file")
	flag.Parse()

	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("failed to get working directory: %v", err)
	}

	pkgs, err := packages.Load(&packages.Config{Mode: packages.LoadAllSyntax, Tests: false}, "./...")
	if err != nil {
		log.Fatalf("failed to load packages: %v", err)
	}

	if packages.PrintErrors(pkgs) > 0 {
		log.Fatal("failed to load packages due to errors")
	}

	refs := scan(pkgs, nearestGoModDir(wd), findI18nPkgPaths(pkgs))

	if err := writePOT(*outPath, refs); err != nil {
		log.Fatalf("failed to write %s: %v", *outPath, err)
	}
}

// scan traverses all Go source files in the given packages, collecting
// msgid references.
func scan(pkgs []*packages.Package, root string, i18nPkgs map[string]struct{}) map[entry][]ref {
	refs := map[entry][]ref{}

	for _, p := range pkgs {
		if p.TypesInfo == nil {
			continue
		}

		s := &scanner{
			refs:     refs,
			root:     root,
			fset:     p.Fset,
			info:     p.TypesInfo,
			i18nPkgs: i18nPkgs,
		}

		for _, f := range p.Syntax {
			ast.Inspect(f, func(n ast.Node) bool {
				switch x := n.(type) {
				case *ast.CallExpr:
					s.handleCallExpr(x)
				case *ast.CompositeLit:
					s.handleCompositeLit(x)
				}

				return true
			})
		}
	}

	return refs
}

// findI18nPkgPaths returns the set of package paths in this build that
// define an i18n package with a MsgKey type whose underlying type is
// string, so matched calls and conversions are ours regardless of how the
// package is imported or aliased.
func findI18nPkgPaths(pkgs []*packages.Package) map[string]struct{} {
	out := make(map[string]struct{})

	for _, p := range pkgs {
		if p.Name != "i18n" || p.Types == nil {
			continue
		}

		tn, ok := p.Types.Scope().Lookup("MsgKey").(*types.TypeName)
		if !ok {
			continue
		}

		named, ok := tn.Type().(*types.Named)
		if !ok {
			continue
		}

		if basic, ok := named.Underlying().(*types.Basic); ok && basic.Kind() == types.String {
			out[p.PkgPath] = struct{}{}
		}
	}

	return out
}

// constString evaluates expr to a constant string if possible.
func constString(info *types.Info, expr ast.Expr) (string, bool) {
	tv, ok := info.Types[expr]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		return "", false
	}

	return constant.StringVal(tv.Value), true
}

// isMsgKey reports whether t is the named type i18n.MsgKey from one of the
// recognised i18n packages.
func isMsgKey(t types.Type, i18nPkgs map[string]struct{}) bool {
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()
	if obj == nil || obj.Pkg() == nil {
		return false
	}

	if _, ok := i18nPkgs[obj.Pkg().Path()]; !ok {
		return false
	}

	return obj.Name() == "MsgKey"
}

// handleCompositeLit inspects composite literals for MsgKey-typed struct
// fields and slice/array elements.
func (s *scanner) handleCompositeLit(x *ast.CompositeLit) {
	tv, ok := s.info.Types[x]
	if !ok || tv.Type == nil {
		return
	}

	t := tv.Type
	if p, ok := t.Underlying().(*types.Pointer); ok && p.Elem() != nil {
		t = p.Elem()
	}

	switch u := t.Underlying().(type) {
	case *types.Slice:
		s.addElements(x.Elts, u.Elem())

	case *types.Array:
		s.addElements(x.Elts, u.Elem())

	case *types.Struct:
		fieldTypes := make(map[string]types.Type, u.NumFields())
		for i := range u.NumFields() {
			f := u.Field(i)

			fieldTypes[f.Name()] = f.Type()
		}

		for i, elt := range x.Elts {
			// Keyed field: FieldName: "..."
			if kv, ok := elt.(*ast.KeyValueExpr); ok {
				if id, ok := kv.Key.(*ast.Ident); ok {
					if ft, ok := fieldTypes[id.Name]; ok && isMsgKey(ft, s.i18nPkgs) {
						if msg, ok := constString(s.info, kv.Value); ok {
							s.addRef(kv.Value.Pos(), msg, "", "")
						}
					}
				}

				continue
			}

			// Positional field: rely on declared field order.
			if i < u.NumFields() && isMsgKey(u.Field(i).Type(), s.i18nPkgs) {
				if msg, ok := constString(s.info, elt); ok {
					s.addRef(elt.Pos(), msg, "", "")
				}
			}
		}
	}
}

func (s *scanner) addElements(elts []ast.Expr, elemType types.Type) {
	if !isMsgKey(elemType, s.i18nPkgs) {
		return
	}

	for _, elt := range elts {
		if msg, ok := constString(s.info, elt); ok {
			s.addRef(elt.Pos(), msg, "", "")
		}
	}
}

// handleCallExpr inspects function calls and type conversions.
func (s *scanner) handleCallExpr(x *ast.CallExpr) {
	// Type conversion: i18n.MsgKey("...").
	if tv, ok := s.info.Types[x.Fun]; ok && tv.IsType() {
		if len(x.Args) == 1 && isMsgKey(tv.Type, s.i18nPkgs) {
			if msg, ok := constString(s.info, x.Args[0]); ok {
				s.addRef(x.Args[0].Pos(), msg, "", "")
			}
		}

		return
	}

	// Tr-family calls from our i18n package.
	sel, ok := x.Fun.(*ast.SelectorExpr)
	if !ok {
		return
	}

	fn, ok := s.info.Uses[sel.Sel].(*types.Func)
	if !ok || fn.Pkg() == nil {
		return
	}

	if _, ok := s.i18nPkgs[fn.Pkg().Path()]; !ok {
		return
	}

	switch fn.Name() {
	case "Tr": // Tr(ctx, "msg", ...)
		if len(x.Args) >= 2 {
			if msg, ok := constString(s.info, x.Args[1]); ok {
				s.addRef(x.Args[1].Pos(), msg, "", "")
			}
		}
	case "TrC": // TrC(ctx, "ctx", "msg", ...)
		if len(x.Args) >= 3 {
			ctx, ok1 := constString(s.info, x.Args[1])

			msg, ok2 := constString(s.info, x.Args[2])
			if ok1 && ok2 {
				s.addRef(x.Args[2].Pos(), msg, ctx, "")
			}
		}
	case "TrN": // TrN(ctx, "singular", "plural", n, ...)
		if len(x.Args) >= 4 {
			singular, ok1 := constString(s.info, x.Args[1])

			plural, ok2 := constString(s.info, x.Args[2])
			if ok1 && ok2 {
				s.addRef(x.Args[1].Pos(), singular, "", plural)
			}
		}
	case "TrNC": // TrNC(ctx, "ctx", "singular", "plural", n, ...)
		if len(x.Args) >= 5 {
			ctx, ok1 := constString(s.info, x.Args[1])
			singular, ok2 := constString(s.info, x.Args[2])

			plural, ok3 := constString(s.info, x.Args[3])
			if ok1 && ok2 && ok3 {
				s.addRef(x.Args[2].Pos(), singular, ctx, plural)
			}
		}
	}
}

// addRef records a reference to a msgid, normalising the file path
// relative to the module root.
func (s *scanner) addRef(pos token.Pos, msg, ctx, plural string) {
	p := s.fset.Position(pos)

	file := p.Filename
	if s.root != "" {
		if rel, err := filepath.Rel(s.root, file); err == nil {
			file = rel
		}
	}

	file = filepath.ToSlash(file)

	k := entry{ctx: ctx, id: msg, plural: plural}

	s.refs[k] = append(s.refs[k], ref{file: file, line: p.Line})
}

// writePOT emits the sorted POT file.
func writePOT(outPath string, refs map[entry][]ref) error {
	keys := make([]entry, 0, len(refs))
	for k := range refs {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].ctx != keys[j].ctx {
			return keys[i].ctx < keys[j].ctx
		}

		if keys[i].id != keys[j].id {
			return keys[i].id < keys[j].id
		}

		return keys[i].plural < keys[j].plural
	})

	var b strings.Builder
	writeHeader(&b)

	for i, k := range keys {
		rs := refs[k]
		sort.Slice(rs, func(i, j int) bool {
			if rs[i].file != rs[j].file {
				return rs[i].file < rs[j].file
			}

			return rs[i].line < rs[j].line
		})

		// After sorting, duplicates are adjacent.
		fmt.Fprint(&b, "#:")

		lastFile := ""

		lastLine := 0
		for _, r := range rs {
			if r.file != lastFile || r.line != lastLine {
				fmt.Fprintf(&b, " %s:%d", r.file, r.line)

				lastFile = r.file
				lastLine = r.line
			}
		}

		fmt.Fprintln(&b)

		if k.ctx != "" {
			fmt.Fprintf(&b, "msgctxt %q\n", k.ctx)
		}

		if k.plural != "" {
			fmt.Fprintf(&b, "msgid %q\n", k.id)
			fmt.Fprintf(&b, "msgid_plural %q\n", k.plural)
			fmt.Fprintf(&b, "msgstr[0] \"\"\n")
			fmt.Fprintf(&b, "msgstr[1] \"\"\n")
		} else {
			fmt.Fprintf(&b, "msgid %q\n", k.id)
			fmt.Fprintf(&b, "msgstr \"\"\n")
		}

		if i < len(keys)-1 {
			fmt.Fprintln(&b)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	return os.WriteFile(outPath, []byte(b.String()), 0o644)
}

// writeHeader emits a POT header.
func writeHeader(b *strings.Builder) {
	fmt.Fprintln(b, `msgid ""`)
	fmt.Fprintln(b, `msgstr ""`)
	fmt.Fprintln(b, `"Project-Id-Version: langforge\n"`)
	fmt.Fprintf(b, "\"POT-Creation-Date: %s\\n\"\n", time.Now().UTC().Format("2006-01-02 15:04+0000"))
	fmt.Fprintln(b, `"Language: en\n"`)
	fmt.Fprintln(b, `"MIME-Version: 1.0\n"`)
	fmt.Fprintln(b, `"Content-Type: text/plain; charset=UTF-8\n"`)
	fmt.Fprintln(b, `"Content-Transfer-Encoding: 8bit\n"`)
	fmt.Fprintln(b, `"Plural-Forms: nplurals=2; plural=(n != 1);\n"`)
	fmt.Fprintln(b)
}

// nearestGoModDir walks up from start to the directory containing go.mod.
func nearestGoModDir(start string) string {
	dir := filepath.Clean(start)
	for {
		if fi, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil && !fi.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	return ""
}
