// Copyright 2024 - 2026, the gettext authors
// SPDX-License-Identifier: MIT

// po-extract scans Go packages for gotext-style translation calls and writes
// the messages it finds to a POT file. Every extracted entry carries the
// autogenerated flag so later merges can tell tool output from hand-edited
// entries.
package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"

	"github.com/olafura/gettext/catalog"
	"github.com/olafura/gettext/po"
)

// callSpec describes where a translation call keeps its msgid, msgid_plural
// and msgctxt arguments. An index of -1 means the call has no such argument.
type callSpec struct {
	id     int
	plural int
	ctx    int
}

// calls maps the gotext API surface, both package-level functions and the
// equivalent methods on Locale, Po and Mo.
var calls = map[string]callSpec{
	"Get":    {id: 0, plural: -1, ctx: -1},
	"GetD":   {id: 1, plural: -1, ctx: -1},
	"GetN":   {id: 0, plural: 1, ctx: -1},
	"GetND":  {id: 1, plural: 2, ctx: -1},
	"GetC":   {id: 0, plural: -1, ctx: 1},
	"GetDC":  {id: 1, plural: -1, ctx: 2},
	"GetNC":  {id: 0, plural: 1, ctx: 3},
	"GetNDC": {id: 1, plural: 2, ctx: 4},
}

// extractor accumulates messages from AST analysis into a shared catalog.
type extractor struct {
	mu          sync.Mutex
	cat         *catalog.Catalog
	projectRoot string
	targetPkg   string
}

func main() {
	outPath := flag.String("o", "po/messages.pot", "output POT file")
	targetPkg := flag.String("pkg", "github.com/leonelquinteros/gotext", "package path of the translation API to match")
	project := flag.String("project", "messages", "project name for the POT header")
	flag.Parse()

	log.Logger = log.Output(consoleWriter(os.Stderr))

	wd, err := os.Getwd()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get working directory")
	}

	pkgs, err := packages.Load(&packages.Config{Mode: packages.LoadAllSyntax, Tests: false}, "./...")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load packages")
	}

	if packages.PrintErrors(pkgs) > 0 {
		log.Fatal().Msg("Failed to load packages due to errors")
	}

	cat, err := catalog.New("en")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create catalog")
	}

	e := &extractor{
		cat:         cat,
		projectRoot: findProjectRoot(wd),
		targetPkg:   *targetPkg,
	}

	var g errgroup.Group
	for _, p := range pkgs {
		p := p
		g.Go(func() error {
			return e.scanPackage(p)
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("Extraction failed")
	}

	cat.Sort()

	var b strings.Builder
	writeHeader(&b, *project)

	if err := writeMessages(&b, cat); err != nil {
		log.Fatal().Err(err).Msg("Failed to render POT")
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		log.Fatal().Err(err).Msg("Failed to create output directory")
	}

	if err := os.WriteFile(*outPath, []byte(b.String()), 0o644); err != nil {
		log.Fatal().Err(err).Str("path", *outPath).Msg("Failed to write output file")
	}

	log.Info().
		Int("messages", cat.Len()).
		Str("path", *outPath).
		Msg("Wrote POT file")
}

// scanPackage walks one package's syntax trees, recording every matched
// translation call into the shared catalog.
func (e *extractor) scanPackage(p *packages.Package) error {
	if p.TypesInfo == nil {
		return nil
	}

	var firstErr error

	for _, f := range p.Syntax {
		ast.Inspect(f, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}

			if err := e.handleCallExpr(p, call); err != nil && firstErr == nil {
				firstErr = err
			}

			return true
		})
	}

	return firstErr
}

// handleCallExpr records a message when call is a translation call from the
// target package with constant string arguments.
func (e *extractor) handleCallExpr(p *packages.Package, call *ast.CallExpr) error {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return nil
	}

	fn, ok := p.TypesInfo.Uses[sel.Sel].(*types.Func)
	if !ok || fn.Pkg() == nil || fn.Pkg().Path() != e.targetPkg {
		return nil
	}

	spec, ok := calls[fn.Name()]
	if !ok {
		return nil
	}

	id, ok := constArg(p.TypesInfo, call, spec.id)
	if !ok {
		return nil
	}

	plural := ""
	if spec.plural >= 0 {
		if plural, ok = constArg(p.TypesInfo, call, spec.plural); !ok {
			return nil
		}
	}

	ctx := ""
	if spec.ctx >= 0 {
		if ctx, ok = constArg(p.TypesInfo, call, spec.ctx); !ok {
			return nil
		}
	}

	return e.add(p.Fset.Position(call.Args[spec.id].Pos()), ctx, id, plural, spec.plural >= 0)
}

// add folds one extracted message into the catalog, normalising the
// reference path relative to the project root.
func (e *extractor) add(pos token.Position, ctx, id, plural string, hasPlural bool) error {
	file := pos.Filename
	if rel, err := filepath.Rel(e.projectRoot, file); err == nil {
		file = rel
	}

	ref := po.Reference{Path: filepath.ToSlash(file), Line: pos.Line}

	var ctxText po.Text
	if ctx != "" {
		ctxText = po.Text{ctx}
	}

	var m po.Message
	if hasPlural {
		m = &po.Plural{
			Msgctxt:     ctxText,
			Msgid:       po.Text{id},
			MsgidPlural: po.Text{plural},
			Flags:       po.NewFlags(po.FlagAutogenerated),
			References:  []po.Reference{ref},
		}
	} else {
		m = &po.Singular{
			Msgctxt:    ctxText,
			Msgid:      po.Text{id},
			Flags:      po.NewFlags(po.FlagAutogenerated),
			References: []po.Reference{ref},
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return e.cat.Add(m)
}

// constArg evaluates argument i of call to a constant string. Handles string
// literals, const identifiers, and constant expressions like "a" + "b".
func constArg(info *types.Info, call *ast.CallExpr, i int) (string, bool) {
	if i >= len(call.Args) {
		return "", false
	}

	tv, ok := info.Types[call.Args[i]]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		return "", false
	}

	return constant.StringVal(tv.Value), true
}

// writeMessages renders the sorted catalog entries as POT message blocks.
func writeMessages(b *strings.Builder, cat *catalog.Catalog) error {
	msgs := cat.Messages()

	for i, m := range msgs {
		if err := writeMessage(b, m); err != nil {
			return err
		}

		if i < len(msgs)-1 {
			fmt.Fprintln(b)
		}
	}

	return nil
}

func writeMessage(b *strings.Builder, m po.Message) error {
	writeRefsAndFlags(b, m)

	switch msg := m.(type) {
	case *po.Singular:
		ctx, id, err := flattenPair(msg.Msgctxt, msg.Msgid)
		if err != nil {
			return err
		}

		if ctx != "" {
			fmt.Fprintf(b, "msgctxt %q\n", ctx)
		}

		fmt.Fprintf(b, "msgid %q\n", id)
		fmt.Fprintf(b, "msgstr \"\"\n")
	case *po.Plural:
		ctx, id, err := flattenPair(msg.Msgctxt, msg.Msgid)
		if err != nil {
			return err
		}

		plural, err := msg.MsgidPlural.Flatten()
		if err != nil {
			return err
		}

		if ctx != "" {
			fmt.Fprintf(b, "msgctxt %q\n", ctx)
		}

		fmt.Fprintf(b, "msgid %q\n", id)
		fmt.Fprintf(b, "msgid_plural %q\n", plural)
		fmt.Fprintf(b, "msgstr[0] \"\"\n")
		fmt.Fprintf(b, "msgstr[1] \"\"\n")
	}

	return nil
}

func flattenPair(ctxText, idText po.Text) (string, string, error) {
	ctx, err := ctxText.Flatten()
	if err != nil {
		return "", "", err
	}

	id, err := idText.Flatten()
	if err != nil {
		return "", "", err
	}

	return ctx, id, nil
}

func writeRefsAndFlags(b *strings.Builder, m po.Message) {
	var refs []po.Reference

	var flags po.Flags

	switch msg := m.(type) {
	case *po.Singular:
		refs, flags = msg.References, msg.Flags
	case *po.Plural:
		refs, flags = msg.References, msg.Flags
	}

	if len(refs) > 0 {
		fmt.Fprint(b, "#:")

		for _, r := range refs {
			fmt.Fprintf(b, " %s:%d", r.Path, r.Line)
		}

		fmt.Fprintln(b)
	}

	if len(flags) > 0 {
		fmt.Fprintf(b, "#, %s\n", strings.Join(flags.Sorted(), ", "))
	}
}

// writeHeader emits a POT header.
func writeHeader(b *strings.Builder, project string) {
	fmt.Fprintln(b, `msgid ""`)
	fmt.Fprintln(b, `msgstr ""`)
	fmt.Fprintf(b, "\"Project-Id-Version: %s %s\\n\"\n", project, detectVersion())
	fmt.Fprintf(b, "\"POT-Creation-Date: %s\\n\"\n", time.Now().UTC().Format("2006-01-02 15:04+0000"))
	fmt.Fprintln(b, `"Language: en\n"`)
	fmt.Fprintln(b, `"MIME-Version: 1.0\n"`)
	fmt.Fprintln(b, `"Content-Type: text/plain; charset=UTF-8\n"`)
	fmt.Fprintln(b, `"Content-Transfer-Encoding: 8bit\n"`)
	fmt.Fprintln(b, `"Plural-Forms: nplurals=2; plural=(n != 1);\n"`)
	fmt.Fprintln(b)
}

// detectVersion resolves a human-friendly version string using git describe.
// Falls back to "dev" when git is unavailable or this is not a git checkout.
func detectVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--always", "--dirty").Output()
	if err != nil {
		return "dev"
	}

	return strings.TrimSpace(string(out))
}

// findProjectRoot attempts to find a stable root directory for source
// references. Preference order: git toplevel, nearest parent containing
// go.mod, the working directory itself.
func findProjectRoot(wd string) string {
	if root := gitTopLevel(wd); root != "" {
		return root
	}

	if root := nearestGoModDir(wd); root != "" {
		return root
	}

	return wd
}

func gitTopLevel(wd string) string {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = wd

	out, err := cmd.Output()
	if err != nil {
		return ""
	}

	root := strings.TrimSpace(string(out))
	if root == "" {
		return ""
	}

	return filepath.Clean(root)
}

func nearestGoModDir(start string) string {
	dir := filepath.Clean(start)
	for {
		if fi, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil && !fi.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}

		dir = parent
	}
}

// consoleWriter returns a zerolog writer that disables color when f is not a
// terminal.
func consoleWriter(f *os.File) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        f,
		NoColor:    !isatty.IsTerminal(f.Fd()),
		TimeFormat: time.DateTime,
	}
}
