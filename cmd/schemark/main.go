// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemark Authors
// Source: github.com/schemark/schemark

// schemark generates Material-flavored Markdown documentation from JSON
// Schema and OpenAPI component schemas.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/schemark/schemark"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/schemark/schemark"
	_buildTime string
)

// errLintIssues maps error-severity lint findings to exit code 1.
var errLintIssues = errors.New("schema check found errors")

// cliOptions describes schemark CLI flags and subcommands.
type cliOptions struct {
	Version  versionCommand  `command:"version" description:"Print version information"`
	Render   renderCommand   `command:"render" description:"Render JSON Schema documents to markdown pages"`
	OpenAPI  openapiCommand  `command:"openapi" description:"Render OpenAPI component schemas to markdown pages"`
	Check    checkCommand    `command:"check" description:"Lint JSON Schema documents"`
	Template templateCommand `command:"template" description:"Print a built-in markdown template"`
}

// generateFlags groups flags shared by render and openapi subcommands.
type generateFlags struct {
	OutDir       string `short:"o" long:"out" description:"Output directory for per-schema markdown files (stdout when omitted)"`
	TagPrefix    string `long:"tag-prefix" description:"Anchor namespace prefix" default:"jsonschema"`
	ClassPrefix  string `long:"class-prefix" description:"CSS class name prefix" default:"jsonschema-"`
	Title        string `short:"T" long:"title" description:"Index page title" default:"Schema Reference"`
	SanitizeHTML bool   `long:"sanitize-html" description:"Sanitize embedded HTML in descriptions"`
	ExampleMode  string `short:"e" long:"example-mode" description:"Append an example document section" choice:"all" choice:"required"`
	MaxDepth     int    `long:"max-depth" description:"Maximum schema nesting depth" default:"20"`
	ListMarker   string `short:"l" long:"list-marker" description:"Unordered list marker for normalized descriptions" choice:"-" choice:"*" default:"-"`
	WrapWidth    int    `short:"w" long:"wrap" description:"Wrap width for plain text descriptions" default:"80"`
	TemplatePath string `short:"f" long:"template-file" description:"Path to a custom page template (.gotmpl)"`
}

// renderCommand renders schema files or stdin to markdown pages.
type renderCommand struct {
	runner *cliRunner

	GenerateFlags generateFlags `group:"Markdown Generation"`
	Args          struct {
		Inputs []string `positional-arg-name:"schema" description:"Schema file paths, JSON or YAML (stdin when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs the render subcommand.
func (command *renderCommand) Execute(_ []string) error {
	return command.runner.runRender(command.Args.Inputs, command.GenerateFlags)
}

// openapiCommand renders OpenAPI component schemas to markdown pages.
type openapiCommand struct {
	runner *cliRunner

	GenerateFlags     generateFlags `group:"Markdown Generation"`
	AllowExternalRefs bool          `long:"allow-external-refs" description:"Allow the loader to follow external references"`
	Validate          bool          `long:"validate" description:"Validate the OpenAPI document before extraction"`

	Args struct {
		Spec string `positional-arg-name:"spec" description:"OpenAPI document path, JSON or YAML" required:"yes"`
	} `positional-args:"yes"`
}

// Execute runs the openapi subcommand.
func (command *openapiCommand) Execute(_ []string) error {
	return command.runner.runOpenAPI(command.Args.Spec, command.AllowExternalRefs, command.Validate, command.GenerateFlags)
}

// checkCommand lints schema documents.
type checkCommand struct {
	runner *cliRunner

	Args struct {
		Inputs []string `positional-arg-name:"schema" description:"Schema file paths, JSON or YAML" required:"yes"`
	} `positional-args:"yes"`
}

// Execute runs the check subcommand.
func (command *checkCommand) Execute(_ []string) error {
	return command.runner.runCheck(command.Args.Inputs)
}

// templateCommand exports a built-in markdown template.
type templateCommand struct {
	runner *cliRunner

	Name string `short:"n" long:"name" description:"Built-in template name" choice:"page" choice:"index" default:"page"`
	Args struct {
		Output string `positional-arg-name:"output" description:"Output template file path (stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs the template subcommand.
func (command *templateCommand) Execute(_ []string) error {
	return command.runner.runTemplate(command.Name, command.Args.Output)
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs the version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	_, err := fmt.Fprintf(command.runner.stdout, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, command.runner.programName, Version, Commit, BuildTime)

	return err
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	programName string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "schemark"
	}

	runner := cliRunner{
		programName: filepath.Base(programName),
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// parseCLIArgs parses CLI arguments and triggers subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Version.runner = runner
	options.Render.runner = runner
	options.OpenAPI.runner = runner
	options.Check.runner = runner
	options.Template.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)

	return err
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"render": strings.TrimSpace(fmt.Sprintf(`
Render JSON Schema documents to Material-flavored markdown pages.
Reads schemas from file arguments or stdin; writes pages to stdout or --out directory.

Examples:
> $ %s render config.schema.json > config.md
> $ cat schema.yaml | %s render --example-mode required
> $ %s render --out docs/ schemas/*.json
`, programName, programName, programName)),
		"openapi": strings.TrimSpace(fmt.Sprintf(`
Render every components.schemas entry of an OpenAPI document as a markdown page.

Examples:
> $ %s openapi api.yaml > components.md
> $ %s openapi --validate --out docs/ api.json
`, programName, programName)),
		"check": strings.TrimSpace(fmt.Sprintf(`
Lint JSON Schema documents: draft support, pattern compilation, reference
resolution, companion annotation shapes. Exit code is 1 when any
error-severity issue is found.

Examples:
> $ %s check config.schema.json
> $ %s check schemas/*.yaml
`, programName, programName)),
		"template": strings.TrimSpace(fmt.Sprintf(`
Print built-in markdown template text (page or index).
Use it as a starting point for a custom --template-file.

Examples:
> $ %s template > page.gotmpl
> $ %s template --name index templates/index.gotmpl
`, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

// newDocSet builds the document pipeline from shared generation flags.
func (runner *cliRunner) newDocSet(generate generateFlags) (*schemark.DocSet, error) {
	opts := schemark.DocSetOptions{
		TagPrefix:    generate.TagPrefix,
		MaxDepth:     generate.MaxDepth,
		WrapWidth:    generate.WrapWidth,
		ListMarker:   generate.ListMarker,
		SanitizeHTML: generate.SanitizeHTML,
		ExampleMode:  schemark.ExampleMode(generate.ExampleMode),
	}

	if generate.TemplatePath != "" {
		text, err := os.ReadFile(generate.TemplatePath)
		if err != nil {
			return nil, fmt.Errorf("read template file %q: %w", generate.TemplatePath, err)
		}

		opts.TemplateText = string(text)
	}

	cfg := schemark.Config{ClassPrefix: generate.ClassPrefix}

	return schemark.NewDocSet(cfg, opts), nil
}

// runRender executes the schema-to-markdown flow.
func (runner *cliRunner) runRender(inputs []string, generate generateFlags) error {
	set, err := runner.newDocSet(generate)
	if err != nil {
		return err
	}

	if len(inputs) == 0 {
		data, err := runner.readStdin()
		if err != nil {
			return err
		}

		if err := set.AddSchemaBytes(data, "schema"); err != nil {
			return fmt.Errorf("parse schema from stdin: %w", err)
		}
	}

	for _, input := range inputs {
		if err := set.AddSchemaFile(input); err != nil {
			return err
		}
	}

	return runner.writePages(set, generate)
}

// runOpenAPI executes the OpenAPI components-to-markdown flow.
func (runner *cliRunner) runOpenAPI(specPath string, allowExternalRefs, validate bool, generate generateFlags) error {
	set, err := runner.newDocSet(generate)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(specPath)
	if err != nil {
		return fmt.Errorf("read openapi document %q: %w", specPath, err)
	}

	if err := set.AddOpenAPI(data, schemark.OpenAPIOptions{
		AllowExternalRefs: allowExternalRefs,
		Validate:          validate,
	}); err != nil {
		return err
	}

	return runner.writePages(set, generate)
}

// writePages renders collected pages to stdout or slug-named files.
func (runner *cliRunner) writePages(set *schemark.DocSet, generate generateFlags) error {
	for _, warning := range set.Warnings() {
		_, _ = fmt.Fprintf(runner.stderr, "warning: %s\n", warning)
	}

	pages, err := set.Pages()
	if err != nil {
		return err
	}

	outDir := strings.TrimSpace(generate.OutDir)
	if outDir == "" {
		for _, page := range pages {
			rendered, err := set.RenderMarkdown(page)
			if err != nil {
				return err
			}

			if _, err := io.WriteString(runner.stdout, rendered); err != nil {
				return fmt.Errorf("write markdown to stdout: %w", err)
			}
		}

		return nil
	}

	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return fmt.Errorf("create output directory %q: %w", outDir, err)
	}

	for _, page := range pages {
		rendered, err := set.RenderMarkdown(page)
		if err != nil {
			return err
		}

		path := filepath.Join(outDir, page.Slug+".md")
		if err := os.WriteFile(path, []byte(rendered), 0o600); err != nil {
			return fmt.Errorf("write markdown file %q: %w", path, err)
		}
	}

	if len(pages) < 2 {
		return nil
	}

	index, err := set.RenderIndex(generate.Title, pages)
	if err != nil {
		return err
	}

	path := filepath.Join(outDir, "index.md")
	if err := os.WriteFile(path, []byte(index), 0o600); err != nil {
		return fmt.Errorf("write index file %q: %w", path, err)
	}

	return nil
}

// runCheck lints schema documents and prints one line per finding.
func (runner *cliRunner) runCheck(inputs []string) error {
	registry := schemark.NewMemoryRegistry()
	schemas := make([]*schemark.Schema, 0, len(inputs))

	for _, input := range inputs {
		schema, err := schemark.ParseSchemaFile(input)
		if err != nil {
			return err
		}

		// Ignore registration conflicts; duplicate ids are reported per-file.
		_ = registry.Add(schema)
		schemas = append(schemas, schema)
	}

	failed := false
	for index, schema := range schemas {
		issues := schemark.Check(schema, schemark.CheckOptions{Registry: registry})
		for _, issue := range issues {
			_, _ = fmt.Fprintf(runner.stdout, "%s: %s\n", inputs[index], issue)
		}

		if schemark.HasErrors(issues) {
			failed = true
		}
	}

	if failed {
		return errLintIssues
	}

	return nil
}

// runTemplate writes the selected built-in template to stdout or a file.
func (runner *cliRunner) runTemplate(name, outputPath string) error {
	text, err := schemark.BuiltinTemplate(name)
	if err != nil {
		return err
	}

	if strings.TrimSpace(outputPath) == "" {
		if _, err := io.WriteString(runner.stdout, text); err != nil {
			return fmt.Errorf("write template to stdout: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, []byte(text), 0o600); err != nil {
		return fmt.Errorf("write template file %q: %w", outputPath, err)
	}

	return nil
}

// readStdin reads one schema document from standard input.
func (runner *cliRunner) readStdin() ([]byte, error) {
	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, fmt.Errorf("read schema from stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("read schema from stdin: empty input")
	}

	return data, nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	_, _ = fmt.Fprintln(output, err.Error())
}
