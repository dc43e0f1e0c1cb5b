// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemark Authors
// Source: github.com/schemark/schemark

/*
Package schemark renders JSON Schema documents into structured Markdown
fragments: per-keyword badges, tabbed panels and descriptive text blocks.

The core type is Generator. It maps one schema node plus positional context to
a document Body expressed in docmodel nodes; the caller renders those nodes to
Material-flavored Markdown. Generation is deterministic and a generator is
safe for concurrent use.

Generate one fragment:

	schema, err := schemark.ParseSchema(schemaBytes)
	if err != nil {
		return err
	}

	generator := schemark.NewGenerator(schemark.Config{})
	body, err := generator.Generate(schema, "$", "jsonschema-config", "$")
	if err != nil {
		return err
	}

	fmt.Println(body.Markdown(docmodel.RenderOptions{}))

Build full pages for several schemas through the pipeline:

	set := schemark.NewDocSet(schemark.Config{}, schemark.DocSetOptions{})
	if err := set.AddSchemaFile("config.schema.json"); err != nil {
		return err
	}

	pages, err := set.Pages()
	if err != nil {
		return err
	}

	for _, page := range pages {
		md, err := set.RenderMarkdown(page)
		if err != nil {
			return err
		}

		fmt.Println(md)
	}

Lint a schema:

	for _, issue := range schemark.Check(schema, schemark.CheckOptions{}) {
		fmt.Println(issue)
	}

Generate an example document:

	data, err := schemark.ExampleYAML(schema, schemark.ExampleModeRequired)
	if err != nil {
		return err
	}

	fmt.Println(string(data))
*/
package schemark
