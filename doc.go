// Package mdviewer converts Markdown documents into styled, self-contained
// HTML pages.
//
// # Quick Start
//
//	conv, err := mdviewer.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, mdviewer.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Title) // "Hello"
//
// For files, ConvertFile reads the input, writes the page next to it (or to
// FileOptions.OutputPath) and returns a summary.
//
// # Conversion Pipeline
//
//  1. Markdown to an HTML fragment. The default engine is a line-oriented
//     scanner that supports headings, paragraphs, flat lists, block quotes,
//     code fences, horizontal rules and inline code, links, bold and italics.
//     The goldmark engine (WithEngine(EngineGoldmark)) adds GFM.
//  2. Relative links and images are rebased when the output is written to a
//     different directory than the source.
//  3. Style overrides are merged over the defaults and interpolated into the
//     stylesheet.
//  4. The fragment, stylesheet and title are assembled into the page.
//
// # Title
//
// The page title is Input.Title when set, otherwise the plain text of the
// first heading, otherwise DefaultTitle.
//
// # Styling
//
// StyleOptions is sparse: empty fields keep the defaults.
//
//	conv, err := mdviewer.NewConverter(
//	    mdviewer.WithStyle(mdviewer.StyleOptions{
//	        AccentColor:       "#e11d48",
//	        ContainerMaxWidth: mdviewer.Pixels(820),
//	    }),
//	)
//
// Templates and stylesheets can be replaced with WithAssetPath. The directory
// may contain templates/document.html and styles/base.css; missing files fall
// back to the built-in ones.
//
// # Concurrency
//
// A Converter is safe for concurrent use.
package mdviewer
