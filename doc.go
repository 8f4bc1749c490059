// Package printdoc renders line-oriented print documents to self-contained HTML.
//
// # Quick Start
//
// Create a renderer and generate a document from content lines:
//
//	r, err := printdoc.NewRenderer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	doc, err := r.GenerateDocument(ctx, []*printdoc.Line{
//	    {Type: "text", Value: "Corner Shop", Style: "font-size: 6; font-weight: bold"},
//	    {Type: "table", Header: []any{"Item", "Price"}, Rows: [][]any{{"Tea", "2.50"}}},
//	    {Type: "barCode", Value: "123456789999"},
//	}, printdoc.DefaultDocumentOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("receipt.html", []byte(doc), 0644)
//
// # Content Lines
//
// Each Line is discriminated by its Type (case-insensitive, "text" when
// empty):
//
//   - text: Value in a styled span; Raw emits it unescaped, Markdown renders it
//   - qrCode: Value encoded as a PNG data URI
//   - barCode: Value encoded as an SVG data URI (UPC by default)
//   - image: a file (Path plus MimeType) or an explicit source
//   - table: optional Header and Footer around non-empty Rows
//
// Every line is wrapped in a <div class="section"> carrying its SectionStyle.
//
// # Styles
//
// Style fields accept maps, declaration strings ("width: 10; color: red") or
// lists of either. Later entries win. Numbers are millimetres, except for
// line-height:
//
//	printdoc.CompileStyles(map[string]any{"width": 10}, "line-height: 1.2")
//	// "line-height:1.2;width:10mm;"
//
// # Documents
//
// GenerateDocument renders lines concurrently, keeps their order, and wraps
// them in a document with the baseline stylesheet, the caller stylesheet and
// a document id script. With Preview set, the document also carries Cancel
// and Print buttons and the serialized lines and options for replay.
//
// # Custom Assets
//
// The baseline stylesheet and the preview script can be overridden:
//
//	r, err := printdoc.NewRenderer(printdoc.WithAssetPath("/path/to/assets"))
//
// Asset directory structure:
//
//	assets/
//	├── styles/
//	│   └── default.css
//	└── scripts/
//	    └── preview.js
//
// Assets missing from the custom directory fall back to the embedded ones.
package printdoc
